package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiss0/projectinfo/build_info"
)

func TestNewGoEnv(t *testing.T) {
	t.Run("falls back to the build mode", func(t *testing.T) {
		t.Setenv(GO_MODE_ENV_VAR, "")

		goEnv, err := NewGoEnv()
		require.NoError(t, err)
		assert.Equal(t, build_info.Mode(), goEnv.Mode())
	})

	t.Run("uses the environment variable", func(t *testing.T) {
		t.Setenv(GO_MODE_ENV_VAR, "production")

		goEnv, err := NewGoEnv()
		require.NoError(t, err)
		assert.Equal(t, "production", goEnv.Mode())
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		t.Setenv(GO_MODE_ENV_VAR, "staging")

		_, err := NewGoEnv()
		assert.ErrorContains(t, err, `got "staging"`)
	})
}

func TestGoEnv_Predicates(t *testing.T) {
	tests := []struct {
		mode        string
		debug       bool
		development bool
		production  bool
	}{
		{mode: "debug", debug: true},
		{mode: "development", development: true},
		{mode: "", development: true},
		{mode: "production", production: true},
	}

	for _, tt := range tests {
		t.Run("mode "+tt.mode, func(t *testing.T) {
			goEnv := GoEnv{goEnv: tt.mode}
			assert.Equal(t, tt.debug, goEnv.IsDebugMode())
			assert.Equal(t, tt.development, goEnv.IsDevelopmentMode())
			assert.Equal(t, tt.production, goEnv.IsProductionMode())
		})
	}
}

func TestGoEnv_ExecuteIfModeIsProduction(t *testing.T) {
	for mode, shouldRun := range map[string]bool{
		"production":  true,
		"development": false,
		"debug":       false,
		"":            false,
	} {
		executed := false
		GoEnv{goEnv: mode}.ExecuteIfModeIsProduction(func() { executed = true })
		assert.Equal(t, shouldRun, executed, "mode %q", mode)
	}
}

func TestGoEnv_ExecuteIfModeIsProduction_CallbackPanic(t *testing.T) {
	goEnv := GoEnv{goEnv: "production"}

	assert.PanicsWithValue(t, "test panic", func() {
		goEnv.ExecuteIfModeIsProduction(func() {
			panic("test panic")
		})
	})
}

func TestGoEnv_ZeroValue(t *testing.T) {
	var goEnv GoEnv

	assert.True(t, goEnv.IsDevelopmentMode())
	assert.False(t, goEnv.IsDebugMode())
	assert.False(t, goEnv.IsProductionMode())
	assert.Empty(t, goEnv.Mode())
}
