// Package env resolves the mode projectinfo runs in.
package env

import (
	"fmt"
	"os"

	"github.com/samber/lo"

	"github.com/louiss0/projectinfo/build_info"
)

// GO_MODE_ENV_VAR overrides the mode baked in at build time.
const GO_MODE_ENV_VAR = "GO_MODE"

// GoEnv is the mode the current run uses: one of build_info.AllowedModes.
// The zero value behaves like development.
type GoEnv struct {
	goEnv string
}

// NewGoEnv returns the mode from GO_MODE when it is set, otherwise the build mode.
func NewGoEnv() (GoEnv, error) {
	mode, ok := os.LookupEnv(GO_MODE_ENV_VAR)
	if !ok || mode == "" {
		return GoEnv{build_info.Mode()}, nil
	}

	if !lo.Contains(build_info.AllowedModes, mode) {
		return GoEnv{}, fmt.Errorf("the %s variable must be one of %v, got %q", GO_MODE_ENV_VAR, build_info.AllowedModes, mode)
	}

	return GoEnv{mode}, nil
}

// Mode returns the current mode string.
func (e GoEnv) Mode() string {
	return e.goEnv
}

// IsDebugMode reports whether GO_MODE is debug. Debug mode raises the log level
// and turns on the messages commands log through their DebugExecutor.
func (e GoEnv) IsDebugMode() bool {
	return e.goEnv == "debug"
}

// IsDevelopmentMode reports whether projectinfo runs in development mode,
// which is also what an unset mode means.
func (e GoEnv) IsDevelopmentMode() bool {
	return e.goEnv == "development" || e.goEnv == ""
}

// IsProductionMode reports whether projectinfo runs in production mode.
func (e GoEnv) IsProductionMode() bool {
	return e.goEnv == "production"
}

// ExecuteIfModeIsProduction runs cb only in production mode.
// Commands use it for the progress messages a released binary shows.
func (e GoEnv) ExecuteIfModeIsProduction(cb func()) {
	if e.IsProductionMode() {
		cb()
	}
}
