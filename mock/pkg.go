// Package mock provides testify mocks for the interfaces projectinfo injects.
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/louiss0/projectinfo/services"
)

// MockDebugExecutor implements cmd.DebugExecutor.
type MockDebugExecutor struct {
	mock.Mock
}

func (m *MockDebugExecutor) ExecuteIfDebugIsTrue(cb func()) {
	m.Called(cb)
}

// LogDebugMessageIfDebugIsTrue records msg followed by keyvals as one flat argument list.
func (m *MockDebugExecutor) LogDebugMessageIfDebugIsTrue(msg string, keyvals ...interface{}) {
	args := []interface{}{msg}
	args = append(args, keyvals...)
	m.Called(args...)
}

// MockNpmRegistryService implements services.NpmRegistryService.
type MockNpmRegistryService struct {
	mock.Mock
}

func (m *MockNpmRegistryService) LatestVersion(ctx context.Context, name string) (services.PackageInfo, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(services.PackageInfo), args.Error(1)
}

// NewMockNpmRegistryService returns a registry that always publishes version for name.
func NewMockNpmRegistryService(name, version string) *MockNpmRegistryService {
	m := &MockNpmRegistryService{}
	m.On("LatestVersion", mock.Anything, name).Return(services.PackageInfo{Name: name, Version: version}, nil)
	return m
}

// MockKeySelectorUI implements cmd.KeySelectorUI.
type MockKeySelectorUI struct {
	mock.Mock
	value string
}

// NewMockKeySelectorUI returns a selector that picks value when run.
func NewMockKeySelectorUI(value string) *MockKeySelectorUI {
	m := &MockKeySelectorUI{}
	m.On("Run").Return(nil).Run(func(mock.Arguments) {
		m.value = value
	})
	return m
}

func (m *MockKeySelectorUI) Value() string {
	return m.value
}

func (m *MockKeySelectorUI) Run() error {
	args := m.Called()
	return args.Error(0)
}
