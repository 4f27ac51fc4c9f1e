// Package cmd provides the projectinfo command line interface.
package cmd

import (
	// standard library
	"context"
	"fmt"
	"os"
	"strings"

	// external
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/projectinfo/build_info"
	"github.com/louiss0/projectinfo/custom_flags"
	"github.com/louiss0/projectinfo/env"
	"github.com/louiss0/projectinfo/internal/render"
	"github.com/louiss0/projectinfo/project_info"
	"github.com/louiss0/projectinfo/services"
)

type contextKey string

const (
	_GO_ENV         contextKey = "go_env"
	_DEBUG_EXECUTOR contextKey = "debug_executor"
)

const (
	FORMAT_ENV_VAR = "PROJECTINFO_FORMAT"
	_DEBUG_FLAG    = "debug"
	_FORMAT_FLAG   = "format"
)

// KeySelectorUI asks the user to pick one metadata key.
type KeySelectorUI interface {
	Value() string
	Run() error
}

type keySelectorUI struct {
	sel   *huh.Select[string]
	value string
}

func newKeySelectorUI(keys []string) KeySelectorUI {
	return &keySelectorUI{
		sel: huh.NewSelect[string]().
			Title("Which value do you need?").
			Options(huh.NewOptions(keys...)...),
	}
}

func (s *keySelectorUI) Run() error {
	s.sel.Value(&s.value)
	return s.sel.Run()
}

func (s *keySelectorUI) Value() string {
	return s.value
}

// DebugExecutor gates work that only matters when debugging.
// It is enabled by the --debug flag or by running with GO_MODE=debug.
type DebugExecutor interface {
	// ExecuteIfDebugIsTrue runs cb only when debugging is enabled.
	ExecuteIfDebugIsTrue(cb func())
	// LogDebugMessageIfDebugIsTrue logs msg with keyvals at debug level when debugging is enabled.
	LogDebugMessageIfDebugIsTrue(msg string, keyvals ...interface{})
}

type debugExecutor struct {
	debugFlag bool
}

// newDebugExecutor returns a DebugExecutor that is enabled when debugFlag is true.
func newDebugExecutor(debugFlag bool) DebugExecutor {
	return debugExecutor{debugFlag}
}

func (d debugExecutor) ExecuteIfDebugIsTrue(cb func()) {
	if d.debugFlag {
		cb()
	}
}

func (d debugExecutor) LogDebugMessageIfDebugIsTrue(msg string, keyvals ...interface{}) {
	if d.debugFlag {
		log.Debug(msg, keyvals...)
	}
}

// Dependencies holds everything the commands need from the outside world.
type Dependencies struct {
	ProjectInfo           func() project_info.ProjectInfo
	NewNpmRegistryService func() services.NpmRegistryService
	NewKeySelectorUI      func(keys []string) KeySelectorUI
	NewDebugExecutor      func(bool) DebugExecutor
}

// NewRootCmd creates the root command with injectable dependencies.
func NewRootCmd(deps Dependencies) *cobra.Command {
	formatFlag := custom_flags.NewUnionFlag(_FORMAT_FLAG, render.Formats, "")

	cmd := &cobra.Command{
		Use:     "projectinfo",
		Version: build_info.Version(),
		Short:   "Print the vite-plugin-ssr project metadata used by the docs",
		Long: `projectinfo prints the project metadata record the documentation is rendered from:
the project name, its version and the repository and community links.

Available commands:
		show   - Print the whole record
		get    - Print a single value
		keys   - List the keys of the record
		links  - Print only the links
		check  - Compare projectVersion with package.json and the npm registry

The --format flag (or the ` + FORMAT_ENV_VAR + ` variable) selects one of:
		` + strings.Join(render.Formats, ", "),
		SilenceUsage: true,

		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				log.Error(err.Error())
			}

			completing := isCompletionCommand(c)

			goEnv, err := env.NewGoEnv()
			if err != nil {
				if !completing {
					return err
				}
				log.Warn("Ignoring the run mode while completing", "error", err)
			}

			debug, err := c.Flags().GetBool(_DEBUG_FLAG)
			if err != nil {
				return err
			}

			if debug || goEnv.IsDebugMode() {
				log.SetLevel(log.DebugLevel)
			}

			debugExecutor := deps.NewDebugExecutor(debug || goEnv.IsDebugMode())

			if !c.Flags().Changed(_FORMAT_FLAG) {
				if format := strings.TrimSpace(os.Getenv(FORMAT_ENV_VAR)); format != "" {
					if err := setFormatFromEnv(formatFlag, format); err != nil {
						if !completing {
							return err
						}
						log.Warn("Ignoring the format variable while completing", "error", err)
					} else {
						debugExecutor.LogDebugMessageIfDebugIsTrue("Format taken from environment", "format", format)
					}
				}
			}

			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			lo.ForEach([][2]any{
				{_GO_ENV, goEnv},
				{_DEBUG_EXECUTOR, debugExecutor},
			}, func(item [2]any, _ int) {
				ctx = context.WithValue(ctx, item[0], item[1])
			})

			c.SetContext(ctx)
			return nil
		},
	}

	cmd.SetVersionTemplate(versionTemplate())

	cmd.AddCommand(NewShowCmd(deps.ProjectInfo))
	cmd.AddCommand(NewGetCmd(deps.ProjectInfo, deps.NewKeySelectorUI))
	cmd.AddCommand(NewKeysCmd(deps.ProjectInfo))
	cmd.AddCommand(NewLinksCmd(deps.ProjectInfo))
	cmd.AddCommand(NewCheckCmd(deps.ProjectInfo, deps.NewNpmRegistryService))

	cmd.PersistentFlags().BoolP(_DEBUG_FLAG, "d", false, "Log what projectinfo is doing")
	cmd.PersistentFlags().VarP(formatFlag, _FORMAT_FLAG, "f", "Output format")

	_ = cmd.RegisterFlagCompletionFunc(
		_FORMAT_FLAG,
		cobra.FixedCompletions(render.Formats, cobra.ShellCompDirectiveNoFileComp),
	)

	return cmd
}

// DefaultDependencies wires the real implementations.
func DefaultDependencies() Dependencies {
	return Dependencies{
		ProjectInfo:           project_info.Get,
		NewNpmRegistryService: services.NewNpmRegistryService,
		NewKeySelectorUI:      newKeySelectorUI,
		NewDebugExecutor:      newDebugExecutor,
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(DefaultDependencies()).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// versionTemplate describes the build next to the project version the binary records.
func versionTemplate() string {
	return fmt.Sprintf(
		"{{.Name}} {{.Version}} (%s mode, built %s%s)\nrecords %s %s\n",
		build_info.Mode(),
		build_info.BuildDate(),
		lo.Ternary(build_info.InCI(), ", ci", ""),
		project_info.Get().ProjectName,
		project_info.Version(),
	)
}

// isCompletionCommand reports whether c is cobra's completion command, one of its
// shell subcommands or the hidden command shells call for completions.
func isCompletionCommand(c *cobra.Command) bool {
	for ; c != nil; c = c.Parent() {
		switch c.Name() {
		case "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// setFormatFromEnv applies the format variable to the --format flag.
func setFormatFromEnv(formatFlag custom_flags.UnionFlag, value string) error {
	format, err := render.ParseFormat(value)
	if err != nil {
		return fmt.Errorf("%s: %w", FORMAT_ENV_VAR, err)
	}
	return formatFlag.Set(string(format))
}

func getDebugExecutorFromCommandContext(cmd *cobra.Command) DebugExecutor {
	return cmd.Context().Value(_DEBUG_EXECUTOR).(DebugExecutor)
}

func getGoEnvFromCommandContext(cmd *cobra.Command) env.GoEnv {
	return cmd.Context().Value(_GO_ENV).(env.GoEnv)
}

// getFormat returns the --format value, or fallback when none was given.
func getFormat(cmd *cobra.Command, fallback render.Format) render.Format {
	value := cmd.Flag(_FORMAT_FLAG).Value.String()
	if value == "" {
		return fallback
	}
	return render.Format(value)
}
