package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louiss0/projectinfo/custom_errors"
	"github.com/louiss0/projectinfo/internal/render"
	"github.com/louiss0/projectinfo/project_info"
)

// NewGetCmd creates the command that prints one value.
// Without a key it asks for one interactively.
func NewGetCmd(projectInfo func() project_info.ProjectInfo, newKeySelectorUI func([]string) KeySelectorUI) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print a single value of the project metadata",
		Long: `Print a single value of the project metadata.
The bare value is printed unless --format is given.

Examples:
  projectinfo get projectVersion
  projectinfo get discordInvite --format markdown
  projectinfo get              # pick the key interactively
`,
		Aliases: []string{"g"},
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return project_info.Keys(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			de := getDebugExecutorFromCommandContext(cmd)
			info := projectInfo()

			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				selector := newKeySelectorUI(project_info.Keys())
				if err := selector.Run(); err != nil {
					return fmt.Errorf("failed to select a key: %w", err)
				}
				key = selector.Value()
				de.LogDebugMessageIfDebugIsTrue("Key selected", "key", key)
			}

			if strings.TrimSpace(key) == "" {
				return custom_errors.CreateInvalidArgumentErrorWithMessage("key cannot be empty or contain only whitespace")
			}

			entry, ok := info.Lookup(key)
			if !ok {
				return custom_errors.UnknownKey(key, project_info.Keys())
			}

			return render.Value(cmd.OutOrStdout(), entry, getFormat(cmd, ""))
		},
	}
}
