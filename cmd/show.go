package cmd

import (
	"github.com/spf13/cobra"

	"github.com/louiss0/projectinfo/internal/render"
	"github.com/louiss0/projectinfo/project_info"
)

// NewShowCmd creates the command that prints the whole record, as a table unless --format says otherwise.
func NewShowCmd(projectInfo func() project_info.ProjectInfo) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   "Print the whole project metadata record",
		Aliases: []string{"s"},
		Args:    cobra.NoArgs,
		Example: `  projectinfo show
  projectinfo show --format json > docs/projectInfo.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := getFormat(cmd, render.Table)
			getDebugExecutorFromCommandContext(cmd).LogDebugMessageIfDebugIsTrue("Rendering record", "format", format)

			return render.Record(cmd.OutOrStdout(), projectInfo(), format)
		},
	}
}
