package cmd

import (
	"github.com/spf13/cobra"

	"github.com/louiss0/projectinfo/internal/render"
	"github.com/louiss0/projectinfo/project_info"
)

// NewLinksCmd creates the command that prints only the URL entries.
func NewLinksCmd(projectInfo func() project_info.ProjectInfo) *cobra.Command {
	return &cobra.Command{
		Use:     "links",
		Short:   "Print the repository and community links",
		Aliases: []string{"l"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.Entries(cmd.OutOrStdout(), projectInfo().Links(), getFormat(cmd, render.Table))
		},
	}
}
