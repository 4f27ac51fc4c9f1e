package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/louiss0/projectinfo/project_info"
)

// NewKeysCmd creates the command that lists the record's keys in order.
// --kind prints the kind of each key next to it.
func NewKeysCmd(projectInfo func() project_info.ProjectInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the keys of the project metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			withKind, err := cmd.Flags().GetBool("kind")
			if err != nil {
				return err
			}

			for _, e := range projectInfo().Entries() {
				line := e.Key
				if withKind {
					line = fmt.Sprintf("%s\t%s", e.Key, e.Kind)
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Bool("kind", false, "Print the kind (text, markup, url) of each key")

	return cmd
}
