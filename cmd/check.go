package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/louiss0/projectinfo/custom_errors"
	"github.com/louiss0/projectinfo/custom_flags"
	"github.com/louiss0/projectinfo/internal/check"
	"github.com/louiss0/projectinfo/internal/manifest"
	"github.com/louiss0/projectinfo/project_info"
	"github.com/louiss0/projectinfo/services"
)

const (
	_PACKAGE_JSON_FLAG  = "package-json"
	_NPM_FLAG           = "npm"
	_STRICT_FLAG        = "strict"
	_SKIP_MANIFEST_FLAG = "skip-manifest"
)

// NewCheckCmd creates the command that verifies projectVersion against package.json
// and, with --npm, against the latest version on the npm registry.
func NewCheckCmd(projectInfo func() project_info.ProjectInfo, newNpmRegistryService func() services.NpmRegistryService) *cobra.Command {
	packageJSONFlag := custom_flags.NewPathFlag(_PACKAGE_JSON_FLAG)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that projectVersion matches package.json and npm",
		Long: `Check that the metadata record agrees with the published package.

The package.json in the current directory (or the one given with --package-json)
must carry the same name and version as the record. With --npm the latest version
on the npm registry is looked up as well; being behind or ahead of it is reported,
and only fails the command with --strict.

Examples:
  projectinfo check
  projectinfo check --package-json ../vite-plugin-ssr/
  projectinfo check --npm --strict
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			goEnv := getGoEnvFromCommandContext(cmd)
			de := getDebugExecutorFromCommandContext(cmd)
			info := projectInfo()
			out := cmd.OutOrStdout()

			skipManifest, err := cmd.Flags().GetBool(_SKIP_MANIFEST_FLAG)
			if err != nil {
				return err
			}
			useNpm, err := cmd.Flags().GetBool(_NPM_FLAG)
			if err != nil {
				return err
			}
			strict, err := cmd.Flags().GetBool(_STRICT_FLAG)
			if err != nil {
				return err
			}

			if skipManifest && !useNpm {
				return custom_errors.CreateInvalidFlagErrorWithMessage(_SKIP_MANIFEST_FLAG, "leaves nothing to check without --npm")
			}

			if !skipManifest {
				path := packageJSONFlag.String()
				if path == "" {
					path = manifest.FileName
				}
				de.LogDebugMessageIfDebugIsTrue("Reading manifest", "path", path)

				pkg, err := manifest.Read(path)
				if err != nil {
					return err
				}

				if err := check.AgainstManifest(info, pkg, path); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s matches %s@%s\n", path, info.ProjectName, info.ProjectVersion)
				if pkg.Private {
					fmt.Fprintf(out, "%s is marked private and is never published to npm\n", path)
				}
			}

			if !useNpm {
				return nil
			}

			goEnv.ExecuteIfModeIsProduction(func() {
				log.Info("Looking up the latest published version", "package", info.ProjectName)
			})

			result, err := check.AgainstRegistry(cmd.Context(), newNpmRegistryService(), info)
			if err != nil {
				return err
			}

			de.ExecuteIfDebugIsTrue(func() {
				log.Debug("Registry answered", "published", result.Published, "status", result.Status)
			})
			fmt.Fprintln(out, result.String())
			if result.Description != "" {
				fmt.Fprintf(out, "description: %s\n", result.Description)
			}
			if result.Homepage != "" {
				fmt.Fprintf(out, "homepage: %s\n", result.Homepage)
			}

			if strict && result.Status != check.Current {
				return custom_errors.VersionMismatch("the npm registry", result.Published, result.Recorded)
			}

			return nil
		},
	}

	cmd.Flags().Var(packageJSONFlag, _PACKAGE_JSON_FLAG, "Path to package.json or the directory holding it")
	cmd.Flags().Bool(_NPM_FLAG, false, "Also compare with the latest version on the npm registry")
	cmd.Flags().Bool(_STRICT_FLAG, false, "Fail unless the registry version equals projectVersion")
	cmd.Flags().Bool(_SKIP_MANIFEST_FLAG, false, "Do not read package.json")

	return cmd
}
