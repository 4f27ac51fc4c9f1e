// Package build_info holds the values injected into the projectinfo binary at build time.
// Every value is a `BuildInfo` and every value is validated once in init.
package build_info

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
)

// BuildInfo is a string that came from the linker.
type BuildInfo string

func (value BuildInfo) String() string {
	return string(value)
}

// Set with -ldflags "-X github.com/louiss0/projectinfo/build_info.rawCLI_VERSION=v1.2.3".
var (
	rawCLI_VERSION = "dev"
	rawGO_MODE     = "development"
	rawBUILD_DATE  = "unknown"
	rawCI          = "false"
)

var (
	CLI_VERSION BuildInfo
	GO_MODE     BuildInfo
	BUILD_DATE  BuildInfo
	CI          BuildInfo
)

// AllowedModes lists the values GO_MODE may take.
var AllowedModes = []string{"development", "production", "debug"}

func init() {
	CLI_VERSION = BuildInfo(strings.TrimPrefix(rawCLI_VERSION, "v"))
	GO_MODE = BuildInfo(rawGO_MODE)
	BUILD_DATE = BuildInfo(normalizeBuildDate(rawBUILD_DATE))
	CI = BuildInfo(rawCI)

	if err := validate(); err != nil {
		panic(fmt.Sprintf("build_info: %v", err))
	}
}

// normalizeBuildDate turns a GoReleaser RFC3339 stamp into YYYY-MM-DD.
func normalizeBuildDate(raw string) string {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(time.DateOnly)
	}
	return raw
}

func validate() error {
	if !lo.Contains(AllowedModes, GO_MODE.String()) {
		return fmt.Errorf("invalid GO_MODE '%s', must be one of %v", GO_MODE, AllowedModes)
	}

	if CLI_VERSION != "dev" {
		if _, err := semver.StrictNewVersion(CLI_VERSION.String()); err != nil {
			return fmt.Errorf("invalid CLI_VERSION '%s': %w", CLI_VERSION, err)
		}
	}

	if BUILD_DATE == "unknown" {
		if GO_MODE == "production" {
			return fmt.Errorf("BUILD_DATE must be set via ldflags in production mode")
		}
	} else if _, err := time.Parse(time.DateOnly, BUILD_DATE.String()); err != nil {
		return fmt.Errorf("invalid BUILD_DATE '%s', must be YYYY-MM-DD or 'unknown': %w", BUILD_DATE, err)
	}

	if _, err := strconv.ParseBool(CI.String()); err != nil {
		return fmt.Errorf("invalid CI value '%s', must be 'true' or 'false'", CI)
	}

	return nil
}

// Version returns the CLI version.
func Version() string {
	return CLI_VERSION.String()
}

// Mode returns the GO_MODE the binary was built with.
func Mode() string {
	return GO_MODE.String()
}

// BuildDate returns the build date or "unknown".
func BuildDate() string {
	return BUILD_DATE.String()
}

// InCI reports whether the binary was built with the CI flag on.
func InCI() bool {
	b, _ := strconv.ParseBool(CI.String())
	return b
}
