// Package check compares the metadata record with the places its version is published from.
package check

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/louiss0/projectinfo/custom_errors"
	"github.com/louiss0/projectinfo/internal/manifest"
	"github.com/louiss0/projectinfo/project_info"
	"github.com/louiss0/projectinfo/services"
)

// Status is where the record stands relative to the registry.
type Status string

const (
	Behind  Status = "behind"
	Current Status = "current"
	Ahead   Status = "ahead"
)

// RegistryResult is the outcome of a registry comparison.
type RegistryResult struct {
	Recorded    string
	Published   string
	Status      Status
	Description string
	Homepage    string
}

func (r RegistryResult) String() string {
	switch r.Status {
	case Behind:
		return fmt.Sprintf("projectVersion %s is behind the published %s", r.Recorded, r.Published)
	case Ahead:
		return fmt.Sprintf("projectVersion %s is ahead of the published %s", r.Recorded, r.Published)
	default:
		return fmt.Sprintf("projectVersion %s is the published version", r.Recorded)
	}
}

// AgainstManifest requires pkg to carry the record's name and version.
// source names the manifest in error messages.
func AgainstManifest(info project_info.ProjectInfo, pkg manifest.PackageJSON, source string) error {
	if pkg.Name != info.ProjectName {
		return custom_errors.NameMismatch(source, pkg.Name, info.ProjectName)
	}

	if pkg.Version == "" {
		return custom_errors.VersionMismatch(source, "no version", info.ProjectVersion)
	}

	if !sameVersion(pkg.Version, info.ProjectVersion) {
		return custom_errors.VersionMismatch(source, pkg.Version, info.ProjectVersion)
	}

	return nil
}

// sameVersion compares semantically when both sides parse, textually otherwise.
func sameVersion(a, b string) bool {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return va.Equal(vb)
}

// AgainstRegistry looks up the latest published version of the project and compares.
func AgainstRegistry(ctx context.Context, registry services.NpmRegistryService, info project_info.ProjectInfo) (RegistryResult, error) {
	pkg, err := registry.LatestVersion(ctx, info.ProjectName)
	if err != nil {
		return RegistryResult{}, err
	}

	recorded, err := semver.NewVersion(info.ProjectVersion)
	if err != nil {
		return RegistryResult{}, fmt.Errorf("projectVersion %q is not semver: %w", info.ProjectVersion, err)
	}

	published, err := semver.NewVersion(pkg.Version)
	if err != nil {
		return RegistryResult{}, fmt.Errorf("registry version %q is not semver: %w", pkg.Version, err)
	}

	result := RegistryResult{
		Recorded:    info.ProjectVersion,
		Published:   pkg.Version,
		Description: pkg.Description,
		Homepage:    pkg.Homepage,
	}

	switch recorded.Compare(published) {
	case -1:
		result.Status = Behind
	case 1:
		result.Status = Ahead
	default:
		result.Status = Current
	}

	return result, nil
}
