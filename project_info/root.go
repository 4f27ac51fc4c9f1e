// Package project_info defines the project metadata the documentation renders.
// The record is assembled once in init and never changes afterwards; Get hands out copies.
package project_info

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Override with -ldflags "-X github.com/louiss0/projectinfo/project_info.rawPROJECT_VERSION=0.4.135".
// A leading "v" is dropped, so release tags can be passed as they are.
var rawPROJECT_VERSION = "0.4.134"

const (
	KeyProjectName       = "projectName"
	KeyProjectNameJsx    = "projectNameJsx"
	KeyProjectVersion    = "projectVersion"
	KeyGithubRepository  = "githubRepository"
	KeyGithubIssues      = "githubIssues"
	KeyGithubDiscussions = "githubDiscussions"
	KeyDiscordInvite     = "discordInvite"
	KeyTwitterProfile    = "twitterProfile"
)

// Kind says how a value should be presented.
type Kind string

const (
	KindText   Kind = "text"
	KindMarkup Kind = "markup"
	KindURL    Kind = "url"
)

// ProjectInfo is the metadata record. Field order is the key order.
type ProjectInfo struct {
	ProjectName       string        `json:"projectName" yaml:"projectName" toml:"projectName" validate:"required"`
	ProjectNameJsx    template.HTML `json:"projectNameJsx" yaml:"projectNameJsx" toml:"projectNameJsx" validate:"required"`
	ProjectVersion    string        `json:"projectVersion" yaml:"projectVersion" toml:"projectVersion" validate:"required"`
	GithubRepository  string        `json:"githubRepository" yaml:"githubRepository" toml:"githubRepository" validate:"required,url,startswith=https://"`
	GithubIssues      string        `json:"githubIssues" yaml:"githubIssues" toml:"githubIssues" validate:"required,url,startswith=https://"`
	GithubDiscussions string        `json:"githubDiscussions" yaml:"githubDiscussions" toml:"githubDiscussions" validate:"required,url,startswith=https://"`
	DiscordInvite     string        `json:"discordInvite" yaml:"discordInvite" toml:"discordInvite" validate:"required,url,startswith=https://"`
	TwitterProfile    string        `json:"twitterProfile" yaml:"twitterProfile" toml:"twitterProfile" validate:"required,url,startswith=https://"`
}

// Entry is one key of the record together with its value.
type Entry struct {
	Key   string
	Value string
	Kind  Kind
}

var (
	info    ProjectInfo
	version *semver.Version
)

func init() {
	p, v, err := newProjectInfo(rawPROJECT_VERSION)
	if err != nil {
		panic(fmt.Sprintf("project_info: %v", err))
	}
	info, version = p, v
}

// newProjectInfo assembles the record around rawVersion and validates it.
func newProjectInfo(rawVersion string) (ProjectInfo, *semver.Version, error) {
	const name = "vite-plugin-ssr"
	const repository = "https://github.com/brillout/" + name

	p := ProjectInfo{
		ProjectName:       name,
		ProjectNameJsx:    CodeMarkup(name),
		ProjectVersion:    strings.TrimPrefix(strings.TrimSpace(rawVersion), "v"),
		GithubRepository:  repository,
		GithubIssues:      repository + "/issues/new",
		GithubDiscussions: repository + "/discussions",
		DiscordInvite:     "https://discord.com/invite/hfHhnJyVg8",
		TwitterProfile:    "https://twitter.com/brillout",
	}

	v, err := p.Validate()
	if err != nil {
		return ProjectInfo{}, nil, err
	}
	return p, v, nil
}

// CodeMarkup wraps name in a <code> element. name is escaped; the result is trusted markup.
func CodeMarkup(name string) template.HTML {
	return template.HTML("<code>" + template.HTMLEscapeString(name) + "</code>")
}

// Validate checks every field and returns the parsed version.
func (p ProjectInfo) Validate() (*semver.Version, error) {
	if err := newValidator().Struct(p); err != nil {
		return nil, err
	}

	v, err := semver.StrictNewVersion(p.ProjectVersion)
	if err != nil {
		return nil, fmt.Errorf("projectVersion %q is not semver: %w", p.ProjectVersion, err)
	}

	return v, nil
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Get returns a copy of the record.
func Get() ProjectInfo {
	return info
}

// Version returns the parsed projectVersion.
func Version() *semver.Version {
	return version
}

// Entries returns the record as key/value pairs in declaration order.
func (p ProjectInfo) Entries() []Entry {
	return []Entry{
		{KeyProjectName, p.ProjectName, KindText},
		{KeyProjectNameJsx, string(p.ProjectNameJsx), KindMarkup},
		{KeyProjectVersion, p.ProjectVersion, KindText},
		{KeyGithubRepository, p.GithubRepository, KindURL},
		{KeyGithubIssues, p.GithubIssues, KindURL},
		{KeyGithubDiscussions, p.GithubDiscussions, KindURL},
		{KeyDiscordInvite, p.DiscordInvite, KindURL},
		{KeyTwitterProfile, p.TwitterProfile, KindURL},
	}
}

// Lookup finds a value by its key.
func (p ProjectInfo) Lookup(key string) (Entry, bool) {
	return lo.Find(p.Entries(), func(e Entry) bool {
		return e.Key == key
	})
}

// Links returns only the URL entries.
func (p ProjectInfo) Links() []Entry {
	return lo.Filter(p.Entries(), func(e Entry, _ int) bool {
		return e.Kind == KindURL
	})
}

// Entries returns the entries of the shared record.
func Entries() []Entry {
	return info.Entries()
}

// Lookup returns the value stored under key.
func Lookup(key string) (string, bool) {
	e, ok := info.Lookup(key)
	return e.Value, ok
}

// Keys returns every key in declaration order.
func Keys() []string {
	return lo.Map(info.Entries(), func(e Entry, _ int) string {
		return e.Key
	})
}
