// Package services provides the external services projectinfo talks to.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultRegistryURL is the public npm registry.
const DefaultRegistryURL = "https://registry.npmjs.org"

// PackageInfo is the part of a registry manifest projectinfo cares about.
type PackageInfo struct {
	Name        string
	Version     string
	Description string
	Homepage    string // Falls back to the repository URL
}

// NpmRegistryService reads published package metadata from an npm registry.
type NpmRegistryService interface {
	LatestVersion(ctx context.Context, name string) (PackageInfo, error)
}

type npmRegistryServiceImpl struct {
	client *resty.Client
}

// NewNpmRegistryService creates a client for the public npm registry.
func NewNpmRegistryService() NpmRegistryService {
	return NewNpmRegistryServiceWithClient(&http.Client{}, DefaultRegistryURL)
}

// NewNpmRegistryServiceWithClient allows injecting an HTTP client and registry URL, mostly for tests.
func NewNpmRegistryServiceWithClient(httpClient *http.Client, baseURL string) NpmRegistryService {
	client := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(50 * time.Millisecond).
		SetRetryMaxWaitTime(500 * time.Millisecond)

	client.AddRetryCondition(func(r *resty.Response, err error) bool {
		return err != nil || r.StatusCode() >= http.StatusInternalServerError
	})

	return &npmRegistryServiceImpl{client: client}
}

// npmManifest is the document served at /<name>/latest.
// repository is either a string or an object with a url field.
type npmManifest struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Homepage    string          `json:"homepage"`
	Repository  json.RawMessage `json:"repository"`
}

func (m npmManifest) repositoryURL() string {
	if len(m.Repository) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(m.Repository, &s); err == nil {
		return s
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(m.Repository, &obj); err == nil {
		return obj.URL
	}

	return ""
}

// LatestVersion fetches the manifest of the latest published version of name.
func (s *npmRegistryServiceImpl) LatestVersion(ctx context.Context, name string) (PackageInfo, error) {
	if strings.TrimSpace(name) == "" {
		return PackageInfo{}, fmt.Errorf("package name cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/{name}/latest")
	if err != nil {
		return PackageInfo{}, fmt.Errorf("failed to make HTTP request to npm registry: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return PackageInfo{}, fmt.Errorf("npm registry returned status %d: %s (body: %s)", resp.StatusCode(), resp.Status(), resp.String())
	}

	var manifest npmManifest
	if err := json.Unmarshal(resp.Body(), &manifest); err != nil {
		return PackageInfo{}, fmt.Errorf("failed to parse npm registry response: %w", err)
	}

	if manifest.Version == "" {
		return PackageInfo{}, fmt.Errorf("npm registry response for %s has no version", name)
	}

	homepage := manifest.Homepage
	if homepage == "" {
		homepage = manifest.repositoryURL()
	}

	return PackageInfo{
		Name:        manifest.Name,
		Version:     manifest.Version,
		Description: manifest.Description,
		Homepage:    homepage,
	}, nil
}
