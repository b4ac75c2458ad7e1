package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/flutter-settings/sdk"
	"github.com/viant/flutter-settings/sdk/properties"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"
)

// Repository modes accepted by Gradle's dependencyResolutionManagement.
const (
	ModePreferProject      = "PREFER_PROJECT"
	ModePreferSettings     = "PREFER_SETTINGS"
	ModeFailOnProjectRepos = "FAIL_ON_PROJECT_REPOS"
)

// RepositoryHosts maps the well-known repository shorthands onto their URLs.
var RepositoryHosts = map[string]string{
	"google":             "https://dl.google.com/dl/android/maven2/",
	"mavenCentral":       "https://repo.maven.apache.org/maven2/",
	"gradlePluginPortal": "https://plugins.gradle.org/m2/",
}

type Properties struct {
	File     string `yaml:"file,omitempty" json:"file,omitempty"`
	Key      string `yaml:"key,omitempty" json:"key,omitempty"`
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
}

// Plugin is a plugin id pinned to a version. Apply reports whether the
// plugin is applied to the settings themselves.
type Plugin struct {
	ID      string `yaml:"id" json:"id"`
	Version string `yaml:"version" json:"version"`
	Apply   bool   `yaml:"apply" json:"apply"`
}

type PluginManagement struct {
	Repositories []string `yaml:"repositories,omitempty" json:"repositories,omitempty"`
	Plugins      []Plugin `yaml:"plugins,omitempty" json:"plugins,omitempty"`
}

type DependencyResolution struct {
	Mode         string   `yaml:"mode,omitempty" json:"mode,omitempty"`
	Repositories []string `yaml:"repositories,omitempty" json:"repositories,omitempty"`
}

type Config struct {
	Properties           Properties           `yaml:"properties,omitempty" json:"properties,omitempty"`
	Environment          string               `yaml:"environment,omitempty" json:"environment,omitempty"`
	IncludeBuild         string               `yaml:"includeBuild,omitempty" json:"includeBuild,omitempty"`
	PluginManagement     PluginManagement     `yaml:"pluginManagement,omitempty" json:"pluginManagement,omitempty"`
	DependencyResolution DependencyResolution `yaml:"dependencyResolution,omitempty" json:"dependencyResolution,omitempty"`
	Include              []string             `yaml:"include,omitempty" json:"include,omitempty"`
	Server               *mcp.ServerOptions   `yaml:"server,omitempty" json:"server,omitempty"`
}

// Default returns the declarations of a stock Flutter Android embedding.
func Default() *Config {
	return &Config{
		Properties: Properties{
			File:     sdk.DefaultPropertiesFile,
			Key:      sdk.DefaultKey,
			Encoding: string(properties.ISO88591),
		},
		Environment:  sdk.DefaultVariable,
		IncludeBuild: "packages/flutter_tools/gradle",
		PluginManagement: PluginManagement{
			Repositories: []string{"google", "mavenCentral", "gradlePluginPortal"},
			Plugins: []Plugin{
				{ID: "dev.flutter.flutter-plugin-loader", Version: "1.0.0", Apply: true},
				{ID: "com.android.application", Version: "8.6.0"},
				{ID: "com.android.library", Version: "8.6.0"},
				{ID: "org.jetbrains.kotlin.android", Version: "2.0.21"},
			},
		},
		DependencyResolution: DependencyResolution{
			Mode:         ModePreferSettings,
			Repositories: []string{"google", "mavenCentral"},
		},
		Include: []string{":app"},
	}
}

// Load downloads the YAML document at URL and overlays it on Default.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Properties.File) == "" {
		return fmt.Errorf("properties.file was empty")
	}
	if strings.TrimSpace(c.Properties.Key) == "" {
		return fmt.Errorf("properties.key was empty")
	}
	if _, err := properties.ParseEncoding(c.Properties.Encoding); err != nil {
		return err
	}
	if strings.TrimSpace(c.Environment) == "" {
		return fmt.Errorf("environment was empty")
	}
	if err := validateRepositories("pluginManagement", c.PluginManagement.Repositories); err != nil {
		return err
	}
	if err := validateRepositories("dependencyResolution", c.DependencyResolution.Repositories); err != nil {
		return err
	}
	seen := map[string]bool{}
	for i, plugin := range c.PluginManagement.Plugins {
		if plugin.ID == "" || plugin.Version == "" {
			return fmt.Errorf("pluginManagement.plugins[%d]: id and version are required", i)
		}
		if seen[plugin.ID] {
			return fmt.Errorf("pluginManagement.plugins: duplicate plugin %q", plugin.ID)
		}
		seen[plugin.ID] = true
	}
	switch c.DependencyResolution.Mode {
	case "", ModePreferProject, ModePreferSettings, ModeFailOnProjectRepos:
	default:
		return fmt.Errorf("dependencyResolution.mode: unsupported value %q", c.DependencyResolution.Mode)
	}
	for _, module := range c.Include {
		if !strings.HasPrefix(module, ":") {
			return fmt.Errorf("include: module path %q must start with ':'", module)
		}
	}
	return nil
}

func validateRepositories(section string, names []string) error {
	for _, name := range names {
		if _, ok := RepositoryHosts[name]; !ok {
			return fmt.Errorf("%s.repositories: unknown repository %q", section, name)
		}
	}
	return nil
}

// ResolverOptions translates the lookup settings into resolver options.
func (c *Config) ResolverOptions() ([]sdk.Option, error) {
	enc, err := properties.ParseEncoding(c.Properties.Encoding)
	if err != nil {
		return nil, err
	}
	return []sdk.Option{
		sdk.WithPropertiesFile(c.Properties.File),
		sdk.WithKey(c.Properties.Key),
		sdk.WithVariable(c.Environment),
		sdk.WithEncoding(enc),
	}, nil
}
