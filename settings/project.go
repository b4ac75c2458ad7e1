package settings

import (
	"github.com/viant/flutter-settings/sdk"
)

// Repository is a named artifact repository and its host.
type Repository struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type Plugin struct {
	ID      string `json:"id" yaml:"id"`
	Version string `json:"version" yaml:"version"`
	Apply   bool   `json:"apply" yaml:"apply"`
}

// Project is the evaluated outcome of the settings script.
type Project struct {
	SdkPath                string       `json:"sdkPath" yaml:"sdkPath"`
	Source                 sdk.Source   `json:"source" yaml:"source"`
	PropertiesFile         string       `json:"propertiesFile" yaml:"propertiesFile"`
	IncludedBuild          string       `json:"includedBuild" yaml:"includedBuild"`
	PluginRepositories     []Repository `json:"pluginRepositories" yaml:"pluginRepositories"`
	Plugins                []Plugin     `json:"plugins" yaml:"plugins"`
	RepositoriesMode       string       `json:"repositoriesMode,omitempty" yaml:"repositoriesMode,omitempty"`
	DependencyRepositories []Repository `json:"dependencyRepositories" yaml:"dependencyRepositories"`
	Modules                []string     `json:"modules" yaml:"modules"`
}
