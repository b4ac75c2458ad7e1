package settings

import (
	"io"
	"strings"
	"text/template"
)

var scriptTemplate = template.Must(template.New("settings.gradle.kts").
	Funcs(template.FuncMap{"kotlin": kotlinString}).
	Parse(`pluginManagement {
    val flutterSdkPath = {{kotlin .SdkPath}}

    includeBuild({{kotlin .IncludedBuild}})

    repositories {
{{- range .PluginRepositories}}
        {{.Name}}()
{{- end}}
    }
}

plugins {
{{- range .Plugins}}
    id({{kotlin .ID}}) version {{kotlin .Version}}{{if not .Apply}} apply false{{end}}
{{- end}}
}
{{if .DependencyRepositories}}
dependencyResolutionManagement {
{{- if .RepositoriesMode}}
    repositoriesMode.set(RepositoriesMode.{{.RepositoriesMode}})
{{- end}}
    repositories {
{{- range .DependencyRepositories}}
        {{.Name}}()
{{- end}}
    }
}
{{end}}
{{- range .Modules}}
include({{kotlin .}})
{{- end}}
`))

// Render writes project as a settings.gradle.kts script with the SDK path
// inlined.
func Render(w io.Writer, project *Project) error {
	return scriptTemplate.Execute(w, project)
}

var kotlinEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

func kotlinString(s string) string {
	return `"` + kotlinEscaper.Replace(s) + `"`
}
