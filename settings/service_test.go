package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/flutter-settings/sdk"
	"github.com/viant/flutter-settings/settings/config"
)

func newProjectDir(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "local.properties"), []byte(content), 0o644))
	}
	return dir
}

func TestService_Evaluate(t *testing.T) {
	dir := newProjectDir(t, "flutter.sdk=/opt/sdk\n")
	svc, err := New(nil, WithEnvironment(sdk.MapEnvironment{}))
	require.NoError(t, err)

	project, err := svc.Evaluate(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/sdk", project.SdkPath)
	assert.Equal(t, sdk.SourceProperties, project.Source)
	assert.Equal(t, filepath.Join("/opt/sdk", "packages", "flutter_tools", "gradle"), project.IncludedBuild)
	assert.Equal(t, []Repository{
		{Name: "google", URL: "https://dl.google.com/dl/android/maven2/"},
		{Name: "mavenCentral", URL: "https://repo.maven.apache.org/maven2/"},
		{Name: "gradlePluginPortal", URL: "https://plugins.gradle.org/m2/"},
	}, project.PluginRepositories)
	assert.Equal(t, []Plugin{
		{ID: "dev.flutter.flutter-plugin-loader", Version: "1.0.0", Apply: true},
		{ID: "com.android.application", Version: "8.6.0"},
		{ID: "com.android.library", Version: "8.6.0"},
		{ID: "org.jetbrains.kotlin.android", Version: "2.0.21"},
	}, project.Plugins)
	assert.Equal(t, config.ModePreferSettings, project.RepositoriesMode)
	assert.Len(t, project.DependencyRepositories, 2)
	assert.Equal(t, []string{":app"}, project.Modules)
}

func TestService_EvaluateMissing(t *testing.T) {
	svc, err := New(nil, WithEnvironment(sdk.MapEnvironment{}))
	require.NoError(t, err)

	project, err := svc.Evaluate(context.Background(), newProjectDir(t, ""))
	assert.Nil(t, project)
	assert.ErrorIs(t, err, sdk.ErrConfigurationMissing)
}

func TestService_EnvironmentFallback(t *testing.T) {
	cfg := config.Default()
	cfg.Environment = "FLUTTER_ROOT"
	svc, err := New(cfg, WithEnvironment(sdk.MapEnvironment{"FLUTTER_ROOT": "/home/user/sdk"}))
	require.NoError(t, err)

	resolution, err := svc.Resolve(context.Background(), newProjectDir(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "/home/user/sdk", resolution.Path)
	assert.Equal(t, sdk.SourceEnvironment, resolution.Source)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Include = []string{"app"}
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestService_Verify(t *testing.T) {
	sdkDir := t.TempDir()
	svc, err := New(nil, WithEnvironment(sdk.MapEnvironment{"FLUTTER_HOME": sdkDir}))
	require.NoError(t, err)

	project, err := svc.Evaluate(context.Background(), newProjectDir(t, ""))
	require.NoError(t, err)
	assert.Error(t, svc.Verify(context.Background(), project))

	require.NoError(t, os.MkdirAll(filepath.Join(sdkDir, "packages", "flutter_tools", "gradle"), 0o755))
	assert.NoError(t, svc.Verify(context.Background(), project))
}

func TestRender(t *testing.T) {
	svc, err := New(nil, WithEnvironment(sdk.MapEnvironment{}))
	require.NoError(t, err)
	project, err := svc.Evaluate(context.Background(), newProjectDir(t, "flutter.sdk=/opt/sdk\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, project))
	script := buf.String()

	assert.Contains(t, script, `val flutterSdkPath = "/opt/sdk"`)
	assert.Contains(t, script, `includeBuild("`+project.IncludedBuild+`")`)
	assert.Contains(t, script, `id("dev.flutter.flutter-plugin-loader") version "1.0.0"`+"\n")
	assert.Contains(t, script, `id("com.android.application") version "8.6.0" apply false`)
	assert.Contains(t, script, `id("org.jetbrains.kotlin.android") version "2.0.21" apply false`)
	assert.Contains(t, script, "repositoriesMode.set(RepositoriesMode.PREFER_SETTINGS)")
	assert.Contains(t, script, "        gradlePluginPortal()")
	assert.Contains(t, script, `include(":app")`)
}

func TestKotlinString(t *testing.T) {
	assert.Equal(t, `"C:\\src\\flutter"`, kotlinString(`C:\src\flutter`))
	assert.Equal(t, `"\$HOME/\"sdk\""`, kotlinString(`$HOME/"sdk"`))
	assert.Equal(t, `"/opt/a\tb\r\nc"`, kotlinString("/opt/a\tb\r\nc"))
}

func TestService_EvaluateWithoutPlugins(t *testing.T) {
	cfg := config.Default()
	cfg.PluginManagement.Plugins = nil
	svc, err := New(cfg, WithEnvironment(sdk.MapEnvironment{}))
	require.NoError(t, err)

	project, err := svc.Evaluate(context.Background(), newProjectDir(t, "flutter.sdk=/opt/sdk\n"))
	require.NoError(t, err)
	require.NotNil(t, project.Plugins)
	data, err := json.Marshal(project)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"plugins":[]`)
}
