package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/flutter-settings/sdk"
	mcpserver "github.com/viant/mcp"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

func newTestService(t *testing.T, env sdk.MapEnvironment) *Service {
	t.Helper()
	ctx := context.Background()
	svc, err := New(ctx, WithEnvironment(env))
	require.NoError(t, err)
	require.NoError(t, svc.Start(ctx))
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })
	return svc
}

func TestService_Tools(t *testing.T) {
	svc := newTestService(t, sdk.MapEnvironment{})

	var names []string
	for _, entry := range svc.Tools() {
		names = append(names, entry.Metadata.Name)
		assert.Equal(t, "object", entry.Metadata.InputSchema.Type)
		assert.NotNil(t, entry.Handler)
	}
	assert.Equal(t, []string{"flutter_settings-evaluate", "flutter_settings-render", "flutter_settings-resolve"}, names)

	entry, err := svc.LookupTool("flutter_settings-resolve")
	require.NoError(t, err)
	assert.Contains(t, entry.Metadata.InputSchema.Properties, "dir")

	_, err = svc.LookupTool("flutter_settings-clean")
	assert.Error(t, err)
}

func TestService_MatchTools(t *testing.T) {
	svc := newTestService(t, sdk.MapEnvironment{})

	assert.Len(t, svc.MatchTools("*"), 3)
	assert.Len(t, svc.MatchTools("flutter/settings/"), 3)
	exact := svc.MatchTools("flutter_settings-render")
	require.Len(t, exact, 1)
	assert.Equal(t, "flutter_settings-render", exact[0].Metadata.Name)
	assert.Empty(t, svc.MatchTools("dart/"))
}

func TestService_ServeResolve(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.properties"), []byte("flutter.sdk=/opt/sdk\n"), 0o644))
	svc := newTestService(t, sdk.MapEnvironment{})

	srv, err := mcpserver.NewServer(svc.NewHandler, nil)
	require.NoError(t, err)
	cli := srv.AsClient(ctx)

	listed, err := cli.ListTools(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, listed.Tools, 3)

	res, err := cli.CallTool(ctx, &mcpschema.CallToolRequestParams{
		Name:      "flutter_settings-resolve",
		Arguments: mcpschema.CallToolRequestParamsArguments{"dir": dir},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	assert.Contains(t, res.Content[0].Text, "/opt/sdk")
}

func TestService_ExecuteTool(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, sdk.MapEnvironment{"FLUTTER_HOME": "/home/user/sdk"})

	out, err := svc.ExecuteTool(ctx, "flutter_settings-resolve", map[string]interface{}{"dir": t.TempDir()}, 5*time.Second)
	require.NoError(t, err)
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/home/user/sdk")
	assert.Contains(t, string(data), string(sdk.SourceEnvironment))

	_, err = svc.ExecuteTool(ctx, "flutter_settings-clean", nil, time.Second)
	assert.Error(t, err)
}

func TestService_ExecuteToolRequiresStart(t *testing.T) {
	ctx := context.Background()
	svc, err := New(ctx, WithEnvironment(sdk.MapEnvironment{"FLUTTER_HOME": "/home/user/sdk"}))
	require.NoError(t, err)
	args := map[string]interface{}{"dir": t.TempDir()}

	_, err = svc.ExecuteTool(ctx, "flutter_settings-resolve", args, time.Second)
	assert.ErrorIs(t, err, ErrNotStarted)

	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.Shutdown(ctx))
	_, err = svc.ExecuteTool(ctx, "flutter_settings-resolve", args, time.Second)
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestService_ToolError(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, sdk.MapEnvironment{})

	entry, err := svc.LookupTool("flutter_settings-resolve")
	require.NoError(t, err)
	request := &mcpschema.CallToolRequest{}
	request.Params.Name = "flutter_settings-resolve"
	request.Params.Arguments = mcpschema.CallToolRequestParamsArguments{"dir": t.TempDir()}

	res, rpcErr := entry.Handler(ctx, request)
	require.Nil(t, rpcErr)
	require.NotNil(t, res.IsError)
	assert.True(t, *res.IsError)
	assert.Contains(t, res.Content[0].Text, "Flutter SDK not found")
}
