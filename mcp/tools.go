package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync/atomic"
	"time"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/fluxor/runtime/execution"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

const toolTimeout = 2 * time.Minute

// buildToolRegistry converts every extension method into a tool entry once
// during bootstrap.
func (s *Service) buildToolRegistry() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	for _, svc := range s.Workflow.Extensions {
		for _, sig := range svc.Methods() {
			entry, err := s.newToolEntry(svc.Name(), sig)
			if err != nil {
				return err
			}
			if seen[entry.Metadata.Name] {
				continue
			}
			seen[entry.Metadata.Name] = true
			s.tools = append(s.tools, entry)
			s.logger.WithField("tool", entry.Metadata.Name).Debug("tool registered")
		}
	}
	sort.Slice(s.tools, func(i, j int) bool { return s.tools[i].Metadata.Name < s.tools[j].Metadata.Name })
	return nil
}

func (s *Service) newToolEntry(service string, sig types.Signature) (*serverproto.ToolEntry, error) {
	name := toolName(service, sig.Name)
	var inputSchema mcpschema.ToolInputSchema
	if sample := newValue(sig.Input); sample != nil {
		if err := inputSchema.Load(sample); err != nil {
			return nil, fmt.Errorf("input schema for %s: %w", name, err)
		}
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	description := sig.Description
	entry := &serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:        name,
			Description: &description,
			InputSchema: inputSchema,
		},
	}
	entry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		output, err := s.ExecuteTool(ctx, name, request.Params.Arguments, toolTimeout)
		res := &mcpschema.CallToolResult{}
		if err != nil {
			isError := true
			res.IsError = &isError
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: err.Error()})
			return res, nil
		}
		var data []byte
		switch actual := output.(type) {
		case string:
			data = []byte(actual)
		case []byte:
			data = actual
		default:
			data, _ = json.Marshal(output)
		}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: string(data)})
		return res, nil
	}
	return entry, nil
}

// Tools returns every registered tool ordered by name.
func (s *Service) Tools() serverproto.Tools {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(serverproto.Tools{}, s.tools...)
}

// LookupTool returns the tool with the given name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.tools {
		if entry.Metadata.Name == name {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("unknown tool: %v", name)
}

// MatchTools returns the tools whose name matches pattern (see matchTool).
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result serverproto.Tools
	for _, entry := range s.Tools() {
		if matchTool(pattern, entry.Metadata.Name) {
			result = append(result, entry)
		}
	}
	return result
}

// ErrNotStarted is returned when a tool is executed before Start or after
// Shutdown.
var ErrNotStarted = errors.New("tool service is not started")

// ExecuteTool schedules the action behind a tool as an ad-hoc execution on
// the Fluxor runtime and waits up to timeout for its output.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	if _, err := s.LookupTool(name); err != nil {
		return nil, err
	}
	if atomic.LoadInt32(&s.started) != 1 {
		return nil, ErrNotStarted
	}
	service, method := splitToolName(name)

	exec, err := execution.NewAtHocExecution(service, method, args)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("tool", name).Debug("scheduling tool execution")
	waitFn, err := s.Runtime.ScheduleExecution(ctx, exec)
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", name, err)
	}
	if timeout <= 0 {
		timeout = toolTimeout
	}
	anExec, err := waitFn(timeout)
	if err != nil {
		return nil, err
	}
	if anExec.Error != "" {
		return nil, errors.New(anExec.Error)
	}
	return anExec.Output, nil
}

// newValue allocates a pointer for a signature type.
func newValue(t reflect.Type) interface{} {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}
