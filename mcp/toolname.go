package mcp

import "strings"

// toolName derives the MCP tool name of a Fluxor service method, e.g.
// flutter/settings + resolve -> flutter_settings-resolve.
func toolName(service, method string) string {
	return strings.ReplaceAll(service, "/", "_") + "-" + method
}

// splitToolName reverses toolName. Names without a method separator are
// returned as a service with an empty method.
func splitToolName(name string) (service, method string) {
	idx := strings.LastIndex(name, "-")
	if idx == -1 {
		return name, ""
	}
	return strings.ReplaceAll(name[:idx], "_", "/"), name[idx+1:]
}

// matchTool reports whether a tool name satisfies pattern: "*" matches
// everything, anything else is a prefix of either the tool name or its
// service/method path.
func matchTool(pattern, name string) bool {
	switch pattern {
	case "*":
		return true
	case "":
		return false
	}
	if strings.HasPrefix(name, pattern) {
		return true
	}
	service, method := splitToolName(name)
	return strings.HasPrefix(service+"/"+method, pattern)
}
