package mcp

import "testing"

func TestToolName(t *testing.T) {
	var testCases = []struct {
		service string
		method  string
		name    string
	}{
		{"flutter/settings", "resolve", "flutter_settings-resolve"},
		{"printer", "print", "printer-print"},
		{"system/exec", "execute", "system_exec-execute"},
	}
	for i, tc := range testCases {
		if got := toolName(tc.service, tc.method); got != tc.name {
			t.Fatalf("[%d] toolName(%q, %q) = %q; expected %q", i, tc.service, tc.method, got, tc.name)
		}
		service, method := splitToolName(tc.name)
		if service != tc.service || method != tc.method {
			t.Fatalf("[%d] splitToolName(%q) = %q, %q", i, tc.name, service, method)
		}
	}
}

func TestMatchTool(t *testing.T) {
	var testCases = []struct {
		pattern   string
		candidate string
		matched   bool
	}{
		{"*", "flutter_settings-resolve", true},
		{"", "flutter_settings-resolve", false},
		{"flutter_settings-resolve", "flutter_settings-resolve", true},
		{"flutter_settings-", "flutter_settings-render", true},
		{"flutter/settings/", "flutter_settings-render", true},
		{"flutter/settings/render", "flutter_settings-render", true},
		{"flutter/settings/render", "flutter_settings-resolve", false},
		{"dart/", "flutter_settings-resolve", false},
	}
	for i, tc := range testCases {
		if got := matchTool(tc.pattern, tc.candidate); got != tc.matched {
			t.Fatalf("[%d] matchTool(%q, %q) = %v; expected %v", i, tc.pattern, tc.candidate, got, tc.matched)
		}
	}
}
