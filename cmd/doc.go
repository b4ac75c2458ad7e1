// Package cmd implements the sub-commands of the flutter-settings command
// line interface (resolve, describe, render, list-tools, tool, exec, serve).
// Configuration loading and service initialisation shared between commands
// live in shared.go.
package cmd
