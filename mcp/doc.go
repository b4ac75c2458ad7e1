// Package mcp wires the Flutter settings actions into a Fluxor workflow
// engine and exposes every action method as an MCP tool. Its central Service
// type loads configuration, builds the workflow runtime, derives the tool
// registry and can serve it over an MCP server.
package mcp
