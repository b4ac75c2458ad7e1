// Package action exposes settings evaluation as a Fluxor action service so
// that workflows and the MCP tool bridge can resolve the Flutter SDK and
// inspect the Android settings of a project.
package action
