// Package properties reads line-oriented key/value files such as Gradle's
// local.properties. Parsing follows java.util.Properties rules (escapes,
// continuation lines, comments) and never expands ${...} references.
package properties
