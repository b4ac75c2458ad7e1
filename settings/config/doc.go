// Package config defines the YAML model of the Android settings
// declarations (properties lookup, repositories, plugin pins and included
// modules) together with helpers to load and validate it.
package config
