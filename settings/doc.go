// Package settings evaluates the Android settings declarations of a Flutter
// project: it resolves the SDK, derives the included build and emits the
// repository, plugin and module declarations, optionally rendered back as a
// settings.gradle.kts script.
package settings
