// Package sdk locates the Flutter SDK for an Android settings directory.
// The properties file next to the settings script is consulted first, the
// environment second; when neither yields a path resolution fails with
// ErrConfigurationMissing.
package sdk
