package sdk

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/flutter-settings/sdk/properties"
)

const (
	DefaultPropertiesFile = "local.properties"
	DefaultKey            = "flutter.sdk"
	DefaultVariable       = "FLUTTER_HOME"
)

// Source identifies where a resolved path came from.
type Source string

const (
	SourceProperties  Source = "properties"
	SourceEnvironment Source = "environment"
)

// Resolution is a successfully resolved SDK path.
type Resolution struct {
	Path           string `json:"path" yaml:"path"`
	Source         Source `json:"source" yaml:"source"`
	PropertiesFile string `json:"propertiesFile" yaml:"propertiesFile"`
}

// Resolver determines the SDK path for a settings directory.
type Resolver struct {
	fs             afs.Service
	env            Environment
	logger         log.FieldLogger
	propertiesFile string
	key            string
	variable       string
	encoding       properties.Encoding
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithFS sets the storage service used to read the properties file.
func WithFS(fs afs.Service) Option { return func(r *Resolver) { r.fs = fs } }

// WithEnvironment replaces the process environment.
func WithEnvironment(env Environment) Option { return func(r *Resolver) { r.env = env } }

// WithLogger sets the logger used for debug traces.
func WithLogger(logger log.FieldLogger) Option { return func(r *Resolver) { r.logger = logger } }

// WithPropertiesFile changes the properties file name looked up in the
// settings directory.
func WithPropertiesFile(name string) Option {
	return func(r *Resolver) { r.propertiesFile = name }
}

// WithKey changes the property holding the SDK path.
func WithKey(key string) Option { return func(r *Resolver) { r.key = key } }

// WithVariable changes the environment variable consulted as fallback.
func WithVariable(name string) Option { return func(r *Resolver) { r.variable = name } }

// WithEncoding sets the properties file encoding.
func WithEncoding(enc properties.Encoding) Option { return func(r *Resolver) { r.encoding = enc } }

// NewResolver creates a resolver with the conventional Flutter names.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		propertiesFile: DefaultPropertiesFile,
		key:            DefaultKey,
		variable:       DefaultVariable,
		encoding:       properties.ISO88591,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fs == nil {
		r.fs = afs.New()
	}
	if r.env == nil {
		r.env = OSEnvironment()
	}
	if r.logger == nil {
		r.logger = log.StandardLogger()
	}
	return r
}

// PropertiesURL returns the properties file location for settingsDir.
func (r *Resolver) PropertiesURL(settingsDir string) string {
	if strings.Contains(settingsDir, "://") {
		return strings.TrimRight(settingsDir, "/") + "/" + r.propertiesFile
	}
	return filepath.Join(settingsDir, r.propertiesFile)
}

// Resolve returns the SDK path for settingsDir. The properties file wins
// over the environment; blank values count as absent.
func (r *Resolver) Resolve(ctx context.Context, settingsDir string) (*Resolution, error) {
	location := r.PropertiesURL(settingsDir)
	logger := r.logger.WithField("properties", location)

	file, err := properties.Load(ctx, r.fs, location, r.encoding)
	switch {
	case err == nil:
		if entry, ok := file.Get(r.key); ok && !isBlank(entry.Value) {
			logger.WithField("path", entry.Value).Debugf("sdk path taken from %s", r.key)
			return &Resolution{Path: entry.Value, Source: SourceProperties, PropertiesFile: location}, nil
		}
		logger.Debugf("%s not defined", r.key)
	case errors.Is(err, properties.ErrNotFound):
		logger.Debug("properties file absent")
	default:
		return nil, err
	}

	if value, ok := r.env.Lookup(r.variable); ok && !isBlank(value) {
		logger.WithField("path", value).Debugf("sdk path taken from $%s", r.variable)
		return &Resolution{Path: value, Source: SourceEnvironment, PropertiesFile: location}, nil
	}
	return nil, &MissingError{PropertiesFile: r.propertiesFile, Key: r.key, Variable: r.variable}
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
