package settings

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/flutter-settings/sdk"
	"github.com/viant/flutter-settings/settings/config"
)

// Service evaluates settings declarations against a settings directory.
type Service struct {
	config   *config.Config
	fs       afs.Service
	env      sdk.Environment
	logger   log.FieldLogger
	resolver *sdk.Resolver
}

// Option modifies a service before the resolver gets built.
type Option func(*Service)

// WithEnvironment replaces the process environment used for the fallback.
func WithEnvironment(env sdk.Environment) Option {
	return func(s *Service) { s.env = env }
}

// WithFS sets the storage service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

func WithLogger(logger log.FieldLogger) Option {
	return func(s *Service) { s.logger = logger }
}

// New validates cfg and builds a service. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings config: %w", err)
	}
	s := &Service{config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = log.StandardLogger()
	}
	resolverOpts, err := cfg.ResolverOptions()
	if err != nil {
		return nil, err
	}
	resolverOpts = append(resolverOpts, sdk.WithFS(s.fs), sdk.WithLogger(s.logger))
	if s.env != nil {
		resolverOpts = append(resolverOpts, sdk.WithEnvironment(s.env))
	}
	s.resolver = sdk.NewResolver(resolverOpts...)
	return s, nil
}

// Config returns the effective configuration. Callers must treat it as
// read-only.
func (s *Service) Config() *config.Config { return s.config }

// Resolve returns the SDK path for dir.
func (s *Service) Resolve(ctx context.Context, dir string) (*sdk.Resolution, error) {
	return s.resolver.Resolve(ctx, dir)
}

// Evaluate resolves the SDK for dir and expands the declarations around it.
func (s *Service) Evaluate(ctx context.Context, dir string) (*Project, error) {
	resolution, err := s.Resolve(ctx, dir)
	if err != nil {
		return nil, err
	}
	cfg := s.config
	project := &Project{
		SdkPath:                resolution.Path,
		Source:                 resolution.Source,
		PropertiesFile:         resolution.PropertiesFile,
		IncludedBuild:          joinSdk(resolution.Path, cfg.IncludeBuild),
		PluginRepositories:     repositories(cfg.PluginManagement.Repositories),
		RepositoriesMode:       cfg.DependencyResolution.Mode,
		DependencyRepositories: repositories(cfg.DependencyResolution.Repositories),
		Modules:                append([]string{}, cfg.Include...),
		Plugins:                make([]Plugin, 0, len(cfg.PluginManagement.Plugins)),
	}
	for _, plugin := range cfg.PluginManagement.Plugins {
		project.Plugins = append(project.Plugins, Plugin{ID: plugin.ID, Version: plugin.Version, Apply: plugin.Apply})
	}
	s.logger.WithFields(log.Fields{
		"sdk":     project.SdkPath,
		"source":  project.Source,
		"modules": len(project.Modules),
	}).Debug("settings evaluated")
	return project, nil
}

// Verify checks that the included build exists under the SDK.
func (s *Service) Verify(ctx context.Context, project *Project) error {
	if project.IncludedBuild == "" {
		return nil
	}
	ok, err := s.fs.Exists(ctx, project.IncludedBuild)
	if err != nil {
		return fmt.Errorf("check included build %q: %w", project.IncludedBuild, err)
	}
	if !ok {
		return fmt.Errorf("included build %q does not exist; is %s a Flutter SDK?", project.IncludedBuild, project.SdkPath)
	}
	return nil
}

func joinSdk(sdkPath, rel string) string {
	if rel == "" {
		return ""
	}
	if strings.Contains(sdkPath, "://") {
		return strings.TrimRight(sdkPath, "/") + "/" + strings.TrimLeft(rel, "/")
	}
	return filepath.Join(sdkPath, filepath.FromSlash(rel))
}

func repositories(names []string) []Repository {
	out := make([]Repository, 0, len(names))
	for _, name := range names {
		out = append(out, Repository{Name: name, URL: config.RepositoryHosts[name]})
	}
	return out
}
