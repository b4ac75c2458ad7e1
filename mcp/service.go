package mcp

import (
	"context"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"github.com/viant/flutter-settings/sdk"
	"github.com/viant/flutter-settings/settings"
	"github.com/viant/flutter-settings/settings/config"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Service bundles configuration, the settings evaluator, a Fluxor workflow
// engine and the MCP tools derived from its actions. Bootstrap lives in
// bootstrap.go.
type Service struct {
	Workflow
	started  int32
	config   *config.Config
	env      sdk.Environment
	logger   log.FieldLogger
	settings *settings.Service

	mu    sync.RWMutex
	tools serverproto.Tools
}

type Workflow struct {
	Options    []fluxor.Option
	Runtime    *fluxor.Runtime
	Service    *fluxor.Service
	Extensions []types.Service
}

// WorkflowRuntime returns the underlying Fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the Fluxor service exposing all actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration. Callers must treat it as
// read-only.
func (s *Service) Config() *config.Config { return s.config }

// Settings returns the settings evaluator shared by all actions.
func (s *Service) Settings() *settings.Service { return s.settings }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets the settings configuration; config.Default() is used
// otherwise.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithEnvironment replaces the process environment consulted for the SDK
// fallback.
func WithEnvironment(env sdk.Environment) Option {
	return func(s *Service) {
		s.env = env
	}
}

func WithLogger(logger log.FieldLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithWorkflowOptions appends Fluxor options used when the engine gets
// instantiated.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithExtensions registers additional Fluxor services; their methods become
// tools as well.
func WithExtensions(ext ...types.Service) Option {
	return func(s *Service) {
		s.Workflow.Extensions = append(s.Workflow.Extensions, ext...)
	}
}

// New constructs a service. Call Start before executing tools.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Start launches the Fluxor runtime. Subsequent calls are ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown terminates the Fluxor runtime. Only the first call after Start
// has an effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
