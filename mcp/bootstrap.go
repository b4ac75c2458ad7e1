package mcp

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/viant/flutter-settings/action"
	"github.com/viant/flutter-settings/settings"
	"github.com/viant/flutter-settings/settings/config"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
)

// init orchestrates the preparation steps invoked by New.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	settingsOpts := []settings.Option{settings.WithLogger(s.logger)}
	if s.env != nil {
		settingsOpts = append(settingsOpts, settings.WithEnvironment(s.env))
	}
	var err error
	if s.settings, err = settings.New(s.config, settingsOpts...); err != nil {
		return err
	}

	s.initWorkflowService()
	if err := s.buildToolRegistry(); err != nil {
		return fmt.Errorf("build tool registry: %w", err)
	}
	return nil
}

func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = config.Default()
	}
	if s.logger == nil {
		s.logger = log.StandardLogger()
	}
}

// initWorkflowService registers the settings actions ahead of caller
// supplied extensions and instantiates the engine.
func (s *Service) initWorkflowService() {
	s.Workflow.Extensions = append([]types.Service{action.New(s.settings)}, s.Workflow.Extensions...)

	opts := []fluxor.Option{fluxor.WithExtensionServices(s.Workflow.Extensions...)}
	opts = append(opts, s.Workflow.Options...)

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
