package cmd

import (
	"context"
	"sync"

	"github.com/viant/flutter-settings/mcp"
	"github.com/viant/flutter-settings/settings"
	"github.com/viant/flutter-settings/settings/config"
)

var (
	cfgPath string

	cfgOnce sync.Once
	cfgInst *config.Config
	cfgErr  error

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// configuration can be loaded lazily by whichever sub-command runs.
func setConfigPath(p string) { cfgPath = p }

func loadConfig() (*config.Config, error) {
	cfgOnce.Do(func() {
		if cfgPath == "" {
			cfgInst = config.Default()
			return
		}
		cfgInst, cfgErr = config.Load(context.Background(), cfgPath)
	})
	return cfgInst, cfgErr
}

// settingsService builds the settings evaluator used by the direct commands.
func settingsService() (*settings.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return settings.New(cfg)
}

// serviceSingleton initialises and starts the tool service only once per
// CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		var cfg *config.Config
		if cfg, svcErr = loadConfig(); svcErr != nil {
			return
		}
		svcInst, svcErr = mcp.New(context.Background(), mcp.WithConfig(cfg))
		if svcErr == nil {
			svcErr = svcInst.Start(context.Background())
		}
	})
	return svcInst, svcErr
}
