package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/viant/mcp"
)

// ServeCmd launches an MCP server exposing the settings tools. Server options
// (port, transport, auth) come from the server section of the config file.
type ServeCmd struct{}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	defer svc.Shutdown(context.Background())

	mcpServer, err := mcp.NewServer(svc.NewHandler, svc.Config().Server)
	if err != nil {
		return err
	}

	httpSrv := mcpServer.HTTP(context.Background(), "")
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()
	log.WithField("addr", httpSrv.Addr).WithField("tools", len(svc.Tools())).Info("MCP server listening")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("shutting down")
	return httpSrv.Close()
}
