package cmd

import (
	"bytes"
	"context"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/flutter-settings/settings"
)

// RenderCmd writes settings.gradle.kts with the resolved SDK path inlined.
// The destination may be any afs URL; stdout is used when it is empty.
type RenderCmd struct {
	Dir    string `short:"d" long:"dir" description:"Android settings directory" default:"."`
	Output string `short:"o" long:"output" description:"destination path or URL (stdout if empty)"`

	out io.Writer
}

func (c *RenderCmd) Execute(_ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	ctx := context.Background()
	project, err := svc.Evaluate(ctx, c.Dir)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := settings.Render(&buf, project); err != nil {
		return err
	}
	if c.Output == "" {
		_, err = writerOrStdout(c.out).Write(buf.Bytes())
		return err
	}
	if err := afs.New().Upload(ctx, c.Output, 0o644, &buf); err != nil {
		return err
	}
	log.WithField("output", c.Output).Info("settings script written")
	return nil
}
