package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ResolveCmd prints the Flutter SDK path for a settings directory.
type ResolveCmd struct {
	Dir  string `short:"d" long:"dir" description:"Android settings directory" default:"."`
	JSON bool   `long:"json" description:"print path and source as JSON"`

	out io.Writer
}

func (c *ResolveCmd) Execute(_ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	resolution, err := svc.Resolve(context.Background(), c.Dir)
	if err != nil {
		return err
	}
	out := writerOrStdout(c.out)
	if c.JSON {
		data, _ := json.MarshalIndent(resolution, "", "  ")
		fmt.Fprintln(out, string(data))
		return nil
	}
	fmt.Fprintln(out, resolution.Path)
	return nil
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
