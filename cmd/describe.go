package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DescribeCmd prints the evaluated settings: SDK, included build,
// repositories, plugin pins and modules.
type DescribeCmd struct {
	Dir    string `short:"d" long:"dir" description:"Android settings directory" default:"."`
	JSON   bool   `long:"json" description:"print result as JSON instead of YAML"`
	Verify bool   `long:"verify" description:"fail when the included build is missing from the SDK"`

	out io.Writer
}

func (c *DescribeCmd) Execute(_ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	ctx := context.Background()
	project, err := svc.Evaluate(ctx, c.Dir)
	if err != nil {
		return err
	}
	if c.Verify {
		if err := svc.Verify(ctx, project); err != nil {
			return err
		}
	}

	out := writerOrStdout(c.out)
	if c.JSON {
		data, _ := json.MarshalIndent(project, "", "  ")
		fmt.Fprintln(out, string(data))
		return nil
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(project); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return enc.Close()
}
