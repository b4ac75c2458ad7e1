package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ExecCmd executes a registered tool from the CLI. Arguments are supplied
// inline via -i/--input or loaded from a JSON file via -a/--args-file.
type ExecCmd struct {
	Name       string `short:"n" long:"name" positional-arg-name:"tool" description:"Tool name (service_method)" required:"yes"`
	Inline     string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File       string `short:"a" long:"args-file" description:"Path to JSON file with arguments (use - for stdin)"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"60"`

	in  io.Reader
	out io.Writer
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and -a/--args-file are mutually exclusive")
	}

	var args map[string]interface{}
	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = c.in
			if rdr == nil {
				rdr = os.Stdin
			}
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = time.Minute
	}
	out, err := svc.ExecuteTool(context.Background(), c.Name, args, timeout)
	if err != nil {
		return err
	}
	w := writerOrStdout(c.out)
	switch v := out.(type) {
	case string:
		fmt.Fprintln(w, v)
	case []byte:
		fmt.Fprintln(w, string(v))
	default:
		data, _ := json.MarshalIndent(v, "", "  ")
		fmt.Fprintln(w, string(data))
	}
	return nil
}
