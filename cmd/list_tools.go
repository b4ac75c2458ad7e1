package cmd

import (
	"fmt"
	"io"
)

// ListToolsCmd prints every registered tool with its description.
type ListToolsCmd struct {
	out io.Writer
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	w := writerOrStdout(c.out)
	// Tools are already sorted by name.
	for _, t := range svc.Tools() {
		desc := ""
		if t.Metadata.Description != nil {
			desc = *t.Metadata.Description
		}
		fmt.Fprintf(w, "%s\t%s\n", t.Metadata.Name, desc)
	}
	return nil
}
