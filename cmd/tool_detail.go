package cmd

import (
	"encoding/json"
	"fmt"
	"io"
)

// ToolCmd prints metadata and input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (e.g. flutter_settings-resolve)" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`

	out io.Writer
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	entry, err := svc.LookupTool(c.Name)
	if err != nil {
		return err
	}
	info := struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		InputSchema interface{} `json:"inputSchema"`
	}{Name: entry.Metadata.Name, InputSchema: entry.Metadata.InputSchema}
	if entry.Metadata.Description != nil {
		info.Description = *entry.Metadata.Description
	}

	w := writerOrStdout(c.out)
	if c.JSON {
		data, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(w, string(data))
		return nil
	}
	fmt.Fprintf(w, "Name : %s\n", info.Name)
	fmt.Fprintf(w, "Desc : %s\n", info.Description)
	js, _ := json.MarshalIndent(info.InputSchema, "", "  ")
	fmt.Fprintf(w, "InputSchema:\n%s\n", string(js))
	return nil
}
