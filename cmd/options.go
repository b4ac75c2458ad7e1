package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config  string `short:"f" long:"config" description:"settings declarations YAML path or URL"`
	Verbose bool   `short:"v" long:"verbose" description:"enable debug logging"`

	Resolve   *ResolveCmd   `command:"resolve"    description:"Print the Flutter SDK path"`
	Describe  *DescribeCmd  `command:"describe"   description:"Print the evaluated Android settings"`
	Render    *RenderCmd    `command:"render"     description:"Write settings.gradle.kts with the resolved SDK"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List all MCP tools"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one MCP tool"`
	Exec      *ExecCmd      `command:"exec"       description:"Execute an MCP tool locally"`
	Serve     *ServeCmd     `command:"serve"      description:"Start MCP server exposing the settings tools"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "resolve":
		o.Resolve = &ResolveCmd{}
	case "describe":
		o.Describe = &DescribeCmd{}
	case "render":
		o.Render = &RenderCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
