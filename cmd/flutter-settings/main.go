package main

import (
	"os"

	"github.com/viant/flutter-settings/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
