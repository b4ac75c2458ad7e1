package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

// Run is the entry point for the CLI. It is kept outside the main package so
// that tests can drive it.
func Run(args []string) {
	if err := run(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return
		}
		log.Fatal(err)
	}
}

func run(args []string) error {
	setConfigPath(extractConfigPath(args))

	opts := &Options{}
	opts.Init(firstCommand(args))

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(command flags.Commander, rest []string) error {
		configureLogging(opts.Verbose)
		if command == nil {
			return nil
		}
		return command.Execute(rest)
	}
	_, err := parser.ParseArgs(args)
	return err
}

func configureLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetLevel(log.InfoLevel)
}

// extractConfigPath searches the raw argument list for the -f/--config option
// before the full flags parsing so that sub-commands can load the config
// early from a deterministic location.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--config=") {
				return strings.TrimPrefix(a, "--config=")
			}
		}
	}
	return ""
}

// firstCommand returns the first argument that is neither a global flag nor
// a global flag value.
func firstCommand(args []string) string {
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "-f" || a == "--config":
			i++
		case strings.HasPrefix(a, "-"):
		default:
			return a
		}
	}
	return ""
}
