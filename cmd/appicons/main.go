package main

import (
	"fmt"
	"os"
	"runtime"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	configPath := ""

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			} else {
				fatal("--config requires a file path")
			}
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) == 0 {
		generateCmd(configPath)
		return
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "history":
		historyCmd(filtered[1:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", filtered[0])
		fmt.Fprintf(os.Stderr, "Run 'appicons help' for usage.\n")
		os.Exit(1)
	}
}

// fatal prints an error to stderr and exits with status 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("appicons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("appicons %s - Generate iOS and Android app icons from an SVG logo\n", version)
	fmt.Println(`
Usage:
  appicons [--config <path>]
  appicons history [N | clear]

Options:
  --config, -c <path>    Path to appicons.json

Commands:
  (none)                 Generate all icons and Contents.json
  history [N]            Show the last N recorded runs (default 10)
  history clear          Delete the run history
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>               (explicit)
  2. appicons.json in the working directory
  3. built-in defaults
  APPICONS_* environment variables override any of the above.

Outputs:
  ios/Runner/Assets.xcassets/AppIcon.appiconset/Icon-App-*.png + Contents.json
  android/app/src/main/res/mipmap-*/ic_launcher.png`)
}
