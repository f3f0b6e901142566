package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐┌─┐┌┬┐
  ├─┘├─┤│   │
  ┴  ┴ ┴└─┘ ┴
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "pact",
		Short: "A minimal component runtime with hooks",
		Long: `pact renders components with state and effect hooks into a host
tree and patches it in place when state changes.

The CLI drives the bundled demo application:

  • demo      run a scripted session and print the tree
  • devtools  serve the live tree, pass stream and metrics
  • snapshot  record the markup of every pass to a store
  • init      write a default pact.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: pact.{json,yaml,toml} in the working directory)")

	rootCmd.AddCommand(
		demoCmd(&configPath),
		devtoolsCmd(&configPath),
		snapshotCmd(&configPath),
		initCmd(),
		versionCmd(),
	)

	return rootCmd
}

// printBanner prints the pact ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
