package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pact/internal/config"
)

func initCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default configuration file",
		Long: `Write a configuration file with every default filled in.

Examples:
  pact init
  pact init --format toml ./app`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			var name string
			switch format {
			case "yaml":
				name = "pact.yaml"
			case "json":
				name = "pact.json"
			case "toml":
				name = "pact.toml"
			default:
				return fmt.Errorf("unknown format %q (want yaml, json or toml)", format)
			}

			if config.Exists(dir) && !force {
				return fmt.Errorf("%s already has a pact config; use --force to overwrite", dir)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			path := filepath.Join(dir, name)
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "File format: yaml, json or toml")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")

	return cmd
}
