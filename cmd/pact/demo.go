package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pact/internal/logging"
	"github.com/vango-dev/pact/pkg/middleware"
)

func demoCmd(configPath *string) *cobra.Command {
	var (
		sc      script
		patches bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demo application with a scripted session",
		Long: `Mount the demo application on an in-memory document, dispatch the
scripted events and print the tree after every pass.

Effect output is written to the log on stderr.

Examples:
  pact demo
  pact demo --inc 3 --dec 1
  pact demo --name Ada --patches`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			logger := logging.New(cfg)
			out := cmd.OutOrStdout()

			s, err := mountDemo(cfg, logger, middleware.Tracing())
			if err != nil {
				return err
			}
			defer s.root.Unmount()

			fmt.Fprintln(out, "mount:")
			s.writeTree(out)

			return s.run(sc, func(label string) {
				fmt.Fprintf(out, "%s:\n", label)
				if patches {
					for _, line := range s.lastPatches {
						fmt.Fprintf(out, "  %s\n", line)
					}
				}
				s.writeTree(out)
			})
		},
	}

	cmd.Flags().IntVar(&sc.increments, "inc", 1, "Number of +1 clicks")
	cmd.Flags().IntVar(&sc.decrements, "dec", 0, "Number of -1 clicks")
	cmd.Flags().StringVar(&sc.name, "name", "", "Name to type into the input")
	cmd.Flags().BoolVar(&patches, "patches", false, "Print the patches of every pass")

	return cmd
}
