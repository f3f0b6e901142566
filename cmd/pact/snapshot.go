package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pact/internal/logging"
	"github.com/vango-dev/pact/pkg/snapshot"
)

func snapshotCmd(configPath *string) *cobra.Command {
	var (
		sc     script
		dir    string
		bucket string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record the markup of every pass of a scripted session",
		Long: `Run the scripted demo session and write the container markup after
every pass to the snapshot store, one object per pass.

The store comes from the snapshots section of the config. The --dir and
--bucket flags override it.

Examples:
  pact snapshot --dir ./passes
  pact snapshot --bucket my-bucket --inc 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Snapshots.Dir = dir
				cfg.Snapshots.Bucket = ""
			}
			if bucket != "" {
				cfg.Snapshots.Bucket = bucket
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := logging.New(cfg)

			store, err := snapshot.FromConfig(cfg.Snapshots)
			if err != nil {
				return err
			}
			if store == nil {
				return fmt.Errorf("no snapshot store configured; pass --dir or --bucket")
			}

			rec := snapshot.NewRecorder(store, snapshot.WithLogger(logger))
			s, err := mountDemo(cfg, logger, rec.Middleware())
			if err != nil {
				return err
			}
			defer s.root.Unmount()

			if err := s.run(sc, func(string) {}); err != nil {
				return err
			}

			passes := s.root.Passes()
			if rec.Failed() > 0 {
				warn("%d of %d snapshots failed", rec.Failed(), passes)
				return fmt.Errorf("snapshot writes failed")
			}
			success("Recorded %d passes (%s .. %s)", passes, snapshot.Key(0), snapshot.Key(passes-1))
			return nil
		},
	}

	cmd.Flags().IntVar(&sc.increments, "inc", 3, "Number of +1 clicks")
	cmd.Flags().IntVar(&sc.decrements, "dec", 0, "Number of -1 clicks")
	cmd.Flags().StringVar(&sc.name, "name", "", "Name to type into the input")
	cmd.Flags().StringVar(&dir, "dir", "", "Write snapshots to this directory")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Write snapshots to this S3 bucket")

	return cmd
}
