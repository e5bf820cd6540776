package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/reentry/cycle"
	"github.com/katalvlaran/reentry/pathstore"
)

func newFilterCommand(input *Input, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Keep the stored paths whose length and time fall inside the window.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := input.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			m, err := input.loadMesh()
			if err != nil {
				return err
			}
			field, err := input.loadField(m, cfg.Penalizer)
			if err != nil {
				return err
			}
			paths, err := loadPaths(input)
			if err != nil {
				return err
			}

			kept, err := cycle.Filter(paths, m.Points, field, cfg.Bounds)
			if err != nil {
				return errors.Wrap(err, "filtering")
			}
			logger.WithFields(log.Fields{"in": len(paths), "kept": len(kept)}).Info("filtered paths")

			return writePaths(cmd, input, kept)
		},
	}
	fs := cmd.Flags()
	input.addMeshFlags(fs)
	input.addFieldFlags(fs)
	input.addBoundsFlags(fs)
	fs.StringVarP(&input.inPath, "in", "i", "", "CSV of paths to read")

	return cmd
}

func loadPaths(input *Input) ([][]int, error) {
	if input.inPath == "" {
		return nil, errors.New("--in is required")
	}

	return pathstore.Load(input.inPath)
}
