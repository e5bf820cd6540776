package main

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/reentry/anatomical"
)

func newAnatomicalCommand(ctx context.Context, input *Input, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anatomical",
		Short: "List the boundary cycles of a mesh (holes such as valves and veins).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := input.loadMesh()
			if err != nil {
				return err
			}

			rings, err := anatomical.Detect(ctx, m, anatomical.WithLogger(logger))
			if err != nil {
				return errors.Wrap(err, "anatomical search")
			}
			logger.WithFields(log.Fields{"points": m.Len(), "found": len(rings)}).Info("anatomical reentries")

			return writePaths(cmd, input, rings)
		},
	}
	input.addMeshFlags(cmd.Flags())

	return cmd
}
