package main

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/reentry/config"
	"github.com/katalvlaran/reentry/functional"
	"github.com/katalvlaran/reentry/mesh"
	"github.com/katalvlaran/reentry/pathstore"
	"github.com/katalvlaran/reentry/velocity"
)

func newFunctionalCommand(ctx context.Context, input *Input, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functional",
		Short: "Search the mesh for closed conduction circuits inside the length and time window.",
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

			rotors, err := searchCached(ctx, m, field, cfg, logger)
			if err != nil {
				return err
			}
			logger.WithFields(log.Fields{"points": m.Len(), "found": len(rotors)}).Info("functional reentries")

			return writePaths(cmd, input, rotors)
		},
	}
	fs := cmd.Flags()
	input.addMeshFlags(fs)
	input.addFieldFlags(fs)
	input.addBoundsFlags(fs)
	fs.IntVarP(&input.workers, "workers", "w", 1, "parallel search workers, below 1 for one per CPU")
	fs.BoolVar(&input.openClosingTime, "open-closing-time", false, "leave the closing segment out of the time check")
	fs.StringVar(&input.cachePath, "cache", "", "bbolt file caching search results")

	return cmd
}

// searchCached runs the functional search, consulting the cache first when
// one is configured.
func searchCached(ctx context.Context, m *mesh.Mesh, field velocity.Field, cfg config.Config, logger log.FieldLogger) ([][]int, error) {
	opts := []functional.Option{
		functional.WithBounds(cfg.Bounds),
		functional.WithWorkers(cfg.Workers),
		functional.WithLogger(logger),
	}
	if cfg.OpenClosingTime {
		opts = append(opts, functional.WithOpenClosingTime())
	}

	if cfg.CachePath == "" {
		rotors, err := functional.SearchMesh(ctx, m, field, opts...)
		return rotors, errors.Wrap(err, "functional search")
	}

	fp, err := pathstore.Fingerprint(m, field, cfg.Bounds, "open-closing-time="+strconv.FormatBool(cfg.OpenClosingTime))
	if err != nil {
		return nil, err
	}
	cache, err := pathstore.Open(cfg.CachePath)
	if err != nil {
		return nil, err
	}
	defer cache.Close()

	if rotors, ok, err := cache.Get(fp); err != nil {
		return nil, err
	} else if ok {
		logger.WithField("fingerprint", fp).Info("using cached result")
		return rotors, nil
	}

	rotors, err := functional.SearchMesh(ctx, m, field, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "functional search")
	}

	return rotors, cache.Put(fp, rotors)
}
