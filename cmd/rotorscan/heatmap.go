package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/reentry/aggregate"
)

func newHeatmapCommand(input *Input, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Colour every vertex by the slowest rotor passing through it.",
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
			rotors, err := loadPaths(input)
			if err != nil {
				return err
			}

			times, err := aggregate.Times(rotors, m.Points, field)
			if err != nil {
				return errors.Wrap(err, "rotor times")
			}
			rows, err := aggregate.Heatmap(m.Len(), rotors, times, cfg.Heatmap.MaxMillis, cfg.Heatmap.MidMillis)
			if err != nil {
				return errors.Wrap(err, "heatmap")
			}

			s := aggregate.Summarize(times)
			logger.WithFields(log.Fields{
				"rotors": s.Count,
				"mean":   s.Mean,
				"stddev": s.StdDev,
				"min":    s.Min,
				"max":    s.Max,
			}).Info("rotor times (ms)")

			if input.outPath == "" {
				return writeHeatmap(cmd.OutOrStdout(), rows)
			}
			f, err := os.Create(input.outPath)
			if err != nil {
				return errors.Wrap(err, "creating heatmap file")
			}
			if err := writeHeatmap(f, rows); err != nil {
				f.Close()
				return err
			}

			return f.Close()
		},
	}
	fs := cmd.Flags()
	input.addMeshFlags(fs)
	input.addFieldFlags(fs)
	fs.StringVarP(&input.inPath, "in", "i", "", "CSV of rotors to read")

	return cmd
}

func writeHeatmap(w io.Writer, rows []aggregate.VertexHeat) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"vertex", "max_ms", "intensity", "color", "in_rotor"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Vertex),
			strconv.FormatFloat(r.MaxMillis, 'g', -1, 64),
			strconv.FormatFloat(r.Intensity, 'g', -1, 64),
			r.Color,
			strconv.FormatBool(r.InRotor),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "writing heatmap")
}
