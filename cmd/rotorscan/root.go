package main

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/reentry/pathstore"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) error {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)

	return rootCmd.Execute()
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	logger := log.New()

	rootCmd := &cobra.Command{
		Use:          "rotorscan",
		Short:        "Find reentry circuits (rotors) on atrial surface meshes.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogger(logger, cmd.ErrOrStderr(), input)
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&input.configFile, "config", "c", "", "YAML configuration file")
	pf.StringVar(&input.envFile, "env-file", "", "dotenv file with ROTORSCAN_* overrides")
	pf.BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&input.jsonLogger, "log-json", false, "output logs in json format")

	rootCmd.AddCommand(
		newAnatomicalCommand(ctx, input, logger),
		newFunctionalCommand(ctx, input, logger),
		newFilterCommand(input, logger),
		newHeatmapCommand(input, logger),
	)

	return rootCmd
}

func setupLogger(logger *log.Logger, out io.Writer, input *Input) {
	logger.SetOutput(out)
	logger.SetLevel(log.InfoLevel)
	if input.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if input.jsonLogger {
		logger.SetFormatter(&log.JSONFormatter{})
		return
	}
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:    !isTerminal(out),
		DisableTimestamp: true,
		PadLevelText:     true,
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// writePaths saves paths to --out, or prints them to the command output.
func writePaths(cmd *cobra.Command, input *Input, paths [][]int) error {
	if input.outPath == "" {
		return errors.Wrap(pathstore.Write(cmd.OutOrStdout(), paths), "writing paths")
	}

	return pathstore.Save(input.outPath, paths)
}
