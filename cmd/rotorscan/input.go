package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/reentry/config"
	"github.com/katalvlaran/reentry/mesh"
	"github.com/katalvlaran/reentry/velocity"
)

// Input contains the flag values of every command.
type Input struct {
	configFile string
	envFile    string
	verbose    bool
	jsonLogger bool

	objPath     string
	samplesPath string
	speedsPath  string
	inPath      string
	outPath     string
	cachePath   string

	penalizer       float64
	minDist         float64
	maxDist         float64
	minTime         int
	maxTime         int
	workers         int
	openClosingTime bool
}

func (i *Input) addMeshFlags(fs *pflag.FlagSet) {
	fs.StringVar(&i.objPath, "obj", "", "path to the Wavefront OBJ mesh")
	fs.StringVarP(&i.outPath, "out", "o", "", "output CSV file (default stdout)")
}

func (i *Input) addFieldFlags(fs *pflag.FlagSet) {
	fs.StringVar(&i.samplesPath, "samples", "", "point export CSV with positions, tissue codes and fibres")
	fs.StringVar(&i.speedsPath, "speeds", "", "conduction table CSV (cm/s and anisotropy per tissue)")
	fs.Float64Var(&i.penalizer, "penalizer", 1, "speed multiplier, below 1 for slower tissue")
}

func (i *Input) addBoundsFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&i.minDist, "min-dist", 0, "minimum rotor length in mm")
	fs.Float64Var(&i.maxDist, "max-dist", 0, "maximum rotor length in mm")
	fs.IntVar(&i.minTime, "min-time", 0, "minimum rotor time in ms")
	fs.IntVar(&i.maxTime, "max-time", 0, "maximum rotor time in ms")
}

// loadConfig builds the effective configuration: defaults, the YAML file,
// the env file, then the flags that were set explicitly.
func (i *Input) loadConfig(fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if i.configFile != "" {
		var err error
		if cfg, err = config.Load(i.configFile); err != nil {
			return cfg, errors.Wrapf(err, "loading %s", i.configFile)
		}
	}
	if i.envFile != "" {
		if err := cfg.ApplyEnvFile(i.envFile); err != nil {
			return cfg, errors.Wrapf(err, "loading %s", i.envFile)
		}
	}

	if fs.Changed("min-dist") {
		cfg.Bounds.MinDist = i.minDist
	}
	if fs.Changed("max-dist") {
		cfg.Bounds.MaxDist = i.maxDist
	}
	if fs.Changed("min-time") {
		cfg.Bounds.MinTime = i.minTime
	}
	if fs.Changed("max-time") {
		cfg.Bounds.MaxTime = i.maxTime
	}
	if fs.Changed("penalizer") {
		cfg.Penalizer = i.penalizer
	}
	if fs.Changed("workers") {
		cfg.Workers = i.workers
	}
	if fs.Changed("open-closing-time") {
		cfg.OpenClosingTime = i.openClosingTime
	}
	if fs.Changed("cache") {
		cfg.CachePath = i.cachePath
	}

	return cfg, errors.Wrap(cfg.Validate(), "invalid configuration")
}

func (i *Input) loadMesh() (*mesh.Mesh, error) {
	if i.objPath == "" {
		return nil, errors.New("--obj is required")
	}
	obj, err := mesh.ReadOBJFile(i.objPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading mesh")
	}

	return obj.Mesh, nil
}

// loadField returns the velocity field of m, or an empty field when neither
// --samples nor --speeds is given.
func (i *Input) loadField(m *mesh.Mesh, penalizer float64) (velocity.Field, error) {
	switch {
	case i.samplesPath == "" && i.speedsPath == "":
		return nil, nil
	case i.samplesPath == "" || i.speedsPath == "":
		return nil, errors.New("--samples and --speeds must be given together")
	}

	samples, err := velocity.ReadSamplesFile(i.samplesPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", i.samplesPath)
	}
	table, err := velocity.ReadConductionFile(i.speedsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", i.speedsPath)
	}
	assigned, err := velocity.AssignNearest(m.Points, samples)
	if err != nil {
		return nil, errors.Wrap(err, "assigning samples")
	}
	field, err := velocity.BuildField(assigned, table, penalizer)

	return field, errors.Wrap(err, "building velocity field")
}
