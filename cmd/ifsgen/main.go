// Command ifsgen prints the points of an IFS attractor as CSV.
//
//	ifsgen -ifs fern -mode random -numpoints 50000 -seed 7 > fern.csv
//	ifsgen -ifs dragon -mode deterministic -numiter 12
//	ifsgen -defs mine.yaml -list
//	ifsgen -ifs sierp -refine 2 -dump > sierp9.yaml
//
// Flags override values read from -config.
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/fractal/catalog"
	"github.com/katalvlaran/fractal/ifs"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

func main() {
	cfg := defaultConfig()

	configPath := flag.String("config", "", "YAML file with default settings")
	flag.StringVar(&cfg.IFS, "ifs", cfg.IFS, "catalog name or alias of the system")
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "random (chaos game) or deterministic (subdivision)")
	flag.IntVar(&cfg.NumPoints, "numpoints", cfg.NumPoints, "points produced in random mode")
	flag.IntVar(&cfg.NumIter, "numiter", cfg.NumIter, "rounds in deterministic mode")
	flag.IntVar(&cfg.Refine, "refine", cfg.Refine, "replace the system by its depth-k composed maps")
	z0 := flag.Float64("z0", 0, "ordinate of the seed point (0, z0); mode default when unset")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 selects the fixed default")
	flag.StringVar(&cfg.Defs, "defs", cfg.Defs, "YAML file with extra definitions")
	flag.BoolVar(&cfg.List, "list", cfg.List, "list known systems and exit")
	flag.BoolVar(&cfg.Dump, "dump", cfg.Dump, "print the selected system as a YAML definitions document and exit")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log progress to stderr")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	if *configPath != "" {
		fileCfg, err := loadConfigFile(*configPath)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("path", *configPath)).Fatal("load config failed")
		}
		// Flags given on the command line win over the file.
		flag.Visit(func(f *flag.Flag) {
			overrideFromFlag(&fileCfg, f)
		})
		cfg = fileCfg
	} else if isFlagSet("z0") {
		cfg.Z0, cfg.Z0Set = *z0, true
	}

	if !cfg.Verbose {
		logger = l.NewNopLoggerWrapper()
	}

	out := bufio.NewWriter(os.Stdout)
	if err := run(cfg, out, logger); err != nil {
		_ = out.Flush()
		fmt.Fprintln(os.Stderr, "ifsgen:", err)
		os.Exit(1)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "ifsgen:", err)
		os.Exit(1)
	}
}

func loadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return decodeConfig(f, defaultConfig())
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}

// overrideFromFlag copies one explicitly set flag into cfg.
func overrideFromFlag(cfg *Config, f *flag.Flag) {
	v := f.Value.String()
	switch f.Name {
	case "ifs":
		cfg.IFS = v
	case "mode":
		cfg.Mode = v
	case "numpoints":
		cfg.NumPoints = cast.ToInt(v)
	case "numiter":
		cfg.NumIter = cast.ToInt(v)
	case "refine":
		cfg.Refine = cast.ToInt(v)
	case "z0":
		cfg.Z0, cfg.Z0Set = cast.ToFloat64(v), true
	case "seed":
		cfg.Seed = cast.ToInt64(v)
	case "defs":
		cfg.Defs = v
	case "list":
		cfg.List = cast.ToBool(v)
	case "dump":
		cfg.Dump = cast.ToBool(v)
	case "v":
		cfg.Verbose = cast.ToBool(v)
	}
}

func run(cfg Config, w io.Writer, logger l.Wrapper) error {
	logger = logger.WithFields(l.StringField(l.ClsKey, "ifsgen"))

	reg := catalog.Builtin()
	if cfg.Defs != "" {
		n, err := loadDefs(reg, cfg.Defs)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("path", cfg.Defs)).Error("load definitions failed")

			return err
		}
		logger.WithFields(l.StringField("path", cfg.Defs), l.IntField("count", n)).Info("definitions loaded")
	}

	if cfg.List {
		return writeEntries(w, reg.Entries())
	}

	if err := cfg.validate(); err != nil {
		return err
	}
	def, err := reg.Lookup(cfg.IFS)
	if err != nil {
		return err
	}
	name := catalog.Normalize(cfg.IFS)
	if cfg.Refine > 1 {
		if def, err = ifs.Refine(def, cfg.Refine); err != nil {
			return err
		}
		name += "-depth" + strconv.Itoa(cfg.Refine)
		logger.WithFields(l.StringField("ifs", name), l.IntField("maps", def.Len())).Debug("refined")
	}

	if cfg.Dump {
		raw, err := catalog.MarshalDefinition(name, def)
		if err != nil {
			return err
		}
		_, err = w.Write(raw)

		return err
	}

	opts := []ifs.Option{ifs.WithSeed(cfg.Seed)}
	if cfg.Z0Set {
		opts = append(opts, ifs.WithZ0(cfg.Z0))
	}

	var pts []ifs.Point
	switch cfg.Mode {
	case modeRandom:
		pts, err = ifs.Random(def, append(opts, ifs.WithNumPoints(cfg.NumPoints))...)
	case modeDeterministic:
		var want int
		if want, err = ifs.DeterministicLen(def.Len(), cfg.NumIter); err == nil {
			logger.WithFields(l.StringField("ifs", cfg.IFS), l.IntField("points", want)).Debug("subdividing")
			pts, err = ifs.Deterministic(def, append(opts, ifs.WithNumIter(cfg.NumIter))...)
		}
	}
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("ifs", cfg.IFS)).Error("generate failed")

		return err
	}

	box, err := ifs.Bounds(pts)
	if err != nil {
		return err
	}
	logger.WithFields(
		l.StringField("ifs", cfg.IFS),
		l.StringField("mode", cfg.Mode),
		l.IntField("points", len(pts)),
		l.StringField("x", cast.ToString(box.MinX)+".."+cast.ToString(box.MaxX)),
		l.StringField("y", cast.ToString(box.MinY)+".."+cast.ToString(box.MaxY)),
	).Info("generated")

	return writePoints(w, pts)
}

func loadDefs(reg *catalog.Registry, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return reg.LoadYAML(f)
}

// writePoints emits "x,y" rows with a header line.
func writePoints(w io.Writer, pts []ifs.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	row := make([]string, 2)
	for _, p := range pts {
		row[0] = strconv.FormatFloat(p.X(), 'g', -1, 64)
		row[1] = strconv.FormatFloat(p.Y(), 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeEntries(w io.Writer, entries []catalog.Entry) error {
	for _, e := range entries {
		line := e.Name
		for _, a := range e.Aliases {
			line += " " + a
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
