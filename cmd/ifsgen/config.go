package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Generation modes.
const (
	modeRandom        = "random"
	modeDeterministic = "deterministic"
)

// Config drives one ifsgen run. Fields mirror the command-line flags.
type Config struct {
	IFS       string
	Mode      string
	NumPoints int
	NumIter   int
	Refine    int
	Z0        float64
	Z0Set     bool
	Seed      int64
	Defs      string
	List      bool
	Dump      bool
	Verbose   bool
}

func defaultConfig() Config {
	return Config{
		IFS:       "sierpinski",
		Mode:      modeRandom,
		NumPoints: 1000,
		NumIter:   5,
		Refine:    1,
	}
}

// decodeConfig overlays a YAML document onto cfg. Values are loosely typed:
// numpoints: "2000" and numpoints: 2000 are both accepted. Quoted integers
// are decimal only: "010" is ten and "0x10" is an error.
func decodeConfig(r io.Reader, cfg Config) (Config, error) {
	raw := make(map[string]any)
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("config: %w", err)
	}

	var err error
	for key, v := range raw {
		switch strings.ToLower(key) {
		case "ifs":
			cfg.IFS, err = cast.ToStringE(v)
		case "mode":
			cfg.Mode, err = cast.ToStringE(v)
		case "numpoints":
			cfg.NumPoints, err = toInt(v)
		case "numiter":
			cfg.NumIter, err = toInt(v)
		case "refine":
			cfg.Refine, err = toInt(v)
		case "z0":
			cfg.Z0, err = cast.ToFloat64E(v)
			cfg.Z0Set = err == nil
		case "seed":
			cfg.Seed, err = toInt64(v)
		case "defs":
			cfg.Defs, err = cast.ToStringE(v)
		case "list":
			cfg.List, err = cast.ToBoolE(v)
		case "dump":
			cfg.Dump, err = cast.ToBoolE(v)
		case "verbose":
			cfg.Verbose, err = cast.ToBoolE(v)
		default:
			return cfg, fmt.Errorf("config: unknown key %q", key)
		}
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", key, err)
		}
	}

	return cfg, nil
}

// toInt64 coerces v, parsing strings as base-10 (cast would accept 0x and
// leading-zero octal).
func toInt64(v any) (int64, error) {
	if s, ok := v.(string); ok {
		return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	}

	return cast.ToInt64E(v)
}

func toInt(v any) (int, error) {
	if s, ok := v.(string); ok {
		return strconv.Atoi(strings.TrimSpace(s))
	}

	return cast.ToIntE(v)
}

func (c Config) validate() error {
	switch c.Mode {
	case modeRandom, modeDeterministic:
	default:
		return fmt.Errorf("config: mode must be %q or %q, got %q", modeRandom, modeDeterministic, c.Mode)
	}
	if c.Refine < 1 {
		return fmt.Errorf("config: refine must be ≥ 1, got %d", c.Refine)
	}

	return nil
}
