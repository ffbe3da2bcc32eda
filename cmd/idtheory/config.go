package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/theory-cloud/idtheory"
)

// fileConfig is the optional yaml config. Flags win over file values.
type fileConfig struct {
	Worker     string `yaml:"worker"`
	Endianness string `yaml:"endianness"`
	Format     string `yaml:"format"`
	Count      int    `yaml:"count"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// cliArgs carries the flag values that compete with the config file.
type cliArgs struct {
	count     int
	workerHex string
	bigEndian bool
	useNode   bool
	format    string
}

// settings is the fully resolved run configuration.
type settings struct {
	count  int
	worker idtheory.WorkerID
	order  idtheory.Endianness
	format string
	source string
}

// resolveSettings merges flags over the config file and fills the gaps
// with defaults: one ID, base32 output, a random worker identity.
func resolveSettings(cfg fileConfig, args cliArgs) (settings, error) {
	var s settings

	s.count = args.count
	if s.count <= 0 {
		s.count = cfg.Count
	}
	if s.count <= 0 {
		s.count = 1
	}

	format, err := normalizeFormat(firstNonEmpty(args.format, cfg.Format))
	if err != nil {
		return s, err
	}
	s.format = format

	s.order = idtheory.LittleEndian
	if cfg.Endianness != "" {
		s.order, err = idtheory.ParseEndianness(cfg.Endianness)
		if err != nil {
			return s, err
		}
	}
	if args.bigEndian {
		s.order = idtheory.BigEndian
	}

	switch {
	case args.workerHex != "":
		s.worker, err = idtheory.ParseWorkerID(args.workerHex)
		if err != nil {
			return s, err
		}
		s.source = "flag"
	case args.useNode:
		s.worker = idtheory.NodeWorkerID()
		s.order = idtheory.LittleEndian
		s.source = "node"
	case cfg.Worker != "":
		s.worker, err = idtheory.ParseWorkerID(cfg.Worker)
		if err != nil {
			return s, err
		}
		s.source = "config"
	default:
		s.worker, err = idtheory.RandomWorkerID()
		if err != nil {
			return s, err
		}
		s.order = idtheory.LittleEndian
		s.source = "random"
	}

	return s, nil
}

func normalizeFormat(s string) (string, error) {
	switch s {
	case "", "base32":
		return "base32", nil
	case "hex":
		return "hex", nil
	case "le-hex":
		return "le-hex", nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
