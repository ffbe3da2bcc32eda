// Command idtheory mints flake IDs from the command line.
//
// IDs go to stdout, one per line; diagnostics go to stderr.
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/theory-cloud/idtheory"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		args       cliArgs
		configPath string
		logFormat  string
		verbose    bool
	)

	flag.IntVar(&args.count, "n", 0, "number of IDs to mint (0 means the config value, or 1)")
	flag.StringVar(&args.workerHex, "worker", "", "worker identifier as 12 hex digits, ':' separators allowed")
	flag.BoolVar(&args.bigEndian, "big-endian", false, "treat the supplied worker identifier as big-endian")
	flag.BoolVar(&args.useNode, "node", false, "derive the worker identifier from a hardware address")
	flag.StringVar(&args.format, "format", "", "output format: base32, hex or le-hex (default base32)")
	flag.StringVar(&configPath, "config", "", "optional yaml config file")
	flag.StringVar(&logFormat, "log", "console", "log format: console or json")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	logger, err := newLogger(logFormat, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "idtheory: FAIL: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	var cfg fileConfig
	if configPath != "" {
		cfg, err = loadConfig(configPath)
		if err != nil {
			logger.Error("config load failed", zap.String("path", configPath), zap.Error(err))
			return 2
		}
	}

	s, err := resolveSettings(cfg, args)
	if err != nil {
		logger.Error("invalid settings", zap.Error(err))
		return 2
	}

	gen, err := idtheory.NewLocked(s.worker, s.order)
	if err != nil {
		logger.Error("generator construction failed", zap.Error(err))
		return 2
	}

	logger.Debug("generator ready",
		zap.String("worker", gen.Worker().String()),
		zap.String("worker_source", s.source),
		zap.Int("count", s.count),
		zap.String("format", s.format),
	)

	out := bufio.NewWriter(os.Stdout)
	for minted := 0; minted < s.count; {
		id, err := gen.NextID()
		if err != nil {
			if errors.Is(err, idtheory.ErrSequenceExhausted) || errors.Is(err, idtheory.ErrClockRunningBackwards) {
				logger.Warn("draw rejected, retrying", zap.Error(err))
				time.Sleep(time.Millisecond)
				continue
			}
			logger.Error("draw failed", zap.Error(err))
			return 2
		}

		line, err := formatID(id, s.format)
		if err != nil {
			logger.Error("format failed", zap.Error(err))
			return 2
		}
		fmt.Fprintln(out, line)
		minted++
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "idtheory: FAIL: %v\n", err)
		return 2
	}

	stats := gen.Stats()
	logger.Debug("done",
		zap.Uint64("generated", stats.Generated),
		zap.Uint64("clock_regressions", stats.ClockRegressions),
		zap.Uint64("sequence_exhaustions", stats.SequenceExhaustions),
	)
	return 0
}

func formatID(id idtheory.ID, format string) (string, error) {
	switch format {
	case "base32":
		return id.String(), nil
	case "hex":
		return hex.EncodeToString(id.Bytes()), nil
	case "le-hex":
		le := id.LittleEndianBytes()
		return hex.EncodeToString(le[:]), nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

func newLogger(format string, verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	enc := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "":
		encoder = zapcore.NewConsoleEncoder(enc)
	case "json":
		encoder = zapcore.NewJSONEncoder(enc)
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)
	return zap.New(core), nil
}
