// Command psvr-info discovers a connected PSVR, streams its sensor
// reports and prints button state and fused orientation until
// interrupted. It is a thin demonstration of the client package, not
// part of the core driver surface.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/tethervr/psvr-go/client"
	"github.com/tethervr/psvr-go/hidtransport"
	"github.com/tethervr/psvr-go/internal/config"
	"github.com/tethervr/psvr-go/internal/configpaths"
	"github.com/tethervr/psvr-go/internal/log"
)

// levelTrace is a custom slog level below Debug, selected with
// --log.level=trace. Raw wire tracing via --log.raw-file does not go
// through slog.
const levelTrace slog.Level = -8

func parseLogLevel(s string) slog.Level {
	switch s {
	case "trace":
		return levelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// splitHandler routes a record to one of two handlers depending on its
// level, so errors can be sent to stderr while everything else goes to
// stdout without a second pass over the record stream.
type splitHandler struct {
	level     slog.Level
	low, high slog.Handler
}

func (s splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= s.level
}
func (s splitHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return s.high.Handle(ctx, r)
	}
	return s.low.Handle(ctx, r)
}
func (s splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return splitHandler{level: s.level, low: s.low.WithAttrs(attrs), high: s.high.WithAttrs(attrs)}
}
func (s splitHandler) WithGroup(name string) slog.Handler {
	return splitHandler{level: s.level, low: s.low.WithGroup(name), high: s.high.WithGroup(name)}
}

// setupLogger builds the slog.Logger this command runs with: console
// output split between stdout/stderr by level when no log file is given,
// or a single text stream to the requested file. Any opened file is
// returned so the caller can close it on shutdown.
func setupLogger(logLevel, logFile string) (*slog.Logger, io.Closer, error) {
	level := parseLogLevel(logLevel)

	if logFile == "" {
		handler := splitHandler{
			level: level,
			low:   slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
			high:  slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
		}
		return slog.New(handler), nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	kong.Parse(&cli,
		kong.Name("psvr-info"),
		kong.Description("Print live PSVR sensor and orientation data."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, logFileCloser, err := setupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to set up logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	if logFileCloser != nil {
		defer func() { _ = logFileCloser.Close() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []client.Option
	if cli.Log.RawFile != "" {
		rawFile, err := os.OpenFile(cli.Log.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("could not open raw log file", "error", err)
			os.Exit(2)
		}
		defer func() { _ = rawFile.Close() }()
		opts = append(opts, client.WithRawLogger(log.NewRaw(rawFile)))
	}

	enumerator := hidtransport.NewHidapiEnumerator()
	cfg := hidtransport.Config{
		ReadTimeout: cli.Discovery.ReadTimeout,
		VendorID:    cli.Discovery.VendorID,
		ProductID:   cli.Discovery.ProductID,
	}

	session, err := client.OpenWithConfig(enumerator, cfg, opts...)
	if err != nil {
		logger.Error("could not open PSVR session", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("error closing session", "error", err)
		}
	}()

	if err := session.PowerOn(); err != nil {
		logger.Error("could not power on headset", "error", err)
		os.Exit(1)
	}
	if err := session.VrMode(); err != nil {
		logger.Error("could not switch to vr mode", "error", err)
		os.Exit(1)
	}
	if err := session.VrTracking(); err != nil {
		logger.Error("could not enable vr tracking", "error", err)
		os.Exit(1)
	}

	logger.Info("connected to PSVR, printing sensor reports until interrupted")
	runLoop(ctx, logger, session)
}

func runLoop(ctx context.Context, logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}, session *client.Session) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		readout, err := session.ReceiveSensor()
		if err != nil {
			logger.Error("sensor read failed", "error", err)
			time.Sleep(100 * time.Millisecond)
			continue
		}

		q := session.Orientation()
		logger.Info("sensor report",
			"plus", readout.Buttons.Plus,
			"minus", readout.Buttons.Minus,
			"mute", readout.Buttons.Mute,
			"worn", readout.Status.Worn,
			"orientation", [4]float64{q.W, q.V[0], q.V[1], q.V[2]},
		)
	}
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if len(a) > len("--config=") && a[:len("--config=")] == "--config=" {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("PSVR_CONFIG"); v != "" {
		return v
	}
	return ""
}
