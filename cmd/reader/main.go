package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/internal/problem"
	"github.com/MKhiriev/go-config-reader/internal/reader"
	"github.com/MKhiriev/go-config-reader/internal/service"
	"github.com/MKhiriev/go-config-reader/models"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.NewConsoleLogger("reader", os.Stderr)
	cfg, err := config.GetReaderConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, cfg, os.Stdout, log)
	stop()

	os.Exit(code)
}

// run resolves every configured path against one shared problem set and
// writes the contents to out. It returns the process exit code: 1 when any
// ERROR or FATAL problem was recorded or the reader could not be built.
func run(ctx context.Context, cfg *config.ReaderConfig, out io.Writer, log *logger.Logger) int {
	backend, err := service.NewBackend(cfg.Adapter, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating config server backend")
		return 1
	}

	r, err := reader.NewValidatingFileReader(backend.Resources, backend.Environments, cfg.App, cfg.Reader, log)
	if err != nil {
		log.Err(err).Msg("error creating reader")
		return 1
	}

	problems := problem.NewSet()
	for _, path := range cfg.Paths {
		content, ok := r.Contents(ctx, problems, path)
		if !ok {
			continue
		}
		if _, err = fmt.Fprint(out, content); err != nil {
			log.Err(err).Str("path", path).Msg("error writing contents")
			return 1
		}
	}

	for _, p := range problems.Problems() {
		log.WithLevel(levelForSeverity(p.Severity)).
			Str("remediation", p.Remediation).
			Msg(p.Message)
	}

	if len(problems.AtLeast(models.SeverityError)) > 0 {
		return 1
	}
	return 0
}

func levelForSeverity(s models.Severity) zerolog.Level {
	switch s {
	case models.SeverityInfo:
		return zerolog.InfoLevel
	case models.SeverityWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
