package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_LocalAndRemote(t *testing.T) {
	dir := t.TempDir()
	local := writeFile(t, dir, "local.txt", "local\n")
	writeFile(t, dir, "halyard.yml", "foo: bar\n")
	writeFile(t, dir, "template.txt", "value=${foo}\n")

	cfg := &config.ReaderConfig{
		App:     config.App{Name: "halyard"},
		Reader:  config.Reader{RunAs: "tester", LocalCharset: "UTF-8"},
		Storage: config.Storage{Native: config.Native{SearchLocations: []string{dir}}},
		Paths:   []string{local, "configserver:template.txt"},
	}

	var out bytes.Buffer
	code := run(context.Background(), cfg, &out, logger.Nop())

	assert.Equal(t, 0, code)
	assert.Equal(t, "local\nvalue=bar\n", out.String())
}

func TestRun_MissingPathFails(t *testing.T) {
	dir := t.TempDir()
	local := writeFile(t, dir, "local.txt", "local\n")

	cfg := &config.ReaderConfig{
		App:    config.App{Name: "halyard"},
		Reader: config.Reader{RunAs: "tester", LocalCharset: "UTF-8"},
		Paths:  []string{filepath.Join(dir, "missing.txt"), local},
	}

	var out, logs bytes.Buffer
	code := run(context.Background(), cfg, &out, &logger.Logger{Logger: zerolog.New(&logs)})

	assert.Equal(t, 1, code)
	assert.Equal(t, "local\n", out.String())
	assert.Contains(t, logs.String(), "Cannot find provided path")
}

func TestRun_NoConfigServer(t *testing.T) {
	cfg := &config.ReaderConfig{
		App:    config.App{Name: "halyard"},
		Reader: config.Reader{RunAs: "tester", LocalCharset: "UTF-8"},
		Paths:  []string{"configserver:app.yml"},
	}

	var out bytes.Buffer
	code := run(context.Background(), cfg, &out, logger.Nop())

	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
}

func TestRun_UnknownCharset(t *testing.T) {
	cfg := &config.ReaderConfig{
		App:    config.App{Name: "halyard"},
		Reader: config.Reader{LocalCharset: "no-such-charset"},
	}

	assert.Equal(t, 1, run(context.Background(), cfg, &bytes.Buffer{}, logger.Nop()))
}

func TestLevelForSeverity(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, levelForSeverity(models.SeverityInfo))
	assert.Equal(t, zerolog.WarnLevel, levelForSeverity(models.SeverityWarning))
	assert.Equal(t, zerolog.ErrorLevel, levelForSeverity(models.SeverityError))
	assert.Equal(t, zerolog.ErrorLevel, levelForSeverity(models.SeverityFatal))
}
