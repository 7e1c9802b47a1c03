package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func newTestRepository(t *testing.T, files map[string]string) (ConfigRepository, string) {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, files)

	repo, err := NewNativeRepository(config.Native{SearchLocations: []string{root}}, logger.Nop())
	require.NoError(t, err)
	return repo, root
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func sourceNames(env models.Environment, root string) []string {
	names := make([]string, 0, len(env.PropertySources))
	for _, ps := range env.PropertySources {
		rel, _ := filepath.Rel(root, ps.Name[len("file:"):])
		names = append(names, filepath.ToSlash(rel))
	}
	return names
}

// ── NewNativeRepository ──────────────────────────────────────────────────────

func TestNewNativeRepository_Errors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	tests := []struct {
		name      string
		locations []string
		wantErr   error
	}{
		{name: "no locations", wantErr: ErrNoSearchLocations},
		{name: "missing directory", locations: []string{filepath.Join(t.TempDir(), "absent")}, wantErr: ErrInvalidSearchLocation},
		{name: "not a directory", locations: []string{file}, wantErr: ErrInvalidSearchLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNativeRepository(config.Native{SearchLocations: tt.locations}, logger.Nop())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewNativeRepository_AbsoluteLocations(t *testing.T) {
	root := t.TempDir()
	repo, err := NewNativeRepository(config.Native{SearchLocations: []string{root}}, logger.Nop())

	require.NoError(t, err)
	locations := repo.SearchLocations()
	require.Len(t, locations, 1)
	assert.True(t, filepath.IsAbs(locations[0]))

	locations[0] = "mutated"
	assert.NotEqual(t, "mutated", repo.SearchLocations()[0])
}

// ── FindResource ─────────────────────────────────────────────────────────────

func TestFindResource_FromLocation(t *testing.T) {
	repo, _ := newTestRepository(t, map[string]string{
		"app.yml":        "root",
		"nested/app.yml": "nested",
	})

	rc, err := repo.FindResource(context.Background(), "halyard", "", "", "app.yml")
	require.NoError(t, err)
	assert.Equal(t, "root", readAll(t, rc))

	rc, err = repo.FindResource(context.Background(), "halyard", "", "", "nested/app.yml")
	require.NoError(t, err)
	assert.Equal(t, "nested", readAll(t, rc))
}

func TestFindResource_LabelTakesPrecedence(t *testing.T) {
	repo, _ := newTestRepository(t, map[string]string{
		"app.yml":    "unlabelled",
		"v2/app.yml": "labelled",
	})

	rc, err := repo.FindResource(context.Background(), "halyard", "", "v2", "app.yml")
	require.NoError(t, err)
	assert.Equal(t, "labelled", readAll(t, rc))

	rc, err = repo.FindResource(context.Background(), "halyard", "", "v3", "app.yml")
	require.NoError(t, err)
	assert.Equal(t, "unlabelled", readAll(t, rc))
}

func TestFindResource_ProfileVariant(t *testing.T) {
	repo, _ := newTestRepository(t, map[string]string{
		"app.yml":      "base",
		"app-prod.yml": "prod",
	})

	rc, err := repo.FindResource(context.Background(), "halyard", "prod", "", "app.yml")
	require.NoError(t, err)
	assert.Equal(t, "prod", readAll(t, rc))

	rc, err = repo.FindResource(context.Background(), "halyard", "dev", "", "app.yml")
	require.NoError(t, err)
	assert.Equal(t, "base", readAll(t, rc))
}

func TestFindResource_SecondLocation(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeTree(t, second, map[string]string{"only-here.txt": "second"})

	repo, err := NewNativeRepository(config.Native{SearchLocations: []string{first, second}}, logger.Nop())
	require.NoError(t, err)

	rc, err := repo.FindResource(context.Background(), "halyard", "", "", "only-here.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", readAll(t, rc))
}

func TestFindResource_NotFound(t *testing.T) {
	repo, _ := newTestRepository(t, map[string]string{"dir/file.txt": "x"})

	tests := []struct {
		name       string
		resource   string
		label      string
		wantUnsafe bool
	}{
		{name: "missing", resource: "absent.yml"},
		{name: "directory", resource: "dir"},
		{name: "parent escape", resource: "../secret.yml", wantUnsafe: true},
		{name: "nested escape", resource: "dir/../../secret.yml", wantUnsafe: true},
		{name: "absolute", resource: "/etc/passwd", wantUnsafe: true},
		{name: "label escape", resource: "file.txt", label: "../..", wantUnsafe: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, err := repo.FindResource(context.Background(), "halyard", "", tt.label, tt.resource)

			assert.Nil(t, rc)
			assert.ErrorIs(t, err, models.ErrNoSuchResource)
			if tt.wantUnsafe {
				assert.ErrorIs(t, err, ErrUnsafeName)
			}
		})
	}
}

func TestFindResource_CancelledContext(t *testing.T) {
	repo, _ := newTestRepository(t, map[string]string{"app.yml": "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindResource(ctx, "halyard", "", "", "app.yml")

	assert.ErrorIs(t, err, context.Canceled)
}

// ── FindEnvironment ──────────────────────────────────────────────────────────

func TestFindEnvironment_SourceOrder(t *testing.T) {
	repo, root := newTestRepository(t, map[string]string{
		"application.yml":         "foo: from-application",
		"halyard.yml":             "foo: from-app",
		"application-prod.yaml":   "foo: from-application-prod",
		"halyard-prod.properties": "foo=from-app-prod",
		"halyard-extra.yml":       "foo: from-app-extra",
		"unrelated.yml":           "foo: never",
		"application-staging.yml": "foo: never",
	})

	env, err := repo.FindEnvironment(context.Background(), "halyard", "prod,extra", "")

	require.NoError(t, err)
	assert.Equal(t, "halyard", env.Name)
	assert.Equal(t, []string{"prod", "extra"}, env.Profiles)
	assert.Equal(t, []string{
		"halyard-extra.yml",
		"halyard-prod.properties",
		"application-prod.yaml",
		"halyard.yml",
		"application.yml",
	}, sourceNames(env, root))

	foo, ok := env.Property("foo")
	require.True(t, ok)
	assert.Equal(t, "from-app-extra", foo)
}

func TestFindEnvironment_DefaultProfile(t *testing.T) {
	repo, root := newTestRepository(t, map[string]string{
		"application.yml":         "a: 1",
		"application-default.yml": "a: 2",
	})

	env, err := repo.FindEnvironment(context.Background(), "halyard", "", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"default"}, env.Profiles)
	assert.Equal(t, []string{"application-default.yml", "application.yml"}, sourceNames(env, root))
}

func TestFindEnvironment_LabelDirectoryFirst(t *testing.T) {
	repo, root := newTestRepository(t, map[string]string{
		"application.yml":    "a: base",
		"v2/application.yml": "a: v2",
	})

	env, err := repo.FindEnvironment(context.Background(), "halyard", "", "v2")

	require.NoError(t, err)
	assert.Equal(t, "v2", env.Label)
	assert.Equal(t, []string{"v2/application.yml", "application.yml"}, sourceNames(env, root))
}

func TestFindEnvironment_FlattensYAML(t *testing.T) {
	repo, _ := newTestRepository(t, map[string]string{
		"application.yml": `
server:
  port: 8080
  ssl:
    enabled: true
hosts:
  - name: a
  - name: b
empty: {}
nothing:
ratio: 0.5
`,
	})

	env, err := repo.FindEnvironment(context.Background(), "halyard", "", "")

	require.NoError(t, err)
	require.Len(t, env.PropertySources, 1)
	assert.Equal(t, map[string]any{
		"server.port":        8080,
		"server.ssl.enabled": true,
		"hosts[0].name":      "a",
		"hosts[1].name":      "b",
		"empty":              "",
		"nothing":            "",
		"ratio":              0.5,
	}, env.PropertySources[0].Source)
}

func TestFindEnvironment_PropertiesWithoutExpansion(t *testing.T) {
	repo, _ := newTestRepository(t, map[string]string{
		"application.properties": "greeting=hello ${name}\nname=world\n",
	})

	env, err := repo.FindEnvironment(context.Background(), "halyard", "", "")

	require.NoError(t, err)
	require.Len(t, env.PropertySources, 1)
	assert.Equal(t, "hello ${name}", env.PropertySources[0].Source["greeting"])
	assert.Equal(t, "world", env.PropertySources[0].Source["name"])
}

func TestFindEnvironment_NoSources(t *testing.T) {
	repo, _ := newTestRepository(t, nil)

	env, err := repo.FindEnvironment(context.Background(), "halyard", "", "")

	require.NoError(t, err)
	assert.NotNil(t, env.PropertySources)
	assert.Empty(t, env.PropertySources)
}

func TestFindEnvironment_MalformedYAML(t *testing.T) {
	repo, _ := newTestRepository(t, map[string]string{"application.yml": "a: [unclosed"})

	_, err := repo.FindEnvironment(context.Background(), "halyard", "", "")

	assert.ErrorIs(t, err, ErrParsingPropertySource)
}

func TestFindEnvironment_UnsafeLabel(t *testing.T) {
	repo, _ := newTestRepository(t, nil)

	_, err := repo.FindEnvironment(context.Background(), "halyard", "", "../../etc")

	assert.ErrorIs(t, err, models.ErrNoSuchResource)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestSourceBaseNames(t *testing.T) {
	assert.Equal(t,
		[]string{"app-b", "application-b", "app-a", "application-a", "app", "application"},
		sourceBaseNames("app", []string{"a", "b"}))
	assert.Equal(t,
		[]string{"application-default", "application"},
		sourceBaseNames("application", []string{"default"}))
}

func TestProfiledNames(t *testing.T) {
	assert.Equal(t, []string{"app-b.yml", "app-a.yml", "app.yml"}, profiledNames("app.yml", []string{"a", "b"}))
	assert.Equal(t, []string{"app.yml"}, profiledNames("app.yml", []string{"default"}))
	assert.Equal(t, []string{"README-prod", "README"}, profiledNames("README", []string{"prod"}))
}
