package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/models"
)

const (
	defaultProfile  = "default"
	baseApplication = "application"
)

// nativeRepository is the default implementation of [ConfigRepository].
// It keeps no state besides its search locations and is safe for concurrent
// use.
type nativeRepository struct {
	locations []string

	logger *logger.Logger
}

// NewNativeRepository constructs a [ConfigRepository] over the search
// locations of cfg. Every location must be an existing directory; locations
// are made absolute.
func NewNativeRepository(cfg config.Native, logger *logger.Logger) (ConfigRepository, error) {
	if len(cfg.SearchLocations) == 0 {
		return nil, ErrNoSearchLocations
	}

	locations := make([]string, 0, len(cfg.SearchLocations))
	for _, loc := range cfg.SearchLocations {
		abs, err := filepath.Abs(loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSearchLocation, loc, err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSearchLocation, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidSearchLocation, abs)
		}

		locations = append(locations, abs)
	}

	return &nativeRepository{locations: locations, logger: logger}, nil
}

// SearchLocations implements [ConfigRepository].
func (n *nativeRepository) SearchLocations() []string {
	out := make([]string, len(n.locations))
	copy(out, n.locations)
	return out
}

// FindResource implements [ConfigRepository].
//
// For every search location the candidates are, in order:
// <loc>/<label>/<name> (when label is set) and <loc>/<name>. For a non-default
// profile each candidate is first tried with the profile inserted before the
// extension (app.yml → app-prod.yml). The first regular file wins.
func (n *nativeRepository) FindResource(ctx context.Context, application, profile, label, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleanName, err := safeRelative(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %s", models.ErrNoSuchResource, err, name)
	}
	cleanLabel := ""
	if label != "" {
		if cleanLabel, err = safeRelative(label); err != nil {
			return nil, fmt.Errorf("%w: %w: %s", models.ErrNoSuchResource, err, label)
		}
	}

	names := profiledNames(cleanName, splitProfiles(profile))
	for _, dir := range n.directories(cleanLabel) {
		for _, candidate := range names {
			path := filepath.Join(dir, candidate)

			f, err := openRegular(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}

			n.logger.Debug().
				Str("application", application).
				Str("resource", path).
				Msg("native resource found")
			return f, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", models.ErrNoSuchResource, name)
}

// FindEnvironment implements [ConfigRepository].
//
// Property sources are ordered most specific first: for each profile (last
// listed wins) <app>-<profile> then application-<profile>, followed by <app>
// and application. Each base name is tried with the .properties, .yml and
// .yaml extensions in every search directory.
func (n *nativeRepository) FindEnvironment(ctx context.Context, application, profile, label string) (models.Environment, error) {
	if err := ctx.Err(); err != nil {
		return models.Environment{}, err
	}

	cleanLabel := ""
	if label != "" {
		var err error
		if cleanLabel, err = safeRelative(label); err != nil {
			return models.Environment{}, fmt.Errorf("%w: %w: %s", models.ErrNoSuchResource, err, label)
		}
	}

	profiles := splitProfiles(profile)
	env := models.Environment{
		Name:            application,
		Profiles:        profiles,
		Label:           label,
		PropertySources: make([]models.PropertySource, 0),
	}

	dirs := n.directories(cleanLabel)
	for _, base := range sourceBaseNames(application, profiles) {
		for _, dir := range dirs {
			for _, ext := range propertyExtensions {
				path := filepath.Join(dir, base+ext)

				source, err := loadPropertySource(path)
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				if err != nil {
					return models.Environment{}, err
				}

				env.PropertySources = append(env.PropertySources, models.PropertySource{
					Name:   "file:" + path,
					Source: source,
				})
			}
		}
	}

	n.logger.Debug().
		Str("application", application).
		Strs("profiles", profiles).
		Str("label", label).
		Int("property_sources", len(env.PropertySources)).
		Msg("native environment assembled")

	return env, nil
}

// directories returns the directories searched for label, in order.
func (n *nativeRepository) directories(label string) []string {
	dirs := make([]string, 0, 2*len(n.locations))
	for _, loc := range n.locations {
		if label != "" {
			dirs = append(dirs, filepath.Join(loc, label))
		}
		dirs = append(dirs, loc)
	}
	return dirs
}

// sourceBaseNames lists property file base names, most specific first.
func sourceBaseNames(application string, profiles []string) []string {
	apps := []string{application}
	if application != baseApplication {
		apps = append(apps, baseApplication)
	}

	var names []string
	for i := len(profiles) - 1; i >= 0; i-- {
		for _, app := range apps {
			names = append(names, app+"-"+profiles[i])
		}
	}

	return append(names, apps...)
}

// profiledNames returns name preceded by its profile-specific variants.
func profiledNames(name string, profiles []string) []string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	var names []string
	for i := len(profiles) - 1; i >= 0; i-- {
		if profiles[i] == defaultProfile {
			continue
		}
		names = append(names, stem+"-"+profiles[i]+ext)
	}

	return append(names, name)
}

func splitProfiles(profile string) []string {
	var profiles []string
	for _, p := range strings.Split(profile, ",") {
		if p = strings.TrimSpace(p); p != "" {
			profiles = append(profiles, p)
		}
	}
	if len(profiles) == 0 {
		return []string{defaultProfile}
	}
	return profiles
}

// safeRelative cleans name and rejects absolute names and names that climb
// out of their base directory.
func safeRelative(name string) (string, error) {
	name = filepath.FromSlash(name)
	if name == "" || filepath.IsAbs(name) {
		return "", ErrUnsafeName
	}

	clean := filepath.Clean(name)
	if clean == "." || !filepath.IsLocal(clean) {
		return "", ErrUnsafeName
	}
	return clean, nil
}

// openRegular opens path for reading. Directories are reported as
// fs.ErrNotExist.
func openRegular(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}

	return f, nil
}
