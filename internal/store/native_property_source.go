package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// propertyExtensions are tried in this order for every base name.
var propertyExtensions = []string{".properties", ".yml", ".yaml"}

// loadPropertySource reads a property file into a flat map with dotted keys.
// A missing file yields an error wrapping fs.ErrNotExist.
func loadPropertySource(path string) (map[string]any, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".properties":
		return loadProperties(path)
	default:
		return loadYAML(path)
	}
}

func loadProperties(path string) (map[string]any, error) {
	loader := properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}

	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParsingPropertySource, path, err)
	}

	out := make(map[string]any, p.Len())
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		out[key] = value
	}
	return out, nil
}

// loadYAML flattens every document of a YAML file. Keys of later documents
// override earlier ones.
func loadYAML(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string]any)
	dec := yaml.NewDecoder(f)
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrParsingPropertySource, path, err)
		}
		flatten("", doc, out)
	}

	return out, nil
}

// flatten writes v into out using Spring's relaxed key notation:
// nested maps are joined with dots and list items get an [index] suffix.
func flatten(prefix string, v any, out map[string]any) {
	switch value := v.(type) {
	case map[string]any:
		if len(value) == 0 && prefix != "" {
			out[prefix] = ""
		}
		for k, child := range value {
			flatten(joinKey(prefix, k), child, out)
		}
	case map[any]any:
		if len(value) == 0 && prefix != "" {
			out[prefix] = ""
		}
		for k, child := range value {
			flatten(joinKey(prefix, fmt.Sprint(k)), child, out)
		}
	case []any:
		if len(value) == 0 && prefix != "" {
			out[prefix] = ""
		}
		for i, child := range value {
			flatten(prefix+"["+strconv.Itoa(i)+"]", child, out)
		}
	case nil:
		if prefix != "" {
			out[prefix] = ""
		}
	default:
		if prefix != "" {
			out[prefix] = value
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
