// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package placeholder substitutes ${property} references in configuration
// text with values taken from a configuration server [models.Environment].
//
// Supported forms:
//   - ${name}          replaced by the value of name;
//   - ${name:default}  replaced by the value of name, or default when unset;
//   - \${name}         escaped, emitted literally as ${name}.
//
// Placeholders may be nested in names, defaults and resolved values.
// Unresolvable and circular placeholders are left in the text unchanged.
package placeholder

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-config-reader/models"
)

const (
	prefix       = "${"
	suffix       = "}"
	simplePrefix = "{"
	separator    = ":"

	escapedPrefix = `\${`
	maskedPrefix  = "$_{"
)

// Resolver resolves placeholders against a single environment.
type Resolver struct {
	env models.Environment
}

// NewResolver returns a Resolver that looks properties up in env. Only env is
// consulted; the process environment is never read.
func NewResolver(env models.Environment) *Resolver {
	return &Resolver{env: env}
}

// Resolve returns text with every resolvable placeholder substituted.
func (r *Resolver) Resolve(text string) string {
	if !strings.Contains(text, prefix) {
		return text
	}

	text = strings.ReplaceAll(text, escapedPrefix, maskedPrefix)
	text = r.parse(text, make(map[string]struct{}))
	return strings.ReplaceAll(text, maskedPrefix, prefix)
}

// Lookup returns the textual value of key, if the environment defines it.
func (r *Resolver) Lookup(key string) (string, bool) {
	v, ok := r.env.Property(key)
	if !ok || v == nil {
		return "", false
	}
	return stringify(v), true
}

func (r *Resolver) parse(value string, visiting map[string]struct{}) string {
	result := value

	start := strings.Index(result, prefix)
	for start != -1 {
		end := placeholderEnd(result, start)
		if end == -1 {
			break
		}

		original := result[start+len(prefix) : end]
		if _, circular := visiting[original]; circular {
			start = indexFrom(result, prefix, end+len(suffix))
			continue
		}
		visiting[original] = struct{}{}

		name := r.parse(original, visiting)
		resolved, ok := r.Lookup(name)
		if !ok {
			if key, def, found := strings.Cut(name, separator); found {
				resolved, ok = r.Lookup(key)
				if !ok {
					resolved, ok = def, true
				}
			}
		}

		if ok {
			resolved = r.parse(resolved, visiting)
			result = result[:start] + resolved + result[end+len(suffix):]
			start = indexFrom(result, prefix, start+len(resolved))
		} else {
			start = indexFrom(result, prefix, end+len(suffix))
		}

		delete(visiting, original)
	}

	return result
}

// placeholderEnd returns the index of the suffix closing the placeholder that
// starts at start, skipping nested braces, or -1 when it is unterminated.
func placeholderEnd(s string, start int) int {
	nested := 0
	for i := start + len(prefix); i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], suffix):
			if nested == 0 {
				return i
			}
			nested--
			i += len(suffix)
		case strings.HasPrefix(s[i:], simplePrefix):
			nested++
			i += len(simplePrefix)
		default:
			i++
		}
	}
	return -1
}

func indexFrom(s, substr string, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i == -1 {
		return -1
	}
	return from + i
}

func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	default:
		return fmt.Sprint(value)
	}
}
