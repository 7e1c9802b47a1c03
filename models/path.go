// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ConfigServerScheme is the prefix that marks a path as a resource served by
// the remote configuration server rather than a local file.
const ConfigServerScheme = "configserver:"

// PathKind tells which retrieval strategy a [Path] is resolved with.
type PathKind int

const (
	// LocalPath is a filesystem path read from the local host.
	LocalPath PathKind = iota

	// RemotePath is a resource identifier looked up in the configuration server.
	RemotePath
)

// String returns a human-readable name of the kind.
func (k PathKind) String() string {
	switch k {
	case LocalPath:
		return "local"
	case RemotePath:
		return "remote"
	default:
		return "unknown"
	}
}

// Path is a parsed configuration path. It is produced once at the boundary by
// [ParsePath] so that retrieval code switches on Kind instead of re-checking
// string prefixes.
type Path struct {
	// Kind selects the retrieval strategy.
	Kind PathKind

	// Value is the filesystem path for LocalPath, or the resource identifier
	// (the part after [ConfigServerScheme]) for RemotePath.
	Value string
}

// ParsePath classifies raw by its scheme prefix. A raw string starting with
// [ConfigServerScheme] becomes a RemotePath holding the remainder; anything
// else is a LocalPath holding the full string.
func ParsePath(raw string) Path {
	if name, ok := strings.CutPrefix(raw, ConfigServerScheme); ok {
		return Path{Kind: RemotePath, Value: name}
	}
	return Path{Kind: LocalPath, Value: raw}
}

// String returns the path in the same form it was parsed from.
func (p Path) String() string {
	if p.Kind == RemotePath {
		return ConfigServerScheme + p.Value
	}
	return p.Value
}
