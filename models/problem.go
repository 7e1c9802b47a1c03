// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity ranks a [Problem]. Values are ordered, so severities can be
// compared with the usual operators (Info < Warning < Error < Fatal).
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

var severityNames = map[Severity]string{
	SeverityInfo:    "INFO",
	SeverityWarning: "WARNING",
	SeverityError:   "ERROR",
	SeverityFatal:   "FATAL",
}

// String returns the upper-case name of the severity.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// ParseSeverity converts a severity name (case-insensitive) into a Severity.
func ParseSeverity(name string) (Severity, error) {
	for s, n := range severityNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", name)
}

// MarshalJSON encodes the severity as its name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its name.
func (s *Severity) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Problem is a diagnostic recorded instead of returning an error to the
// caller. It is built complete, remediation included, and is not modified
// after it has been added to a sink.
type Problem struct {
	// Severity ranks how bad the problem is.
	Severity Severity `json:"severity"`

	// Message describes what went wrong and which path was involved.
	Message string `json:"message"`

	// Remediation optionally tells the user how to fix the problem.
	Remediation string `json:"remediation,omitempty"`
}

// String formats the problem for log and terminal output.
func (p Problem) String() string {
	if p.Remediation == "" {
		return fmt.Sprintf("[%s] %s", p.Severity, p.Message)
	}
	return fmt.Sprintf("[%s] %s (%s)", p.Severity, p.Message, p.Remediation)
}
