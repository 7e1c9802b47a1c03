// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package problem provides the ordered, append-only problem collection that a
// validation run accumulates diagnostics into.
//
// A single [Set] is typically shared by every path resolved during one run.
// Add is the only mutation and is safe for concurrent use.
package problem

import (
	"sync"

	"github.com/MKhiriev/go-config-reader/models"
)

// Set is an ordered, append-only collection of problems.
// The zero value is ready to use.
type Set struct {
	mu       sync.RWMutex
	problems []models.Problem
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Add appends p to the set.
func (s *Set) Add(p models.Problem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.problems = append(s.problems, p)
}

// Problems returns a copy of the recorded problems in insertion order.
func (s *Set) Problems() []models.Problem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Problem, len(s.problems))
	copy(out, s.problems)
	return out
}

// Len returns the number of recorded problems.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.problems)
}

// MaxSeverity returns the highest severity recorded. ok is false when the set
// is empty.
func (s *Set) MaxSeverity() (severity models.Severity, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, p := range s.problems {
		if i == 0 || p.Severity > severity {
			severity = p.Severity
		}
	}
	return severity, len(s.problems) > 0
}

// AtLeast returns the problems whose severity is min or higher, in order.
func (s *Set) AtLeast(min models.Severity) []models.Problem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Problem
	for _, p := range s.problems {
		if p.Severity >= min {
			out = append(out, p)
		}
	}
	return out
}
