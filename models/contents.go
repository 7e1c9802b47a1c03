// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ContentsRequest asks for the contents of several configuration paths in a
// single validation run.
type ContentsRequest struct {
	// Paths are resolved in order against one shared problem sink.
	Paths []string `json:"paths"`
}

// ContentsReport is the outcome of a validation run.
type ContentsReport struct {
	// Contents maps every successfully resolved path to its text.
	Contents map[string]string `json:"contents"`

	// Problems holds every problem recorded during the run, in order.
	Problems []Problem `json:"problems"`
}

// ProblemsResponse is returned when a single path could not be resolved.
type ProblemsResponse struct {
	Problems []Problem `json:"problems"`
}
