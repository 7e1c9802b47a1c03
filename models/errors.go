// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrNoSuchResource is the not-found signal of configuration server
// repositories. Implementations wrap it so callers can match it with
// [errors.Is] regardless of transport.
var ErrNoSuchResource = errors.New("no such resource")
