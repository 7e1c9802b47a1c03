// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidRequestBody is reported when a request body cannot be decoded as
// the JSON document the endpoint expects.
var ErrInvalidRequestBody = errors.New("invalid request body")
