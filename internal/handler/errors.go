// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned when the listen address of the
// binary being started is empty, so no transport handler is initialized.
// This is a fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
