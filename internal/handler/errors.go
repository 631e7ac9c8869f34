// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the relay
// configuration has no listen address, so no transport handler can be built.
var errNoHandlersAreCreated = errors.New("no handlers are created")
