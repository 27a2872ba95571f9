// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the CLI's application runtime.
//
// An [App] owns the local session database and the remote adapters (ledger
// API, pinning service, read gateways) and builds the client services over
// them. Every CLI invocation opens one App, runs a single command and
// closes it.
package client
