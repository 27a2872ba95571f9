// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the marketplace command line client.
//
// Creators register, publish encrypted assets and withdraw what they earn.
// Buyers list the catalog, pay for access and fetch decrypted content.
// Each command opens a [client.App], runs and closes it again; the only
// state kept between runs is the session in the local SQLite file.
package cli
