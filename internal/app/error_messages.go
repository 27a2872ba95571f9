// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains human-readable messages shared by the ledger API
// handlers and the CLI.
//
// The Msg* constants end up in JSON error bodies and in terminal output, so
// the same failure reads the same way on both sides of the wire.
package app

const (
	// MsgInvalidLoginPassword is returned when the login is unknown or the
	// auth hash does not match. The two cases are not told apart.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLedgerUnavailable is returned when the ledger database reports a
	// retryable failure (serialization, lock timeout, connection loss).
	MsgLedgerUnavailable = "ledger is temporarily unavailable"

	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "request body is not valid JSON"

	// MsgNotFound is returned for routes that do not exist, including a
	// known path requested with the wrong method.
	MsgNotFound = "not found"

	// MsgNotLoggedIn is printed by the CLI when a command needs a session.
	MsgNotLoggedIn = "not logged in, run `marketplace login` first"

	// MsgPurchaseRequired is printed by the CLI when the ledger refuses to
	// release a key.
	MsgPurchaseRequired = "access not purchased, run `marketplace buy` first"

	// MsgWrongKey is printed by the CLI when an envelope does not open. A
	// wrong key, a wrong password and corrupted content look the same.
	MsgWrongKey = "content could not be decrypted with the released key"
)
