// Package http is the ledger's REST transport.
//
// It wires chi routes to the ledger and auth services, maps service errors
// to the {"code","message"} error document, and carries the request-scoped
// middleware: bearer authentication, trace ids, access logging and gzip.
package http
