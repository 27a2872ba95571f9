// Package server runs the HTTP listeners of the ledger and of the content
// gateway: startup, signal handling and graceful shutdown.
package server
