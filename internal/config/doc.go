// Package config provides configuration loading, merging, and validation
// for the ledger server, the content gateway and the CLI client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (server and gateway only)
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig], [GetGatewayConfig] and
// [GetClientConfig].
package config
