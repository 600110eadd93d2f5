// Package driving defines the inbound interfaces through which the
// CLI, TUI and MCP adapters use the core services. Each interface is
// implemented by exactly one service under internal/core/services.
//
// Import rules: this package imports only the domain package. It never
// imports adapters or services.
package driving
