// Package services implements the driving ports on top of the driven
// ports. Each service owns its own state and synchronisation; adapters
// may call them from any goroutine.
package services
