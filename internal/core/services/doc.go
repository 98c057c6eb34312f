// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Identifier generation and timestamping live here, never in the
// storage layer: repositories persist exactly what they are given.
package services
