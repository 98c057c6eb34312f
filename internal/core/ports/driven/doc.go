// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Engine: The scoped unit-of-work over whichever SQL engine is active
//   - ProductStore: Product catalogue persistence
//   - SaleStore: Sale (transaction) persistence and reporting
//   - SettingsStore: Key/value settings persistence
//
// SnapshotStore is only required by the snapshot-backed engine; the
// file-backed engine is durable on its own.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
