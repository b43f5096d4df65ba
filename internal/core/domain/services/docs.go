// Package services provides domain services that implement business
// decisions spanning multiple aggregates of the laundry platform.
//
// The package includes:
//   - Classifier: picks an order's return method from its attributes
//   - DriverPicker: selects the least-loaded active driver for a transfer run
//   - ReminderPlanner: pure decision logic of the collection-reminder sweep
//
// All services here are stateless and side-effect free: they read aggregates
// and return decisions, and the application layer applies the effects.
package services
