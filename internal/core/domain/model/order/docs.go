// Package order provides domain entities and business logic for order management
// in the laundry platform. It implements the Order aggregate root with lifecycle
// management, inter-branch routing, delivery classification, and payments.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, the garment status
//     machine, and the correlated routing status
//   - Status: The garment-processing state machine with its fixed transition table
//   - RoutingStatus: The inter-branch routing state, mutated only by Order methods
//   - Classification and Basis: The return-method decision and how it was made
//   - ClassificationOverride: The append-only audit record for manual overrides
//   - PaymentRecord and PaymentStatus: The payment ledger entry and derived state
//
// Key business rules:
//   - Garment status moves only along the fixed transition table; the policy
//     statuses (inspection, queued_for_delivery, disposed, cancelled) are entered
//     and exited only by named routing methods on the aggregate
//   - Transfer legs hold the garment at received; ready_for_return implies
//     queued_for_delivery
//   - A manual classification override is sticky against automatic re-classification
//   - The paid amount changes only through the store's atomic increment
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
