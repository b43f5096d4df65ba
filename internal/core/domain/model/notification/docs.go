// Package notification contains the transactional outbox aggregate of the
// laundry platform.
//
// Customer messages are never published inline with a business operation.
// Handlers append Notification rows in the same database transaction as the
// change that caused them, and the relay job drains pending rows to the
// message broker with publisher confirms. The package also owns the message
// template identifiers.
package notification
