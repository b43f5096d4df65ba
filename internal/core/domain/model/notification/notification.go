package notification

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// Template identifiers of the customer messages sent by the platform.
const (
	// TemplateOrderReady tells the customer their order is on the shelf.
	TemplateOrderReady = "order_ready"

	// TemplateOrderOutForDelivery tells the customer a driver is on the way.
	TemplateOrderOutForDelivery = "order_out_for_delivery"

	// TemplateOrderDelivered confirms the delivery.
	TemplateOrderDelivered = "order_delivered"
)

// Domain errors for notification operations.
var (
	// ErrNotificationIsNotConstructed is returned when using an improperly
	// initialized Notification.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification constructor",
	)
)

// Notification is one row of the transactional outbox. Handlers append
// notifications in the same database transaction as the status change that
// caused them; the relay job publishes pending rows to the broker and marks
// the outcome. Delivery is therefore at-least-once.
type Notification struct {
	// id uniquely identifies the notification
	id kernel.UUID

	// orderID is the order the message is about
	orderID kernel.UUID

	// phone is the recipient
	phone kernel.Phone

	// templateID selects the message template
	templateID string

	// params is the JSON-encoded template parameter map
	params string

	// status is the delivery state
	status Status

	// attempts counts publish tries by the relay
	attempts int

	// createdAt is when the notification was enqueued
	createdAt time.Time

	// sentAt is when the broker confirmed the publish (nil before)
	sentAt *time.Time

	// guard ensures the notification was properly constructed
	guard guard.ConstructorGuard
}

// NewNotification enqueues a pending notification.
//
// Parameters:
//   - id: Unique identifier for the notification
//   - orderID: Order the message is about
//   - phone: Recipient phone
//   - templateID: Message template selector (must be non-empty)
//   - params: Template parameters, JSON-encoded into the row
//   - createdAt: Enqueue time
//
// Returns:
//   - *Notification: The pending notification with zero attempts
//   - error: Aggregated validation errors, if any
func NewNotification(
	id kernel.UUID,
	orderID kernel.UUID,
	phone kernel.Phone,
	templateID string,
	params map[string]string,
	createdAt time.Time,
) (*Notification, error) {
	notification := &Notification{
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		notification.setID(id),
		notification.setOrderID(orderID),
		notification.setPhone(phone),
		notification.setTemplateID(templateID),
		notification.setParams(params),
	); err != nil {
		return nil, err
	}

	return notification, nil
}

// RestoreNotification reconstructs a Notification from persistent storage.
// Params arrive as the raw JSON text the row stores.
func RestoreNotification(
	id kernel.UUID,
	orderID kernel.UUID,
	phone kernel.Phone,
	templateID string,
	rawParams string,
	status Status,
	attempts int,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	notification := &Notification{
		params:    rawParams,
		attempts:  attempts,
		createdAt: createdAt,
		sentAt:    sentAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		notification.setID(id),
		notification.setOrderID(orderID),
		notification.setPhone(phone),
		notification.setTemplateID(templateID),
		notification.setStatus(status),
	); err != nil {
		return nil, err
	}

	return notification, nil
}

// IsEqual compares two notifications by their unique identifiers.
func (n *Notification) IsEqual(other *Notification) bool {
	if other == nil {
		return false
	}
	return n.id.IsEqual(other.id)
}

// Validate checks if the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the unique identifier of the notification.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// OrderID returns the order the message is about.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// Phone returns the recipient phone.
func (n *Notification) Phone() kernel.Phone {
	return n.phone
}

// TemplateID returns the message template selector.
func (n *Notification) TemplateID() string {
	return n.templateID
}

// Params returns the JSON-encoded template parameters as stored.
func (n *Notification) Params() string {
	return n.params
}

// DecodeParams decodes the stored template parameters.
func (n *Notification) DecodeParams() (map[string]string, error) {
	if n.params == "" {
		return map[string]string{}, nil
	}

	var params map[string]string
	if err := json.Unmarshal([]byte(n.params), &params); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("params are invalid", err)
	}
	return params, nil
}

// Status returns the delivery state.
func (n *Notification) Status() Status {
	return n.status
}

// Attempts returns how many publish tries the relay has made.
func (n *Notification) Attempts() int {
	return n.attempts
}

// CreatedAt returns when the notification was enqueued.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns when the broker confirmed the publish.
// Returns nil before a confirmed publish.
func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}

// MarkSent records a broker-confirmed publish.
func (n *Notification) MarkSent(now time.Time) error {
	if n.status != Pending {
		return errs.NewStateTransitionIsInvalidError(
			"notification status", n.status.String(), Sent.String(),
		)
	}

	n.status = Sent
	n.attempts++
	n.sentAt = &now
	return nil
}

// MarkAttemptFailed records a failed publish try. The notification stays
// pending for the relay's next pass until maxAttempts is reached, then it is
// parked as failed.
func (n *Notification) MarkAttemptFailed(maxAttempts int) error {
	if maxAttempts <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxAttempts is invalid",
			fmt.Errorf("%d is not a positive attempt limit", maxAttempts),
		)
	}

	if n.status != Pending {
		return errs.NewStateTransitionIsInvalidError(
			"notification status", n.status.String(), Failed.String(),
		)
	}

	n.attempts++
	if n.attempts >= maxAttempts {
		n.status = Failed
	}
	return nil
}

// TemplateForStatus maps a garment status to the customer message its
// transition sends. The second return value is false for statuses that do
// not notify.
func TemplateForStatus(status order.Status) (string, bool) {
	switch status {
	case order.Ready:
		return TemplateOrderReady, true
	case order.OutForDelivery:
		return TemplateOrderOutForDelivery, true
	case order.Delivered:
		return TemplateOrderDelivered, true
	default:
		return "", false
	}
}

// CollectionReminderTemplate returns the reminder template for an escalation
// framing ("normal", "high", or "urgent").
func CollectionReminderTemplate(urgency string) string {
	return "collection_reminder_" + urgency
}

// setID sets the notification identifier with validation.
func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	n.id = id
	return nil
}

// setOrderID sets the subject order with validation.
func (n *Notification) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	n.orderID = orderID
	return nil
}

// setPhone sets the recipient with validation.
func (n *Notification) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	n.phone = phone
	return nil
}

// setTemplateID sets the template selector with validation.
func (n *Notification) setTemplateID(templateID string) error {
	if templateID == "" {
		return errs.NewValueIsRequiredError("templateID is required")
	}

	n.templateID = templateID
	return nil
}

// setParams encodes and sets the template parameters.
func (n *Notification) setParams(params map[string]string) error {
	if len(params) == 0 {
		n.params = "{}"
		return nil
	}

	encoded, err := json.Marshal(params)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("params are invalid", err)
	}

	n.params = string(encoded)
	return nil
}

// setStatus validates and sets the delivery state during restoration.
func (n *Notification) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	n.status = status
	return nil
}
