package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer's dry-cleaning order. It is the aggregate root
// that manages the order lifecycle from intake through processing, routing
// between branches, and return to the customer.
//
// Order carries two correlated state fields: the garment-processing status
// (the Status state machine) and the routing status (where the order is in
// the inter-branch flow). Every move that touches both fields goes through
// one named method on this aggregate, which keeps the correlation invariants:
//
//   - While the order is waiting for or riding a transfer (routing pending or
//     in_transit), the garment status stays at received.
//   - Routing ready_for_return implies garment status queued_for_delivery.
//
// No call site mutates either field directly.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tagNumber is the human-readable ticket identifier printed on the garment tag
	tagNumber string

	// owningBranchID is the branch the customer handed the order in at
	owningBranchID kernel.UUID

	// processingBranchID is the branch cleaning the order (nil until routed)
	processingBranchID *kernel.UUID

	// status is the current garment-processing state
	status Status

	// routingStatus is the current inter-branch routing state
	routingStatus RoutingStatus

	// assignedStage is the workstation stage the order is assigned to (nil if none)
	assignedStage *Status

	// assignedStaffID is the staff member working the order (nil if unassigned)
	assignedStaffID *kernel.UUID

	// classification is the return method decided for the order
	classification Classification

	// classificationBasis records whether the classification is automatic or overridden
	classificationBasis Basis

	// overriddenBy, overriddenAt, and overrideReason describe the latest
	// classification override (zero values when never overridden)
	overriddenBy   *kernel.UUID
	overriddenAt   *time.Time
	overrideReason string

	// customerName is the customer's display name for notifications
	customerName string

	// customerPhone is the customer's contact number (nil when none on file)
	customerPhone *kernel.Phone

	// itemCount is the number of garments in the order
	itemCount int

	// totalAmount is the quoted price of the order
	totalAmount kernel.Money

	// paidAmount is the amount paid so far; it changes only through the
	// store's atomic increment, never through this aggregate
	paidAmount kernel.Money

	// paymentStatus is derived from totalAmount and paidAmount
	paymentStatus PaymentStatus

	// lifecycle timestamps
	createdAt          time.Time
	routedAt           *time.Time
	arrivedAt          *time.Time
	sortedAt           *time.Time
	earliestDeliveryAt *time.Time
	estimatedReadyAt   *time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order at intake. This is the only way to create
// a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - tagNumber: Human-readable ticket identifier (must not be empty)
//   - owningBranchID: The branch taking the order in
//   - customerName: Customer display name (must not be empty)
//   - customerPhone: Customer contact number (nil when none on file)
//   - itemCount: Number of garments (must be positive)
//   - totalAmount: Quoted price
//   - estimatedReadyAt: Estimated completion time quoted to the customer
//   - now: Intake time
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Aggregated validation errors, if any
//
// The created order starts at garment status received, routing status
// unrouted, automatic customer_collects classification, and an unpaid
// balance.
func NewOrder(
	id kernel.UUID,
	tagNumber string,
	owningBranchID kernel.UUID,
	customerName string,
	customerPhone *kernel.Phone,
	itemCount int,
	totalAmount kernel.Money,
	estimatedReadyAt time.Time,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:              Received,
		routingStatus:       RoutingUnrouted,
		classification:      CustomerCollects,
		classificationBasis: BasisAuto,
		paidAmount:          kernel.ZeroMoney(),
		paymentStatus:       PaymentUnpaid,
		createdAt:           now,
		isConstructed:       true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTagNumber(tagNumber),
		order.setOwningBranchID(owningBranchID),
		order.setCustomerName(customerName),
		order.setCustomerPhone(customerPhone),
		order.setItemCount(itemCount),
		order.setEstimatedReadyAt(estimatedReadyAt),
	); err != nil {
		return nil, err
	}

	order.totalAmount = totalAmount
	return order, nil
}

// RestoreOrderParams carries every persisted order field for reconstruction.
// The DTO layer fills it when loading an order from the database.
type RestoreOrderParams struct {
	ID                  kernel.UUID
	TagNumber           string
	OwningBranchID      kernel.UUID
	ProcessingBranchID  *kernel.UUID
	Status              Status
	RoutingStatus       RoutingStatus
	AssignedStage       *Status
	AssignedStaffID     *kernel.UUID
	Classification      Classification
	ClassificationBasis Basis
	OverriddenBy        *kernel.UUID
	OverriddenAt        *time.Time
	OverrideReason      string
	CustomerName        string
	CustomerPhone       *kernel.Phone
	ItemCount           int
	TotalAmount         kernel.Money
	PaidAmount          kernel.Money
	PaymentStatus       PaymentStatus
	CreatedAt           time.Time
	RoutedAt            *time.Time
	ArrivedAt           *time.Time
	SortedAt            *time.Time
	EarliestDeliveryAt  *time.Time
	EstimatedReadyAt    *time.Time
}

// RestoreOrder reconstructs an Order from persistent storage.
// Unlike NewOrder which creates fresh intake orders, this constructor restores
// an order to its previously persisted state, re-validating every field and
// the correlation invariants between the two state machines.
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Aggregated validation errors, if any
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		paidAmount:    params.PaidAmount,
		totalAmount:   params.TotalAmount,
		createdAt:     params.CreatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setTagNumber(params.TagNumber),
		order.setOwningBranchID(params.OwningBranchID),
		order.setCustomerName(params.CustomerName),
		order.setCustomerPhone(params.CustomerPhone),
		order.setItemCount(params.ItemCount),
		order.setProcessingBranchID(params.ProcessingBranchID),
		order.setAssignedStage(params.AssignedStage),
		order.setAssignedStaffID(params.AssignedStaffID),
		order.setStatus(params.Status),
		order.setRoutingStatus(params.RoutingStatus),
		order.setClassification(params.Classification, params.ClassificationBasis),
		order.setPaymentStatus(params.PaymentStatus),
	); err != nil {
		return nil, err
	}

	if params.OverriddenBy != nil {
		if err := params.OverriddenBy.Validate(); err != nil {
			return nil, err
		}
	}
	order.overriddenBy = params.OverriddenBy
	order.overriddenAt = params.OverriddenAt
	order.overrideReason = params.OverrideReason
	order.routedAt = params.RoutedAt
	order.arrivedAt = params.ArrivedAt
	order.sortedAt = params.SortedAt
	order.earliestDeliveryAt = params.EarliestDeliveryAt
	order.estimatedReadyAt = params.EstimatedReadyAt

	if err := order.validateStateCorrelation(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TagNumber returns the human-readable ticket identifier.
func (o *Order) TagNumber() string {
	return o.tagNumber
}

// OwningBranchID returns the branch the order was handed in at.
func (o *Order) OwningBranchID() kernel.UUID {
	return o.owningBranchID
}

// ProcessingBranchID returns the branch cleaning the order.
// Returns nil until the order has been routed.
func (o *Order) ProcessingBranchID() *kernel.UUID {
	return o.processingBranchID
}

// Status returns the current garment-processing status.
func (o *Order) Status() Status {
	return o.status
}

// RoutingStatus returns the current inter-branch routing status.
func (o *Order) RoutingStatus() RoutingStatus {
	return o.routingStatus
}

// AssignedStage returns the workstation stage the order is assigned to.
// Returns nil when no stage is assigned.
func (o *Order) AssignedStage() *Status {
	return o.assignedStage
}

// AssignedStaffID returns the staff member working the order.
// Returns nil when no staff member is assigned.
func (o *Order) AssignedStaffID() *kernel.UUID {
	return o.assignedStaffID
}

// Classification returns the return method decided for the order.
func (o *Order) Classification() Classification {
	return o.classification
}

// ClassificationBasis returns whether the classification is automatic or manual.
func (o *Order) ClassificationBasis() Basis {
	return o.classificationBasis
}

// OverriddenBy returns the actor of the latest classification override, if any.
func (o *Order) OverriddenBy() *kernel.UUID {
	return o.overriddenBy
}

// OverriddenAt returns when the latest classification override happened, if ever.
func (o *Order) OverriddenAt() *time.Time {
	return o.overriddenAt
}

// OverrideReason returns the reason of the latest classification override.
// Empty when the order was never overridden.
func (o *Order) OverrideReason() string {
	return o.overrideReason
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's contact number.
// Returns nil when no phone is on file.
func (o *Order) CustomerPhone() *kernel.Phone {
	return o.customerPhone
}

// ItemCount returns the number of garments in the order.
func (o *Order) ItemCount() int {
	return o.itemCount
}

// TotalAmount returns the quoted price of the order.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// PaidAmount returns the amount paid so far.
func (o *Order) PaidAmount() kernel.Money {
	return o.paidAmount
}

// PaymentStatus returns the derived settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns the intake time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// RoutedAt returns when the processing branch was resolved, if ever.
func (o *Order) RoutedAt() *time.Time {
	return o.routedAt
}

// ArrivedAt returns when the order arrived at its processing branch, if ever.
func (o *Order) ArrivedAt() *time.Time {
	return o.arrivedAt
}

// SortedAt returns when sorting completed and the order became ready, if ever.
func (o *Order) SortedAt() *time.Time {
	return o.sortedAt
}

// EarliestDeliveryAt returns the earliest time the order can be returned to
// the customer, computed when processing completes. Nil before that.
func (o *Order) EarliestDeliveryAt() *time.Time {
	return o.earliestDeliveryAt
}

// EstimatedReadyAt returns the completion estimate quoted at intake.
func (o *Order) EstimatedReadyAt() *time.Time {
	return o.estimatedReadyAt
}

// IsTransferred reports whether the order is processed at a branch other
// than its owning branch.
func (o *Order) IsTransferred() bool {
	return o.processingBranchID != nil && !o.processingBranchID.IsEqual(o.owningBranchID)
}

// RouteToWorkstation resolves where the order will be cleaned.
//
// Business rules:
//   - The order must not have been routed yet.
//   - A transfer-required order keeps its garment status at received and
//     waits for a transfer run (routing pending).
//   - An order processed at its owning branch is routing assigned, and a
//     received garment auto-advances to inspection.
//
// Parameters:
//   - processingBranchID: The resolved processing branch (the owning branch
//     itself, or the satellite's main store)
//   - transferRequired: Whether the order must ride a transfer run first
//   - now: Routing time
//
// Returns:
//   - nil on success
//   - error if the order was already routed or is in a terminal status
func (o *Order) RouteToWorkstation(processingBranchID kernel.UUID, transferRequired bool, now time.Time) error {
	if err := processingBranchID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"routingStatus", o.routingStatus.String(), RoutingPending.String(),
			fmt.Errorf("order is %s", o.status),
		)
	}

	if o.routingStatus != RoutingUnrouted {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"routingStatus", o.routingStatus.String(), RoutingPending.String(),
			errors.New("order is already routed"),
		)
	}

	o.processingBranchID = &processingBranchID
	o.routedAt = &now

	if transferRequired {
		o.routingStatus = RoutingPending
		return nil
	}

	o.routingStatus = RoutingAssigned
	if o.status == Received {
		o.status = Inspection
	}
	return nil
}

// MarkInTransit puts the order on a transfer run to its main store.
// Only a routing-pending order with its garment still at received can leave.
func (o *Order) MarkInTransit() error {
	if o.routingStatus != RoutingPending {
		return errs.NewStateTransitionIsInvalidError(
			"routingStatus", o.routingStatus.String(), RoutingInTransit.String(),
		)
	}

	if o.status != Received {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"routingStatus", o.routingStatus.String(), RoutingInTransit.String(),
			fmt.Errorf("garment status is %s, must stay at %s during a transfer", o.status, Received),
		)
	}

	o.routingStatus = RoutingInTransit
	return nil
}

// MarkReceived records the order's arrival at its processing branch:
// routing becomes received, the arrival time is stamped, and the garment
// advances to inspection.
//
// Arrival is accepted from both transfer legs so that hand-carried orders
// do not get stuck waiting for a dispatched run.
func (o *Order) MarkReceived(now time.Time) error {
	if !o.routingStatus.IsTransferLeg() {
		return errs.NewStateTransitionIsInvalidError(
			"routingStatus", o.routingStatus.String(), RoutingReceived.String(),
		)
	}

	if o.status != Received {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"routingStatus", o.routingStatus.String(), RoutingReceived.String(),
			fmt.Errorf("garment status is %s, must stay at %s during a transfer", o.status, Received),
		)
	}

	o.routingStatus = RoutingReceived
	o.arrivedAt = &now
	o.status = Inspection
	return nil
}

// AssignStage assigns the order to a workstation stage, optionally with a
// staff member, and sets routing to assigned.
//
// The stage must be a workstation stage the garment can legally move to from
// its current status. An inspected garment enters the pipeline at the queue,
// so its reachable stage is queued.
//
// Parameters:
//   - stage: Target workstation stage
//   - staffID: Staff member to assign (nil leaves the order unassigned)
//
// Returns:
//   - nil on success
//   - error if the stage is not a workstation stage, is not reachable from
//     the current garment status, or the order is not at its processing branch
func (o *Order) AssignStage(stage Status, staffID *kernel.UUID) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	if !stage.IsWorkstationStage() {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a workstation stage", stage),
		)
	}

	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return err
		}
	}

	if err := o.validateAtProcessingBranch(RoutingAssigned); err != nil {
		return err
	}

	current := o.status
	if current == Inspection {
		// inspected garments enter the pipeline at its head
		current = Received
	}

	if !current.CanTransitionTo(stage) {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"stage", o.status.String(), stage.String(),
			fmt.Errorf("%s is not reachable from %s", stage, o.status),
		)
	}

	o.assignedStage = &stage
	o.assignedStaffID = staffID
	o.routingStatus = RoutingAssigned
	return nil
}

// MarkProcessing records that workstation staff started working the order.
//
// Parameters:
//   - staffID: Staff member to record (nil keeps the current assignment)
//
// Returns:
//   - nil on success
//   - error if the order is not stage-assigned
func (o *Order) MarkProcessing(staffID *kernel.UUID) error {
	if o.routingStatus != RoutingAssigned {
		return errs.NewStateTransitionIsInvalidError(
			"routingStatus", o.routingStatus.String(), RoutingProcessing.String(),
		)
	}

	if o.assignedStage == nil {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"routingStatus", o.routingStatus.String(), RoutingProcessing.String(),
			errors.New("no workstation stage assigned"),
		)
	}

	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return err
		}
		o.assignedStaffID = staffID
	}

	o.routingStatus = RoutingProcessing
	return nil
}

// CompleteProcessing finishes the cleaning pipeline for the order: routing
// becomes ready_for_return, the garment moves to queued_for_delivery, and
// the earliest delivery time is computed from the sorting window.
//
// Parameters:
//   - now: Completion time
//   - sortingWindow: The processing branch's sorting window (must be positive;
//     callers fall back to the branch default when unconfigured)
//
// Returns:
//   - nil on success
//   - error if the garment is not at packaging or the order is not being
//     worked at its processing branch
func (o *Order) CompleteProcessing(now time.Time, sortingWindow time.Duration) error {
	if sortingWindow <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sortingWindow is invalid",
			fmt.Errorf("%s is not a positive duration", sortingWindow),
		)
	}

	if o.status != Packaging {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"status", o.status.String(), QueuedForDelivery.String(),
			errors.New("processing completes from packaging"),
		)
	}

	if o.routingStatus != RoutingAssigned && o.routingStatus != RoutingProcessing {
		return errs.NewStateTransitionIsInvalidError(
			"routingStatus", o.routingStatus.String(), RoutingReadyForReturn.String(),
		)
	}

	earliest := now.Add(sortingWindow)
	o.earliestDeliveryAt = &earliest
	o.routingStatus = RoutingReadyForReturn
	o.status = QueuedForDelivery
	return nil
}

// ChangeStatus is the staff-driven garment status move. It accepts the fixed
// table transitions plus the policy moves that sit outside the table:
//
//   - inspection -> queued: the garment enters the pipeline after inspection.
//   - queued_for_delivery -> ready: sorting completed; the sort time is
//     stamped and routing becomes received.
//   - ready -> disposed: disposal under the uncollected goods policy.
//   - received/inspection/queued -> cancelled: cancellation before washing
//     starts; the order leaves the routing flow.
//
// Any transition into ready stamps the sort time. Transitions are rejected
// outright when illegal; the order is never coerced to a nearby status.
// No garment moves while the order rides a transfer, and a transfer-pending
// order only accepts cancellation.
//
// Returns:
//   - nil on success
//   - error describing the rejected transition otherwise
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if o.routingStatus == RoutingInTransit {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"status", o.status.String(), next.String(),
			errors.New("order is on a transfer run"),
		)
	}

	if o.routingStatus == RoutingPending && next != Cancelled {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"status", o.status.String(), next.String(),
			errors.New("order is awaiting transfer"),
		)
	}

	switch {
	case o.status.CanTransitionTo(next):
		if o.status == Packaging && next == Ready && o.IsTransferred() {
			return errs.NewStateTransitionIsInvalidErrorWithCause(
				"status", o.status.String(), next.String(),
				errors.New("transferred orders return through processing completion"),
			)
		}

	case o.status == Inspection && next == Queued:
		// pipeline entry after inspection

	case o.status == QueuedForDelivery && next == Ready:
		// sorting completed, the order is back on the shelf
		o.routingStatus = RoutingReceived

	case o.status == Ready && next == Disposed:
		// uncollected goods disposal

	case next == Cancelled && o.canCancel():
		o.routingStatus = RoutingUnrouted

	default:
		return errs.NewStateTransitionIsInvalidError("status", o.status.String(), next.String())
	}

	if next == Ready {
		o.sortedAt = &now
	}

	o.status = next
	return nil
}

// ApplyAutoClassification applies the automatic return-method classification.
// A manual override is sticky: when the basis is manual, the call is a no-op
// and the manual classification stands.
func (o *Order) ApplyAutoClassification(classification Classification) error {
	if err := classification.Validate(); err != nil {
		return err
	}

	if o.classificationBasis == BasisManual {
		return nil
	}

	o.classification = classification
	o.classificationBasis = BasisAuto
	return nil
}

// OverrideClassification replaces the order's return-method classification by
// explicit staff decision and produces the append-only audit record that must
// be persisted atomically with the order.
//
// Business rules:
//   - Only manager-tier roles may override.
//   - Overriding to the current classification is rejected as a no-op.
//   - A non-empty reason is required.
//   - The basis becomes manual and stays manual until the next override.
//
// Parameters:
//   - actorID: Staff member performing the override
//   - actorRole: Their role (must be manager tier)
//   - newClassification: The classification to apply
//   - reason: Why the override is happening (must not be blank)
//   - now: Override time
//
// Returns:
//   - *ClassificationOverride: The audit record to persist with the order
//   - error: Validation error when any rule is violated; the order is untouched
func (o *Order) OverrideClassification(
	actorID kernel.UUID,
	actorRole Role,
	newClassification Classification,
	reason string,
	now time.Time,
) (*ClassificationOverride, error) {
	if err := actorID.Validate(); err != nil {
		return nil, err
	}

	if err := actorRole.Validate(); err != nil {
		return nil, err
	}

	if !actorRole.CanOverrideClassification() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%s cannot override the delivery classification", actorRole),
		)
	}

	if err := newClassification.Validate(); err != nil {
		return nil, err
	}

	if newClassification == o.classification {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"newClassification is invalid",
			fmt.Errorf("order is already classified as %s", o.classification),
		)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason is required")
	}

	record, err := NewClassificationOverride(
		kernel.NewUUID(),
		o.id,
		o.classification,
		newClassification,
		actorID,
		actorRole,
		reason,
		now,
	)
	if err != nil {
		return nil, err
	}

	o.classification = newClassification
	o.classificationBasis = BasisManual
	o.overriddenBy = &actorID
	o.overriddenAt = &now
	o.overrideReason = reason
	return record, nil
}

// canCancel reports whether the garment can still be cancelled: nothing has
// been washed yet.
func (o *Order) canCancel() bool {
	return o.status == Received || o.status == Inspection || o.status == Queued
}

// validateAtProcessingBranch checks the order is physically at its processing
// branch and available for workstation operations.
func (o *Order) validateAtProcessingBranch(target RoutingStatus) error {
	switch o.routingStatus {
	case RoutingReceived, RoutingAssigned, RoutingProcessing:
		return nil
	case RoutingUnrouted:
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"routingStatus", o.routingStatus.String(), target.String(),
			errors.New("order has not been routed"),
		)
	default:
		return errs.NewStateTransitionIsInvalidError(
			"routingStatus", o.routingStatus.String(), target.String(),
		)
	}
}

// validateStateCorrelation re-checks the invariants between the garment and
// routing state machines when restoring from persistence.
func (o *Order) validateStateCorrelation() error {
	if o.routingStatus.IsTransferLeg() && o.status != Received {
		return errs.NewValueIsInvalidErrorWithCause(
			"routingStatus is invalid",
			fmt.Errorf("%s routing requires garment status %s, found %s", o.routingStatus, Received, o.status),
		)
	}

	if o.routingStatus == RoutingReadyForReturn && o.status != QueuedForDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"routingStatus is invalid",
			fmt.Errorf("%s routing requires garment status %s, found %s", o.routingStatus, QueuedForDelivery, o.status),
		)
	}

	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTagNumber validates and sets the ticket identifier.
func (o *Order) setTagNumber(tagNumber string) error {
	if strings.TrimSpace(tagNumber) == "" {
		return errs.NewValueIsRequiredError("tagNumber is required")
	}
	o.tagNumber = tagNumber
	return nil
}

// setOwningBranchID validates and sets the branch the order belongs to.
func (o *Order) setOwningBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	o.owningBranchID = branchID
	return nil
}

// setProcessingBranchID validates and sets the branch cleaning the order.
// Used during restoration; routing sets the field through RouteToWorkstation.
func (o *Order) setProcessingBranchID(branchID *kernel.UUID) error {
	if branchID != nil {
		if err := branchID.Validate(); err != nil {
			return err
		}
	}
	o.processingBranchID = branchID
	return nil
}

// setCustomerName validates and sets the customer's display name.
func (o *Order) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customerName is required")
	}
	o.customerName = name
	return nil
}

// setCustomerPhone validates and sets the customer's contact number.
// A nil phone is allowed: reminders are skipped when no phone is on file.
func (o *Order) setCustomerPhone(phone *kernel.Phone) error {
	if phone != nil {
		if err := phone.Validate(); err != nil {
			return err
		}
	}
	o.customerPhone = phone
	return nil
}

// setItemCount validates and sets the garment count.
// The count must be positive.
func (o *Order) setItemCount(itemCount int) error {
	if itemCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemCount is invalid",
			fmt.Errorf("%d is not greater than 0", itemCount),
		)
	}
	o.itemCount = itemCount
	return nil
}

// setEstimatedReadyAt validates and sets the intake completion estimate.
func (o *Order) setEstimatedReadyAt(estimatedReadyAt time.Time) error {
	if estimatedReadyAt.IsZero() {
		return errs.NewValueIsRequiredError("estimatedReadyAt is required")
	}
	o.estimatedReadyAt = &estimatedReadyAt
	return nil
}

// setAssignedStage validates and sets the assigned stage during restoration.
func (o *Order) setAssignedStage(stage *Status) error {
	if stage != nil {
		if err := stage.Validate(); err != nil {
			return err
		}
		if !stage.IsWorkstationStage() {
			return errs.NewValueIsInvalidErrorWithCause(
				"stage is invalid",
				fmt.Errorf("%s is not a workstation stage", stage),
			)
		}
	}
	o.assignedStage = stage
	return nil
}

// setAssignedStaffID validates and sets the assigned staff during restoration.
func (o *Order) setAssignedStaffID(staffID *kernel.UUID) error {
	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return err
		}
	}
	o.assignedStaffID = staffID
	return nil
}

// setStatus validates and sets the garment status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setRoutingStatus validates and sets the routing status during restoration.
func (o *Order) setRoutingStatus(routingStatus RoutingStatus) error {
	if err := routingStatus.Validate(); err != nil {
		return err
	}
	o.routingStatus = routingStatus
	return nil
}

// setClassification validates and sets the classification pair during restoration.
func (o *Order) setClassification(classification Classification, basis Basis) error {
	if err := classification.Validate(); err != nil {
		return err
	}
	if err := basis.Validate(); err != nil {
		return err
	}
	o.classification = classification
	o.classificationBasis = basis
	return nil
}

// setPaymentStatus validates and sets the derived settlement state during restoration.
func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}
