// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses and classifications are stored as their wire names so the rows
// stay readable and the bulk conditional updates can match on them directly.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TagNumber           string     `gorm:"uniqueIndex"`
	OwningBranchID      uuid.UUID  `gorm:"type:uuid;index"`
	ProcessingBranchID  *uuid.UUID `gorm:"type:uuid;index"`
	Status              string     `gorm:"index"`
	RoutingStatus       string     `gorm:"index"`
	AssignedStage       *string
	AssignedStaffID     *uuid.UUID `gorm:"type:uuid"`
	Classification      string
	ClassificationBasis string
	OverriddenBy        *uuid.UUID `gorm:"type:uuid"`
	OverriddenAt        *time.Time
	OverrideReason      string
	CustomerName        string
	CustomerPhone       *string
	ItemCount           int
	TotalAmount         kernel.Money `gorm:"type:decimal(20,2)"`
	PaidAmount          kernel.Money `gorm:"type:decimal(20,2)"`
	PaymentStatus       string
	CreatedAt           time.Time
	RoutedAt            *time.Time
	ArrivedAt           *time.Time
	SortedAt            *time.Time
	EarliestDeliveryAt  *time.Time
	EstimatedReadyAt    *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PaymentDTO represents one row of the append-only payment ledger.
type PaymentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Amount    kernel.Money `gorm:"type:decimal(20,2)"`
	Method    string
	CreatedAt time.Time
}

// TableName specifies the database table name for payment ledger entries.
func (PaymentDTO) TableName() string {
	return "order_payments"
}

// ClassificationOverrideDTO represents one classification override audit row.
type ClassificationOverrideDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID                uuid.UUID `gorm:"type:uuid;index"`
	PreviousClassification string
	NewClassification      string
	ActorID                uuid.UUID `gorm:"type:uuid"`
	ActorRole              string
	Reason                 string
	CreatedAt              time.Time
}

// TableName specifies the database table name for override audit rows.
func (ClassificationOverrideDTO) TableName() string {
	return "classification_overrides"
}

// TagSequenceDTO holds the per-branch, per-day intake counter that feeds tag
// number generation. The counter advances through an atomic upsert, never
// through this struct.
type TagSequenceDTO struct {
	BranchID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day      string    `gorm:"primaryKey"`
	Counter  int64
}

// TableName specifies the database table name for tag counters.
func (TagSequenceDTO) TableName() string {
	return "tag_sequences"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		TagNumber:           aggregate.TagNumber(),
		OwningBranchID:      aggregate.OwningBranchID().Bytes(),
		ProcessingBranchID:  uuidPtr(aggregate.ProcessingBranchID()),
		Status:              aggregate.Status().String(),
		RoutingStatus:       aggregate.RoutingStatus().String(),
		AssignedStaffID:     uuidPtr(aggregate.AssignedStaffID()),
		Classification:      aggregate.Classification().String(),
		ClassificationBasis: aggregate.ClassificationBasis().String(),
		OverriddenBy:        uuidPtr(aggregate.OverriddenBy()),
		OverriddenAt:        aggregate.OverriddenAt(),
		OverrideReason:      aggregate.OverrideReason(),
		CustomerName:        aggregate.CustomerName(),
		ItemCount:           aggregate.ItemCount(),
		TotalAmount:         aggregate.TotalAmount(),
		PaidAmount:          aggregate.PaidAmount(),
		PaymentStatus:       aggregate.PaymentStatus().String(),
		CreatedAt:           aggregate.CreatedAt(),
		RoutedAt:            aggregate.RoutedAt(),
		ArrivedAt:           aggregate.ArrivedAt(),
		SortedAt:            aggregate.SortedAt(),
		EarliestDeliveryAt:  aggregate.EarliestDeliveryAt(),
		EstimatedReadyAt:    aggregate.EstimatedReadyAt(),
	}

	if stage := aggregate.AssignedStage(); stage != nil {
		raw := stage.String()
		dto.AssignedStage = &raw
	}
	if phone := aggregate.CustomerPhone(); phone != nil {
		raw := phone.String()
		dto.CustomerPhone = &raw
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate, re-parsing
// the persisted wire names and re-validating the correlation invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	owningBranchID, err := kernel.UUIDFromBytes(dto.OwningBranchID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	routingStatus, err := order.RoutingStatusFromString(dto.RoutingStatus)
	if err != nil {
		return nil, err
	}

	classification, err := order.ClassificationFromString(dto.Classification)
	if err != nil {
		return nil, err
	}

	basis, err := order.BasisFromString(dto.ClassificationBasis)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	params := order.RestoreOrderParams{
		ID:                  id,
		TagNumber:           dto.TagNumber,
		OwningBranchID:      owningBranchID,
		Status:              status,
		RoutingStatus:       routingStatus,
		Classification:      classification,
		ClassificationBasis: basis,
		OverriddenAt:        dto.OverriddenAt,
		OverrideReason:      dto.OverrideReason,
		CustomerName:        dto.CustomerName,
		ItemCount:           dto.ItemCount,
		TotalAmount:         dto.TotalAmount,
		PaidAmount:          dto.PaidAmount,
		PaymentStatus:       paymentStatus,
		CreatedAt:           dto.CreatedAt,
		RoutedAt:            dto.RoutedAt,
		ArrivedAt:           dto.ArrivedAt,
		SortedAt:            dto.SortedAt,
		EarliestDeliveryAt:  dto.EarliestDeliveryAt,
		EstimatedReadyAt:    dto.EstimatedReadyAt,
	}

	if params.ProcessingBranchID, err = kernelUUIDPtr(dto.ProcessingBranchID); err != nil {
		return nil, err
	}
	if params.AssignedStaffID, err = kernelUUIDPtr(dto.AssignedStaffID); err != nil {
		return nil, err
	}
	if params.OverriddenBy, err = kernelUUIDPtr(dto.OverriddenBy); err != nil {
		return nil, err
	}

	if dto.AssignedStage != nil {
		stage, stageErr := order.StatusFromString(*dto.AssignedStage)
		if stageErr != nil {
			return nil, stageErr
		}
		params.AssignedStage = &stage
	}

	if dto.CustomerPhone != nil {
		phone, phoneErr := kernel.NewPhone(*dto.CustomerPhone)
		if phoneErr != nil {
			return nil, phoneErr
		}
		params.CustomerPhone = &phone
	}

	return order.RestoreOrder(params)
}

// paymentFromDomain converts a ledger entry to its database representation.
func paymentFromDomain(record *order.PaymentRecord) PaymentDTO {
	return PaymentDTO{
		ID:        record.ID().Bytes(),
		OrderID:   record.OrderID().Bytes(),
		Amount:    record.Amount(),
		Method:    record.Method().String(),
		CreatedAt: record.CreatedAt(),
	}
}

// overrideFromDomain converts an override audit record to its database
// representation.
func overrideFromDomain(record *order.ClassificationOverride) ClassificationOverrideDTO {
	return ClassificationOverrideDTO{
		ID:                     record.ID().Bytes(),
		OrderID:                record.OrderID().Bytes(),
		PreviousClassification: record.PreviousClassification().String(),
		NewClassification:      record.NewClassification().String(),
		ActorID:                record.ActorID().Bytes(),
		ActorRole:              record.ActorRole().String(),
		Reason:                 record.Reason(),
		CreatedAt:              record.CreatedAt(),
	}
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
