// Package batchrepo persists processing batch aggregates. A batch row carries
// its member order ids as child rows; member state itself lives in the orders
// table and moves through the order repository.
package batchrepo

import (
	"time"

	"laundryops/internal/core/domain/model/batch"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ProcessingBatchDTO represents the database structure for persisting
// processing batches.
type ProcessingBatchDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BranchID    uuid.UUID `gorm:"type:uuid;index"`
	Stage       string
	Status      string                      `gorm:"index"`
	Members     []ProcessingBatchMemberDTO  `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
	Staff       []ProcessingBatchStaffDTO   `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for processing batches.
func (ProcessingBatchDTO) TableName() string {
	return "processing_batches"
}

// ProcessingBatchMemberDTO links one order into a processing batch.
// Position preserves the order members were listed in at creation.
type ProcessingBatchMemberDTO struct {
	BatchID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position int
}

// TableName specifies the database table name for batch members.
func (ProcessingBatchMemberDTO) TableName() string {
	return "processing_batch_orders"
}

// ProcessingBatchStaffDTO links one staff member to a processing batch.
type ProcessingBatchStaffDTO struct {
	BatchID uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for batch staff links.
func (ProcessingBatchStaffDTO) TableName() string {
	return "processing_batch_staff"
}

// fromDomain converts a processing batch aggregate to its database
// representation.
func fromDomain(aggregate *batch.ProcessingBatch) ProcessingBatchDTO {
	batchID := aggregate.ID().Bytes()

	members := make([]ProcessingBatchMemberDTO, 0, len(aggregate.OrderIDs()))
	for i, orderID := range aggregate.OrderIDs() {
		members = append(members, ProcessingBatchMemberDTO{
			BatchID:  batchID,
			OrderID:  orderID.Bytes(),
			Position: i,
		})
	}

	staff := make([]ProcessingBatchStaffDTO, 0, len(aggregate.StaffIDs()))
	for _, staffID := range aggregate.StaffIDs() {
		staff = append(staff, ProcessingBatchStaffDTO{
			BatchID: batchID,
			StaffID: staffID.Bytes(),
		})
	}

	return ProcessingBatchDTO{
		ID:          batchID,
		BranchID:    aggregate.BranchID().Bytes(),
		Stage:       aggregate.Stage().String(),
		Status:      aggregate.Status().String(),
		Members:     members,
		Staff:       staff,
		CreatedAt:   aggregate.CreatedAt(),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a processing batch aggregate. Member
// rows are sorted by their stored position before restoration.
func toDomain(dto ProcessingBatchDTO) (*batch.ProcessingBatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	stage, err := order.StatusFromString(dto.Stage)
	if err != nil {
		return nil, err
	}

	status, err := batch.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, len(dto.Members))
	for _, member := range dto.Members {
		orderID, memberErr := kernel.UUIDFromBytes(member.OrderID[:])
		if memberErr != nil {
			return nil, memberErr
		}
		orderIDs[member.Position] = orderID
	}

	staffIDs := make([]kernel.UUID, 0, len(dto.Staff))
	for _, link := range dto.Staff {
		staffID, staffErr := kernel.UUIDFromBytes(link.StaffID[:])
		if staffErr != nil {
			return nil, staffErr
		}
		staffIDs = append(staffIDs, staffID)
	}

	return batch.RestoreProcessingBatch(
		id, branchID, stage, orderIDs, staffIDs, status,
		dto.CreatedAt, dto.StartedAt, dto.CompletedAt,
	)
}
