// Package transferrepo persists transfer batch aggregates. Dispatch
// concurrency is resolved here: assigning a driver is a conditional write on
// the batch row, not a read-modify-write of the aggregate.
package transferrepo

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/transfer"

	"github.com/google/uuid"
)

// TransferBatchDTO represents the database structure for persisting transfer
// batches. DriverID stays NULL until a dispatcher wins the claim.
type TransferBatchDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SatelliteBranchID uuid.UUID  `gorm:"type:uuid;index"`
	MainStoreBranchID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID          *uuid.UUID `gorm:"type:uuid;index"`
	Status            string     `gorm:"index"`
	Members           []TransferBatchMemberDTO `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	DispatchedAt      *time.Time
	ArrivedAt         *time.Time
}

// TableName specifies the database table name for transfer batches.
func (TransferBatchDTO) TableName() string {
	return "transfer_batches"
}

// TransferBatchMemberDTO links one order into a transfer batch.
// Position preserves the order members were listed in at creation.
type TransferBatchMemberDTO struct {
	BatchID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position int
}

// TableName specifies the database table name for transfer batch members.
func (TransferBatchMemberDTO) TableName() string {
	return "transfer_batch_orders"
}

// fromDomain converts a transfer batch aggregate to its database
// representation.
func fromDomain(aggregate *transfer.TransferBatch) TransferBatchDTO {
	batchID := aggregate.ID().Bytes()

	members := make([]TransferBatchMemberDTO, 0, len(aggregate.OrderIDs()))
	for i, orderID := range aggregate.OrderIDs() {
		members = append(members, TransferBatchMemberDTO{
			BatchID:  batchID,
			OrderID:  orderID.Bytes(),
			Position: i,
		})
	}

	dto := TransferBatchDTO{
		ID:                batchID,
		SatelliteBranchID: aggregate.SatelliteBranchID().Bytes(),
		MainStoreBranchID: aggregate.MainStoreBranchID().Bytes(),
		Status:            aggregate.Status().String(),
		Members:           members,
		CreatedAt:         aggregate.CreatedAt(),
		DispatchedAt:      aggregate.DispatchedAt(),
		ArrivedAt:         aggregate.ArrivedAt(),
	}

	if driverID := aggregate.DriverID(); driverID != nil {
		raw := driverID.Bytes()
		dto.DriverID = &raw
	}

	return dto
}

// toDomain converts a database DTO to a transfer batch aggregate. Member rows
// are sorted by their stored position before restoration.
func toDomain(dto TransferBatchDTO) (*transfer.TransferBatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	satelliteBranchID, err := kernel.UUIDFromBytes(dto.SatelliteBranchID[:])
	if err != nil {
		return nil, err
	}

	mainStoreBranchID, err := kernel.UUIDFromBytes(dto.MainStoreBranchID[:])
	if err != nil {
		return nil, err
	}

	status, err := transfer.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		converted, convErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if convErr != nil {
			return nil, convErr
		}
		driverID = &converted
	}

	orderIDs := make([]kernel.UUID, len(dto.Members))
	for _, member := range dto.Members {
		orderID, memberErr := kernel.UUIDFromBytes(member.OrderID[:])
		if memberErr != nil {
			return nil, memberErr
		}
		orderIDs[member.Position] = orderID
	}

	return transfer.RestoreTransferBatch(
		id, satelliteBranchID, mainStoreBranchID, driverID, orderIDs, status,
		dto.CreatedAt, dto.DispatchedAt, dto.ArrivedAt,
	)
}
