// Package branchrepo persists branch aggregates. Branches change rarely; the
// hot path is lookups during intake and routing.
package branchrepo

import (
	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BranchDTO represents the database structure for persisting branches.
type BranchDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	Code               string `gorm:"uniqueIndex"`
	Type               string
	MainStoreID        *uuid.UUID `gorm:"type:uuid"`
	SortingWindowHours int
}

// TableName specifies the database table name for branch entities.
func (BranchDTO) TableName() string {
	return "branches"
}

// fromDomain converts a branch aggregate to its database representation.
func fromDomain(aggregate *branch.Branch) BranchDTO {
	dto := BranchDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		Code:               aggregate.Code(),
		Type:               aggregate.Type().String(),
		SortingWindowHours: aggregate.SortingWindowHours(),
	}

	if mainStoreID := aggregate.MainStoreID(); mainStoreID != nil {
		raw := mainStoreID.Bytes()
		dto.MainStoreID = &raw
	}

	return dto
}

// toDomain converts a database DTO to a branch aggregate.
func toDomain(dto BranchDTO) (*branch.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchType, err := branch.BranchTypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	var mainStoreID *kernel.UUID
	if dto.MainStoreID != nil {
		converted, convErr := kernel.UUIDFromBytes((*dto.MainStoreID)[:])
		if convErr != nil {
			return nil, convErr
		}
		mainStoreID = &converted
	}

	return branch.RestoreBranch(id, dto.Name, dto.Code, branchType, mainStoreID, dto.SortingWindowHours)
}
