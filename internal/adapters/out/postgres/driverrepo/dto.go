// Package driverrepo persists transfer driver aggregates.
package driverrepo

import (
	"laundryops/internal/core/domain/model/driver"
	"laundryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	BranchID uuid.UUID `gorm:"type:uuid;index"`
	Phone    string
	Active   bool `gorm:"index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		BranchID: aggregate.BranchID().Bytes(),
		Phone:    aggregate.Phone().String(),
		Active:   aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a driver aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, branchID, phone, dto.Active)
}
