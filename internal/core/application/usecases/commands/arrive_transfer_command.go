package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrArriveTransferCommandIsNotConstructed = errors.New(
	"ArriveTransferCommand must be created via NewArriveTransferCommand constructor",
)

// ArriveTransferCommand records a transfer batch reaching its main store,
// handing every member order over to intake together.
type ArriveTransferCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArriveTransferCommand creates a command to record a transfer arrival.
func NewArriveTransferCommand(batchID kernel.UUID) (ArriveTransferCommand, error) {
	arriveCommand := ArriveTransferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := arriveCommand.setBatchID(batchID); err != nil {
		return ArriveTransferCommand{}, err
	}

	return arriveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrArriveTransferCommandIsNotConstructed if validation fails.
func (c ArriveTransferCommand) Validate() error {
	return c.guard.Validate(ErrArriveTransferCommandIsNotConstructed)
}

// BatchID returns the arriving transfer batch.
func (c ArriveTransferCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c *ArriveTransferCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}
