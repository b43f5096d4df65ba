package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrStartProcessingBatchCommandIsNotConstructed = errors.New(
	"StartProcessingBatchCommand must be created via NewStartProcessingBatchCommand constructor",
)

// StartProcessingBatchCommand starts a pending processing batch, moving all
// member orders into the batch stage together.
type StartProcessingBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartProcessingBatchCommand creates a command to start a batch.
func NewStartProcessingBatchCommand(batchID kernel.UUID) (StartProcessingBatchCommand, error) {
	startCommand := StartProcessingBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := startCommand.setBatchID(batchID); err != nil {
		return StartProcessingBatchCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartProcessingBatchCommandIsNotConstructed if validation fails.
func (c StartProcessingBatchCommand) Validate() error {
	return c.guard.Validate(ErrStartProcessingBatchCommandIsNotConstructed)
}

// BatchID returns the batch to start.
func (c StartProcessingBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c *StartProcessingBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}
