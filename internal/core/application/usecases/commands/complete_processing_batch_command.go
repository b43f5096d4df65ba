package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrCompleteProcessingBatchCommandIsNotConstructed = errors.New(
	"CompleteProcessingBatchCommand must be created via NewCompleteProcessingBatchCommand constructor",
)

// CompleteProcessingBatchCommand completes an in-progress processing batch,
// advancing all member orders out of the batch stage together. For a
// quality check batch, failedOrderIDs names the members that failed the
// check and return to washing; it is ignored for every other stage.
type CompleteProcessingBatchCommand struct { //nolint:recvcheck //using for validation
	batchID        kernel.UUID
	failedOrderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteProcessingBatchCommand creates a command to complete a batch.
func NewCompleteProcessingBatchCommand(
	batchID kernel.UUID,
	failedOrderIDs []kernel.UUID,
) (CompleteProcessingBatchCommand, error) {
	completeCommand := CompleteProcessingBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setBatchID(batchID),
		completeCommand.setFailedOrderIDs(failedOrderIDs),
	); err != nil {
		return CompleteProcessingBatchCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteProcessingBatchCommandIsNotConstructed if validation fails.
func (c CompleteProcessingBatchCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProcessingBatchCommandIsNotConstructed)
}

// BatchID returns the batch to complete.
func (c CompleteProcessingBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// FailedOrderIDs returns the members that failed a quality check.
func (c CompleteProcessingBatchCommand) FailedOrderIDs() []kernel.UUID {
	return c.failedOrderIDs
}

func (c *CompleteProcessingBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CompleteProcessingBatchCommand) setFailedOrderIDs(failedOrderIDs []kernel.UUID) error {
	for _, id := range failedOrderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.failedOrderIDs = failedOrderIDs
	return nil
}
