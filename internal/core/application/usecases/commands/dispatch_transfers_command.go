package commands

import (
	"errors"

	"laundryops/internal/pkg/guard"
)

var ErrDispatchTransfersCommandIsNotConstructed = errors.New(
	"DispatchTransfersCommand must be created via NewDispatchTransfersCommand constructor",
)

// DispatchTransfersCommand runs one pass of the transfer dispatch sweep:
// batch up satellite orders waiting for their main store and put each batch
// on the road with the least-loaded driver.
type DispatchTransfersCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchTransfersCommand creates a command to run the dispatch sweep.
func NewDispatchTransfersCommand() DispatchTransfersCommand {
	return DispatchTransfersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchTransfersCommandIsNotConstructed if validation fails.
func (c DispatchTransfersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchTransfersCommandIsNotConstructed)
}
