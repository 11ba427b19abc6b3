package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrProcessShipmentBatchCommandIsNotConstructed = errors.New(
	"ProcessShipmentBatchCommand must be created via NewProcessShipmentBatchCommand constructor",
)

// DefaultBatchSize is the number of shipments resolved per worker pass when
// no explicit batch size is requested.
const DefaultBatchSize = 10

// ProcessShipmentBatchCommand represents one pass of the deadline resolution
// worker: poll a batch of shipping identifiers from the queue and resolve
// each shipment against its deadline.
type ProcessShipmentBatchCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewProcessShipmentBatchCommand creates a command to resolve one batch.
// A zero batch size falls back to DefaultBatchSize; a negative one is
// rejected.
func NewProcessShipmentBatchCommand(batchSize int) (ProcessShipmentBatchCommand, error) {
	command := ProcessShipmentBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBatchSize(batchSize); err != nil {
		return ProcessShipmentBatchCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessShipmentBatchCommand) Validate() error {
	return c.guard.Validate(ErrProcessShipmentBatchCommandIsNotConstructed)
}

// BatchSize returns the maximum number of shipments resolved in this pass.
func (c ProcessShipmentBatchCommand) BatchSize() int {
	return c.batchSize
}

func (c *ProcessShipmentBatchCommand) setBatchSize(batchSize int) error {
	if batchSize < 0 {
		return errs.NewValueIsInvalidErrorWithCause("batchSize",
			fmt.Errorf("%d is negative", batchSize))
	}

	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}

	c.batchSize = batchSize
	return nil
}
