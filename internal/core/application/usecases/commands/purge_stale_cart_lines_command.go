package commands

import (
	"errors"
	"time"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrPurgeStaleCartLinesCommandIsNotConstructed = errors.New(
	"PurgeStaleCartLinesCommand must be created via NewPurgeStaleCartLinesCommand constructor",
)

// PurgeStaleCartLinesCommand represents a maintenance request to delete all
// cart lines added before the cutoff instant.
type PurgeStaleCartLinesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeStaleCartLinesCommand creates a stale cart purge command.
func NewPurgeStaleCartLinesCommand(cutoff time.Time) (PurgeStaleCartLinesCommand, error) {
	cmd := PurgeStaleCartLinesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return PurgeStaleCartLinesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeStaleCartLinesCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleCartLinesCommandIsNotConstructed)
}

// Cutoff returns the instant before which cart lines are purged.
func (c PurgeStaleCartLinesCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *PurgeStaleCartLinesCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}
	c.cutoff = cutoff
	return nil
}
