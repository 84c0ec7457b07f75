package order

import (
	"fmt"

	"littlelemon/internal/pkg/errs"
)

// Status represents the fulfillment state of an order. The source of record
// kept this as a boolean; it is modeled here as an explicit enum so invalid
// values are detectable and further states can be added without a schema
// rewrite.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after checkout; the order awaits
	// delivery.
	Pending

	// Delivered indicates the assigned delivery crew completed the order.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// StatusFromName parses a stored or request-supplied status name.
func StatusFromName(name string) (Status, error) {
	for s, n := range getValidStatusStrings() {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", name),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending and Delivered; Unknown (0) is invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
