package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle state of a tracked shipment.
//
// State transitions:
//
//	Ongoing ──> Finished ──> Archived ──> (removed from the store)
//
// Transitions are single-step and one-directional. Removal is not a status: an
// archived record past the retention window is simply deleted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ongoing is the only status a record may be inserted with. The provider has
	// picked the order up and the simulated transit delay is running.
	Ongoing

	// Finished is written by the shipment's completion task once the delay elapses.
	Finished

	// Archived is written by the status sweeper. Archived records are eligible for
	// deletion once the retention window has passed.
	Archived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Ongoing:  "Ongoing",
		Finished: "Finished",
		Archived: "Archived",
	}
}

// Validate checks that the status is one of Ongoing, Finished, Archived.
func (s Status) Validate() error {
	if s != Ongoing && s != Finished && s != Archived {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the status that directly follows s, or Unknown if s is terminal or invalid.
func (s Status) Next() Status {
	switch s {
	case Ongoing:
		return Finished
	case Finished:
		return Archived
	default:
		return Unknown
	}
}

// Finish transitions Ongoing to Finished.
//
// Returns:
//   - (Finished, nil) when s is Ongoing
//   - (0, error) for every other status, including Finished itself, so a second
//     completion for the same tracking id is rejected instead of silently applied
func (s Status) Finish() (Status, error) {
	if s != Ongoing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to finish", s.String()),
		)
	}
	return Finished, nil
}

// Archive transitions Finished to Archived.
func (s Status) Archive() (Status, error) {
	if s != Finished {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to archive", s.String()),
		)
	}
	return Archived, nil
}

// TransitionTo applies the single-step transition that ends in target.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Finished:
		return s.Finish()
	case Archived:
		return s.Archive()
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a reachable status from %s", target.String(), s.String()),
		)
	}
}
