package aria

import (
	"errors"
	"fmt"

	"github.com/radonc-qa/aria-connector-go/aria/models"
)

var (
	// ErrPlanNotFound is returned when no plan matches the patient id
	// and plan label.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrNotResolved is returned by RetrieveSeries when the plan UIDs
	// have not been resolved yet.
	ErrNotResolved = errors.New("plan uids not resolved")
)

// AmbiguousPlanError is returned when more than one plan matches the
// patient id and plan label.
type AmbiguousPlanError struct {
	PatientID string
	PlanLabel string
	Matches   []models.Plan
}

func (e *AmbiguousPlanError) Error() string {
	return fmt.Sprintf("found %d plans labelled %q for patient %q, expected exactly one", len(e.Matches), e.PlanLabel, e.PatientID)
}
