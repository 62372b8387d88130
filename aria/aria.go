// Package aria retrieves radiotherapy portal and setup images from an
// Aria oncology information system over DICOM query/retrieve.
package aria

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/yasushi-saito/go-dicom"
	"github.com/yasushi-saito/go-dicom/dicomtag"

	"github.com/radonc-qa/aria-connector-go/aria/models"
	"github.com/radonc-qa/aria-connector-go/internals/scu"
)

type Aria struct {
	Local  models.Endpoint
	Remote models.Endpoint

	logger *slog.Logger
	qr     queryRetriever
	plan   *models.Plan
}

type queryRetriever interface {
	Find(level scu.Level, filter []*dicom.Element) ([]*dicom.DataSet, error)
	Get(filter []*dicom.Element, handle scu.InstanceHandler) error
}

type Option func(*Aria)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Aria) { a.logger = logger }
}

// WithDebug replaces the logger with one that logs every query and
// per-instance decision to stderr.
func WithDebug() Option {
	return func(a *Aria) {
		a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// Ping verifies that the remote application entity accepts an
// association from us.
func Ping(local models.Endpoint, remote models.Endpoint) error {
	return scu.NewClient(local, remote, nil).Echo()
}

func NewAria(local models.Endpoint, remote models.Endpoint, opts ...Option) *Aria {
	a := &Aria{Local: local, Remote: remote, logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	a.qr = scu.NewClient(local, remote, a.logger)
	return a
}

// Create validates both endpoints and resolves the plan UIDs, so the
// returned handle is ready for RetrieveSeries.
func Create(patientID string, planLabel string, local models.Endpoint, remote models.Endpoint, opts ...Option) (*Aria, error) {
	if err := local.Validate(); err != nil {
		return nil, fmt.Errorf("invalid local endpoint: %w", err)
	}
	if err := remote.Validate(); err != nil {
		return nil, fmt.Errorf("invalid remote endpoint: %w", err)
	}
	a := NewAria(local, remote, opts...)
	if _, err := a.ResolvePlanUIDs(patientID, planLabel); err != nil {
		return nil, err
	}
	return a, nil
}

// Plan returns the resolved plan, or nil before ResolvePlanUIDs.
func (a *Aria) Plan() *models.Plan {
	return a.plan
}

// ResolvePlanUIDs looks up the plan with the given label for the given
// patient and remembers its SOP instance and study UIDs. Exactly one
// plan must match.
func (a *Aria) ResolvePlanUIDs(patientID string, planLabel string) (*models.Plan, error) {
	if patientID == "" || planLabel == "" {
		return nil, errors.New("patient id and plan label must not be empty")
	}
	a.logger.Debug("resolving plan", "patient_id", patientID, "plan_label", planLabel)
	// Series is the deepest level the transport issues; the provider
	// matches the composite-object keys regardless.
	results, err := a.qr.Find(scu.LevelSeries, scu.PlanQuery(patientID, planLabel))
	if err != nil {
		return nil, fmt.Errorf("query plan %q for patient %q: %w", planLabel, patientID, err)
	}

	seen := make(map[string]bool)
	var matches []models.Plan
	for _, ds := range results {
		plan := models.Plan{
			PatientID: patientID,
			Label:     planLabel,
			PlanUID:   scu.StringValue(ds, dicomtag.SOPInstanceUID),
			StudyUID:  scu.StringValue(ds, dicomtag.StudyInstanceUID),
		}
		if plan.PlanUID == "" || seen[plan.PlanUID] {
			continue
		}
		seen[plan.PlanUID] = true
		matches = append(matches, plan)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no plan labelled %q for patient %q: %w", planLabel, patientID, ErrPlanNotFound)
	case 1:
		a.plan = &matches[0]
		a.logger.Debug("plan resolved", "plan_uid", a.plan.PlanUID, "study_uid", a.plan.StudyUID)
		return a.plan, nil
	default:
		return nil, &AmbiguousPlanError{PatientID: patientID, PlanLabel: planLabel, Matches: matches}
	}
}
