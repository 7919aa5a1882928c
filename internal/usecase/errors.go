package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"underwriting_service/internal/domain/entities"
)

var (
	ErrProposalNotFound       = errors.New("proposal not found")
	ErrProposalAlreadyExists  = errors.New("proposal already exists")
	ErrInvalidProposalID      = errors.New("invalid proposal id")
	ErrIllegalTransition      = errors.New("illegal lifecycle transition")
	ErrInvalidState           = errors.New("operation not allowed in the current lifecycle state")
	ErrVersionConflict        = errors.New("proposal was modified concurrently")
	ErrValidation             = errors.New("validation failed")
	ErrZeroPremiumUnconfirmed = errors.New("zero total premium requires explicit confirmation")
	ErrCoverageNotFound       = errors.New("coverage line not found")
	ErrStoreUnavailable       = errors.New("proposal store unavailable")

	ErrArtifactNotFound        = errors.New("payment artifact not found")
	ErrArtifactAlreadyConsumed = errors.New("payment artifact already consumed")
	ErrArtifactInvalidated     = errors.New("payment artifact invalidated")
	ErrInvalidPaymentToken     = errors.New("invalid payment token")
	ErrAuthCodeCollision       = errors.New("auth code collision")

	ErrPaymentLinkUpstream    = errors.New("payment link provider failed")
	ErrPaymentLinkUnavailable = errors.New("payment link provider not configured")
)

// TransitionError carries the status a rejected operation observed.
type TransitionError struct {
	Current entities.ProposalStatus
	Target  entities.ProposalStatus
	Err     error
}

func (e *TransitionError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%v: current=%s", e.Err, e.Current)
	}
	return fmt.Sprintf("%v: current=%s target=%s", e.Err, e.Current, e.Target)
}

func (e *TransitionError) Unwrap() error { return e.Err }

func illegal(current, target entities.ProposalStatus) error {
	return &TransitionError{Current: current, Target: target, Err: ErrIllegalTransition}
}

func invalidState(current, target entities.ProposalStatus) error {
	return &TransitionError{Current: current, Target: target, Err: ErrInvalidState}
}

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every offending field of one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// orNil returns nil when no field was reported.
func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// withStoreTimeout bounds a store round trip.
func withStoreTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// storeErr maps deadline failures to ErrStoreUnavailable.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
