// Package lifecycle holds the proposal transition table.
//
//	SUBMITTED -> UNDERWRITING_CONFIRMED -> PAID -> POLICY_ISSUED -> COMPLETED
//	SUBMITTED -> REJECTED
//
// REJECTED and COMPLETED are terminal. There is no reopen.
package lifecycle

import (
	"time"

	"underwriting_service/internal/domain/entities"
)

var successors = map[entities.ProposalStatus][]entities.ProposalStatus{
	entities.StatusSubmitted:             {entities.StatusUnderwritingConfirmed, entities.StatusRejected},
	entities.StatusUnderwritingConfirmed: {entities.StatusPaid},
	entities.StatusPaid:                  {entities.StatusPolicyIssued},
	entities.StatusPolicyIssued:          {entities.StatusCompleted},
	entities.StatusCompleted:             nil,
	entities.StatusRejected:              nil,
}

// Known reports whether s is a lifecycle status.
func Known(s entities.ProposalStatus) bool {
	_, ok := successors[s]
	return ok
}

// Successors returns the statuses reachable from s in one step.
func Successors(s entities.ProposalStatus) []entities.ProposalStatus {
	next := successors[s]
	out := make([]entities.ProposalStatus, len(next))
	copy(out, next)
	return out
}

// CanAdvance reports whether to is a legal one-step successor of from.
func CanAdvance(from, to entities.ProposalStatus) bool {
	for _, s := range successors[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no successors.
func IsTerminal(s entities.ProposalStatus) bool {
	next, ok := successors[s]
	return ok && len(next) == 0
}

// Stamp sets the timestamp field that belongs to status s.
func Stamp(p *entities.Proposal, s entities.ProposalStatus, at time.Time) {
	t := at
	switch s {
	case entities.StatusSubmitted:
		p.SubmittedAt = t
	case entities.StatusUnderwritingConfirmed:
		p.ConfirmedAt = &t
	case entities.StatusRejected:
		p.RejectedAt = &t
	case entities.StatusPaid:
		p.PaidAt = &t
	case entities.StatusPolicyIssued:
		p.IssuedAt = &t
	case entities.StatusCompleted:
		p.CompletedAt = &t
	}
}

// TimestampAttribute is the persisted attribute name stamped when entering s.
func TimestampAttribute(s entities.ProposalStatus) string {
	switch s {
	case entities.StatusSubmitted:
		return "submitted_at"
	case entities.StatusUnderwritingConfirmed:
		return "confirmed_at"
	case entities.StatusRejected:
		return "rejected_at"
	case entities.StatusPaid:
		return "paid_at"
	case entities.StatusPolicyIssued:
		return "issued_at"
	case entities.StatusCompleted:
		return "completed_at"
	}
	return ""
}

// MainPath is the happy-path order, used to validate audited histories.
var MainPath = []entities.ProposalStatus{
	entities.StatusSubmitted,
	entities.StatusUnderwritingConfirmed,
	entities.StatusPaid,
	entities.StatusPolicyIssued,
	entities.StatusCompleted,
}

// ValidSequence reports whether seq is a prefix of MainPath or SUBMITTED then REJECTED.
func ValidSequence(seq []entities.ProposalStatus) bool {
	if len(seq) == 0 {
		return true
	}
	if len(seq) == 2 && seq[0] == entities.StatusSubmitted && seq[1] == entities.StatusRejected {
		return true
	}
	if len(seq) > len(MainPath) {
		return false
	}
	for i, s := range seq {
		if MainPath[i] != s {
			return false
		}
	}
	return true
}
