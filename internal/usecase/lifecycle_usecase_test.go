package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/domain/lifecycle"
	"underwriting_service/internal/usecase/interfaces"
	mock_interfaces "underwriting_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLifecycleUseCase_Advance(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewLifecycleUseCase(nil, LifecycleOptions{}, nil)
		_, err := uc.Advance(context.Background(), AdvanceRequest{ProposalID: "  ", Target: entities.StatusPaid})
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		uc := NewLifecycleUseCase(nil, LifecycleOptions{}, nil)
		_, err := uc.Advance(context.Background(), AdvanceRequest{ProposalID: "p-1", Target: "REOPENED"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{}, nil)

		_, err := uc.Advance(context.Background(), AdvanceRequest{ProposalID: " p-1 ", Target: entities.StatusPaid})
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("illegal transition carries current status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusSubmitted, Version: 1}, nil)

		_, err := uc.Advance(context.Background(), AdvanceRequest{ProposalID: "p-1", Target: entities.StatusPaid})
		var te *TransitionError
		if !errors.Is(err, ErrIllegalTransition) || !errors.As(err, &te) || te.Current != entities.StatusSubmitted {
			t.Fatalf("expected illegal transition from SUBMITTED, got %v", err)
		}
	})

	t.Run("terminal status never moves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusRejected, Version: 2}, nil).Times(2)

		for _, target := range []entities.ProposalStatus{entities.StatusSubmitted, entities.StatusUnderwritingConfirmed} {
			if _, err := uc.Advance(context.Background(), AdvanceRequest{ProposalID: "p-1", Target: target}); !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("expected illegal transition to %s, got %v", target, err)
			}
		}
	})

	t.Run("same target is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)

		stored := entities.Proposal{ID: "p-1", Status: entities.StatusPaid, Version: 4}
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(stored, nil)

		got, err := uc.MarkPaid(context.Background(), "p-1", "customer")
		if err != nil || got.Version != 4 {
			t.Fatalf("expected unchanged proposal, got %+v err=%v", got, err)
		}
	})

	t.Run("same target with side effects is invalid state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusUnderwritingConfirmed, Version: 2}, nil)

		_, err := uc.Advance(context.Background(), AdvanceRequest{
			ProposalID: "p-1",
			Target:     entities.StatusUnderwritingConfirmed,
			Decision:   &entities.Decision{Acceptance: entities.AcceptanceAccept},
		})
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("version mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusSubmitted, Version: 3}, nil)

		_, err := uc.Advance(context.Background(), AdvanceRequest{ProposalID: "p-1", Target: entities.StatusRejected, ExpectedVersion: 2})
		if !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("terminal target invalidates live artifact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)
		at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return at }

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusPolicyIssued, Version: 5, AuthCode: "K7P2QX"}, nil)
		repo.EXPECT().Transition(gomock.Any(), gomock.AssignableToTypeOf(interfaces.TransitionCommand{})).DoAndReturn(
			func(_ context.Context, cmd interfaces.TransitionCommand) (entities.Proposal, error) {
				if cmd.From != entities.StatusPolicyIssued || cmd.To != entities.StatusCompleted {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if cmd.InvalidateAuthCode != "K7P2QX" {
					t.Fatalf("expected artifact invalidation, got %q", cmd.InvalidateAuthCode)
				}
				if cmd.Change.Actor != "ops" || !cmd.Change.At.Equal(at) {
					t.Fatalf("unexpected audit entry: %+v", cmd.Change)
				}
				return entities.Proposal{ID: "p-1", Status: entities.StatusCompleted, Version: 6}, nil
			},
		)

		got, err := uc.Archive(context.Background(), "p-1", "ops")
		if err != nil || got.Status != entities.StatusCompleted {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})

	t.Run("lost race to the same target returns current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusUnderwritingConfirmed, Version: 2}, nil),
			repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, interfaces.ErrConditionFailed),
			repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusPaid, Version: 3}, nil),
		)

		got, err := uc.MarkPaid(context.Background(), "p-1", "customer")
		if err != nil || got.Status != entities.StatusPaid {
			t.Fatalf("expected PAID, got %+v err=%v", got, err)
		}
	})

	t.Run("lost race with unchanged status is a version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusSubmitted, Version: 1}, nil),
			repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, interfaces.ErrConditionFailed),
			repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusSubmitted, Version: 2}, nil),
		)

		_, err := uc.Advance(context.Background(), AdvanceRequest{ProposalID: "p-1", Target: entities.StatusRejected, ExpectedVersion: 1})
		if !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("duplicate artifact key is a collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusSubmitted, Version: 1}, nil)
		repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, interfaces.ErrDuplicateKey)

		_, err := uc.Advance(context.Background(), AdvanceRequest{
			ProposalID: "p-1",
			Target:     entities.StatusUnderwritingConfirmed,
			Artifact:   &entities.PaymentArtifact{AuthCode: "AAAAAA"},
		})
		if !errors.Is(err, ErrAuthCodeCollision) {
			t.Fatalf("expected ErrAuthCodeCollision, got %v", err)
		}
	})

	t.Run("store deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{StoreTimeout: time.Millisecond}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{}, context.DeadlineExceeded)

		_, err := uc.MarkPaid(context.Background(), "p-1", "customer")
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestLifecycleUseCase_FullPathIsAudited(t *testing.T) {
	s := newStack(t, nil)
	res := s.accept(t, "p-1")
	ctx := context.Background()

	if _, err := s.lifecycle.MarkPaid(ctx, "p-1", "customer"); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	issued, err := s.lifecycle.IssuePolicy(ctx, "p-1", "ops")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !strings.HasPrefix(issued.PolicyNo, "POL-") || len(issued.PolicyNo) != len("POL-20260301-ABCDEFGH") {
		t.Fatalf("unexpected policy number %q", issued.PolicyNo)
	}
	again, err := s.lifecycle.IssuePolicy(ctx, "p-1", "ops")
	if err != nil || again.PolicyNo != issued.PolicyNo || again.Version != issued.Version {
		t.Fatalf("issue must be idempotent, got %+v err=%v", again, err)
	}
	done, err := s.lifecycle.Archive(ctx, "p-1", "ops")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}

	seq := []entities.ProposalStatus{}
	for _, h := range done.History {
		seq = append(seq, h.To)
	}
	if !lifecycle.ValidSequence(seq) || len(seq) != len(lifecycle.MainPath) {
		t.Fatalf("unexpected history: %v", seq)
	}
	if done.ConfirmedAt == nil || done.PaidAt == nil || done.IssuedAt == nil || done.CompletedAt == nil {
		t.Fatalf("expected every timestamp stamped: %+v", done)
	}

	a, _ := s.store.GetByAuthCode(ctx, res.Artifact.AuthCode)
	if a.InvalidatedAt == nil {
		t.Fatalf("artifact must be invalidated once COMPLETED")
	}
	if _, err := s.lifecycle.MarkPaid(ctx, "p-1", "ops"); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected illegal transition out of COMPLETED, got %v", err)
	}
}

func TestLifecycleUseCase_IssuePolicy(t *testing.T) {
	t.Run("before payment is illegal by default", func(t *testing.T) {
		s := newStack(t, nil)
		s.accept(t, "p-1")
		_, err := s.lifecycle.IssuePolicy(context.Background(), "p-1", "ops")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("reserve before payment when allowed", func(t *testing.T) {
		s := newStack(t, nil)
		s.lifecycle.opts.AllowIssueBeforePayment = true
		s.lifecycle.policyNo = func(time.Time) string { return "POL-20260301-RESERVED" }
		s.accept(t, "p-1")
		ctx := context.Background()

		reserved, err := s.lifecycle.IssuePolicy(ctx, "p-1", "ops")
		if err != nil || reserved.Status != entities.StatusUnderwritingConfirmed || reserved.PolicyNo != "POL-20260301-RESERVED" {
			t.Fatalf("unexpected reservation %+v err=%v", reserved, err)
		}

		s.lifecycle.policyNo = func(time.Time) string { return "POL-20260301-OTHER000" }
		if _, err := s.lifecycle.MarkPaid(ctx, "p-1", "customer"); err != nil {
			t.Fatalf("mark paid: %v", err)
		}
		issued, err := s.lifecycle.IssuePolicy(ctx, "p-1", "ops")
		if err != nil || issued.Status != entities.StatusPolicyIssued || issued.PolicyNo != "POL-20260301-RESERVED" {
			t.Fatalf("reserved number must survive issuance, got %+v err=%v", issued, err)
		}
	})

	t.Run("rejected proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewLifecycleUseCase(repo, LifecycleOptions{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.StatusRejected}, nil)

		if _, err := uc.IssuePolicy(context.Background(), "p-1", "ops"); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestLifecycleUseCase_UpdateLifecycle(t *testing.T) {
	s := newStack(t, nil)
	s.accept(t, "p-1")
	ctx := context.Background()

	if _, err := s.lifecycle.UpdateLifecycle(ctx, "p-1", "REJECTED", "ops"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for decision statuses, got %v", err)
	}
	p, err := s.lifecycle.UpdateLifecycle(ctx, "p-1", " paid ", "ops")
	if err != nil || p.Status != entities.StatusPaid {
		t.Fatalf("expected PAID, got %+v err=%v", p, err)
	}
	if _, err := s.lifecycle.UpdateLifecycle(ctx, "p-1", entities.StatusCompleted, "ops"); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected skip to be illegal, got %v", err)
	}
}
