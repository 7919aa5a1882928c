package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/domain/lifecycle"
	"underwriting_service/internal/domain/premium"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type CreateProposalInput struct {
	ID        string
	Vehicle   entities.VehicleRecord
	Owner     entities.PersonRecord
	Proposer  *entities.PersonRecord
	Insured   *entities.PersonRecord
	Coverages []entities.CoverageLine
	Actor     string
}

// PersonsInput replaces the parties. A nil Owner keeps the stored owner; the SameAsOwner
// flags drop a separate proposer/insured so it aliases the owner again.
type PersonsInput struct {
	Owner               *entities.PersonRecord
	Proposer            *entities.PersonRecord
	Insured             *entities.PersonRecord
	ProposerSameAsOwner bool
	InsuredSameAsOwner  bool
}

// ProposalSummary is one row of the operator queue.
type ProposalSummary struct {
	ID          string
	Status      entities.ProposalStatus
	SubmittedAt time.Time
	Plate       string
	BrandModel  string
	VehicleType string
	OwnerName   string
	Total       decimal.Decimal
}

// ProposalDetail is a proposal with its derived premiums and live artifact.
type ProposalDetail struct {
	Proposal entities.Proposal
	Lines    []premium.PricedLine
	Total    decimal.Decimal
	Artifact *entities.PaymentArtifact
}

// IProposalUseCase covers intake, the operator queues and record edits before the decision.
type IProposalUseCase interface {
	Create(ctx context.Context, in CreateProposalInput) (ProposalDetail, error)
	GetPending(ctx context.Context) ([]ProposalSummary, error)
	ListByStatus(ctx context.Context, status string) ([]ProposalSummary, error)
	GetDetail(ctx context.Context, id string) (ProposalDetail, error)
	UpdateVehicle(ctx context.Context, id string, version int64, v entities.VehicleRecord) (ProposalDetail, error)
	UpdatePersons(ctx context.Context, id string, version int64, in PersonsInput) (ProposalDetail, error)
	AddCoverage(ctx context.Context, id string, version int64, line entities.CoverageLine) (ProposalDetail, error)
	UpdateCoverage(ctx context.Context, id string, version int64, code string, line entities.CoverageLine) (ProposalDetail, error)
	RemoveCoverage(ctx context.Context, id string, version int64, code string) (ProposalDetail, error)
}

type ProposalUseCase struct {
	repo         interfaces.IProposalRepository
	artifacts    interfaces.IPaymentArtifactRepository
	storeTimeout time.Duration
	log          *logger.Logger
	now          func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, artifacts interfaces.IPaymentArtifactRepository, storeTimeout time.Duration, log *logger.Logger) *ProposalUseCase {
	return &ProposalUseCase{
		repo:         repo,
		artifacts:    artifacts,
		storeTimeout: storeTimeout,
		log:          logger.OrNop(log).Component("proposal.usecase"),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *ProposalUseCase) Create(ctx context.Context, in CreateProposalInput) (ProposalDetail, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(in.Owner.Name) == "" {
		verr.add("owner.name", "required")
	}
	if strings.TrimSpace(in.Vehicle.Plate) == "" && strings.TrimSpace(in.Vehicle.VIN) == "" {
		verr.add("vehicle.plate", "plate or vin required")
	}
	for _, is := range premium.Validate(in.Coverages) {
		verr.add(is.Field, is.Reason)
	}
	if err := verr.orNil(); err != nil {
		return ProposalDetail{}, err
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}
	actor := firstNonEmpty(strings.TrimSpace(in.Actor), ActorCustomer)
	at := u.now()

	p := entities.Proposal{
		ID:        id,
		Status:    entities.StatusSubmitted,
		Version:   1,
		CreatedAt: at,
		Vehicle:   in.Vehicle,
		Owner:     in.Owner,
		Proposer:  in.Proposer,
		Insured:   in.Insured,
		Coverages: premium.Normalize(in.Coverages),
		History:   []entities.StatusChange{{To: entities.StatusSubmitted, Actor: actor, At: at}},
	}
	lifecycle.Stamp(&p, entities.StatusSubmitted, at)

	sctx, cancel := withStoreTimeout(ctx, u.storeTimeout)
	created, err := u.repo.Create(sctx, p)
	cancel()
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return ProposalDetail{}, ErrProposalAlreadyExists
	}
	if err != nil {
		return ProposalDetail{}, storeErr(err)
	}
	u.log.Info("proposal submitted", "proposal_id", created.ID, "plate", created.Vehicle.Plate)
	return detailOf(created, nil), nil
}

func (u *ProposalUseCase) GetPending(ctx context.Context) ([]ProposalSummary, error) {
	return u.ListByStatus(ctx, string(entities.StatusSubmitted))
}

// ListByStatus returns the queue for one status. The pending queue is oldest first,
// every other view newest first.
func (u *ProposalUseCase) ListByStatus(ctx context.Context, status string) ([]ProposalSummary, error) {
	s := entities.ProposalStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !lifecycle.Known(s) {
		return nil, &ValidationError{Fields: []FieldError{{Field: "status", Reason: "unknown lifecycle status"}}}
	}

	sctx, cancel := withStoreTimeout(ctx, u.storeTimeout)
	defer cancel()
	list, err := u.repo.ListByStatus(sctx, s)
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]ProposalSummary, 0, len(list))
	for _, p := range list {
		out = append(out, ProposalSummary{
			ID:          p.ID,
			Status:      p.Status,
			SubmittedAt: p.SubmittedAt,
			Plate:       p.Vehicle.Plate,
			BrandModel:  p.Vehicle.BrandModel,
			VehicleType: p.Vehicle.VehicleType,
			OwnerName:   p.Owner.Name,
			Total:       premium.Total(p.Coverages),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if s == entities.StatusSubmitted {
			return out[i].SubmittedAt.Before(out[j].SubmittedAt)
		}
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func (u *ProposalUseCase) GetDetail(ctx context.Context, id string) (ProposalDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ProposalDetail{}, ErrInvalidProposalID
	}

	var (
		p        entities.Proposal
		artifact entities.PaymentArtifact
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = loadProposal(gctx, u.repo, u.storeTimeout, id)
		return err
	})
	g.Go(func() error {
		if u.artifacts == nil {
			return nil
		}
		sctx, cancel := withStoreTimeout(gctx, u.storeTimeout)
		defer cancel()
		var err error
		artifact, err = u.artifacts.GetByProposalID(sctx, id)
		return storeErr(err)
	})
	if err := g.Wait(); err != nil {
		return ProposalDetail{}, err
	}

	if artifact.AuthCode == "" {
		return detailOf(p, nil), nil
	}
	return detailOf(p, &artifact), nil
}

func (u *ProposalUseCase) UpdateVehicle(ctx context.Context, id string, version int64, v entities.VehicleRecord) (ProposalDetail, error) {
	return u.edit(ctx, id, version, func(r *interfaces.Records) error {
		r.Vehicle = v
		return nil
	})
}

func (u *ProposalUseCase) UpdatePersons(ctx context.Context, id string, version int64, in PersonsInput) (ProposalDetail, error) {
	return u.edit(ctx, id, version, func(r *interfaces.Records) error {
		if in.Owner != nil {
			if strings.TrimSpace(in.Owner.Name) == "" {
				return &ValidationError{Fields: []FieldError{{Field: "owner.name", Reason: "required"}}}
			}
			r.Owner = *in.Owner
		}
		switch {
		case in.ProposerSameAsOwner:
			r.Proposer = nil
		case in.Proposer != nil:
			r.Proposer = in.Proposer
		}
		switch {
		case in.InsuredSameAsOwner:
			r.Insured = nil
		case in.Insured != nil:
			r.Insured = in.Insured
		}
		return nil
	})
}

func (u *ProposalUseCase) AddCoverage(ctx context.Context, id string, version int64, line entities.CoverageLine) (ProposalDetail, error) {
	return u.edit(ctx, id, version, func(r *interfaces.Records) error {
		r.Coverages = append(r.Coverages, line)
		return nil
	})
}

func (u *ProposalUseCase) UpdateCoverage(ctx context.Context, id string, version int64, code string, line entities.CoverageLine) (ProposalDetail, error) {
	code = strings.TrimSpace(code)
	return u.edit(ctx, id, version, func(r *interfaces.Records) error {
		i := indexOfCoverage(r.Coverages, code)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrCoverageNotFound, code)
		}
		if strings.TrimSpace(line.Code) == "" {
			line.Code = code
		}
		r.Coverages[i] = line
		return nil
	})
}

func (u *ProposalUseCase) RemoveCoverage(ctx context.Context, id string, version int64, code string) (ProposalDetail, error) {
	code = strings.TrimSpace(code)
	return u.edit(ctx, id, version, func(r *interfaces.Records) error {
		i := indexOfCoverage(r.Coverages, code)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrCoverageNotFound, code)
		}
		r.Coverages = append(r.Coverages[:i], r.Coverages[i+1:]...)
		return nil
	})
}

// edit applies fn to the stored records and writes them back guarded by version.
// The premium total is recomputed from the full collection on every edit.
func (u *ProposalUseCase) edit(ctx context.Context, id string, version int64, fn func(*interfaces.Records) error) (ProposalDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ProposalDetail{}, ErrInvalidProposalID
	}
	if version <= 0 {
		return ProposalDetail{}, &ValidationError{Fields: []FieldError{{Field: "version", Reason: "required"}}}
	}

	p, err := loadProposal(ctx, u.repo, u.storeTimeout, id)
	if err != nil {
		return ProposalDetail{}, err
	}
	if p.RecordsFrozen() {
		return ProposalDetail{}, invalidState(p.Status, "")
	}
	if p.Version != version {
		return ProposalDetail{}, ErrVersionConflict
	}

	records := interfaces.RecordsOf(p)
	if err := fn(&records); err != nil {
		return ProposalDetail{}, err
	}
	verr := &ValidationError{}
	for _, is := range premium.Validate(records.Coverages) {
		verr.add(is.Field, is.Reason)
	}
	if err := verr.orNil(); err != nil {
		return ProposalDetail{}, err
	}
	records.Coverages = premium.Normalize(records.Coverages)

	sctx, cancel := withStoreTimeout(ctx, u.storeTimeout)
	updated, err := u.repo.UpdateRecords(sctx, id, version, records, u.now())
	cancel()
	if errors.Is(err, interfaces.ErrConditionFailed) {
		cur, lerr := loadProposal(ctx, u.repo, u.storeTimeout, id)
		if lerr != nil {
			return ProposalDetail{}, lerr
		}
		if cur.RecordsFrozen() {
			return ProposalDetail{}, invalidState(cur.Status, "")
		}
		return ProposalDetail{}, ErrVersionConflict
	}
	if err != nil {
		return ProposalDetail{}, storeErr(err)
	}
	if updated.ID == "" {
		return ProposalDetail{}, ErrProposalNotFound
	}
	u.log.Debug("proposal records updated", "proposal_id", id, "version", updated.Version)
	return detailOf(updated, nil), nil
}

func detailOf(p entities.Proposal, a *entities.PaymentArtifact) ProposalDetail {
	lines, total := premium.Recompute(p.Coverages)
	return ProposalDetail{Proposal: p, Lines: lines, Total: total, Artifact: a}
}

func indexOfCoverage(lines []entities.CoverageLine, code string) int {
	for i, l := range lines {
		if l.Code == code {
			return i
		}
	}
	return -1
}
