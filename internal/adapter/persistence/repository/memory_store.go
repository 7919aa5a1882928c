package repository

import (
	"context"
	"sync"
	"time"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/domain/lifecycle"
	"underwriting_service/internal/usecase/interfaces"
)

// MemoryStore keeps proposals and artifacts in process memory.
//
// Every write runs in one critical section, which gives the same all-or-nothing and
// compare-and-swap guarantees as the DynamoDB adapters. Used by tests and STORE_DRIVER=memory.
type MemoryStore struct {
	mu         sync.Mutex
	proposals  map[string]entities.Proposal
	artifacts  map[string]entities.PaymentArtifact
	byProposal map[string]string
}

var (
	_ interfaces.IProposalRepository        = (*MemoryStore)(nil)
	_ interfaces.IPaymentArtifactRepository = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		proposals:  make(map[string]entities.Proposal),
		artifacts:  make(map[string]entities.PaymentArtifact),
		byProposal: make(map[string]string),
	}
}

func (s *MemoryStore) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if err := ctx.Err(); err != nil {
		return entities.Proposal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.proposals[p.ID]; ok {
		return entities.Proposal{}, interfaces.ErrDuplicateKey
	}
	s.proposals[p.ID] = cloneProposal(p)
	return cloneProposal(p), nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	if err := ctx.Err(); err != nil {
		return entities.Proposal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProposal(s.proposals[id]), nil
}

func (s *MemoryStore) ListByStatus(ctx context.Context, status entities.ProposalStatus) ([]entities.Proposal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Proposal, 0)
	for _, p := range s.proposals {
		if p.Status == status {
			out = append(out, cloneProposal(p))
		}
	}
	return out, nil
}

func (s *MemoryStore) UpdateRecords(ctx context.Context, id string, expectedVersion int64, records interfaces.Records, at time.Time) (entities.Proposal, error) {
	if err := ctx.Err(); err != nil {
		return entities.Proposal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.proposals[id]
	if !ok {
		return entities.Proposal{}, nil
	}
	if p.Status != entities.StatusSubmitted || len(p.Decisions) > 0 || p.Version != expectedVersion {
		return entities.Proposal{}, interfaces.ErrConditionFailed
	}
	applyRecords(&p, records)
	p.Version++
	s.proposals[id] = cloneProposal(p)
	return cloneProposal(p), nil
}

func (s *MemoryStore) Transition(ctx context.Context, cmd interfaces.TransitionCommand) (entities.Proposal, error) {
	if err := ctx.Err(); err != nil {
		return entities.Proposal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[cmd.ProposalID]
	if !ok {
		return entities.Proposal{}, nil
	}
	if p.Status != cmd.From || (cmd.ExpectedVersion > 0 && p.Version != cmd.ExpectedVersion) {
		return entities.Proposal{}, interfaces.ErrConditionFailed
	}
	if cmd.Artifact != nil {
		if _, taken := s.artifacts[cmd.Artifact.AuthCode]; taken {
			return entities.Proposal{}, interfaces.ErrDuplicateKey
		}
	}

	at := cmd.Change.At
	p.Status = cmd.To
	p.Version++
	lifecycle.Stamp(&p, cmd.To, at)
	p.History = append(p.History, cmd.Change)
	if cmd.Decision != nil {
		p.Decisions = append(p.Decisions, *cmd.Decision)
	}
	if cmd.Records != nil {
		applyRecords(&p, *cmd.Records)
	}
	if cmd.PolicyNo != "" {
		p.PolicyNo = cmd.PolicyNo
	}
	if cmd.Artifact != nil {
		a := *cmd.Artifact
		p.AuthCode = a.AuthCode
		s.artifacts[a.AuthCode] = a
		s.byProposal[p.ID] = a.AuthCode
	}
	if cmd.InvalidateAuthCode != "" {
		if a, ok := s.artifacts[cmd.InvalidateAuthCode]; ok && a.InvalidatedAt == nil {
			a.InvalidatedAt = &at
			s.artifacts[a.AuthCode] = a
		}
	}

	s.proposals[p.ID] = cloneProposal(p)
	return cloneProposal(p), nil
}

func (s *MemoryStore) SetPaymentLink(ctx context.Context, id string, link string, _ time.Time) (entities.Proposal, error) {
	if err := ctx.Err(); err != nil {
		return entities.Proposal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.proposals[id]
	if !ok {
		return entities.Proposal{}, nil
	}
	if p.Status != entities.StatusSubmitted {
		return entities.Proposal{}, interfaces.ErrConditionFailed
	}
	p.PaymentLink = link
	p.Version++
	s.proposals[id] = cloneProposal(p)
	return cloneProposal(p), nil
}

func (s *MemoryStore) ReservePolicyNumber(ctx context.Context, id string, policyNo string, _ time.Time) (entities.Proposal, error) {
	if err := ctx.Err(); err != nil {
		return entities.Proposal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.proposals[id]
	if !ok {
		return entities.Proposal{}, nil
	}
	if p.Status != entities.StatusUnderwritingConfirmed || p.PolicyNo != "" {
		return entities.Proposal{}, interfaces.ErrConditionFailed
	}
	p.PolicyNo = policyNo
	p.Version++
	s.proposals[id] = cloneProposal(p)
	return cloneProposal(p), nil
}

func (s *MemoryStore) GetByAuthCode(ctx context.Context, authCode string) (entities.PaymentArtifact, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentArtifact{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.artifacts[authCode], nil
}

func (s *MemoryStore) GetByProposalID(ctx context.Context, proposalID string) (entities.PaymentArtifact, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentArtifact{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.byProposal[proposalID]
	if !ok {
		return entities.PaymentArtifact{}, nil
	}
	return s.artifacts[code], nil
}

func (s *MemoryStore) Consume(ctx context.Context, authCode string, at time.Time) (entities.PaymentArtifact, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentArtifact{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.artifacts[authCode]
	if !ok {
		return entities.PaymentArtifact{}, nil
	}
	if !a.Usable() {
		return a, interfaces.ErrConditionFailed
	}
	a.ConsumedAt = &at
	s.artifacts[authCode] = a
	return a, nil
}

func (s *MemoryStore) SetCollectionLink(ctx context.Context, authCode string, link string) (entities.PaymentArtifact, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentArtifact{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.artifacts[authCode]
	if !ok {
		return entities.PaymentArtifact{}, nil
	}
	if a.InvalidatedAt != nil {
		return entities.PaymentArtifact{}, interfaces.ErrConditionFailed
	}
	a.CollectionLink = link
	s.artifacts[authCode] = a
	return a, nil
}

func applyRecords(p *entities.Proposal, r interfaces.Records) {
	p.Vehicle = r.Vehicle
	p.Owner = r.Owner
	p.Proposer = clonePerson(r.Proposer)
	p.Insured = clonePerson(r.Insured)
	p.Coverages = append([]entities.CoverageLine(nil), r.Coverages...)
}

func cloneProposal(p entities.Proposal) entities.Proposal {
	p.Proposer = clonePerson(p.Proposer)
	p.Insured = clonePerson(p.Insured)
	p.Coverages = append([]entities.CoverageLine(nil), p.Coverages...)
	p.Decisions = append([]entities.Decision(nil), p.Decisions...)
	p.History = append([]entities.StatusChange(nil), p.History...)
	return p
}

func clonePerson(p *entities.PersonRecord) *entities.PersonRecord {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
