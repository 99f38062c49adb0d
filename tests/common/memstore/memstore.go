//go:build unit

// Package memstore is an in-memory UnitOfWork for use case tests. Each Within
// call works on a private snapshot of the committed state. On success its
// writes are committed only if every certificate it touched still has the
// version it read; otherwise Within fails with a conflict and nothing is
// published, as with a rolled-back transaction.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/pkg/errs"
	"gift-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errDuplicate = errs.New("duplicate key value violates unique constraint")
	errLostRace  = errs.New("balance changed concurrently")
)

type Certificate struct {
	ID             uuid.UUID
	Code           string
	OriginalAmount money.Amount
	CurrentBalance money.Amount
	Status         certificate.Status
	RecipientEmail string
	RecipientName  string
	SenderName     string
	Message        string
	DeliveryDate   *time.Time
	DesignID       *string
	Version        int64
	CreatedAt      time.Time
}

type Transaction struct {
	ID            uuid.UUID
	CertificateID uuid.UUID
	AmountUsed    money.Amount
	BalanceAfter  money.Amount
	OrderRef      *string
	SubmissionRef *string
	CreatedAt     time.Time
}

type OutboxEvent struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
	Status   string
}

type state struct {
	certificates map[uuid.UUID]Certificate
	transactions []Transaction
	outbox       []OutboxEvent
}

func (s *state) clone() *state {
	return &state{
		certificates: maps.Clone(s.certificates),
		transactions: slices.Clone(s.transactions),
		outbox:       slices.Clone(s.outbox),
	}
}

type Store struct {
	mu    sync.RWMutex
	state *state

	gateMu sync.Mutex
	gate   *commitGate

	conflicts  atomic.Int32
	failWith   atomic.Pointer[error]
	codeLookup atomic.Int32
	commits    atomic.Int32
}

func New() *Store {
	return &Store{state: &state{certificates: map[uuid.UUID]Certificate{}}}
}

// InjectConflicts makes the next n balance updates lose their race.
func (s *Store) InjectConflicts(n int) {
	s.conflicts.Store(int32(n)) // #nosec G115 -- test input
}

// HoldCommits parks the next n units of work after they finish but before they
// commit, and releases them together once all n have arrived. Every one of them
// has then read the same committed state.
func (s *Store) HoldCommits(n int) {
	s.gateMu.Lock()
	defer s.gateMu.Unlock()
	if n <= 1 {
		s.gate = nil
		return
	}
	s.gate = &commitGate{waiting: n, open: make(chan struct{})}
}

type commitGate struct {
	waiting int
	open    chan struct{}
}

func (s *Store) waitAtGate(ctx context.Context) error {
	s.gateMu.Lock()
	g := s.gate
	if g == nil {
		s.gateMu.Unlock()
		return nil
	}
	g.waiting--
	if g.waiting == 0 {
		close(g.open)
		s.gate = nil
	}
	s.gateMu.Unlock()

	select {
	case <-g.open:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FailWith makes every subsequent Within call fail with err before running.
func (s *Store) FailWith(err error) {
	if err == nil {
		s.failWith.Store(nil)
		return
	}
	s.failWith.Store(&err)
}

// CodeLookups counts certificate lookups by code across committed and rolled-back work.
func (s *Store) CodeLookups() int {
	return int(s.codeLookup.Load())
}

func (s *Store) Commits() int {
	return int(s.commits.Load())
}

func (s *Store) Seed(c Certificate) Certificate {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	s.state.certificates[c.ID] = c
	return c
}

func (s *Store) SeedOutbox(e OutboxEvent) OutboxEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = "queued"
	}
	s.state.outbox = append(s.state.outbox, e)
	return e
}

func (s *Store) Certificate(id uuid.UUID) (Certificate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.state.certificates[id]
	return c, ok
}

func (s *Store) CertificateByCode(code string) (Certificate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.certificates {
		if c.Code == code {
			return c, true
		}
	}
	return Certificate{}, false
}

func (s *Store) Transactions(certificateID uuid.UUID) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Transaction
	for _, t := range s.state.transactions {
		if t.CertificateID == certificateID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) Outbox() []OutboxEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.outbox)
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if p := s.failWith.Load(); p != nil {
		return *p
	}

	s.mu.RLock()
	tx := newMemTx(s, s.state.clone())
	s.mu.RUnlock()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := s.waitAtGate(ctx); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.state

	for id, version := range tx.readVersions {
		if version == createdInTx {
			created, ok := tx.state.certificates[id]
			if !ok {
				continue
			}
			for _, c := range cur.certificates {
				if c.Code == created.Code {
					return infra.WrapRepoErr("failed to create certificate", errDuplicate, infra.KindDuplicateKey)
				}
			}
			continue
		}
		if c, ok := cur.certificates[id]; !ok || c.Version != version {
			return infra.WrapRepoErr("certificate changed since it was read", errLostRace, infra.KindConflict)
		}
	}
	for _, t := range tx.recorded {
		if t.SubmissionRef == nil {
			continue
		}
		for _, existing := range cur.transactions {
			if existing.CertificateID == t.CertificateID && existing.SubmissionRef != nil && *existing.SubmissionRef == *t.SubmissionRef {
				return infra.WrapRepoErr("failed to record transaction", errDuplicate, infra.KindDuplicateKey)
			}
		}
	}

	next := cur.clone()
	for id := range tx.readVersions {
		if c, ok := tx.state.certificates[id]; ok {
			next.certificates[id] = c
			continue
		}
		delete(next.certificates, id)
		next.transactions = slices.DeleteFunc(next.transactions, func(t Transaction) bool {
			return t.CertificateID == id
		})
	}
	for _, t := range tx.recorded {
		if _, ok := next.certificates[t.CertificateID]; ok {
			next.transactions = append(next.transactions, t)
		}
	}
	next.outbox = append(next.outbox, tx.enqueued...)
	for i, e := range next.outbox {
		if _, ok := tx.outboxUpdated[e.ID]; !ok {
			continue
		}
		for _, updated := range tx.state.outbox {
			if updated.ID == e.ID {
				next.outbox[i] = updated
				break
			}
		}
	}

	s.state = next
	s.commits.Add(1)
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &committedReads{store: s}
}

type committedReads struct {
	store *Store
}

func (r *committedReads) view() reads {
	return reads{store: r.store, state: r.store.state}
}

func (r *committedReads) CertificateByID(ctx context.Context, id uuid.UUID) (*shared.CertificateSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.view().CertificateByID(ctx, id)
}

func (r *committedReads) CertificateByCode(ctx context.Context, code string) (*shared.CertificateSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.view().CertificateByCode(ctx, code)
}

func (r *committedReads) CodeExists(ctx context.Context, code string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.view().CodeExists(ctx, code)
}

func (r *committedReads) TransactionBySubmissionRef(ctx context.Context, certificateID uuid.UUID, ref string) (*shared.TransactionSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.view().TransactionBySubmissionRef(ctx, certificateID, ref)
}

// createdInTx marks a certificate inserted by the unit of work itself.
const createdInTx = -1

type memTx struct {
	store *Store
	state *state

	readVersions  map[uuid.UUID]int64
	recorded      []Transaction
	enqueued      []OutboxEvent
	outboxUpdated map[uuid.UUID]struct{}
}

func newMemTx(s *Store, st *state) *memTx {
	return &memTx{
		store:         s,
		state:         st,
		readVersions:  map[uuid.UUID]int64{},
		outboxUpdated: map[uuid.UUID]struct{}{},
	}
}

// touch remembers the snapshot version of a certificate before its first write.
func (t *memTx) touch(id uuid.UUID) {
	if _, ok := t.readVersions[id]; ok {
		return
	}
	if c, ok := t.state.certificates[id]; ok {
		t.readVersions[id] = c.Version
	}
}

func (t *memTx) Certificates() shared.CertificateRepository { return &certificates{tx: t} }
func (t *memTx) Transactions() shared.TransactionRepository { return &transactions{tx: t} }
func (t *memTx) Outbox() shared.OutboxRepository            { return &outbox{tx: t} }
func (t *memTx) Reads() shared.CommandReads                 { return reads{store: t.store, state: t.state} }
func (t *memTx) DB() query.DBTX                             { return nil }

type reads struct {
	store *Store
	state *state
}

func (r reads) CertificateByID(_ context.Context, id uuid.UUID) (*shared.CertificateSnapshot, error) {
	c, ok := r.state.certificates[id]
	if !ok {
		return nil, infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
	}
	return toSnapshot(c), nil
}

func (r reads) CertificateByCode(_ context.Context, code string) (*shared.CertificateSnapshot, error) {
	r.store.codeLookup.Add(1)
	for _, c := range r.state.certificates {
		if c.Code == code {
			return toSnapshot(c), nil
		}
	}
	return nil, infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
}

func (r reads) CodeExists(_ context.Context, code string) (bool, error) {
	for _, c := range r.state.certificates {
		if c.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r reads) TransactionBySubmissionRef(_ context.Context, certificateID uuid.UUID, ref string) (*shared.TransactionSnapshot, error) {
	for _, t := range r.state.transactions {
		if t.CertificateID == certificateID && t.SubmissionRef != nil && *t.SubmissionRef == ref {
			return &shared.TransactionSnapshot{
				ID:            t.ID,
				CertificateID: t.CertificateID,
				AmountUsed:    t.AmountUsed,
				BalanceAfter:  t.BalanceAfter,
				CreatedAt:     t.CreatedAt,
			}, nil
		}
	}
	return nil, infra.WrapRepoErr("transaction not found", nil, infra.KindNotFound)
}

func toSnapshot(c Certificate) *shared.CertificateSnapshot {
	return &shared.CertificateSnapshot{
		ID:             c.ID,
		Code:           c.Code,
		OriginalAmount: c.OriginalAmount,
		CurrentBalance: c.CurrentBalance,
		Status:         c.Status,
		Version:        c.Version,
	}
}

type certificates struct {
	tx *memTx
}

func (r *certificates) Create(_ context.Context, _ query.DBTX, cert *certificate.Certificate) (uuid.UUID, error) {
	for _, c := range r.tx.state.certificates {
		if c.Code == cert.Code().String() {
			return uuid.Nil, infra.WrapRepoErr("failed to create certificate", errDuplicate, infra.KindDuplicateKey)
		}
	}
	r.tx.readVersions[cert.ID()] = createdInTx
	r.tx.state.certificates[cert.ID()] = Certificate{
		ID:             cert.ID(),
		Code:           cert.Code().String(),
		OriginalAmount: cert.OriginalAmount(),
		CurrentBalance: cert.CurrentBalance(),
		Status:         cert.Status(),
		RecipientEmail: cert.RecipientEmail().Value(),
		RecipientName:  cert.RecipientName().Value(),
		SenderName:     cert.SenderName().Value(),
		Message:        cert.Message(),
		DeliveryDate:   cert.DeliveryDate(),
		DesignID:       cert.DesignID(),
		CreatedAt:      cert.CreatedAt(),
	}
	return cert.ID(), nil
}

func (r *certificates) UpdateBalance(_ context.Context, _ query.DBTX, id uuid.UUID, delta money.Amount) (*shared.BalanceChange, error) {
	if !delta.IsPositive() {
		return nil, infra.WrapRepoErr("invalid balance delta", money.ErrInvalidAmount)
	}
	c, ok := r.tx.state.certificates[id]
	if !ok {
		return nil, infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
	}
	if n := r.tx.store.conflicts.Load(); n > 0 && r.tx.store.conflicts.CompareAndSwap(n, n-1) {
		return nil, infra.WrapRepoErr("certificate balance update lost a race", errLostRace, infra.KindConflict)
	}
	if !c.Status.IsRedeemable() || !c.CurrentBalance.IsPositive() {
		return nil, infra.WrapRepoErr("certificate no longer redeemable", errLostRace, infra.KindConflict)
	}

	r.tx.touch(id)
	applied := money.Min(delta, c.CurrentBalance)
	c.CurrentBalance = c.CurrentBalance.Sub(applied)
	if c.CurrentBalance.IsZero() {
		c.Status = certificate.StatusExpired
	}
	c.Version++
	r.tx.state.certificates[id] = c
	return &shared.BalanceChange{
		AmountApplied: applied,
		NewBalance:    c.CurrentBalance,
		Status:        c.Status,
	}, nil
}

func (r *certificates) UpdateStatus(_ context.Context, _ query.DBTX, id uuid.UUID, status certificate.Status) error {
	c, ok := r.tx.state.certificates[id]
	if !ok {
		return infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
	}
	r.tx.touch(id)
	c.Status = status
	c.Version++
	r.tx.state.certificates[id] = c
	return nil
}

func (r *certificates) UpdateMetadata(_ context.Context, _ query.DBTX, id uuid.UUID, m certificate.Metadata) error {
	c, ok := r.tx.state.certificates[id]
	if !ok {
		return infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
	}
	r.tx.touch(id)
	if m.Code != nil {
		for otherID, other := range r.tx.state.certificates {
			if otherID != id && other.Code == *m.Code {
				return infra.WrapRepoErr("failed to update certificate", errDuplicate, infra.KindDuplicateKey)
			}
		}
		c.Code = *m.Code
	}
	setIf(&c.RecipientEmail, m.RecipientEmail)
	setIf(&c.RecipientName, m.RecipientName)
	setIf(&c.SenderName, m.SenderName)
	setIf(&c.Message, m.Message)
	if m.DeliveryDate != nil || m.ClearDeliveryDate {
		c.DeliveryDate = m.DeliveryDate
	}
	if m.DesignID != nil || m.ClearDesignID {
		c.DesignID = m.DesignID
	}
	c.Version++
	r.tx.state.certificates[id] = c
	return nil
}

func (r *certificates) MarkDelivered(_ context.Context, _ query.DBTX, id uuid.UUID) (bool, error) {
	c, ok := r.tx.state.certificates[id]
	if !ok || c.Status != certificate.StatusPendingDelivery {
		return false, nil
	}
	r.tx.touch(id)
	c.Status = certificate.StatusDelivered
	c.Version++
	r.tx.state.certificates[id] = c
	return true, nil
}

func (r *certificates) Delete(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	if _, ok := r.tx.state.certificates[id]; !ok {
		return infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
	}
	r.tx.touch(id)
	delete(r.tx.state.certificates, id)
	r.tx.state.transactions = slices.DeleteFunc(r.tx.state.transactions, func(t Transaction) bool {
		return t.CertificateID == id
	})
	return nil
}

type transactions struct {
	tx *memTx
}

func (r *transactions) Record(_ context.Context, _ query.DBTX, t *certificate.Transaction) (uuid.UUID, error) {
	if ref := t.SubmissionReference(); ref != nil {
		for _, existing := range r.tx.state.transactions {
			if existing.CertificateID == t.CertificateID() && existing.SubmissionRef != nil && *existing.SubmissionRef == *ref {
				return uuid.Nil, infra.WrapRepoErr("failed to record transaction", errDuplicate, infra.KindDuplicateKey)
			}
		}
	}
	recorded := Transaction{
		ID:            t.ID(),
		CertificateID: t.CertificateID(),
		AmountUsed:    t.AmountUsed(),
		BalanceAfter:  t.BalanceAfter(),
		OrderRef:      t.OrderReference(),
		SubmissionRef: t.SubmissionReference(),
		CreatedAt:     t.CreatedAt(),
	}
	r.tx.state.transactions = append(r.tx.state.transactions, recorded)
	r.tx.recorded = append(r.tx.recorded, recorded)
	return t.ID(), nil
}

type outbox struct {
	tx *memTx
}

func (r *outbox) Enqueue(_ context.Context, _ query.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	e := OutboxEvent{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   runAt,
		Status:  "queued",
	}
	r.tx.state.outbox = append(r.tx.state.outbox, e)
	r.tx.enqueued = append(r.tx.enqueued, e)
	return nil
}

func (r *outbox) ClaimDue(_ context.Context, _ query.DBTX, now time.Time, limit int) ([]shared.OutboxEvent, error) {
	var out []shared.OutboxEvent
	for _, e := range r.tx.state.outbox {
		if len(out) >= limit {
			break
		}
		if e.Status == "queued" && !e.RunAt.After(now) {
			out = append(out, shared.OutboxEvent{
				ID:       e.ID,
				Kind:     e.Kind,
				Topic:    e.Topic,
				Payload:  e.Payload,
				Attempts: e.Attempts,
			})
		}
	}
	return out, nil
}

func (r *outbox) MarkSent(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	r.update(id, func(e *OutboxEvent) {
		e.Attempts++
		e.Status = "sent"
	})
	return nil
}

func (r *outbox) MarkFailed(_ context.Context, _ query.DBTX, id uuid.UUID, _ string, nextRunAt time.Time, maxAttempts int) error {
	r.update(id, func(e *OutboxEvent) {
		e.Attempts++
		e.RunAt = nextRunAt
		if e.Attempts >= maxAttempts {
			e.Status = "failed"
		}
	})
	return nil
}

func (r *outbox) update(id uuid.UUID, fn func(e *OutboxEvent)) {
	for i := range r.tx.state.outbox {
		if r.tx.state.outbox[i].ID == id {
			fn(&r.tx.state.outbox[i])
			r.tx.outboxUpdated[id] = struct{}{}
			return
		}
	}
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
