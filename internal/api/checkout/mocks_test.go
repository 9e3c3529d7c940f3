package checkoutapi

import (
	"context"
	"errors"

	"checkout-app/internal/domain/checkout"
	"checkout-app/internal/domain/payment"

	"gorm.io/gorm"
)

type statusUpdate struct {
	ID     uint
	Status string
	Paid   bool
}

// mockStore implements checkout.Store in memory, mirroring the real store's
// contract: atomic create, tx_ref assignment, platform uniqueness.
type mockStore struct {
	nextID      uint
	submissions map[uint]*checkout.Submission
	links       map[uint][]checkout.SocialLink

	createErr error
	updateErr error

	statusUpdates []statusUpdate
}

var _ checkout.Store = (*mockStore)(nil)

func newMockStore() *mockStore {
	return &mockStore{
		submissions: map[uint]*checkout.Submission{},
		links:       map[uint][]checkout.SocialLink{},
	}
}

func (m *mockStore) CreateSubmission(ctx context.Context, sub *checkout.Submission, links []checkout.SocialLink) error {
	if m.createErr != nil {
		return m.createErr
	}

	seen := map[checkout.Platform]bool{}
	for _, l := range links {
		if seen[l.Platform] {
			return errors.New("duplicate platform for submission")
		}
		seen[l.Platform] = true
	}
	for _, s := range m.submissions {
		if sub.TxRef != "" && s.TxRef == sub.TxRef {
			return errors.New("duplicate tx_ref")
		}
	}

	if sub.TxRef == "" {
		sub.TxRef = checkout.NewTxRef()
	}
	if sub.PaymentStatus == "" {
		sub.PaymentStatus = checkout.StatusPending
	}

	m.nextID++
	sub.ID = m.nextID

	stored := *sub
	m.submissions[sub.ID] = &stored
	for i := range links {
		links[i].SubmissionID = sub.ID
	}
	m.links[sub.ID] = links
	return nil
}

func (m *mockStore) GetSubmission(ctx context.Context, id uint) (*checkout.Submission, error) {
	sub, ok := m.submissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *sub
	out.SocialLinks = m.links[id]
	return &out, nil
}

func (m *mockStore) GetSubmissionByTxRef(ctx context.Context, txRef string) (*checkout.Submission, error) {
	for _, sub := range m.submissions {
		if sub.TxRef == txRef {
			out := *sub
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) UpdatePaymentStatus(ctx context.Context, id uint, status string, paid bool) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.statusUpdates = append(m.statusUpdates, statusUpdate{ID: id, Status: status, Paid: paid})
	if sub, ok := m.submissions[id]; ok {
		sub.PaymentStatus = status
		sub.IsPaid = paid
	}
	return nil
}

func (m *mockStore) ListSubmissions(ctx context.Context, opts checkout.ListOptions) ([]checkout.Submission, int64, error) {
	var out []checkout.Submission
	for _, sub := range m.submissions {
		out = append(out, *sub)
	}
	return out, int64(len(out)), nil
}

// fakeGateway implements payment.Gateway with canned outcomes.
type fakeGateway struct {
	configured   bool
	url          string
	initErr      error
	verifyResult bool

	initCalls   []payment.InitializeRequest
	verifyCalls []string
}

var _ payment.Gateway = (*fakeGateway)(nil)

func (g *fakeGateway) Initialize(ctx context.Context, req payment.InitializeRequest) (string, error) {
	g.initCalls = append(g.initCalls, req)
	if g.initErr != nil {
		return "", g.initErr
	}
	return g.url, nil
}

func (g *fakeGateway) Verify(ctx context.Context, txRef string) bool {
	g.verifyCalls = append(g.verifyCalls, txRef)
	return g.verifyResult
}

func (g *fakeGateway) Configured() bool {
	return g.configured
}
