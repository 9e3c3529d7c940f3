package paymentapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout-app/internal/domain/checkout"
	"checkout-app/internal/domain/payment"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type mockStore struct {
	submissions map[string]*checkout.Submission // by tx_ref

	updateErr     error
	statusUpdates int
}

var _ checkout.Store = (*mockStore)(nil)

func (m *mockStore) CreateSubmission(ctx context.Context, sub *checkout.Submission, links []checkout.SocialLink) error {
	m.submissions[sub.TxRef] = sub
	return nil
}

func (m *mockStore) GetSubmission(ctx context.Context, id uint) (*checkout.Submission, error) {
	for _, sub := range m.submissions {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) GetSubmissionByTxRef(ctx context.Context, txRef string) (*checkout.Submission, error) {
	sub, ok := m.submissions[txRef]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sub, nil
}

func (m *mockStore) UpdatePaymentStatus(ctx context.Context, id uint, status string, paid bool) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for _, sub := range m.submissions {
		if sub.ID == id {
			sub.PaymentStatus = status
			sub.IsPaid = paid
			m.statusUpdates++
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockStore) ListSubmissions(ctx context.Context, opts checkout.ListOptions) ([]checkout.Submission, int64, error) {
	return nil, 0, nil
}

type fakeGateway struct {
	verifyResult bool
	verifyCalls  []string
}

var _ payment.Gateway = (*fakeGateway)(nil)

func (g *fakeGateway) Initialize(ctx context.Context, req payment.InitializeRequest) (string, error) {
	return "", payment.ErrUnavailable
}

func (g *fakeGateway) Verify(ctx context.Context, txRef string) bool {
	g.verifyCalls = append(g.verifyCalls, txRef)
	return g.verifyResult
}

func (g *fakeGateway) Configured() bool { return true }

func newCallbackTest(verified bool) (*gin.Engine, *mockStore, *fakeGateway) {
	gin.SetMode(gin.TestMode)

	store := &mockStore{submissions: map[string]*checkout.Submission{
		"TAP-ABCDEF123456": {
			ID:               7,
			FirstName:        "Anania",
			LastName:         "Minda",
			Email:            "anania@example.com",
			SubscriptionType: checkout.SubscriptionIndividual,
			Amount:           decimal.NewFromInt(500),
			TxRef:            "TAP-ABCDEF123456",
			PaymentStatus:    checkout.StatusPending,
		},
	}}
	gateway := &fakeGateway{verifyResult: verified}

	h := NewHandler(store, gateway, "http://localhost:5173")
	r := gin.New()
	r.GET("/payment/callback", h.Callback)
	return r, store, gateway
}

func doCallback(r *gin.Engine, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment/callback"+query, nil))
	return w
}

func TestCallbackMissingTxRef(t *testing.T) {
	r, store, _ := newCallbackTest(true)

	w := doCallback(r, "")
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if got := w.Header().Get("Location"); got != "http://localhost:5173/checkout?error=invalid_callback" {
		t.Errorf("Location = %q", got)
	}
	if store.statusUpdates != 0 {
		t.Errorf("status updates = %d, want 0", store.statusUpdates)
	}
}

func TestCallbackUnknownTxRefMutatesNothing(t *testing.T) {
	r, store, gateway := newCallbackTest(true)

	w := doCallback(r, "?tx_ref=TAP-DEADBEEF0000&status=success")
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if got := w.Header().Get("Location"); got != "http://localhost:5173/checkout?error=order_not_found" {
		t.Errorf("Location = %q", got)
	}
	if store.statusUpdates != 0 {
		t.Errorf("status updates = %d, want 0", store.statusUpdates)
	}
	if len(gateway.verifyCalls) != 0 {
		t.Errorf("verify called for unknown tx_ref")
	}

	sub := store.submissions["TAP-ABCDEF123456"]
	if sub.PaymentStatus != checkout.StatusPending || sub.IsPaid {
		t.Errorf("existing row mutated: status=%q paid=%v", sub.PaymentStatus, sub.IsPaid)
	}
}

func TestCallbackSuccessVerified(t *testing.T) {
	r, store, gateway := newCallbackTest(true)

	w := doCallback(r, "?tx_ref=TAP-ABCDEF123456&status=success")
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if got := w.Header().Get("Location"); got != "http://localhost:5173/checkout/success/7" {
		t.Errorf("Location = %q, want success page", got)
	}

	sub := store.submissions["TAP-ABCDEF123456"]
	if !sub.IsPaid || sub.PaymentStatus != checkout.StatusSuccess {
		t.Errorf("status=%q paid=%v, want success/true", sub.PaymentStatus, sub.IsPaid)
	}
	if len(gateway.verifyCalls) != 1 || gateway.verifyCalls[0] != "TAP-ABCDEF123456" {
		t.Errorf("verify calls = %v", gateway.verifyCalls)
	}
}

func TestCallbackSuccessNotVerified(t *testing.T) {
	r, store, _ := newCallbackTest(false)

	w := doCallback(r, "?tx_ref=TAP-ABCDEF123456&status=success")
	if got := w.Header().Get("Location"); got != "http://localhost:5173/checkout?error=payment_failed" {
		t.Errorf("Location = %q, want failure redirect", got)
	}

	sub := store.submissions["TAP-ABCDEF123456"]
	if sub.IsPaid {
		t.Error("unverified payment marked paid")
	}
	if sub.PaymentStatus != checkout.StatusFailed {
		t.Errorf("status = %q, want failed", sub.PaymentStatus)
	}
}

func TestCallbackNonSuccessStatusSkipsVerify(t *testing.T) {
	r, store, gateway := newCallbackTest(true)

	w := doCallback(r, "?tx_ref=TAP-ABCDEF123456&status=cancelled")
	if got := w.Header().Get("Location"); got != "http://localhost:5173/checkout?error=payment_failed" {
		t.Errorf("Location = %q, want failure redirect", got)
	}
	if len(gateway.verifyCalls) != 0 {
		t.Errorf("verify called for non-success status param")
	}

	sub := store.submissions["TAP-ABCDEF123456"]
	if sub.PaymentStatus != checkout.StatusFailed || sub.IsPaid {
		t.Errorf("status=%q paid=%v, want failed/false", sub.PaymentStatus, sub.IsPaid)
	}
}

func TestCallbackSuccessIsIdempotent(t *testing.T) {
	r, store, _ := newCallbackTest(true)

	for i := 0; i < 2; i++ {
		w := doCallback(r, "?tx_ref=TAP-ABCDEF123456&status=success")
		if got := w.Header().Get("Location"); got != "http://localhost:5173/checkout/success/7" {
			t.Fatalf("call %d: Location = %q", i+1, got)
		}
	}

	sub := store.submissions["TAP-ABCDEF123456"]
	if !sub.IsPaid || sub.PaymentStatus != checkout.StatusSuccess {
		t.Errorf("after two callbacks: status=%q paid=%v, want success/true", sub.PaymentStatus, sub.IsPaid)
	}
}
