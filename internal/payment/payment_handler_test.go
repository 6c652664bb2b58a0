package payment_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"insuregate/internal/payment"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePaymentService struct {
	createSessionFn func(ctx context.Context, organizationID string, req payment.CreateSessionRequest) (*payment.SessionResponse, error)
	initiateFn      func(ctx context.Context, organizationID, id string) (*payment.SessionResponse, error)
	getFn           func(ctx context.Context, organizationID, id string) (*payment.SessionResponse, error)
	listFn          func(ctx context.Context, organizationID string) ([]payment.SessionResponse, error)
	resolveFn       func(ctx context.Context, sessionID, outcome string) (*payment.SessionResponse, error)
}

func (f *fakePaymentService) CreateSession(ctx context.Context, organizationID string, req payment.CreateSessionRequest) (*payment.SessionResponse, error) {
	return f.createSessionFn(ctx, organizationID, req)
}
func (f *fakePaymentService) Initiate(ctx context.Context, organizationID, id string) (*payment.SessionResponse, error) {
	return f.initiateFn(ctx, organizationID, id)
}
func (f *fakePaymentService) Get(ctx context.Context, organizationID, id string) (*payment.SessionResponse, error) {
	return f.getFn(ctx, organizationID, id)
}
func (f *fakePaymentService) List(ctx context.Context, organizationID string) ([]payment.SessionResponse, error) {
	return f.listFn(ctx, organizationID)
}
func (f *fakePaymentService) Resolve(ctx context.Context, sessionID, outcome string) (*payment.SessionResponse, error) {
	return f.resolveFn(ctx, sessionID, outcome)
}

func TestWebhook_RejectsBadSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_WEBHOOK_SECRET", "topsecret")

	svc := &fakePaymentService{
		resolveFn: func(ctx context.Context, sessionID, outcome string) (*payment.SessionResponse, error) {
			t.Fatal("resolve must not run with a bad secret")
			return nil, nil
		},
	}
	h := payment.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payments/webhook",
		strings.NewReader(`{"session_id":"x","status":"success"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set("X-Webhook-Secret", "wrong")
	h.Webhook(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhook_ResolvesWithValidSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_WEBHOOK_SECRET", "topsecret")

	sessionID := uuid.NewString()
	resolved := false
	svc := &fakePaymentService{
		resolveFn: func(ctx context.Context, sid, outcome string) (*payment.SessionResponse, error) {
			resolved = true
			assert.Equal(t, sessionID, sid)
			assert.Equal(t, payment.OutcomeSuccess, outcome)
			return &payment.SessionResponse{ID: sid, Status: payment.StatusCompleted}, nil
		},
	}
	h := payment.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := fmt.Sprintf(`{"session_id":%q,"status":"success"}`, sessionID)
	c.Request = httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set("X-Webhook-Secret", "topsecret")
	h.Webhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resolved)
	assert.Contains(t, w.Body.String(), payment.StatusCompleted)
}

func TestWebhook_RejectsUnknownOutcome(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_WEBHOOK_SECRET", "topsecret")

	h := payment.NewHandler(&fakePaymentService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := fmt.Sprintf(`{"session_id":%q,"status":"maybe"}`, uuid.NewString())
	c.Request = httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set("X-Webhook-Secret", "topsecret")
	h.Webhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
