package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/adapter/razorpay"
	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/obs"
	"github.com/textileoem/platform/internal/pkg/auth"
	"github.com/textileoem/platform/internal/server/http/dto"
	"github.com/textileoem/platform/internal/server/http/middleware"
	testhelpers "github.com/textileoem/platform/internal/test"
	"github.com/textileoem/platform/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func withIdentity(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityContextKey, &auth.Identity{ID: userID, Role: "user"})
	}
}

func performRequest(t *testing.T, method, route, target string, body []byte, chain ...gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Use(middleware.ErrorHandler(discardLogger(), false))
	router.Handle(method, route, chain...)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var envelope dto.Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return envelope
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != "" {
		t.Fatalf("expected empty user id when not set, got %q", got)
	}

	c.Set(middleware.IdentityContextKey, &auth.Identity{ID: "user-1"})
	if got := CurrentUserID(c); got != "user-1" {
		t.Fatalf("expected user-1, got %q", got)
	}
}

func TestAuthHandlerToken(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{IssueFn: func(identity auth.Identity) (string, error) {
		if identity.ID != "user-1" {
			t.Fatalf("unexpected identity %+v", identity)
		}
		return "signed-token", nil
	}})

	w := performRequest(t, http.MethodPost, "/api/auth/token", "/api/auth/token", nil,
		withIdentity("user-1"), handler.Token)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "signed-token") {
		t.Fatalf("token missing from response: %s", w.Body.String())
	}
}

func TestAuthHandlerTokenWithoutIdentity(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})
	w := performRequest(t, http.MethodPost, "/api/auth/token", "/api/auth/token", nil, handler.Token)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	var gotUser string
	var gotDraft model.OrderDraft
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, userID string, draft model.OrderDraft) (*model.Order, error) {
		gotUser = userID
		gotDraft = draft
		return &model.Order{ID: "ord-9", UserID: userID, Client: draft.Client, Product: draft.Product, Quantity: draft.Quantity, Status: model.OrderStatusPending}, nil
	}})

	body, _ := json.Marshal(dto.CreateOrderRequest{Client: "Acme Exports", Product: "Cotton shirts", Quantity: 500})
	w := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", body,
		withIdentity("user-1"), middleware.ValidateBody[dto.CreateOrderRequest](), handler.Create)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if gotUser != "user-1" || gotDraft.Client != "Acme Exports" || gotDraft.Quantity != 500 {
		t.Fatalf("unexpected facade call: user %q draft %+v", gotUser, gotDraft)
	}
	envelope := decodeEnvelope(t, w)
	if !envelope.Success || envelope.Message != "Order created successfully" {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}

func TestOrderHandlerCreateRejectsMissingFields(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(context.Context, string, model.OrderDraft) (*model.Order, error) {
		t.Fatal("facade must not be called for an invalid body")
		return nil, nil
	}})

	body, _ := json.Marshal(map[string]any{"client": "Acme Exports"})
	w := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", body,
		withIdentity("user-1"), middleware.ValidateBody[dto.CreateOrderRequest](), handler.Create)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if envelope := decodeEnvelope(t, w); envelope.Success {
		t.Fatal("expected failure envelope")
	}
}

func TestOrderHandlerListPassesFilter(t *testing.T) {
	var gotFilter model.OrderFilter
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{ListFn: func(ctx context.Context, userID string, filter model.OrderFilter) ([]model.Order, int, error) {
		gotFilter = filter
		return []model.Order{{ID: "ord-1", UserID: userID}}, 23, nil
	}})

	w := performRequest(t, http.MethodGet, "/api/orders", "/api/orders?status=pending&page=2&limit=5", nil,
		withIdentity("user-1"), handler.List)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotFilter.Status != "pending" || gotFilter.Page != 2 || gotFilter.Limit != 5 {
		t.Fatalf("unexpected filter %+v", gotFilter)
	}
	if !strings.Contains(w.Body.String(), `"pages":5`) {
		t.Fatalf("expected pagination with 5 pages, got %s", w.Body.String())
	}
}

func TestOrderHandlerDeleteTranslatesDomainError(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{DeleteFn: func(context.Context, string, string) error {
		return domainErrors.BadRequest("Only pending orders can be deleted")
	}})

	w := performRequest(t, http.MethodDelete, "/api/orders/:id", "/api/orders/ord-1", nil,
		withIdentity("user-1"), handler.Delete)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if envelope.Error != "Only pending orders can be deleted" {
		t.Fatalf("unexpected error message %q", envelope.Error)
	}
}

func TestOrderHandlerGetNotFound(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{GetFn: func(context.Context, string, string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}})

	w := performRequest(t, http.MethodGet, "/api/orders/:id", "/api/orders/missing", nil,
		withIdentity("user-1"), handler.Get)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestComplianceHandlerRejectsBadID(t *testing.T) {
	handler := NewComplianceHandler(testhelpers.ComplianceFacadeStub{GetFn: func(context.Context, string, int64) (*model.ComplianceItem, error) {
		t.Fatal("facade must not be called for a malformed id")
		return nil, nil
	}})

	w := performRequest(t, http.MethodGet, "/api/compliance/:id", "/api/compliance/abc", nil,
		withIdentity("user-1"), handler.Get)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestComplianceHandlerUpcomingDefaultsDays(t *testing.T) {
	var gotDays int
	handler := NewComplianceHandler(testhelpers.ComplianceFacadeStub{UpcomingFn: func(ctx context.Context, userID string, days int) ([]model.ComplianceItem, error) {
		gotDays = days
		return []model.ComplianceItem{}, nil
	}})

	w := performRequest(t, http.MethodGet, "/api/compliance/upcoming", "/api/compliance/upcoming", nil,
		withIdentity("user-1"), handler.Upcoming)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotDays != 0 {
		t.Fatalf("handler must pass the raw horizon through, got %d", gotDays)
	}
	if !strings.Contains(w.Body.String(), `"days":30`) {
		t.Fatalf("expected default 30 day horizon in response, got %s", w.Body.String())
	}
}

func TestPaymentHandlerCreateOrderWithoutMirror(t *testing.T) {
	handler := NewPaymentHandler(testhelpers.PaymentFacadeStub{CreateOrderFn: func(ctx context.Context, userID string, draft model.PaymentDraft) (*razorpay.Order, *model.Payment, error) {
		return &razorpay.Order{ID: "order_live", Amount: 49999, Currency: "INR", Status: "created"}, nil, nil
	}})

	body, _ := json.Marshal(map[string]any{"amount": "499.99"})
	w := performRequest(t, http.MethodPost, "/api/payments/create-order", "/api/payments/create-order", body,
		withIdentity("user-1"), middleware.ValidateBody[dto.CreatePaymentRequest](), handler.CreateOrder)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), `"payment"`) {
		t.Fatalf("response must omit the mirror when it was not written: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "order_live") {
		t.Fatalf("provider order missing from response: %s", w.Body.String())
	}
}

func TestPaymentHandlerWebhook(t *testing.T) {
	var gotVerification usecase.WebhookVerification
	handler := NewPaymentHandler(testhelpers.PaymentFacadeStub{VerifyFn: func(ctx context.Context, v usecase.WebhookVerification) (*razorpay.PaymentDetails, *model.Payment, error) {
		gotVerification = v
		return &razorpay.PaymentDetails{ID: v.RazorpayPaymentID, Status: "captured"},
			&model.Payment{ID: "pay-1", Status: model.PaymentStatusCaptured, RazorpayOrderID: v.RazorpayOrderID}, nil
	}})

	body, _ := json.Marshal(dto.VerifyPaymentRequest{RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1", RazorpaySignature: "sig"})
	w := performRequest(t, http.MethodPost, "/api/payments/webhook", "/api/payments/webhook", body,
		middleware.ValidateBody[dto.VerifyPaymentRequest](), handler.Webhook)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotVerification.RazorpayOrderID != "order_1" || gotVerification.RazorpaySignature != "sig" {
		t.Fatalf("unexpected verification payload %+v", gotVerification)
	}
	envelope := decodeEnvelope(t, w)
	if envelope.Message != "Payment verified successfully" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
}

func TestNotificationHandlerRejectsInvalidPhone(t *testing.T) {
	handler := NewNotificationHandler(testhelpers.NotificationFacadeStub{SendFn: func(context.Context, string, string, string, *string) (*usecase.SendResult, error) {
		t.Fatal("facade must not be called for an invalid phone number")
		return nil, nil
	}})

	body, _ := json.Marshal(dto.SendWhatsAppRequest{PhoneNumber: "not-a-number", Message: "hello"})
	w := performRequest(t, http.MethodPost, "/api/notify/whatsapp", "/api/notify/whatsapp", body,
		withIdentity("user-1"), middleware.ValidateBody[dto.SendWhatsAppRequest](), handler.SendWhatsApp)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestNotificationHandlerSendWhatsApp(t *testing.T) {
	message := testhelpers.RandomASCIIString(10, 40)
	phone := testhelpers.RandomPhoneNumber()
	var gotPhone, gotMessage string
	handler := NewNotificationHandler(testhelpers.NotificationFacadeStub{SendFn: func(ctx context.Context, userID, p, m string, orderID *string) (*usecase.SendResult, error) {
		gotPhone, gotMessage = p, m
		return &usecase.SendResult{MessageID: "SM123", Status: "sent"}, nil
	}})

	body, _ := json.Marshal(dto.SendWhatsAppRequest{PhoneNumber: phone, Message: message})
	w := performRequest(t, http.MethodPost, "/api/notify/whatsapp", "/api/notify/whatsapp", body,
		withIdentity("user-1"), middleware.ValidateBody[dto.SendWhatsAppRequest](), handler.SendWhatsApp)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotPhone != phone || gotMessage != message {
		t.Fatalf("unexpected send: %q %q", gotPhone, gotMessage)
	}
	if !strings.Contains(w.Body.String(), "SM123") {
		t.Fatalf("expected message sid in response, got %s", w.Body.String())
	}
}

func TestHealthHandlerDegraded(t *testing.T) {
	handler := NewHealthHandler(testhelpers.HealthFacadeStub{HealthFn: func(context.Context) *usecase.HealthStatus {
		return &usecase.HealthStatus{Status: usecase.HealthDegraded, Services: map[string]string{"database": "error"}}
	}}, obs.NewMetrics())

	w := performRequest(t, http.MethodGet, "/api/health", "/api/health", nil, handler.Check)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if envelope := decodeEnvelope(t, w); envelope.Success {
		t.Fatal("degraded health must not report success")
	}
}

func TestHealthHandlerMetricsSnapshot(t *testing.T) {
	metrics := obs.NewMetrics()
	metrics.Observe(http.MethodGet, "/api/orders", http.StatusOK, 12*time.Millisecond)
	handler := NewHealthHandler(testhelpers.HealthFacadeStub{}, metrics)

	w := performRequest(t, http.MethodGet, "/api/health/metrics", "/api/health/metrics", nil, handler.Metrics)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"total_requests":1`) {
		t.Fatalf("expected aggregator snapshot, got %s", w.Body.String())
	}
}
