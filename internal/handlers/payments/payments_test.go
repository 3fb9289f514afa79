package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/internal/dto"
	"github.com/mkorchagin/payledger/internal/service/paymentservice"
	"github.com/mkorchagin/payledger/internal/service/transactionservice"
	"github.com/mkorchagin/payledger/pkg/auth"
)

type mocks struct {
	ledger      *MockLedgerService
	status      *MockStatusService
	paymentRepo *MockPaymentRepo
	users       *MockUserService
}

func NewMock(t *testing.T) (*PaymentsHandler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		ledger:      NewMockLedgerService(ctrl),
		status:      NewMockStatusService(ctrl),
		paymentRepo: NewMockPaymentRepo(ctrl),
		users:       NewMockUserService(ctrl),
	}
	handler := New(m.ledger, m.status, m.paymentRepo, m.users)
	defer ctrl.Finish()
	return handler, m
}

func authedRequest(method, target string, body []byte, userID int) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, domain.RoleAdmin)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreate(t *testing.T) {
	handler, m := NewMock(t)

	body, _ := json.Marshal(dto.PaymentCreateRequestDTO{
		UserID:     42,
		Type:       domain.TypeRealMoney,
		Method:     "top_up",
		FullAmount: "900",
	})

	m.ledger.EXPECT().Create(gomock.Any(), gomock.Cond(func(x any) bool {
		params, ok := x.(paymentservice.CreateParams)
		return ok &&
			*params.InitiatorID == 1 &&
			params.UserID == 42 &&
			params.Method == domain.MethodTopUp &&
			params.FullAmount.Equal(decimal.RequireFromString("900"))
	})).Return(&domain.Payment{
		ID:               10,
		UserID:           42,
		Method:           domain.MethodTopUp,
		Status:           domain.StatusCreate,
		FullAmount:       decimal.RequireFromString("900"),
		Amount:           decimal.RequireFromString("891"),
		CommissionAmount: decimal.RequireFromString("9"),
	}, nil)

	w := httptest.NewRecorder()
	handler.Create(w, authedRequest(http.MethodPost, "/api/payments", body, 1))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PaymentResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.ID)
	assert.Equal(t, "891.00000000", resp.Amount)
	assert.Equal(t, "9.00000000", resp.CommissionAmount)
}

func TestCreateErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"Permission denied", paymentservice.ErrPermissionDenied, http.StatusForbidden},
		{"Insufficient funds", paymentservice.ErrInsufficientFunds, http.StatusPaymentRequired},
		{"Invalid amount", paymentservice.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{"Unknown user", paymentservice.ErrUserNotFound, http.StatusUnprocessableEntity},
		{"Storage failure", paymentservice.ErrPersistence, http.StatusInternalServerError},
	}

	body, _ := json.Marshal(dto.PaymentCreateRequestDTO{
		UserID:     42,
		Type:       domain.TypeRealMoney,
		Method:     "withdraw",
		FullAmount: "900",
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := NewMock(t)
			m.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := httptest.NewRecorder()
			handler.Create(w, authedRequest(http.MethodPost, "/api/payments", body, 1))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCreateUnknownMethod(t *testing.T) {
	handler, _ := NewMock(t)

	body, _ := json.Marshal(dto.PaymentCreateRequestDTO{
		UserID:     42,
		Type:       domain.TypeRealMoney,
		Method:     "transfer",
		FullAmount: "900",
	})

	w := httptest.NewRecorder()
	handler.Create(w, authedRequest(http.MethodPost, "/api/payments", body, 1))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateMalformedAmount(t *testing.T) {
	handler, _ := NewMock(t)

	body, _ := json.Marshal(dto.PaymentCreateRequestDTO{
		UserID:     42,
		Type:       domain.TypeRealMoney,
		Method:     "top_up",
		FullAmount: "12,5",
	})

	w := httptest.NewRecorder()
	handler.Create(w, authedRequest(http.MethodPost, "/api/payments", body, 1))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateBadBody(t *testing.T) {
	handler, _ := NewMock(t)

	w := httptest.NewRecorder()
	handler.Create(w, authedRequest(http.MethodPost, "/api/payments", []byte("{"), 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirm(t *testing.T) {
	handler, m := NewMock(t)
	txid := "f01a9c"

	m.status.EXPECT().Confirm(gomock.Any(), 10, transactionservice.ConfirmOptions{TxID: &txid}).
		Return(&domain.Payment{ID: 10, Status: domain.StatusPaid}, nil)

	body, _ := json.Marshal(dto.PaymentConfirmRequestDTO{TxID: &txid})
	req := withURLParam(authedRequest(http.MethodPost, "/api/payments/10/confirm", body, 1), "id", "10")

	w := httptest.NewRecorder()
	handler.Confirm(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.StatusPaid), resp.Status)
}

func TestConfirmAlreadyClosed(t *testing.T) {
	handler, m := NewMock(t)

	m.status.EXPECT().Confirm(gomock.Any(), 10, gomock.Any()).
		Return(nil, transactionservice.ErrPaymentClosed)

	req := withURLParam(authedRequest(http.MethodPost, "/api/payments/10/confirm", nil, 1), "id", "10")

	w := httptest.NewRecorder()
	handler.Confirm(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestConfirmNotFound(t *testing.T) {
	handler, m := NewMock(t)

	m.status.EXPECT().Confirm(gomock.Any(), 404, gomock.Any()).
		Return(nil, transactionservice.ErrPaymentNotFound)

	req := withURLParam(authedRequest(http.MethodPost, "/api/payments/404/confirm", nil, 1), "id", "404")

	w := httptest.NewRecorder()
	handler.Confirm(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfirmBadID(t *testing.T) {
	handler, _ := NewMock(t)

	req := withURLParam(authedRequest(http.MethodPost, "/api/payments/abc/confirm", nil, 1), "id", "abc")

	w := httptest.NewRecorder()
	handler.Confirm(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancel(t *testing.T) {
	handler, m := NewMock(t)

	m.status.EXPECT().Cancel(gomock.Any(), 10).
		Return(&domain.Payment{ID: 10, Status: domain.StatusCancel}, nil)

	req := withURLParam(authedRequest(http.MethodPost, "/api/payments/10/cancel", nil, 1), "id", "10")

	w := httptest.NewRecorder()
	handler.Cancel(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestList(t *testing.T) {
	handler, m := NewMock(t)

	m.paymentRepo.EXPECT().List(gomock.Any(), defaultPageSize, 0).
		Return([]domain.Payment{{ID: 2}, {ID: 1}}, nil)

	w := httptest.NewRecorder()
	handler.List(w, authedRequest(http.MethodGet, "/api/payments", nil, 1))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PaymentResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, 2, resp[0].ID)
}

func TestGetBalance(t *testing.T) {
	handler, m := NewMock(t)

	m.users.EXPECT().FindByID(gomock.Any(), 42).
		Return(&domain.User{ID: 42, Balance: decimal.RequireFromString("891")}, nil)

	w := httptest.NewRecorder()
	handler.GetBalance(w, authedRequest(http.MethodGet, "/api/users/balance", nil, 42))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BalanceResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "891.00000000", resp.Balance)
}
