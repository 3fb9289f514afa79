package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/internal/dto"
	"github.com/mkorchagin/payledger/internal/service/paymentservice"
	"github.com/mkorchagin/payledger/internal/service/transactionservice"
	"github.com/mkorchagin/payledger/pkg/auth"
	"github.com/mkorchagin/payledger/pkg/money"
	"github.com/mkorchagin/payledger/pkg/utils"
)

type LedgerService interface {
	Create(ctx context.Context, params paymentservice.CreateParams) (*domain.Payment, error)
}

type StatusService interface {
	Confirm(ctx context.Context, paymentID int, opts transactionservice.ConfirmOptions) (*domain.Payment, error)
	Cancel(ctx context.Context, paymentID int) (*domain.Payment, error)
}

type PaymentRepo interface {
	List(ctx context.Context, limit, offset int) ([]domain.Payment, error)
}

type UserService interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

const defaultPageSize = 50

type PaymentsHandler struct {
	ledger      LedgerService
	status      StatusService
	paymentRepo PaymentRepo
	users       UserService
}

func New(ledger LedgerService, status StatusService, paymentRepo PaymentRepo, users UserService) *PaymentsHandler {
	return &PaymentsHandler{
		ledger:      ledger,
		status:      status,
		paymentRepo: paymentRepo,
		users:       users,
	}
}

// Create godoc
//
//	@Summary		Create a payment
//	@Description	Post a new ledger entry (top-up or withdrawal) for a user. Creating for another user requires the admin role.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentCreateRequestDTO	true	"Payment payload"
//	@Success		201		{object}	dto.PaymentResponseDTO		"Created payment"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		403		{object}	utils.Response				"Permission denied"
//	@Failure		422		{object}	utils.Response				"Invalid amount or method"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	initiatorID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PaymentCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	method := domain.PaymentMethod(req.Method)
	if method != domain.MethodTopUp && method != domain.MethodWithdraw {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "unknown payment method")
		return
	}

	fullAmount, err := money.Parse(req.FullAmount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	payment, err := h.ledger.Create(r.Context(), paymentservice.CreateParams{
		InitiatorID: &initiatorID,
		UserID:      req.UserID,
		Type:        req.Type,
		Method:      method,
		FullAmount:  fullAmount,
		AddressText: req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrPermissionDenied):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, paymentservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, paymentservice.ErrInvalidAmount), errors.Is(err, paymentservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPaymentResponse(payment))
}

// Confirm godoc
//
//	@Summary		Confirm a payment
//	@Description	Transition a payment to paid, post its transaction and move the user balance. Idempotent against terminal states.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Payment id"
//	@Param			request	body		dto.PaymentConfirmRequestDTO	false	"Provider confirmation details"
//	@Success		200		{object}	dto.PaymentResponseDTO		"Confirmed payment"
//	@Failure		404		{object}	utils.Response				"Payment not found"
//	@Failure		409		{object}	utils.Response				"Payment already closed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/payments/{id}/confirm [post]
func (h *PaymentsHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	var req dto.PaymentConfirmRequestDTO
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	payment, err := h.status.Confirm(r.Context(), paymentID, transactionservice.ConfirmOptions{TxID: req.TxID})
	if err != nil {
		h.respondStatusError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentResponse(payment))
}

// Cancel godoc
//
//	@Summary		Cancel a payment
//	@Description	Transition a payment to cancel. No transaction is posted.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Payment id"
//	@Success		200	{object}	dto.PaymentResponseDTO	"Cancelled payment"
//	@Failure		404	{object}	utils.Response			"Payment not found"
//	@Failure		409	{object}	utils.Response			"Payment already closed"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/payments/{id}/cancel [post]
func (h *PaymentsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := h.status.Cancel(r.Context(), paymentID)
	if err != nil {
		h.respondStatusError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentResponse(payment))
}

// List godoc
//
//	@Summary		List payments
//	@Description	Page through the ledger, newest first.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Offset"
//	@Success		200		{array}		dto.PaymentResponseDTO	"Payments"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 500 {
		limit = defaultPageSize
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	payments, err := h.paymentRepo.List(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PaymentResponseDTO, len(payments))
	for i := range payments {
		response[i] = dto.NewPaymentResponse(&payments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBalance godoc
//
//	@Summary		Get own balance
//	@Description	Current balance of the authenticated user, exact to 8 decimal places.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/users/balance [get]
func (h *PaymentsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: money.Format(user.Balance)})
}

func (h *PaymentsHandler) respondStatusError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transactionservice.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, transactionservice.ErrPaymentClosed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
