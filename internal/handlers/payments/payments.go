package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/internal/dto"
	"github.com/constella/constella/internal/service/paymentservice"
	"github.com/constella/constella/pkg/auth"
	"github.com/constella/constella/pkg/utils"
	"github.com/constella/constella/pkg/validate"
)

type Service interface {
	CreateRequest(ctx context.Context, nonce string) (*domain.PaymentRequest, error)
	ClaimRequest(ctx context.Context, merchantID, nonce string) (*domain.PaymentRequest, bool, error)
	GetBalance(ctx context.Context, merchantID string) (float64, int, error)
	ListClaimed(ctx context.Context, merchantID string, page, limit int) ([]domain.PaymentRequest, int, error)
	GetByNonce(ctx context.Context, nonce string) (*domain.PaymentRequest, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

const defaultPageLimit = 10

// Create godoc
//
//	@Summary		Create a payment request
//	@Description	Allocate a one-time deposit wallet for a caller-supplied nonce
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Create request body"
//	@Success		201		{object}	dto.PaymentRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid nonce"
//	@Failure		409		{object}	utils.Response	"Nonce already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/create [post]
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsNonce(req.Nonce) {
		utils.RespondWithError(w, http.StatusBadRequest, "Nonce is required")
		return
	}
	pr, err := h.paymentService.CreateRequest(r.Context(), req.Nonce)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrNonceAlreadyExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PaymentRequestResponseDTO{
		Message:        "Payment request created successfully",
		PaymentRequest: toPaymentRequestDTO(pr),
	})
}

// Claim godoc
//
//	@Summary		Claim a payment request
//	@Description	Claim the request for the authenticated merchant and compute its amount
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ClaimPaymentRequestDTO	true	"Claim request body"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	dto.PaymentRequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid nonce"
//	@Failure		401	{object}	utils.Response	"Merchant not authorized"
//	@Failure		404	{object}	utils.Response	"Payment request not found"
//	@Failure		409	{object}	utils.Response	"Claimed by another merchant"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/claim [post]
func (h *PaymentHandler) Claim(w http.ResponseWriter, r *http.Request) {
	merchantID := r.Context().Value(auth.SubjectIDKey).(string)

	var req dto.ClaimPaymentRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsNonce(req.Nonce) {
		utils.RespondWithError(w, http.StatusBadRequest, "Nonce is required")
		return
	}
	pr, reclaimed, err := h.paymentService.ClaimRequest(r.Context(), merchantID, req.Nonce)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrClaimedByAnotherMerchant):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	message := "Payment request claimed successfully"
	if reclaimed {
		message = "Payment request amount updated successfully"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentRequestResponseDTO{
		Message:        message,
		PaymentRequest: toPaymentRequestDTO(pr),
	})
}

// Balance godoc
//
//	@Summary		Get merchant balance
//	@Description	Sum of amounts over the merchant's claimed payment requests
//	@Tags			Payments
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"Merchant not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/balance [get]
func (h *PaymentHandler) Balance(w http.ResponseWriter, r *http.Request) {
	merchantID := r.Context().Value(auth.SubjectIDKey).(string)

	total, count, err := h.paymentService.GetBalance(r.Context(), merchantID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		MerchantID:           merchantID,
		TotalBalance:         total,
		ClaimedRequestsCount: count,
	})
}

// Claimed godoc
//
//	@Summary		List claimed payment requests
//	@Description	Paginated list of the merchant's claimed requests, most recently updated first
//	@Tags			Payments
//	@Produce		json
//	@Param			page	query	int	false	"Page number"
//	@Param			limit	query	int	false	"Page size"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	dto.ClaimedRequestsResponseDTO
//	@Failure		401	{object}	utils.Response	"Merchant not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/claimed [get]
func (h *PaymentHandler) Claimed(w http.ResponseWriter, r *http.Request) {
	merchantID := r.Context().Value(auth.SubjectIDKey).(string)

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultPageLimit)

	requests, totalCount, err := h.paymentService.ListClaimed(r.Context(), merchantID, page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	claimed := make([]dto.PaymentRequestDTO, 0, len(requests))
	for i := range requests {
		claimed = append(claimed, toPaymentRequestDTO(&requests[i]))
	}
	totalPages := (totalCount + limit - 1) / limit
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimedRequestsResponseDTO{
		ClaimedRequests: claimed,
		Pagination: dto.PaginationDTO{
			Page:       page,
			Limit:      limit,
			TotalCount: totalCount,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	})
}

// GetByNonce godoc
//
//	@Summary		Get a payment request
//	@Description	Public fields of a payment request looked up by nonce
//	@Tags			Payments
//	@Produce		json
//	@Param			nonce	path		string	true	"Payment request nonce"
//	@Success		200		{object}	dto.GetPaymentRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid nonce"
//	@Failure		404		{object}	utils.Response	"Payment request not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{nonce} [get]
func (h *PaymentHandler) GetByNonce(w http.ResponseWriter, r *http.Request) {
	nonce := chi.URLParam(r, "nonce")
	if !validate.IsNonce(nonce) {
		utils.RespondWithError(w, http.StatusBadRequest, "Nonce is required")
		return
	}

	pr, err := h.paymentService.GetByNonce(r.Context(), nonce)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetPaymentRequestResponseDTO{
		PaymentRequest: toPaymentRequestDTO(pr),
	})
}

func toPaymentRequestDTO(pr *domain.PaymentRequest) dto.PaymentRequestDTO {
	return dto.PaymentRequestDTO{
		ID:            pr.ID,
		Nonce:         pr.Nonce,
		WalletAddress: pr.WalletAddress,
		Amount:        pr.Amount,
		Status:        pr.Status,
		MerchantID:    pr.MerchantID,
		CreatedAt:     pr.CreatedAt,
		UpdatedAt:     pr.UpdatedAt,
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
