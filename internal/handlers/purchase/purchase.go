package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/internal/dto"
	"github.com/constella/constella/internal/paymentsclient"
	"github.com/constella/constella/internal/service/purchaseservice"
	"github.com/constella/constella/pkg/auth"
	"github.com/constella/constella/pkg/utils"
	"github.com/constella/constella/pkg/validate"
)

type Service interface {
	CompletePurchase(ctx context.Context, userID, nonce string) (float64, *domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	MarkPurchased(ctx context.Context, userID string) (*domain.User, error)
	ResetPurchase(ctx context.Context, userID string) (*domain.User, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Claim completes a purchase by consuming the nonce through the payments
// server. Conflicts map to 409, an amount below the configured price to 400.
func (h *PurchaseHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.SubjectIDKey).(string)

	var req dto.ClaimPurchaseRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsNonce(req.Nonce) {
		utils.RespondWithError(w, http.StatusBadRequest, "Nonce is required")
		return
	}

	amount, user, err := h.purchaseService.CompletePurchase(r.Context(), userID, req.Nonce)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrNonceConsumed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, purchaseservice.ErrInsufficientAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentsclient.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentsclient.ErrAlreadyClaimed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process payment")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimPurchaseResponseDTO{
		Message: "Payment completed successfully",
		Amount:  amount,
		User:    toUserDTO(user),
	})
}

func (h *PurchaseHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.SubjectIDKey).(string)

	user, err := h.purchaseService.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.SubjectIDKey).(string)

	user, err := h.purchaseService.MarkPurchased(r.Context(), userID)
	if err != nil {
		h.respondPurchaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Message: "Purchase recorded successfully",
		User:    toUserDTO(user),
	})
}

func (h *PurchaseHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.SubjectIDKey).(string)

	user, err := h.purchaseService.ResetPurchase(r.Context(), userID)
	if err != nil {
		h.respondPurchaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Message: "Purchase state reset successfully",
		User:    toUserDTO(user),
	})
}

// Logout is stateless: tokens simply expire, the endpoint exists for the
// frontend's sign-out flow.
func (h *PurchaseHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Logged out successfully"})
}

func (h *PurchaseHandler) respondPurchaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, purchaseservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toUserDTO(u *domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Picture:      u.Picture,
		HasPurchased: u.HasPurchased,
		PurchasedAt:  u.PurchasedAt,
		CreatedAt:    u.CreatedAt,
	}
}
