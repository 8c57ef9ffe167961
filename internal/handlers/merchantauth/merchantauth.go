package merchantauth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/internal/dto"
	"github.com/constella/constella/internal/service/merchantservice"
	"github.com/constella/constella/pkg/auth"
	"github.com/constella/constella/pkg/utils"
	"github.com/constella/constella/pkg/validate"
)

type Service interface {
	Signup(ctx context.Context, username, password, name string, email *string) (*domain.Merchant, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Merchant, error)
	GetProfile(ctx context.Context, merchantID string) (*domain.Merchant, error)
	GenerateToken(merchantID string) (string, error)
}

type AuthHandler struct {
	merchantService Service
}

func New(merchantService Service) *AuthHandler {
	return &AuthHandler{
		merchantService: merchantService,
	}
}

// Signup godoc
//
//	@Summary		Register a new merchant
//	@Description	Create a merchant account with username and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MerchantSignupRequestDTO	true	"Signup request body"
//	@Success		201		{object}	dto.MerchantAuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Username or email already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.MerchantSignupRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsUsername(req.Username) || len(req.Password) < 8 || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid signup fields")
		return
	}
	merchant, err := h.merchantService.Signup(r.Context(), req.Username, req.Password, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, merchantservice.ErrUsernameTaken), errors.Is(err, merchantservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.merchantService.GenerateToken(merchant.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.MerchantAuthResponseDTO{
		Message:  "Merchant created successfully",
		Merchant: toMerchantDTO(merchant),
		Token:    token,
	})
}

// Login godoc
//
//	@Summary		Authenticate merchant
//	@Description	Log in with a merchant account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MerchantLoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.MerchantAuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		403		{object}	utils.Response	"Account is deactivated"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.MerchantLoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	merchant, err := h.merchantService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, merchantservice.ErrAccountDisabled):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		}
		return
	}
	token, err := h.merchantService.GenerateToken(merchant.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MerchantAuthResponseDTO{
		Message:  "Login successful",
		Merchant: toMerchantDTO(merchant),
		Token:    token,
	})
}

// Me godoc
//
//	@Summary		Get merchant profile
//	@Description	Retrieve the authenticated merchant's profile
//	@Tags			Auth
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	dto.MerchantProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"Merchant not authorized"
//	@Failure		404	{object}	utils.Response	"Merchant not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	merchantID := r.Context().Value(auth.SubjectIDKey).(string)

	merchant, err := h.merchantService.GetProfile(r.Context(), merchantID)
	if err != nil {
		switch {
		case errors.Is(err, merchantservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MerchantProfileResponseDTO{
		Merchant: toMerchantDTO(merchant),
	})
}

func toMerchantDTO(m *domain.Merchant) dto.MerchantDTO {
	return dto.MerchantDTO{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}
