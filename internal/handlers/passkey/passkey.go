package passkey

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-webauthn/webauthn/protocol"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/internal/dto"
	"github.com/constella/constella/internal/service/walletservice"
	"github.com/constella/constella/pkg/auth"
	"github.com/constella/constella/pkg/utils"
	"github.com/constella/constella/pkg/validate"
)

type Service interface {
	BeginRegistration(ctx context.Context, username string) (*protocol.CredentialCreation, error)
	FinishRegistration(ctx context.Context, username string, response *protocol.ParsedCredentialCreationData) (string, *domain.WalletUser, error)
	BeginLogin(ctx context.Context, username string) (*protocol.CredentialAssertion, error)
	FinishLogin(ctx context.Context, username string, response *protocol.ParsedCredentialAssertionData) (string, *domain.WalletUser, error)
	GetProfile(ctx context.Context, userID string) (*domain.WalletUser, error)
	CheckUsername(ctx context.Context, username string) (bool, error)
	DeleteUser(ctx context.Context, username string) error
}

type PasskeyHandler struct {
	walletService Service
	adminKey      string
}

func New(walletService Service, adminKey string) *PasskeyHandler {
	return &PasskeyHandler{
		walletService: walletService,
		adminKey:      adminKey,
	}
}

// RegisterStart begins a passkey registration ceremony and returns the
// credential creation options produced by the relying party.
func (h *PasskeyHandler) RegisterStart(w http.ResponseWriter, r *http.Request) {
	username, ok := h.decodeUsername(w, r)
	if !ok {
		return
	}

	options, err := h.walletService.BeginRegistration(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidUsername):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrUsernameTaken):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to start registration")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, options)
}

// RegisterFinish verifies the authenticator attestation. The username travels
// as a query parameter because the body is the raw WebAuthn response.
func (h *PasskeyHandler) RegisterFinish(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if !validate.IsUsername(username) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid username")
		return
	}

	response, err := protocol.ParseCredentialCreationResponseBody(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid credential response")
		return
	}

	token, user, err := h.walletService.FinishRegistration(r.Context(), username, response)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrCeremonyNotStarted):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrVerificationFailed):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to complete registration")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PasskeyFinishResponseDTO{
		Token: token,
		User:  toWalletUserDTO(user),
	})
}

func (h *PasskeyHandler) LoginStart(w http.ResponseWriter, r *http.Request) {
	username, ok := h.decodeUsername(w, r)
	if !ok {
		return
	}

	options, err := h.walletService.BeginLogin(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrUserNotFound),
			errors.Is(err, walletservice.ErrRegistrationPending):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to start login")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, options)
}

func (h *PasskeyHandler) LoginFinish(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if !validate.IsUsername(username) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid username")
		return
	}

	response, err := protocol.ParseCredentialRequestResponseBody(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid credential response")
		return
	}

	token, user, err := h.walletService.FinishLogin(r.Context(), username, response)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrCeremonyNotStarted):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrUserNotFound),
			errors.Is(err, walletservice.ErrRegistrationPending),
			errors.Is(err, walletservice.ErrVerificationFailed):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to complete login")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PasskeyFinishResponseDTO{
		Token: token,
		User:  toWalletUserDTO(user),
	})
}

func (h *PasskeyHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.SubjectIDKey).(string)

	user, err := h.walletService.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletProfileResponseDTO{
		ID:            user.ID,
		Username:      user.Username,
		WalletAddress: user.WalletAddress,
		Balance:       user.Balance,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	})
}

func (h *PasskeyHandler) CheckUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !validate.IsUsername(username) {
		utils.RespondWithJSON(w, http.StatusOK, dto.UsernameAvailabilityResponseDTO{
			Available: false,
			Message:   "Username must be 3-50 characters of lowercase letters, digits, dots, underscores or hyphens",
		})
		return
	}

	available, err := h.walletService.CheckUsername(r.Context(), username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	msg := "Username is available"
	if !available {
		msg = "Username is already taken"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UsernameAvailabilityResponseDTO{
		Available: available,
		Message:   msg,
	})
}

// DeleteUser removes a wallet account and its credentials. The endpoint is
// gated by a shared admin key, not a user token.
func (h *PasskeyHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if h.adminKey == "" || subtle.ConstantTimeCompare([]byte(r.Header.Get("X-Admin-Key")), []byte(h.adminKey)) != 1 {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	username := chi.URLParam(r, "username")
	if username == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username is required")
		return
	}

	err := h.walletService.DeleteUser(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User deleted successfully"})
}

func (h *PasskeyHandler) decodeUsername(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req dto.PasskeyStartRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return "", false
	}
	if !validate.IsUsername(req.Username) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid username")
		return "", false
	}
	return req.Username, true
}

func toWalletUserDTO(u *domain.WalletUser) dto.WalletUserDTO {
	return dto.WalletUserDTO{
		ID:            u.ID,
		Username:      u.Username,
		WalletAddress: u.WalletAddress,
		Balance:       u.Balance,
	}
}
