package googleauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/pkg/utils"
)

const stateCookieName = "oauth_state"

type Service interface {
	UpsertGoogleUser(ctx context.Context, googleID, email, name, picture string) (*domain.User, error)
	GenerateToken(userID string) (string, error)
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type GoogleAuthHandler struct {
	userService Service
	oauthConfig *oauth2.Config
	frontendURL string
	userInfoURL string
}

func New(userService Service, oauthConfig *oauth2.Config, frontendURL string) *GoogleAuthHandler {
	return &GoogleAuthHandler{
		userService: userService,
		oauthConfig: oauthConfig,
		frontendURL: frontendURL,
		userInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

// Redirect starts the OAuth flow. The state value is random per request and
// echoed back through a short-lived cookie.
func (h *GoogleAuthHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	state, err := randomState()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to start authentication")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.oauthConfig.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *GoogleAuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookieName)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid state parameter")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, Value: "", Path: "/", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing authorization code")
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		zap.L().Error("oauth code exchange failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to exchange authorization code")
		return
	}

	info, err := h.fetchUserInfo(r.Context(), token)
	if err != nil {
		zap.L().Error("failed to fetch google user info", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch user info")
		return
	}

	user, err := h.userService.UpsertGoogleUser(r.Context(), info.ID, info.Email, info.Name, info.Picture)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	jwtToken, err := h.userService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("%s/auth-callback?token=%s", h.frontendURL, jwtToken), http.StatusTemporaryRedirect)
}

func (h *GoogleAuthHandler) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := h.oauthConfig.Client(ctx, token)
	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.ID == "" {
		return nil, fmt.Errorf("userinfo response missing subject id")
	}
	return &info, nil
}

func randomState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
