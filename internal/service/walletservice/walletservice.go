package walletservice

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/pkg/auth"
	"github.com/constella/constella/pkg/validate"
	"github.com/constella/constella/pkg/wallet"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.WalletUser, error)
	FindByID(ctx context.Context, id string) (*domain.WalletUser, error)
	CreatePending(ctx context.Context, user *domain.WalletUser) error
	SaveSession(ctx context.Context, userID string, sessionData []byte) error
	CompleteRegistration(ctx context.Context, userID, address, privateKey string, authenticator *domain.Authenticator) error
	Delete(ctx context.Context, userID string) error
	DeleteByUsername(ctx context.Context, username string) error
	FindAuthenticators(ctx context.Context, userID string) ([]domain.Authenticator, error)
	UpdateSignCount(ctx context.Context, credentialID string, signCount uint32) error
}

// Ceremony is the slice of the WebAuthn library the service drives; ceremony
// internals (challenge checks, attestation parsing, counter validation) stay
// inside the library.
type Ceremony interface {
	BeginRegistration(user webauthn.User, opts ...webauthn.RegistrationOption) (*protocol.CredentialCreation, *webauthn.SessionData, error)
	CreateCredential(user webauthn.User, session webauthn.SessionData, parsedResponse *protocol.ParsedCredentialCreationData) (*webauthn.Credential, error)
	BeginLogin(user webauthn.User, opts ...webauthn.LoginOption) (*protocol.CredentialAssertion, *webauthn.SessionData, error)
	ValidateLogin(user webauthn.User, session webauthn.SessionData, parsedResponse *protocol.ParsedCredentialAssertionData) (*webauthn.Credential, error)
}

const tokenTTL = 24 * time.Hour

type Service struct {
	repo       Repo
	ceremony   Ceremony
	keys       wallet.GeneratorInterface
	jwtService auth.JWTServiceInterface
}

func New(repo Repo, ceremony Ceremony, keys wallet.GeneratorInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		repo:       repo,
		ceremony:   ceremony,
		keys:       keys,
		jwtService: jwtService,
	}
}

var (
	ErrInvalidUsername     = errors.New("invalid username")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrUserNotFound        = errors.New("user not found")
	ErrCeremonyNotStarted  = errors.New("no ceremony in progress for user")
	ErrVerificationFailed  = errors.New("credential verification failed")
	ErrRegistrationPending = errors.New("registration not completed")
)

// ceremonyUser adapts a stored wallet user to the library's user interface.
type ceremonyUser struct {
	user        *domain.WalletUser
	credentials []webauthn.Credential
}

func (u *ceremonyUser) WebAuthnID() []byte                         { return []byte(u.user.ID) }
func (u *ceremonyUser) WebAuthnName() string                       { return u.user.Username }
func (u *ceremonyUser) WebAuthnDisplayName() string                { return u.user.Username }
func (u *ceremonyUser) WebAuthnCredentials() []webauthn.Credential { return u.credentials }

// BeginRegistration creates (or reuses) the pending row for username and
// returns creation options. A username is only unavailable once a previous
// registration fully verified.
func (s *Service) BeginRegistration(ctx context.Context, username string) (*protocol.CredentialCreation, error) {
	if !validate.IsUsername(username) {
		return nil, ErrInvalidUsername
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user != nil && user.Registered {
		zap.L().Info("username already registered", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	if user == nil {
		user = &domain.WalletUser{
			ID:       uuid.NewString(),
			Username: username,
		}
		if err := s.repo.CreatePending(ctx, user); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return nil, ErrUsernameTaken
			}
			return nil, err
		}
	}

	options, session, err := s.ceremony.BeginRegistration(&ceremonyUser{user: user})
	if err != nil {
		zap.L().Error("can't begin registration ceremony", zap.Error(err))
		return nil, err
	}

	if err := s.saveSession(ctx, user.ID, session); err != nil {
		return nil, err
	}
	return options, nil
}

// FinishRegistration verifies the attestation. Only a verified attestation
// creates wallet material; a failed one deletes the pending row so the
// username can be registered again.
func (s *Service) FinishRegistration(ctx context.Context, username string, response *protocol.ParsedCredentialCreationData) (string, *domain.WalletUser, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrUserNotFound
	}

	session, err := s.loadSession(user)
	if err != nil {
		return "", nil, err
	}

	credential, err := s.ceremony.CreateCredential(&ceremonyUser{user: user}, *session, response)
	if err != nil {
		zap.L().Info("registration verification failed", zap.String("username", username), zap.Error(err))
		if !user.Registered {
			if delErr := s.repo.Delete(ctx, user.ID); delErr != nil {
				zap.L().Error("can't clean up pending wallet user", zap.Error(delErr))
			}
		}
		return "", nil, ErrVerificationFailed
	}

	keypair, err := s.keys.Generate()
	if err != nil {
		zap.L().Error("can't generate user wallet", zap.Error(err))
		return "", nil, err
	}

	authenticator := &domain.Authenticator{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		CredentialID: base64.RawURLEncoding.EncodeToString(credential.ID),
		PublicKey:    credential.PublicKey,
		SignCount:    credential.Authenticator.SignCount,
		Transports:   transportStrings(credential.Transport),
	}
	if err := s.repo.CompleteRegistration(ctx, user.ID, keypair.Address, keypair.PrivateKey, authenticator); err != nil {
		zap.L().Error("can't complete registration", zap.Error(err))
		return "", nil, err
	}

	user.Registered = true
	user.WalletAddress = &keypair.Address
	user.WalletPrivateKey = &keypair.PrivateKey

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	zap.L().Info("wallet user registered", zap.String("username", username))
	return token, user, nil
}

func (s *Service) BeginLogin(ctx context.Context, username string) (*protocol.CredentialAssertion, error) {
	user, credentials, err := s.registeredUser(ctx, username)
	if err != nil {
		return nil, err
	}

	options, session, err := s.ceremony.BeginLogin(&ceremonyUser{user: user, credentials: credentials})
	if err != nil {
		zap.L().Error("can't begin login ceremony", zap.Error(err))
		return nil, err
	}

	if err := s.saveSession(ctx, user.ID, session); err != nil {
		return nil, err
	}
	return options, nil
}

// FinishLogin verifies the assertion and persists the authenticator's new
// signature counter. Clone warnings from the library are treated as failures.
func (s *Service) FinishLogin(ctx context.Context, username string, response *protocol.ParsedCredentialAssertionData) (string, *domain.WalletUser, error) {
	user, credentials, err := s.registeredUser(ctx, username)
	if err != nil {
		return "", nil, err
	}

	session, err := s.loadSession(user)
	if err != nil {
		return "", nil, err
	}

	credential, err := s.ceremony.ValidateLogin(&ceremonyUser{user: user, credentials: credentials}, *session, response)
	if err != nil {
		zap.L().Info("login verification failed", zap.String("username", username), zap.Error(err))
		return "", nil, ErrVerificationFailed
	}
	if credential.Authenticator.CloneWarning {
		zap.L().Warn("authenticator clone detected", zap.String("username", username))
		return "", nil, ErrVerificationFailed
	}

	credentialID := base64.RawURLEncoding.EncodeToString(credential.ID)
	if err := s.repo.UpdateSignCount(ctx, credentialID, credential.Authenticator.SignCount); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	zap.L().Info("wallet user authenticated", zap.String("username", username))
	return token, user, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.WalletUser, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Registered {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CheckUsername reports whether username can still be registered. Pending
// rows don't reserve a name.
func (s *Service) CheckUsername(ctx context.Context, username string) (bool, error) {
	if !validate.IsUsername(username) {
		return false, ErrInvalidUsername
	}
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return user == nil || !user.Registered, nil
}

func (s *Service) DeleteUser(ctx context.Context, username string) error {
	err := s.repo.DeleteByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *Service) registeredUser(ctx context.Context, username string) (*domain.WalletUser, []webauthn.Credential, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}
	if !user.Registered {
		return nil, nil, ErrRegistrationPending
	}

	authenticators, err := s.repo.FindAuthenticators(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	credentials := make([]webauthn.Credential, 0, len(authenticators))
	for _, a := range authenticators {
		id, err := base64.RawURLEncoding.DecodeString(a.CredentialID)
		if err != nil {
			zap.L().Error("can't decode stored credential id", zap.Error(err))
			return nil, nil, err
		}
		credentials = append(credentials, webauthn.Credential{
			ID:        id,
			PublicKey: a.PublicKey,
			Authenticator: webauthn.Authenticator{
				SignCount: a.SignCount,
			},
			Transport: transportValues(a.Transports),
		})
	}
	return user, credentials, nil
}

func (s *Service) saveSession(ctx context.Context, userID string, session *webauthn.SessionData) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		zap.L().Error("can't marshal ceremony session", zap.Error(err))
		return err
	}
	return s.repo.SaveSession(ctx, userID, sessionJSON)
}

func (s *Service) loadSession(user *domain.WalletUser) (*webauthn.SessionData, error) {
	if len(user.SessionData) == 0 {
		return nil, ErrCeremonyNotStarted
	}
	var session webauthn.SessionData
	if err := json.Unmarshal(user.SessionData, &session); err != nil {
		zap.L().Error("can't unmarshal ceremony session", zap.Error(err))
		return nil, ErrCeremonyNotStarted
	}
	return &session, nil
}

func (s *Service) generateToken(userID string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, auth.RoleWallet, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func transportStrings(transports []protocol.AuthenticatorTransport) []string {
	out := make([]string, 0, len(transports))
	for _, t := range transports {
		out = append(out, string(t))
	}
	return out
}

func transportValues(transports []string) []protocol.AuthenticatorTransport {
	out := make([]protocol.AuthenticatorTransport, 0, len(transports))
	for _, t := range transports {
		out = append(out, protocol.AuthenticatorTransport(t))
	}
	return out
}
