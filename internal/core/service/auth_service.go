package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dropshipping/storefront-api/internal/core/domain"
	"github.com/dropshipping/storefront-api/internal/core/ports"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 12

// AuthService implements registration, login, and self-service account
// operations over the credential store.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenService
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, audit: audit, log: log}
}

// Register creates a customer account and returns a session token.
// Public registration always gets the customer role; admin accounts are
// minted only through provisioning.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrMissingFields
	}
	if len(in.Password) < domain.MinPasswordLength {
		return "", nil, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        domain.NormalizeEmail(in.Email),
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role, created.Email)
	if err != nil {
		return "", nil, err
	}

	s.record(domain.AuditRegistered, created.ID, created.Email, "")
	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return token, created, nil
}

// Login verifies credentials and returns a fresh session token.
// A missing user and a wrong password are indistinguishable to the
// client.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		return "", nil, err
	}

	s.record(domain.AuditLoggedIn, user.ID, user.Email, "")
	return token, user, nil
}

// CurrentUser re-fetches the live profile for a verified session. If the
// account was deleted after the token was issued the session is no
// longer usable.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes name/phone/address. Name is required.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	if in.Name == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.repo.UpdateProfile(ctx, userID, in.Name, in.Phone, in.Address)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuditProfileUpdated, user.ID, user.Email, "")
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.ErrMissingFields
	}
	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.record(domain.AuditPasswordChanged, user.ID, user.Email, "")
	return nil
}

func (s *AuthService) record(action domain.AuditAction, subjectID, email, actorID string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		Action:    action,
		SubjectID: subjectID,
		Email:     email,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
}
