package ports

import (
	"context"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// RegisterInput carries a public registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

// UpdateProfileInput carries a self-service profile update.
type UpdateProfileInput struct {
	Name    string
	Phone   string
	Address string
}

// AuthService implements registration, login, and self-service account
// operations. Register and Login return a signed session token alongside
// the user.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser re-fetches the live profile; a token whose subject no
	// longer exists yields domain.ErrInvalidSession.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
