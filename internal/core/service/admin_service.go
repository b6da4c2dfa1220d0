package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dropshipping/storefront-api/internal/core/domain"
	"github.com/dropshipping/storefront-api/internal/core/ports"
)

// AdminService provisions admin accounts. Provisioning writes two
// collections that are not covered by a transaction, so a failed second
// write is undone with a compensating delete.
type AdminService struct {
	users  ports.UserRepository
	admins ports.AdminRepository
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAdminService(users ports.UserRepository, admins ports.AdminRepository, audit ports.AuditRecorder, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, admins: admins, audit: audit, log: log}
}

// Provision creates the User + AdminProfile pair for a new admin.
func (s *AdminService) Provision(ctx context.Context, in ports.ProvisionAdminInput) (*domain.AdminProfile, error) {
	// 1. Required fields.
	if in.Name == "" || in.EmployeeID == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if len(in.Password) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	// 2. Normalise identifiers.
	email := domain.NormalizeEmail(in.Email)
	employeeID := strings.TrimSpace(in.EmployeeID)

	role := domain.RoleAdmin
	if in.Role != "" {
		role = domain.Role(in.Role)
		if role != domain.RoleAdmin && role != domain.RoleSuperAdmin {
			return nil, domain.ErrMissingFields
		}
	}

	// 3–4. Uniqueness pre-checks. These are advisory: the unique indexes
	// are the real guard, and the repositories map duplicate-key failures
	// to the same sentinels.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}
	if _, err := s.admins.FindByEmployeeID(ctx, employeeID); err == nil {
		return nil, domain.ErrEmployeeIDTaken
	} else if err != domain.ErrAdminNotFound {
		return nil, err
	}

	// 5. Hash.
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// 6. Credential store write.
	user, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: string(hash),
		Role:         role,
		CreatedBy:    in.ActorID,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	// 7. Directory write.
	profile, err := s.admins.Create(ctx, &domain.AdminProfile{
		UserID:     user.ID,
		EmployeeID: employeeID,
		Name:       in.Name,
		Email:      email,
		Phone:      in.Phone,
		Address:    in.Address,
		Role:       role,
		CreatedBy:  in.ActorID,
		CreatedAt:  now,
	})
	if err != nil {
		// 8. Compensate: the user must not outlive the failed directory
		// write. The delete targets the generated id only, so a retry or
		// a concurrent provisioning cannot remove anything else. The
		// original error is surfaced even if cleanup itself fails.
		if delErr := s.users.DeleteByID(ctx, user.ID); delErr != nil {
			s.log.Error().Err(delErr).
				Str("user_id", user.ID).
				Str("employee_id", employeeID).
				Msg("compensating delete failed, orphaned user left behind")
		}
		return nil, err
	}

	if s.audit != nil {
		s.audit.Enqueue(domain.AuditEvent{
			Action:    domain.AuditAdminProvisioned,
			SubjectID: user.ID,
			Email:     email,
			ActorID:   in.ActorID,
			Timestamp: now,
		})
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("employee_id", employeeID).
		Str("role", string(role)).
		Str("actor_id", in.ActorID).
		Msg("admin provisioned")

	return profile, nil
}

// List returns all admin directory entries.
func (s *AdminService) List(ctx context.Context) ([]*domain.AdminProfile, error) {
	return s.admins.List(ctx)
}
