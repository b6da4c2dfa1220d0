package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dropshipping/storefront-api/internal/core/domain"
	"github.com/dropshipping/storefront-api/internal/core/ports"
)

type stubAdminRepo struct {
	profiles   map[string]*domain.AdminProfile // keyed by employee id
	nextID     int
	failCreate error
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{profiles: make(map[string]*domain.AdminProfile)}
}

func (r *stubAdminRepo) Create(_ context.Context, profile *domain.AdminProfile) (*domain.AdminProfile, error) {
	if r.failCreate != nil {
		return nil, r.failCreate
	}
	if _, exists := r.profiles[profile.EmployeeID]; exists {
		return nil, domain.ErrEmployeeIDTaken
	}
	r.nextID++
	created := *profile
	created.ID = "admin_" + strconv.Itoa(r.nextID)
	r.profiles[created.EmployeeID] = &created
	return &created, nil
}

func (r *stubAdminRepo) FindByEmployeeID(_ context.Context, employeeID string) (*domain.AdminProfile, error) {
	p, ok := r.profiles[employeeID]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubAdminRepo) List(_ context.Context) ([]*domain.AdminProfile, error) {
	out := make([]*domain.AdminProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func provisionInput() ports.ProvisionAdminInput {
	return ports.ProvisionAdminInput{
		Name:       "Grace",
		EmployeeID: "EMP-001",
		Email:      "Grace@Example.com",
		Password:   "pass123",
		ActorID:    "super_1",
	}
}

func TestAdminService_Provision_Success(t *testing.T) {
	users := newStubUserRepo()
	admins := newStubAdminRepo()
	svc := NewAdminService(users, admins, &stubRecorder{}, zerolog.Nop())

	profile, err := svc.Provision(context.Background(), provisionInput())
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}
	if profile.EmployeeID != "EMP-001" {
		t.Fatalf("employee id = %q", profile.EmployeeID)
	}
	if profile.Email != "grace@example.com" {
		t.Fatalf("email not normalised: %q", profile.Email)
	}
	if profile.Role != domain.RoleAdmin {
		t.Fatalf("role should default to admin, got %q", profile.Role)
	}

	user, err := users.FindByEmail(context.Background(), "grace@example.com")
	if err != nil {
		t.Fatalf("user record missing: %v", err)
	}
	if profile.UserID != user.ID {
		t.Fatalf("profile references %q, user is %q", profile.UserID, user.ID)
	}
	if user.CreatedBy != "super_1" {
		t.Fatalf("creator reference = %q", user.CreatedBy)
	}
}

func TestAdminService_Provision_ExplicitSuperadmin(t *testing.T) {
	svc := NewAdminService(newStubUserRepo(), newStubAdminRepo(), nil, zerolog.Nop())

	in := provisionInput()
	in.Role = "superadmin"
	profile, err := svc.Provision(context.Background(), in)
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}
	if profile.Role != domain.RoleSuperAdmin {
		t.Fatalf("role = %q", profile.Role)
	}

	in = provisionInput()
	in.EmployeeID = "EMP-002"
	in.Email = "other@example.com"
	in.Role = "customer"
	if _, err := svc.Provision(context.Background(), in); err != domain.ErrMissingFields {
		t.Fatalf("customer role must be rejected, got %v", err)
	}
}

func TestAdminService_Provision_Validation(t *testing.T) {
	svc := NewAdminService(newStubUserRepo(), newStubAdminRepo(), nil, zerolog.Nop())

	in := provisionInput()
	in.EmployeeID = ""
	if _, err := svc.Provision(context.Background(), in); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	in = provisionInput()
	in.Password = "tiny"
	if _, err := svc.Provision(context.Background(), in); err != domain.ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestAdminService_Provision_Conflicts(t *testing.T) {
	users := newStubUserRepo()
	admins := newStubAdminRepo()
	svc := NewAdminService(users, admins, nil, zerolog.Nop())

	if _, err := svc.Provision(context.Background(), provisionInput()); err != nil {
		t.Fatalf("seed provision failed: %v", err)
	}

	in := provisionInput()
	in.EmployeeID = "EMP-999"
	if _, err := svc.Provision(context.Background(), in); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	in = provisionInput()
	in.Email = "fresh@example.com"
	if _, err := svc.Provision(context.Background(), in); err != domain.ErrEmployeeIDTaken {
		t.Fatalf("expected ErrEmployeeIDTaken, got %v", err)
	}
}

// The one genuinely correctness-sensitive sequence: a failed directory
// write must delete the user created moments before and surface the
// original error.
func TestAdminService_Provision_RollbackOnDirectoryFailure(t *testing.T) {
	users := newStubUserRepo()
	admins := newStubAdminRepo()
	admins.failCreate = domain.ErrEmployeeIDTaken
	svc := NewAdminService(users, admins, nil, zerolog.Nop())

	_, err := svc.Provision(context.Background(), provisionInput())
	if err != domain.ErrEmployeeIDTaken {
		t.Fatalf("expected the directory error to surface, got %v", err)
	}

	if _, err := users.FindByEmail(context.Background(), "grace@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("orphaned user left behind: %v", err)
	}
	if len(users.deleted) != 1 {
		t.Fatalf("expected exactly one compensating delete, got %d", len(users.deleted))
	}
}

// Cleanup failing must not mask the original error.
type failingDeleteRepo struct {
	*stubUserRepo
}

func (r *failingDeleteRepo) DeleteByID(context.Context, string) error {
	return errors.New("store hiccup")
}

func TestAdminService_Provision_CleanupFailureSurfacesOriginal(t *testing.T) {
	users := &failingDeleteRepo{newStubUserRepo()}
	admins := newStubAdminRepo()
	admins.failCreate = domain.ErrEmployeeIDTaken
	svc := NewAdminService(users, admins, nil, zerolog.Nop())

	if _, err := svc.Provision(context.Background(), provisionInput()); err != domain.ErrEmployeeIDTaken {
		t.Fatalf("cleanup failure masked the original error: %v", err)
	}
}
