package handler

import (
	"strings"
	"testing"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	rv := NewValidator()

	err := rv.Validate(&provisionAdminRequest{
		Name:     "Grace",
		Email:    "grace@example.com",
		Password: "secret1",
	})
	if err == nil {
		t.Fatal("expected a validation error for the missing employee id")
	}
	if !strings.Contains(err.Error(), "employeeId is required") {
		t.Fatalf("error = %q, want it to name the JSON field employeeId", err)
	}
}

func TestValidator_AggregatesAllFailures(t *testing.T) {
	rv := NewValidator()

	err := rv.Validate(&registerRequest{Email: "not-an-email", Password: "abc"})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{
		"name is required",
		"email must be a valid email",
		"password must be at least 6 characters",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestValidator_ValidRequestPasses(t *testing.T) {
	rv := NewValidator()

	err := rv.Validate(&registerRequest{
		Name:     "Grace",
		Email:    "grace@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
