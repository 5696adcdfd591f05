package auth

import (
	"context"
	"errors"
	"testing"
)

func TestOrganisationRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	orgRepo := NewOrganisationRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "ada@example.com")
	org := &Organisation{Name: "Ada's Organisation", Description: "personal workspace"}
	if err := userRepo.Create(ctx, user, org); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := orgRepo.GetByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Ada's Organisation" {
		t.Errorf("Name = %q, want %q", got.Name, "Ada's Organisation")
	}
	if got.Description != "personal workspace" {
		t.Errorf("Description = %q, want %q", got.Description, "personal workspace")
	}
}

func TestOrganisationRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	orgRepo := NewOrganisationRepository(db)

	_, err := orgRepo.GetByID(context.Background(), "org-missing")
	if !errors.Is(err, ErrOrgNotFound) {
		t.Errorf("GetByID() = %v, want ErrOrgNotFound", err)
	}
}

func TestOrganisationRepository_ListForUser(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	orgRepo := NewOrganisationRepository(db)
	ctx := context.Background()

	ada := newTestUser(t, "ada@example.com")
	if err := userRepo.Create(ctx, ada, &Organisation{Name: "Ada's Organisation"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	grace := newTestUser(t, "grace@example.com")
	if err := userRepo.Create(ctx, grace, &Organisation{Name: "Grace's Organisation"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	orgs, err := orgRepo.ListForUser(ctx, ada.ID)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(orgs) != 1 {
		t.Fatalf("expected 1 organisation for ada, got %d", len(orgs))
	}
	if orgs[0].Name != "Ada's Organisation" {
		t.Errorf("org name = %q, want ada's own org only", orgs[0].Name)
	}

	t.Run("empty list for unknown user", func(t *testing.T) {
		orgs, err := orgRepo.ListForUser(ctx, "usr-missing")
		if err != nil {
			t.Fatalf("ListForUser() error = %v", err)
		}
		if len(orgs) != 0 {
			t.Errorf("expected empty list, got %d orgs", len(orgs))
		}
	})
}

func TestOrganisationRepository_IsMember(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	orgRepo := NewOrganisationRepository(db)
	ctx := context.Background()

	ada := newTestUser(t, "ada@example.com")
	adaOrg := &Organisation{Name: "Ada's Organisation"}
	if err := userRepo.Create(ctx, ada, adaOrg); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	grace := newTestUser(t, "grace@example.com")
	if err := userRepo.Create(ctx, grace, &Organisation{Name: "Grace's Organisation"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ok, err := orgRepo.IsMember(ctx, adaOrg.ID, ada.ID)
	if err != nil {
		t.Fatalf("IsMember() error = %v", err)
	}
	if !ok {
		t.Error("ada should be a member of her own organisation")
	}

	ok, err = orgRepo.IsMember(ctx, adaOrg.ID, grace.ID)
	if err != nil {
		t.Fatalf("IsMember() error = %v", err)
	}
	if ok {
		t.Error("grace should not be a member of ada's organisation")
	}
}
