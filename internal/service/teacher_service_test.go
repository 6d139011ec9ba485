package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/repository"
)

func setupTestTeacherService() (*TeacherService, *repository.Repository, *testRepos) {
	repo, mocks := newTestRepository()
	// nil mailer: credential mails are skipped.
	return NewTeacherService(repo, nil, zap.NewNop()), repo, mocks
}

func createTeacherRequest() *dto.CreateTeacherRequest {
	return &dto.CreateTeacherRequest{
		Username:  "abenali",
		Email:     "a.benali@univ.fr",
		FirstName: "Ahmed",
		LastName:  "Benali",
		Type:      "Permanent",
	}
}

func TestTeacherService_Create(t *testing.T) {
	svc, repo, _ := setupTestTeacherService()
	ctx := context.Background()

	teacher, err := svc.Create(ctx, createTeacherRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if teacher.Username != "abenali" {
		t.Errorf("account fields not resolved: %+v", teacher)
	}
	if teacher.MaxHours != defaultMaxHours {
		t.Errorf("expected default max hours %d, got %d", defaultMaxHours, teacher.MaxHours)
	}

	user, err := repo.User.GetByUsername(ctx, "abenali")
	if err != nil {
		t.Fatalf("user account not created: %v", err)
	}
	if user.Role != "teacher" {
		t.Errorf("expected teacher role, got %s", user.Role)
	}
	if user.PasswordHash == "" {
		t.Error("expected a generated password to be hashed")
	}
}

func TestTeacherService_Create_DuplicateUsername(t *testing.T) {
	svc, _, _ := setupTestTeacherService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, createTeacherRequest()); err != nil {
		t.Fatalf("first create: %v", err)
	}

	req := createTeacherRequest()
	req.Email = "autre@univ.fr"
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestTeacherService_Update(t *testing.T) {
	svc, _, _ := setupTestTeacherService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createTeacherRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newType := "Vacataire"
	maxHours := 12
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateTeacherRequest{
		Type:     &newType,
		MaxHours: &maxHours,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Type != "Vacataire" || updated.MaxHours != 12 {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestTeacherService_Delete_RemovesAccount(t *testing.T) {
	svc, repo, _ := setupTestTeacherService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createTeacherRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.User.GetByUsername(ctx, "abenali"); err == nil {
		t.Error("user account should be removed with the teacher")
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
}

func TestGeneratePassword(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		pw, err := generatePassword()
		if err != nil {
			t.Fatalf("generatePassword: %v", err)
		}
		if len(pw) != 10 {
			t.Fatalf("expected 10 characters, got %d", len(pw))
		}
		seen[pw] = true
	}
	if len(seen) < 2 {
		t.Error("generated passwords are not random")
	}
}
