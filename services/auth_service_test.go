package services

import (
	"errors"
	"testing"

	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPasswordAndDefaultsToBuyer(t *testing.T) {
	setupTestDB(t)

	user, err := Register(dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.Role != models.RoleBuyer {
		t.Errorf("expected default role BUYER, got %s", user.Role)
	}
	if user.Password == "secret123" {
		t.Error("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	req := dto.RegisterRequest{Email: "dup@example.com", Password: "secret123"}
	if _, err := Register(req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := Register(req); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestLoginAndTokenRoundTrip(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Register(dto.RegisterRequest{Email: "login@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := Login(dto.LoginRequest{Email: "login@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.User.Password != "" {
		t.Error("expected password cleared from response")
	}

	claims, err := ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Email != "login@example.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
	if claims.Role != string(models.RoleBuyer) {
		t.Errorf("expected BUYER role claim, got %q", claims.Role)
	}

	if _, err := Login(dto.LoginRequest{Email: "login@example.com", Password: "wrong"}); err == nil {
		t.Error("expected login with wrong password to fail")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, _, err := GenerateToken("user-1", "a@example.com", string(models.RoleBuyer))
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Error("expected tampered token to be rejected")
	}

	t.Setenv("JWT_SECRET", "rotated-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected token signed with old secret to be rejected")
	}
}

func TestBecomeCreator(t *testing.T) {
	setupTestDB(t)
	buyer := createTestUser(t, "buyer@example.com", models.RoleBuyer)
	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)

	promoted, err := BecomeCreator(buyer.ID)
	if err != nil {
		t.Fatalf("BecomeCreator failed: %v", err)
	}
	if promoted.Role != models.RoleCreator {
		t.Errorf("expected CREATOR, got %s", promoted.Role)
	}

	// Promotion is idempotent
	again, err := BecomeCreator(buyer.ID)
	if err != nil {
		t.Fatalf("second BecomeCreator failed: %v", err)
	}
	if again.Role != models.RoleCreator {
		t.Errorf("expected CREATOR, got %s", again.Role)
	}

	// Admins keep their role
	unchanged, err := BecomeCreator(admin.ID)
	if err != nil {
		t.Fatalf("BecomeCreator for admin failed: %v", err)
	}
	if unchanged.Role != models.RoleAdmin {
		t.Errorf("expected ADMIN unchanged, got %s", unchanged.Role)
	}

	if _, err := BecomeCreator("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
