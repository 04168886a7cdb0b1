package services

import (
	"testing"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Asha Nair", "asha@college.edu", "password123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("register returned empty token")
	}

	var teacher models.Teacher
	if err := db.Where("email = ?", "asha@college.edu").First(&teacher).Error; err != nil {
		t.Fatalf("teacher not created: %v", err)
	}
	if teacher.RoomID < 1000 || teacher.RoomID > 9999 {
		t.Errorf("room id outside 4-digit range: %d", teacher.RoomID)
	}
	if teacher.UUID == "" {
		t.Error("teacher uuid not set")
	}
	if teacher.PasswordHash == "password123" {
		t.Error("password stored in plain text")
	}

	if _, err := svc.Register("Dupe", "asha@college.edu", "other"); err == nil {
		t.Error("duplicate email must be rejected")
	}

	if _, err := svc.Login("asha@college.edu", "password123"); err != nil {
		t.Errorf("login with correct password: %v", err)
	}
	if _, err := svc.Login("asha@college.edu", "wrong"); err == nil {
		t.Error("login with wrong password must fail")
	}
	if _, err := svc.Login("nobody@college.edu", "password123"); err == nil {
		t.Error("login with unknown email must fail")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.GenerateToken(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	teacherID, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if teacherID != 42 {
		t.Errorf("expected teacher id 42, got %d", teacherID)
	}

	if _, err := svc.ValidateToken("garbage"); err == nil {
		t.Error("garbage token must be rejected")
	}

	other := NewAuthService(db, "different-secret")
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret must be rejected")
	}
}
