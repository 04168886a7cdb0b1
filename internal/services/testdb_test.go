package services

import (
	"testing"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// One connection keeps the in-memory database visible to every query.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Teacher{},
		&models.Session{},
		&models.Attendance{},
		&models.Presentation{},
		&models.SlideImage{},
		&models.Poll{},
		&models.PollOption{},
		&models.QuestionBank{},
		&models.Question{},
		&models.QuestionOption{},
		&models.PollResponse{},
		&models.LeaderboardRow{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTeacher(t *testing.T, db *gorm.DB, email string, roomID int) *models.Teacher {
	t.Helper()

	teacher := models.Teacher{
		UUID:         "test-uuid-" + email,
		Email:        email,
		Name:         "Test Teacher",
		PasswordHash: "x",
		RoomID:       roomID,
	}
	if err := db.Create(&teacher).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	return &teacher
}

func seedSession(t *testing.T, db *gorm.DB, teacherID uint, active bool) *models.Session {
	t.Helper()

	session := models.Session{TeacherID: teacherID, Active: active, TimeoutMinutes: 3}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}
	// GORM replaces a zero-valued bool with the column default (true) on
	// insert, so a stopped fixture needs an explicit update to stick.
	if !active {
		if err := db.Model(&session).Update("active", false).Error; err != nil {
			t.Fatalf("seed session (deactivate): %v", err)
		}
		session.Active = false
	}
	return &session
}

func seedPoll(t *testing.T, db *gorm.DB, teacherID uint, options ...string) *models.Poll {
	t.Helper()

	poll := models.Poll{TeacherID: teacherID, Title: "Test Poll"}
	for i, text := range options {
		poll.Options = append(poll.Options, models.PollOption{Text: text, OrderNum: i})
	}
	if err := db.Create(&poll).Error; err != nil {
		t.Fatalf("seed poll: %v", err)
	}
	return &poll
}
