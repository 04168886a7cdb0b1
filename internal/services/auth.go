package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Register(name, email, password string) (string, error) {
	var existing models.Teacher
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	teacher := models.Teacher{
		UUID:         uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		RoomID:       s.generateUniqueRoomID(),
	}
	if err := s.db.Create(&teacher).Error; err != nil {
		return "", err
	}

	return s.GenerateToken(teacher.ID)
}

func (s *AuthService) Login(email, password string) (string, error) {
	var teacher models.Teacher
	if err := s.db.Where("email = ?", email).First(&teacher).Error; err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return s.GenerateToken(teacher.ID)
}

func (s *AuthService) GetTeacher(teacherID uint) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := s.db.First(&teacher, teacherID).Error; err != nil {
		return nil, errors.New("teacher not found")
	}
	return &teacher, nil
}

func (s *AuthService) GenerateToken(teacherID uint) (string, error) {
	claims := jwt.MapClaims{
		"teacher_id": teacherID,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	teacherIDFloat, ok := claims["teacher_id"].(float64)
	if !ok {
		return 0, errors.New("invalid teacher_id in token")
	}

	return uint(teacherIDFloat), nil
}

// Each teacher gets a stable 4-digit room id at registration; the room is the
// broadcast scope shared by all of that teacher's sessions.
func (s *AuthService) generateUniqueRoomID() int {
	for {
		roomID := 1000 + rand.Intn(9000)
		var count int64
		s.db.Model(&models.Teacher{}).Where("room_id = ?", roomID).Count(&count)
		if count == 0 {
			return roomID
		}
	}
}
