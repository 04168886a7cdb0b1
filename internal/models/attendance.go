package models

import "time"

// Attendance is written once per (session, student) join and never updated.
type Attendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;uniqueIndex:idx_attendance_unique" json:"session_id"`
	RegNo     string    `gorm:"size:20;not null;uniqueIndex:idx_attendance_unique" json:"regno"`
	RollNo    string    `gorm:"size:20;not null" json:"rollno"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
