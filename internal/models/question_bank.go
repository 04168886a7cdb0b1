package models

import "time"

type QuestionBank struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	TeacherID uint       `gorm:"not null;index" json:"teacher_id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Questions []Question `gorm:"foreignKey:BankID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Question struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	BankID       uint             `gorm:"not null;index" json:"bank_id"`
	Text         string           `gorm:"type:text;not null" json:"text"`
	OrderNum     int              `gorm:"not null" json:"order_num"`
	CorrectIndex int              `gorm:"not null" json:"correct_index"`
	Options      []QuestionOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type QuestionOption struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"size:500;not null" json:"text"`
	OrderNum   int    `gorm:"not null" json:"order_num"`
}
