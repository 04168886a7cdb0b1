package models

import "time"

type Presentation struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	TeacherID uint         `gorm:"not null;index" json:"teacher_id"`
	Title     string       `gorm:"size:255;not null" json:"title"`
	Slides    []SlideImage `gorm:"foreignKey:PresentationID;constraint:OnDelete:CASCADE" json:"slides,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

type SlideImage struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PresentationID uint   `gorm:"not null;index" json:"presentation_id"`
	URL            string `gorm:"size:500;not null" json:"url"`
	OrderNum       int    `gorm:"not null;default:0" json:"order_num"`
}
