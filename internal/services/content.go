package services

import (
	"errors"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"

	"gorm.io/gorm"
)

type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

func (s *ContentService) CreatePresentation(teacherID uint, title string, imageURLs []string) (*models.Presentation, error) {
	if len(imageURLs) == 0 {
		return nil, errors.New("presentation must have at least one slide")
	}

	presentation := models.Presentation{
		TeacherID: teacherID,
		Title:     title,
	}
	for i, url := range imageURLs {
		presentation.Slides = append(presentation.Slides, models.SlideImage{
			URL:      url,
			OrderNum: i,
		})
	}
	if err := s.db.Create(&presentation).Error; err != nil {
		return nil, err
	}
	return &presentation, nil
}

// GetPresentation is an open read: participants fetch whatever the session
// references.
func (s *ContentService) GetPresentation(presentationID uint) (*models.Presentation, error) {
	var presentation models.Presentation
	if err := s.db.Preload("Slides", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&presentation, presentationID).Error; err != nil {
		return nil, errors.New("presentation not found")
	}
	return &presentation, nil
}

// SlideURLs returns the ordered image list for a presentation.
func (s *ContentService) SlideURLs(presentationID uint) ([]string, error) {
	presentation, err := s.GetPresentation(presentationID)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(presentation.Slides))
	for _, slide := range presentation.Slides {
		urls = append(urls, slide.URL)
	}
	return urls, nil
}

func (s *ContentService) CreatePoll(teacherID uint, title, imageURL string, options []string) (*models.Poll, error) {
	if len(options) < 2 {
		return nil, errors.New("poll must have at least two options")
	}

	poll := models.Poll{
		TeacherID: teacherID,
		Title:     title,
		ImageURL:  imageURL,
	}
	for i, text := range options {
		poll.Options = append(poll.Options, models.PollOption{
			Text:     text,
			OrderNum: i,
		})
	}
	if err := s.db.Create(&poll).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

func (s *ContentService) GetPoll(pollID uint) (*models.Poll, error) {
	var poll models.Poll
	if err := s.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&poll, pollID).Error; err != nil {
		return nil, errors.New("poll not found")
	}
	return &poll, nil
}

type QuestionInput struct {
	Text         string   `json:"text" binding:"required"`
	Options      []string `json:"options" binding:"required,min=2"`
	CorrectIndex int      `json:"correct_index"`
}

func (s *ContentService) CreateQuestionBank(teacherID uint, title string, questions []QuestionInput) (*models.QuestionBank, error) {
	if len(questions) == 0 {
		return nil, errors.New("question bank must have at least one question")
	}

	bank := models.QuestionBank{
		TeacherID: teacherID,
		Title:     title,
	}
	for i, q := range questions {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, errors.New("correct index out of range")
		}
		question := models.Question{
			Text:         q.Text,
			OrderNum:     i,
			CorrectIndex: q.CorrectIndex,
		}
		for j, text := range q.Options {
			question.Options = append(question.Options, models.QuestionOption{
				Text:     text,
				OrderNum: j,
			})
		}
		bank.Questions = append(bank.Questions, question)
	}
	if err := s.db.Create(&bank).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

func (s *ContentService) GetQuestionBank(bankID uint) (*models.QuestionBank, error) {
	var bank models.QuestionBank
	if err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&bank, bankID).Error; err != nil {
		return nil, errors.New("question bank not found")
	}
	return &bank, nil
}

// SavedContent is the teacher's library view: everything they can share.
type SavedContent struct {
	Presentations []models.Presentation `json:"presentations"`
	Polls         []models.Poll         `json:"polls"`
	Banks         []models.QuestionBank `json:"banks"`
}

func (s *ContentService) ListSaved(teacherID uint) (*SavedContent, error) {
	saved := &SavedContent{}

	if err := s.db.Where("teacher_id = ?", teacherID).
		Preload("Slides", func(db *gorm.DB) *gorm.DB { return db.Order("order_num ASC") }).
		Order("created_at DESC").
		Find(&saved.Presentations).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("teacher_id = ?", teacherID).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("order_num ASC") }).
		Order("created_at DESC").
		Find(&saved.Polls).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("teacher_id = ?", teacherID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("order_num ASC") }).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB { return db.Order("order_num ASC") }).
		Order("created_at DESC").
		Find(&saved.Banks).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *ContentService) DeletePresentation(presentationID, teacherID uint) error {
	res := s.db.Where("id = ? AND teacher_id = ?", presentationID, teacherID).
		Delete(&models.Presentation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("presentation not found")
	}
	return nil
}

func (s *ContentService) DeletePoll(pollID, teacherID uint) error {
	res := s.db.Where("id = ? AND teacher_id = ?", pollID, teacherID).
		Delete(&models.Poll{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("poll not found")
	}
	return nil
}

func (s *ContentService) DeleteQuestionBank(bankID, teacherID uint) error {
	res := s.db.Where("id = ? AND teacher_id = ?", bankID, teacherID).
		Delete(&models.QuestionBank{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("question bank not found")
	}
	return nil
}
