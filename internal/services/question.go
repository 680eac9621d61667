package services

import (
	"strings"

	"github.com/nitishdmn/trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

func (s *QuestionService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) ListByCategory(categoryID int) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion removes the question with the given id. A missing row
// surfaces as gorm.ErrRecordNotFound so the handler can distinguish a 404
// from a failed delete.
func (s *QuestionService) DeleteQuestion(id uint) error {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&question).Error
}

// SearchQuestions matches questions whose text contains the given term,
// case-insensitively. The match is a plain substring, not a pattern.
func (s *QuestionService) SearchQuestions(term string) ([]models.Question, error) {
	var questions []models.Question
	pattern := "%" + strings.ToLower(term) + "%"
	err := s.db.Where("LOWER(question) LIKE ?", pattern).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
