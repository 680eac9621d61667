package services

import (
	"math/rand"

	"github.com/nitishdmn/trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// NextQuestion picks one question uniformly at random from the candidates
// left after filtering. categoryID 0 means any category. Questions whose
// ids appear in previous are excluded. A nil question with a nil error
// means the candidate set is exhausted and the quiz is over.
func (s *QuizService) NextQuestion(categoryID int, previous []uint) (*models.Question, error) {
	query := s.db.Order("id")
	if categoryID > 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var candidates []models.Question
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	return &candidates[rand.Intn(len(candidates))], nil
}
