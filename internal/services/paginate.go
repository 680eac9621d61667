package services

import "github.com/nitishdmn/trivia-api/internal/models"

// QuestionsPerPage is the fixed page size for all paginated question
// listings.
const QuestionsPerPage = 10

// PaginateQuestions returns the 1-based page slice of an already ordered
// question list. Pagination happens in memory over the full result set;
// at this data scale pushing LIMIT/OFFSET to the store is not worth the
// extra query shape.
func PaginateQuestions(questions []models.Question, page int) []models.Question {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage

	if start >= len(questions) {
		return []models.Question{}
	}
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
