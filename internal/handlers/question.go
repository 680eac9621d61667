package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/nitishdmn/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionHandler struct {
	questions  *services.QuestionService
	categories *services.CategoryService
}

func NewQuestionHandler(questions *services.QuestionService, categories *services.CategoryService) *QuestionHandler {
	return &QuestionHandler{questions: questions, categories: categories}
}

// ListQuestions godoc
// @Summary      List questions for a page
// @Tags         questions
// @Produce      json
// @Param        page query int false "1-based page number" default(1)
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questions.ListQuestions()
	if err != nil {
		log.Printf("list questions: %v", err)
		internalError(c)
		return
	}

	page := services.PaginateQuestions(questions, pageParam(c))
	if len(page) == 0 {
		notFound(c)
		return
	}

	categories, err := h.categories.CategoryMap()
	if err != nil {
		log.Printf("list categories: %v", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        page,
		"total_questions":  len(questions),
		"current_category": nil,
		"categories":       categories,
	})
}

type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   *int   `json:"category"`
	Difficulty *int   `json:"difficulty"`
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      422 {object} map[string]interface{}
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	// absent category/difficulty default to 1; wrong-typed fields are
	// rejected by the binding above
	input := services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   1,
		Difficulty: 1,
	}
	if req.Category != nil {
		input.Category = *req.Category
	}
	if req.Difficulty != nil {
		input.Difficulty = *req.Difficulty
	}

	question, err := h.questions.CreateQuestion(input)
	if err != nil {
		log.Printf("create question: %v", err)
		unprocessable(c)
		return
	}

	questions, err := h.questions.ListQuestions()
	if err != nil {
		log.Printf("list questions after create: %v", err)
		unprocessable(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"created":         question.ID,
		"questions":       services.PaginateQuestions(questions, pageParam(c)),
		"total_questions": len(questions),
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        question_id path int true "Question ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      422 {object} map[string]interface{}
// @Router       /questions/{question_id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}

	if err := h.questions.DeleteQuestion(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		log.Printf("delete question %d: %v", id, err)
		unprocessable(c)
		return
	}

	questions, err := h.questions.ListQuestions()
	if err != nil {
		log.Printf("list questions after delete: %v", err)
		unprocessable(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"deleted":          id,
		"questions":        services.PaginateQuestions(questions, pageParam(c)),
		"total_questions":  len(questions),
		"current_category": nil,
	})
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions godoc
// @Summary      Search questions by a case-insensitive substring
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchQuestionsRequest true "Search term"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	questions, err := h.questions.SearchQuestions(req.SearchTerm)
	if err != nil {
		log.Printf("search questions: %v", err)
		internalError(c)
		return
	}
	if len(questions) == 0 {
		badRequest(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"questions":      questions,
		"totalQuestions": len(questions),
	})
}

// ListByCategory godoc
// @Summary      List questions in a category for a page
// @Tags         questions
// @Produce      json
// @Param        category_id path int true "Category ID"
// @Param        page query int false "1-based page number" default(1)
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      422 {object} map[string]interface{}
// @Router       /categories/{category_id}/questions [get]
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		notFound(c)
		return
	}

	questions, err := h.questions.ListByCategory(categoryID)
	if err != nil {
		log.Printf("list questions for category %d: %v", categoryID, err)
		unprocessable(c)
		return
	}

	page := services.PaginateQuestions(questions, pageParam(c))
	if len(page) == 0 {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        page,
		"total_questions":  len(questions),
		"current_category": nil,
	})
}
