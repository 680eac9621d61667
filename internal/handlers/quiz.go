package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/nitishdmn/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quiz *services.QuizService
}

func NewQuizHandler(quiz *services.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// FlexibleID decodes a JSON number or a numeric string. The quiz frontend
// sends quiz_category.id as the string "0" for the "all categories" tile.
type FlexibleID int

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = FlexibleID(n)
	return nil
}

type QuizCategory struct {
	ID   FlexibleID `json:"id"`
	Type string     `json:"type"`
}

type PlayQuizRequest struct {
	PreviousQuestions []uint       `json:"previous_questions"`
	QuizCategory      QuizCategory `json:"quiz_category"`
}

// PlayQuiz godoc
// @Summary      Draw a random question for a quiz round
// @Description  Picks a random question from the requested category (id 0 means any), excluding previously asked ids. Returns a null question when the candidates are exhausted.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body PlayQuizRequest true "Quiz state"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      422 {object} map[string]interface{}
// @Router       /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	question, err := h.quiz.NextQuestion(int(req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		log.Printf("play quiz: %v", err)
		unprocessable(c)
		return
	}

	// question is nil once the exclusion list covers every candidate;
	// the null body tells the frontend the quiz is over
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}
