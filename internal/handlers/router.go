package handlers

import (
	"github.com/nitishdmn/trivia-api/internal/middleware"
	"github.com/nitishdmn/trivia-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Router builds the gin engine with all API routes wired up. The caller
// owns the engine and may attach extra routes (swagger UI) before running
// it.
func Router(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))
	r.Use(middleware.RequestID())

	r.NoRoute(notFound)
	r.NoMethod(methodNotAllowed)

	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(db)

	categoryHandler := NewCategoryHandler(categoryService)
	questionHandler := NewQuestionHandler(questionService, categoryService)
	quizHandler := NewQuizHandler(quizService)

	r.GET("/categories", categoryHandler.GetCategoryMap)
	r.GET("/categories/:category_id/questions", questionHandler.ListByCategory)

	r.GET("/api/categories", categoryHandler.ListCategories)
	r.POST("/api/categories", categoryHandler.CreateCategory)

	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateQuestion)
	r.DELETE("/questions/:question_id", questionHandler.DeleteQuestion)
	r.POST("/questions/search", questionHandler.SearchQuestions)

	r.POST("/quizzes", quizHandler.PlayQuiz)

	return r
}
