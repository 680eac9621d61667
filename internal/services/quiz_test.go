package services

import (
	"testing"

	"github.com/nitishdmn/trivia-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuestionAnyCategory(t *testing.T) {
	db := setupTestDB(t)
	service := NewQuizService(db)

	seedQuestions(t, db,
		models.Question{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1},
		models.Question{Question: "q2", Answer: "a2", Category: 2, Difficulty: 1},
		models.Question{Question: "q3", Answer: "a3", Category: 3, Difficulty: 1},
	)

	question, err := service.NextQuestion(0, nil)
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.NotZero(t, question.ID)
}

func TestNextQuestionFiltersByCategory(t *testing.T) {
	db := setupTestDB(t)
	service := NewQuizService(db)

	seedQuestions(t, db,
		models.Question{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1},
		models.Question{Question: "q2", Answer: "a2", Category: 2, Difficulty: 1},
		models.Question{Question: "q3", Answer: "a3", Category: 2, Difficulty: 1},
	)

	for i := 0; i < 10; i++ {
		question, err := service.NextQuestion(2, nil)
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.Equal(t, 2, question.Category)
	}
}

func TestNextQuestionExcludesPrevious(t *testing.T) {
	db := setupTestDB(t)
	service := NewQuizService(db)

	seedQuestions(t, db,
		models.Question{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1},
		models.Question{Question: "q2", Answer: "a2", Category: 1, Difficulty: 1},
	)

	var all []models.Question
	require.NoError(t, db.Order("id").Find(&all).Error)
	require.Len(t, all, 2)

	for i := 0; i < 10; i++ {
		question, err := service.NextQuestion(0, []uint{all[0].ID})
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.Equal(t, all[1].ID, question.ID)
	}
}

func TestNextQuestionExhausted(t *testing.T) {
	db := setupTestDB(t)
	service := NewQuizService(db)

	seedQuestions(t, db,
		models.Question{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1},
		models.Question{Question: "q2", Answer: "a2", Category: 1, Difficulty: 1},
	)

	var all []models.Question
	require.NoError(t, db.Find(&all).Error)

	previous := make([]uint, 0, len(all))
	for _, q := range all {
		previous = append(previous, q.ID)
	}

	question, err := service.NextQuestion(0, previous)
	require.NoError(t, err)
	assert.Nil(t, question, "exhausted candidate set signals quiz over")
}

func TestNextQuestionEmptyCategory(t *testing.T) {
	db := setupTestDB(t)
	service := NewQuizService(db)

	seedQuestions(t, db, models.Question{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1})

	question, err := service.NextQuestion(7, nil)
	require.NoError(t, err)
	assert.Nil(t, question)
}
