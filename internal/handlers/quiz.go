// internal/handlers/quiz.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/terrazul/terrazul-backend/internal/i18n"
	"github.com/terrazul/terrazul-backend/internal/quiz"
	"github.com/terrazul/terrazul-backend/internal/utils"
)

type QuizHandler struct{}

func NewQuizHandler() *QuizHandler {
	return &QuizHandler{}
}

type recommendationRequest struct {
	Answers quiz.Answers `json:"answers"`
}

// GET /quiz/questions
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"questions": quiz.Questions(),
	})
}

// POST /quiz/recommendation
func (h *QuizHandler) GetRecommendation(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	recommendation := quiz.Recommend(req.Answers)

	utils.SuccessResponse(c, gin.H{
		"message":        i18n.T(lang, i18n.KeyQuizRecommendation),
		"recommendation": recommendation,
	})
}
