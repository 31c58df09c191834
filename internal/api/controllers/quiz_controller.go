package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giftmuse/internal/models/request_models"
	"giftmuse/internal/services"
	"giftmuse/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

func (qc *QuizController) StartQuizHandler(c *gin.Context) {
	utils.RespondSuccess(c, qc.quizService.StartQuiz(), "Quiz started")
}

func (qc *QuizController) GetQuizHandler(c *gin.Context) {
	state, err := qc.quizService.GetQuiz(c.Param("session"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Fetched quiz state successfully")
}

func (qc *QuizController) SelectOptionHandler(c *gin.Context) {
	var req request_models.QuizSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == "" {
		utils.RespondError(c, http.StatusBadRequest, "Value is required")
		return
	}

	state, err := qc.quizService.SelectOption(c.Request.Context(), c.Param("session"), req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Answer recorded")
}

func (qc *QuizController) ContinueQuizHandler(c *gin.Context) {
	state, err := qc.quizService.ContinueQuiz(c.Request.Context(), c.Param("session"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Advanced to next step")
}

func (qc *QuizController) RestartQuizHandler(c *gin.Context) {
	state, err := qc.quizService.RestartQuiz(c.Param("session"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Quiz restarted")
}
