package assessments

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-portal/internal/apperrors"
	"github.com/yourusername/quiz-portal/internal/session"
)

// Handler は受験記録 API のハンドラーをまとめます。
type Handler struct {
	service *Service
	logger  *log.Logger
}

// NewHandler は Handler を作成します。
func NewHandler(service *Service, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{service: service, logger: logger}
}

type submitRequest struct {
	Subject   string     `json:"subject" binding:"required"`
	Answers   []string   `json:"answers"`
	Questions []Question `json:"questions" binding:"required"`
}

// Submit は POST /api/assessment のハンドラーです。
func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation,
			"subject, answers and questions are required", err))
		return
	}

	record, err := h.service.Submit(c.Request.Context(), session.UserID(c), Submission{
		Subject:   req.Subject,
		Questions: req.Questions,
		Answers:   req.Answers,
	})
	if err != nil {
		h.logger.Printf("assessments: failed to save assessment: %v", err)
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"assessmentId":   record.ID,
		"score":          record.Score,
		"totalQuestions": record.TotalQuestions,
		"percentage":     record.Percentage,
		"message":        "Assessment saved successfully",
	})
}

// List は GET /api/assessments のハンドラーです。
func (h *Handler) List(c *gin.Context) {
	summaries, err := h.service.History(c.Request.Context(), session.UserID(c))
	if err != nil {
		h.logger.Printf("assessments: failed to list assessments: %v", err)
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// Get は GET /api/assessments/:id のハンドラーです。
func (h *Handler) Get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"), session.UserID(c))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			h.logger.Printf("assessments: failed to fetch assessment: %v", err)
		}
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
