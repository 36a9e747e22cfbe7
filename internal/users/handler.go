package users

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-portal/internal/apperrors"
	"github.com/yourusername/quiz-portal/internal/session"
)

// Handler は GET /api/user を提供します。
type Handler struct {
	directory Directory
	sessions  *session.Manager
	logger    *log.Logger
}

// NewHandler は Handler を作成します。
func NewHandler(directory Directory, sessions *session.Manager, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{directory: directory, sessions: sessions, logger: logger}
}

// Profile はログイン中の利用者のプロフィールを返します。
// セッションの利用者が既に存在しない場合はセッションを破棄して 404 を返します。
func (h *Handler) Profile(c *gin.Context) {
	user, err := h.directory.FindByID(c.Request.Context(), session.UserID(c))
	if err != nil {
		h.logger.Printf("users: profile lookup failed: %v", err)
		apperrors.Respond(c, err)
		return
	}
	if user == nil {
		if err := h.sessions.Logout(c); err != nil {
			h.logger.Printf("users: failed to drop orphaned session: %v", err)
		}
		apperrors.Respond(c, apperrors.New(apperrors.ErrNotFound, "User not found"))
		return
	}

	c.JSON(http.StatusOK, user)
}
