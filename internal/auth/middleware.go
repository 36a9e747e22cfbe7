package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-portal/internal/apperrors"
	"github.com/yourusername/quiz-portal/internal/session"
)

// RequireLogin は API 用のアクセスゲートです。未ログインなら 401 を返します。
func (m *Manager) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := m.resolve(c)
		if !ok {
			return
		}
		if userID == "" {
			apperrors.Unauthenticated(c)
			return
		}
		c.Set(session.ContextUserKey, userID)
		c.Next()
	}
}

// RequirePage は画面用のアクセスゲートです。未ログインならログイン画面へリダイレクトします。
func (m *Manager) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := m.resolve(c)
		if !ok {
			return
		}
		if userID == "" {
			c.Redirect(http.StatusFound, PathLogin)
			c.Abort()
			return
		}
		c.Set(session.ContextUserKey, userID)
		c.Next()
	}
}

// RedirectIfAuthenticated はログイン済みなら /view へリダイレクトします（ログイン・登録画面用）。
func (m *Manager) RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := m.resolve(c)
		if !ok {
			return
		}
		if userID != "" {
			c.Redirect(http.StatusFound, PathView)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Root は / を状態に応じて振り分けます。
func (m *Manager) Root(c *gin.Context) {
	userID, ok := m.resolve(c)
	if !ok {
		return
	}
	if userID != "" {
		c.Redirect(http.StatusFound, PathView)
		return
	}
	c.Redirect(http.StatusFound, PathHome)
}

// resolve は毎リクエストでセッションストアを参照してユーザーIDを求めます。
// ストアの障害時はレスポンスを書き込んで false を返します。
func (m *Manager) resolve(c *gin.Context) (string, bool) {
	userID, err := m.sessions.CurrentUser(c)
	if err != nil {
		m.logger.Printf("auth: session lookup failed: %v", err)
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUnavailable, "Server error", err))
		return "", false
	}
	return userID, true
}
