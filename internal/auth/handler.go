package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-portal/internal/apperrors"
	"github.com/yourusername/quiz-portal/internal/users"
)

type registerRequest struct {
	ID       string `form:"id" json:"id" binding:"required"`
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type loginRequest struct {
	ID       string `form:"id" json:"id" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Register は POST /register のハンドラーです。フォームと JSON のどちらも受け付けます。
func (m *Manager) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation,
			"id, name, email and password are required", err))
		return
	}

	ctx := c.Request.Context()
	existing, err := m.directory.FindByIDOrEmail(ctx, req.ID, req.Email)
	if err != nil {
		m.logger.Printf("auth: registration lookup failed: %v", err)
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUnavailable, "Registration failed", err))
		return
	}
	if existing != nil {
		apperrors.Respond(c, apperrors.New(apperrors.ErrDuplicateKey, "User already exists"))
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		// bcrypt は 72 バイトを超えるパスワードを受け付けない
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, "Password is not acceptable", err))
		return
	}

	// 同時登録で事前チェックをすり抜けた場合は一意制約が DuplicateKey を返す
	err = m.directory.Create(ctx, &users.User{
		ExternalID:   req.ID,
		DisplayName:  req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateKey) {
			m.logger.Printf("auth: registration failed: %v", err)
		}
		apperrors.Respond(c, err)
		return
	}

	c.Redirect(http.StatusFound, PathLogin)
}

// Login は POST /login のハンドラーです。
func (m *Manager) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, "id and password are required", err))
		return
	}

	ip := c.ClientIP()
	if retryAfter := m.checkLock(ip); retryAfter > 0 {
		// Retry-After は秒数で返す
		c.Header("Retry-After", strconv.FormatInt(int64(retryAfter.Seconds()), 10))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "Too many login attempts, try again later",
			"code":  "TOO_MANY_ATTEMPTS",
		})
		return
	}

	user, err := m.directory.FindByID(c.Request.Context(), req.ID)
	if err != nil {
		m.logger.Printf("auth: login lookup failed: %v", err)
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUnavailable, "Login failed", err))
		return
	}

	if user == nil || !VerifyPassword(req.Password, user.PasswordHash) {
		remaining := m.recordFailure(ip)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":             "Invalid credentials",
			"code":              apperrors.Code(apperrors.ErrUnauthenticated),
			"remainingAttempts": remaining,
		})
		return
	}

	m.resetAttempts(ip)

	if _, err := m.sessions.Login(c, user.ExternalID); err != nil {
		m.logger.Printf("auth: failed to establish session: %v", err)
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUnavailable, "Login failed", err))
		return
	}

	c.Redirect(http.StatusFound, PathView)
}

// Logout は GET /logout のハンドラーです。セッションの有無に関わらず /home へ戻します。
func (m *Manager) Logout(c *gin.Context) {
	if err := m.sessions.Logout(c); err != nil {
		m.logger.Printf("auth: logout failed: %v", err)
	}
	c.Redirect(http.StatusFound, PathHome)
}
