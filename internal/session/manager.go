package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	CookieName      = "qp_session"
	sessionKeyToken = "sid"
)

// ContextUserKey は、ハンドラー間でログイン済みユーザーIDを共有するためのキーです。
const ContextUserKey = "auth.user"

// CookieOptions はセッションCookieの属性です。
type CookieOptions struct {
	Secret string
	Secure bool
	MaxAge time.Duration
}

// Middleware は署名付きCookieを扱う gin-contrib/sessions のミドルウェアを返します。
func Middleware(opts CookieOptions) gin.HandlerFunc {
	store := cookie.NewStore([]byte(opts.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(CookieName, store)
}

// Manager はセッションの発行・参照・破棄を行います。
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager は Manager を作成します。
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Login は新しいトークンを発行してユーザーに関連付けます。
// 既に保持しているトークンがあれば先に破棄します。
func (m *Manager) Login(c *gin.Context, userID string) (string, error) {
	ctx := c.Request.Context()
	session := sessions.Default(c)

	if old, ok := session.Get(sessionKeyToken).(string); ok && old != "" {
		if err := m.store.Delete(ctx, old); err != nil {
			return "", fmt.Errorf("failed to drop previous session: %w", err)
		}
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	if err := m.store.Put(ctx, token, userID, m.ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	session.Set(sessionKeyToken, token)
	if err := session.Save(); err != nil {
		return "", fmt.Errorf("failed to save session cookie: %w", err)
	}
	return token, nil
}

// CurrentUser はリクエストのセッションに対応するユーザーIDを返します。
// 匿名の場合は空文字を返します。
func (m *Manager) CurrentUser(c *gin.Context) (string, error) {
	token, ok := sessions.Default(c).Get(sessionKeyToken).(string)
	if !ok || token == "" {
		return "", nil
	}
	userID, err := m.store.Get(c.Request.Context(), token)
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return userID, nil
}

// Logout はセッションを無効化し Cookie を破棄します。何度呼んでも構いません。
func (m *Manager) Logout(c *gin.Context) error {
	session := sessions.Default(c)
	if token, ok := session.Get(sessionKeyToken).(string); ok && token != "" {
		if err := m.store.Delete(c.Request.Context(), token); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}

	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to clear session cookie: %w", err)
	}
	return nil
}

// UserID はアクセスゲートが設定したユーザーIDを返します。
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserKey)
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
