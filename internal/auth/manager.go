// Package auth は認証・認可機能を提供します。
package auth

import (
	"log"
	"sync"
	"time"

	"github.com/yourusername/quiz-portal/internal/session"
	"github.com/yourusername/quiz-portal/internal/users"
)

// 画面遷移先
const (
	PathHome  = "/home"
	PathLogin = "/login"
	PathView  = "/view"
)

var (
	loginWindow      = 15 * time.Minute
	lockDuration     = 10 * time.Minute
	maxLoginAttempts = 5
)

type attemptState struct {
	count        int
	firstAttempt time.Time
	lockedUntil  time.Time
}

// Manager は認証処理と状態をまとめた構造体です。
type Manager struct {
	directory users.Directory
	sessions  *session.Manager
	logger    *log.Logger

	lock     sync.Mutex
	attempts map[string]*attemptState
	now      func() time.Time
}

// NewManager は認証マネージャーを作成します。
func NewManager(directory users.Directory, sessions *session.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		directory: directory,
		sessions:  sessions,
		logger:    logger,
		attempts:  make(map[string]*attemptState),
		now:       time.Now,
	}
}

func (m *Manager) checkLock(ip string) time.Duration {
	m.lock.Lock()
	defer m.lock.Unlock()

	state, ok := m.attempts[ip]
	if !ok {
		return 0
	}
	now := m.now()
	if now.After(state.lockedUntil) {
		return 0
	}
	return state.lockedUntil.Sub(now)
}

func (m *Manager) recordFailure(ip string) int {
	m.lock.Lock()
	defer m.lock.Unlock()

	now := m.now()
	state, ok := m.attempts[ip]
	expiredLock := ok && !state.lockedUntil.IsZero() && now.After(state.lockedUntil)
	if !ok || expiredLock || now.Sub(state.firstAttempt) > loginWindow {
		state = &attemptState{firstAttempt: now}
		m.attempts[ip] = state
	}

	state.count++
	if state.count >= maxLoginAttempts {
		state.lockedUntil = now.Add(lockDuration)
		state.count = maxLoginAttempts
	}

	remaining := maxLoginAttempts - state.count
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func (m *Manager) resetAttempts(ip string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.attempts, ip)
}
