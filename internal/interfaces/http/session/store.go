package session

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-pulse/campuspulse/internal/infrastructure/auth"
	"github.com/campus-pulse/campuspulse/internal/shared/config"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
	"github.com/campus-pulse/campuspulse/internal/shared/utils"
)

// Store loads and saves sessions through a signed cookie.
type Store struct {
	tokens *auth.SessionTokenService
	cookie config.CookieConfig
	logger logger.Interface
}

func NewStore(tokens *auth.SessionTokenService, cookie config.CookieConfig, logger logger.Interface) *Store {
	if cookie.Name == "" {
		cookie.Name = "campus_pulse_session"
	}
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	return &Store{
		tokens: tokens,
		cookie: cookie,
		logger: logger,
	}
}

// Load decodes the session cookie. A missing, tampered or expired cookie
// yields an empty session.
func (st *Store) Load(c *gin.Context) *Session {
	s := New()

	raw := utils.GetCookie(c, st.cookie.Name)
	if raw == "" {
		return s
	}

	if err := st.tokens.Parse(raw, s); err != nil {
		st.logger.Debugw("discarding invalid session cookie", "error", err)
		return New()
	}
	return s
}

// Save writes s back to the client. An empty session clears the cookie.
func (st *Store) Save(c *gin.Context, s *Session) error {
	if s.IsEmpty() {
		if utils.GetCookie(c, st.cookie.Name) != "" {
			utils.ClearSessionCookie(c, st.cookie)
		}
		return nil
	}

	token, err := st.tokens.Issue(s)
	if err != nil {
		return err
	}
	utils.SetSessionCookie(c, st.cookie, token, st.tokens.MaxAge())
	return nil
}

// Middleware decodes the session once per request and exposes it via From.
func (st *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		set(c, st.Load(c))
		c.Next()
	}
}
