// Package db provides request-scoped store connections.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

type scopeKey struct{}

// Scope owns at most one store connection for the lifetime of a request.
// The connection is acquired on first use and returned by Release.
type Scope struct {
	base *gorm.DB
	ctx  context.Context

	once sync.Once
	conn *sql.Conn
	db   *gorm.DB
	err  error
}

// NewScope creates a scope over base. Nothing is acquired until DB is called.
func NewScope(ctx context.Context, base *gorm.DB) *Scope {
	return &Scope{base: base, ctx: ctx}
}

// WithScope returns a context carrying s.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFromContext returns the scope stored in ctx, if any.
func ScopeFromContext(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	return s, ok
}

// DB returns a gorm handle bound to the scope's dedicated connection.
func (s *Scope) DB() (*gorm.DB, error) {
	s.once.Do(func() {
		sqlDB, err := s.base.DB()
		if err != nil {
			s.err = fmt.Errorf("failed to get underlying sql.DB: %w", err)
			return
		}
		conn, err := sqlDB.Conn(s.ctx)
		if err != nil {
			s.err = fmt.Errorf("failed to acquire connection: %w", err)
			return
		}
		tx := s.base.Session(&gorm.Session{NewDB: true, Context: s.ctx})
		tx.Statement.ConnPool = conn
		s.conn = conn
		s.db = tx
	})
	return s.db, s.err
}

// Acquired reports whether the scope has taken a connection.
func (s *Scope) Acquired() bool {
	return s.conn != nil
}

// Release returns the connection to the pool. Safe to call when nothing was acquired.
func (s *Scope) Release() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// GetTxFromContext picks the handle a repository should use: the request
// scope's connection when ctx carries one, otherwise the pool.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if s, ok := ScopeFromContext(ctx); ok {
		if scoped, err := s.DB(); err == nil {
			return scoped
		}
	}
	return defaultDB.WithContext(ctx)
}
