package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-pulse/campuspulse/internal/shared/db"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

// DBScope gives each request its own store connection. The connection is
// taken from the pool on first use and returned when the request ends,
// whether the handler succeeded, failed or panicked.
func DBScope(database *gorm.DB, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		scope := db.NewScope(ctx, database)
		c.Request = c.Request.WithContext(db.WithScope(ctx, scope))

		defer func() {
			if err := scope.Release(); err != nil {
				log.Warnw("failed to release request connection",
					"path", c.Request.URL.Path,
					"error", err)
			}
		}()

		c.Next()
	}
}
