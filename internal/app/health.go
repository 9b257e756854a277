package app

import (
	"context"
	"net/http"
	"time"

	"employee-management/internal/shared/apperror"
	"employee-management/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

func healthHandler(db pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			response.Fail(c, apperror.Wrap(err, apperror.KindInternal, "database unreachable"))
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "up"})
	}
}
