package ctxutil

import (
	"context"

	"contactbook/api/response"
	"contactbook/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

const (
	// ActorKey 是 gin context 中保存操作人的键
	ActorKey = "actor"
	// UserIDHeader carries the caller identity recorded in audit columns.
	UserIDHeader = "X-User-ID"
)

// FromGin builds the request context handed to the application layer: the
// request id and actor set by middleware travel with it.
func FromGin(c *gin.Context) context.Context {
	ctx := persistence.ContextWithRequestID(c.Request.Context(), response.GetRequestID(c))
	if actor := Actor(c); actor != "" {
		ctx = persistence.ContextWithActor(ctx, actor)
	}
	return ctx
}

func Actor(c *gin.Context) string {
	if v, ok := c.Get(ActorKey); ok {
		if actor, ok := v.(string); ok {
			return actor
		}
	}
	return ""
}
