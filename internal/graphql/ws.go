package graphql

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/SyzBeats/GraphQL-Blog/internal/engine"
	"github.com/SyzBeats/GraphQL-Blog/internal/pubsub"
)

// SubscribeRequest is the first frame a websocket client sends to select
// its stream: the shared post stream, or one post's comment stream.
type SubscribeRequest struct {
	Stream string `json:"stream" validate:"required,oneof=posts comments"`
	PostID string `json:"postId,omitempty"`
}

// Frame is every message the server sends down the socket.
type Frame struct {
	Type    string `json:"type"` // "subscribed" | "data" | "error"
	Stream  string `json:"stream,omitempty"`
	Payload any    `json:"payload,omitempty"`
	Message string `json:"message,omitempty"`
}

var upgrader = websocket.Upgrader{
	// The server carries no credentials or cookies worth protecting, so
	// cross-origin subscribers are allowed.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleSubscriptions upgrades the connection, reads one SubscribeRequest,
// registers the subscriber and pumps events until the client disconnects.
func handleSubscriptions(eng *engine.Engine, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "error", err)
			return
		}
		defer ws.Close()

		var req SubscribeRequest
		if err := ws.ReadJSON(&req); err != nil {
			_ = ws.WriteJSON(Frame{Type: "error", Message: "invalid subscribe request: " + err.Error()})
			return
		}
		if err := validate.Struct(req); err != nil {
			_ = ws.WriteJSON(Frame{Type: "error", Message: "invalid subscribe request: " + err.Error()})
			return
		}

		sub, err := openSubscription(eng, req)
		if err != nil {
			_ = ws.WriteJSON(Frame{Type: "error", Stream: req.Stream, Message: err.Error()})
			return
		}
		defer sub.Cancel()

		if err := ws.WriteJSON(Frame{Type: "subscribed", Stream: req.Stream}); err != nil {
			return
		}
		logger.Info("subscriber connected", "stream", req.Stream, "postId", req.PostID)

		// The read loop exists only to notice the client going away; any
		// read error cancels the pump below.
		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()
		go func() {
			defer cancel()
			for {
				if _, _, err := ws.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			payload, err := sub.Next(ctx)
			if err != nil {
				logger.Info("subscriber disconnected", "stream", req.Stream, "reason", err)
				return
			}
			if err := ws.WriteJSON(Frame{Type: "data", Stream: req.Stream, Payload: payload}); err != nil {
				return
			}
		}
	}
}

func openSubscription(eng *engine.Engine, req SubscribeRequest) (*pubsub.Subscriber, error) {
	switch req.Stream {
	case "posts":
		return eng.SubscribeToPosts(), nil
	case "comments":
		return eng.SubscribeToComments(req.PostID)
	default:
		return nil, fmt.Errorf("unknown stream %q", req.Stream)
	}
}
