package graphql

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"github.com/SyzBeats/GraphQL-Blog/internal/engine"
)

// Request is the standard GraphQL-over-HTTP POST body.
type Request struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// NewRouter wires the HTTP surface: POST /graphql for queries and
// mutations, GET /subscriptions for the websocket event stream, and a
// trivial health probe.
func NewRouter(schema graphql.Schema, eng *engine.Engine, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/graphql", handleGraphQL(schema, logger))
	r.GET("/subscriptions", handleSubscriptions(eng, logger))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func handleGraphQL(schema graphql.Schema, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []gin.H{{"message": "invalid request body: " + err.Error()}},
			})
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.Request.Context(),
		})

		if len(result.Errors) > 0 {
			logger.Debug("graphql request failed",
				"operation", req.OperationName,
				"errors", len(result.Errors))
		}

		// Per the GraphQL-over-HTTP convention, execution errors still
		// produce a 200 with an errors array.
		c.JSON(http.StatusOK, result)
	}
}
