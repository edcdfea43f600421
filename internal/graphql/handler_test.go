package graphql

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyzBeats/GraphQL-Blog/internal/engine"
	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
)

func newTestServer(t *testing.T) (*httptest.Server, *engine.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	schema, _, eng := newTestSchema(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewRouter(schema, eng, logger))
	t.Cleanup(srv.Close)
	return srv, eng
}

func postGraphQL(t *testing.T, srv *httptest.Server, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/graphql", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestHandler_Query(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := postGraphQL(t, srv, `{"query": "{ users { name } }"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	users := body["data"].(map[string]interface{})["users"].([]interface{})
	assert.Len(t, users, 3)
}

func TestHandler_ExecutionErrorStillReturns200(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := postGraphQL(t, srv, `{"query": "mutation { deleteUser(id: \"missing\") { id } }"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["errors"])
}

func TestHandler_MalformedBodyIs400(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/graphql", "application/json", bytes.NewBufferString(`{"nope": true}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Healthz(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func dialSubscriptions(t *testing.T, srv *httptest.Server, req SubscribeRequest) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/subscriptions"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.WriteJSON(req))
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f Frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestSubscriptions_PostStream(t *testing.T) {
	srv, eng := newTestServer(t)

	conn := dialSubscriptions(t, srv, SubscribeRequest{Stream: "posts"})
	ack := readFrame(t, conn)
	require.Equal(t, "subscribed", ack.Type)

	created, err := eng.CreatePost(entity.CreatePostInput{
		Title:     "Live",
		Body:      "streamed",
		Published: true,
		Author:    "1",
	})
	require.NoError(t, err)

	frame := readFrame(t, conn)
	assert.Equal(t, "data", frame.Type)
	assert.Equal(t, "posts", frame.Stream)
	payload := frame.Payload.(map[string]interface{})
	assert.Equal(t, created.ID, payload["id"])
	assert.Equal(t, "Live", payload["title"])
}

func TestSubscriptions_CommentStream(t *testing.T) {
	srv, eng := newTestServer(t)

	conn := dialSubscriptions(t, srv, SubscribeRequest{Stream: "comments", PostID: "1"})
	ack := readFrame(t, conn)
	require.Equal(t, "subscribed", ack.Type)

	created, err := eng.CreateComment(entity.CreateCommentInput{
		Text:   "over the wire",
		Post:   "1",
		Author: "2",
	})
	require.NoError(t, err)

	frame := readFrame(t, conn)
	assert.Equal(t, "data", frame.Type)
	payload := frame.Payload.(map[string]interface{})
	assert.Equal(t, created.ID, payload["id"])
	assert.Equal(t, "over the wire", payload["text"])
}

func TestSubscriptions_UnknownPostRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	conn := dialSubscriptions(t, srv, SubscribeRequest{Stream: "comments", PostID: "missing"})
	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame.Type)
	assert.Contains(t, frame.Message, "POST_NOT_FOUND")
}

func TestSubscriptions_InvalidStreamRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	conn := dialSubscriptions(t, srv, SubscribeRequest{Stream: "everything"})
	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame.Type)
}
