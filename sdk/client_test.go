package sdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, &ClientOptions{Token: "tok", Timeout: 5 * time.Second})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClientListTracks(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tracks", r.URL.Path)
		assert.Equal(t, "jazz", r.URL.Query().Get("genre"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": 200,
			"data": map[string]interface{}{
				"items": []map[string]interface{}{
					{"id": "t2", "title": "B", "artist": "x", "genre": "jazz"},
					{"id": "t1", "title": "A", "artist": "x", "genre": "jazz"},
				},
				"nextCursor": "t1",
				"hasMore":    true,
				"count":      2,
			},
		})
	})

	page, err := c.ListTracks(context.Background(), "jazz", "", 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "t2", page.Items[0].ID)
	assert.Equal(t, "t1", page.NextCursor)
	assert.True(t, page.HasMore)
	assert.Equal(t, 2, page.Count)
}

func TestClientToggleLike(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/stories/s1/like", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": 200,
			"data":   map[string]interface{}{"liked": true, "likeCount": 7},
		})
	})

	state, err := c.ToggleLike(context.Background(), "stories", "s1")
	require.NoError(t, err)
	assert.Equal(t, LikeState{Liked: true, LikeCount: 7}, *state)
}

func TestClientCreateComment(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tracks/t1/comments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "nice", body["body"])
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"status": 201,
			"data":   map[string]interface{}{"id": "c1", "body": "nice", "targetId": "t1"},
		})
	})

	comment, err := c.CreateComment(context.Background(), "tracks", "t1", "nice")
	require.NoError(t, err)
	assert.Equal(t, "c1", comment.ID)
	assert.Equal(t, "nice", comment.Body)
}

func TestClientErrors(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/stories/missing":
			writeJSON(w, http.StatusNotFound, map[string]interface{}{"status": 404, "message": "故事不存在"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("服务器内部错误"))
		}
	})

	_, err := c.GetStory(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "故事不存在", apiErr.Message)

	_, err = c.GetTrack(context.Background(), "t1")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "服务器内部错误", apiErr.Message)
}

func TestClientCanceledContext(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListStories(ctx, "", 0)
	assert.ErrorIs(t, err, context.Canceled)
}
