package cometchat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "app-1", r.Header.Get("appid"))
		assert.Equal(t, "key-1", r.Header.Get("apikey"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body sendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "room-7", body.Receiver)
		assert.Equal(t, "group", body.ReceiverType)
		assert.Equal(t, "message", body.Category)
		assert.Equal(t, "text", body.Type)
		assert.Equal(t, "@alice hi there", body.Data.Text)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "app-1", "key-1")
	err := c.SendText(context.Background(), "room-7", "group", "@alice hi there")
	assert.NoError(t, err)
}

func TestSendText_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "app-1", "wrong")
	err := c.SendText(context.Background(), "u1", "user", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
