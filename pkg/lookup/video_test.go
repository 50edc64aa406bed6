package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Yesterday The Beatles", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		fmt.Fprint(w, `{"result":[{"thumbnails":[{"url":"https://img/thumb.jpg"},{"url":"https://img/thumb_hq.jpg"}],"link":"https://video/watch?v=abc"}]}`)
	}))
	defer srv.Close()

	client := NewVideoClient(srv.URL, time.Second)

	res, ok := client.Lookup(context.Background(), "Yesterday", "The Beatles")
	require.True(t, ok)
	assert.Equal(t, "https://img/thumb.jpg", res.Thumbnail, "should take the first thumbnail")
	assert.Equal(t, "https://video/watch?v=abc", res.Link)
}

func TestVideoClientLookupNoThumbnails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":[{"thumbnails":[],"link":"https://video/watch?v=abc"}]}`)
	}))
	defer srv.Close()

	client := NewVideoClient(srv.URL, time.Second)

	res, ok := client.Lookup(context.Background(), "Yesterday", "The Beatles")
	require.True(t, ok)
	assert.Empty(t, res.Thumbnail)
	assert.Equal(t, "https://video/watch?v=abc", res.Link)
}

func TestVideoClientLookupNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "empty result list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"result":[]}`)
			},
		},
		{
			name: "hit with neither link nor thumbnail",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"result":[{"thumbnails":[],"link":""}]}`)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `<html>oops</html>`)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewVideoClient(srv.URL, time.Second)

			res, ok := client.Lookup(context.Background(), "Unknown Song", "Nobody")
			assert.False(t, ok)
			assert.Empty(t, res.Link)
		})
	}
}

func TestVideoClientLookupNoBaseURL(t *testing.T) {
	client := NewVideoClient("", time.Second)

	_, ok := client.Lookup(context.Background(), "Yesterday", "The Beatles")
	assert.False(t, ok)
}
