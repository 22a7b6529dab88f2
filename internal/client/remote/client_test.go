package remote_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/memoshare/memoshare/internal/client/model"
	"github.com/memoshare/memoshare/internal/client/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapping(t *testing.T) {
	var cases = []struct {
		name     string
		status   int
		expected error
	}{
		{"Bad request maps to a validation error", http.StatusBadRequest, model.ErrValidation},
		{"Unauthorized maps to an authentication error", http.StatusUnauthorized, model.ErrUnauthenticated},
		{"Forbidden maps to a forbidden error", http.StatusForbidden, model.ErrForbidden},
		{"Not found maps to a not found error", http.StatusNotFound, model.ErrNotFound},
		{"Conflict maps to a conflict error", http.StatusConflict, model.ErrConflict},
		{"Server errors map to a server error", http.StatusInternalServerError, model.ErrServer},
		{"Bad gateway maps to a server error", http.StatusBadGateway, model.ErrServer},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tcase.status)
				fmt.Fprintf(w, `{"message":"status %d"}`, tcase.status)
			}))
			defer server.Close()

			client := remote.NewClient(remote.Config{BaseURL: server.URL})
			_, err := client.Get(context.Background(), "token", "some-id")
			assert.ErrorIs(t, err, tcase.expected)
		})
	}
}

func TestGetDecodesWireFormat(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/memos/m1", r.URL.Path)
		require.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "m1",
			"title": "Groceries",
			"content": "milk,eggs",
			"authorId": "alice",
			"authorName": "Alice",
			"isShared": true,
			"createdAt": %q,
			"updatedAt": %q
		}`, createdAt.Format(time.RFC3339), updatedAt.Format(time.RFC3339))
	}))
	defer server.Close()

	client := remote.NewClient(remote.Config{BaseURL: server.URL})
	memo, err := client.Get(context.Background(), "token", "m1")
	require.NoError(t, err)

	assert.Equal(t, model.Memo{
		ID:         "m1",
		Title:      "Groceries",
		Content:    "milk,eggs",
		AuthorID:   "alice",
		AuthorName: "Alice",
		IsShared:   true,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, memo)
}

func TestGrantTurnsBadRequestIntoConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message":"Memo is already shared with that user"}`)
	}))
	defer server.Close()

	client := remote.NewClient(remote.Config{BaseURL: server.URL})
	err := client.Grant(context.Background(), "token", "m1", "bob")
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestNetworkFailureIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := remote.NewClient(remote.Config{BaseURL: server.URL})
	_, err := client.ListMine(context.Background(), "token")
	assert.ErrorIs(t, err, model.ErrUnreachable)
}

func TestProbe(t *testing.T) {
	t.Run("A healthy service probes true", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := remote.NewClient(remote.Config{BaseURL: server.URL})
		assert.True(t, client.Probe(context.Background()))
	})

	t.Run("A service answering past the probe timeout probes false", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := remote.NewClient(remote.Config{BaseURL: server.URL, ProbeTimeout: 20 * time.Millisecond})
		assert.False(t, client.Probe(context.Background()))
	})

	t.Run("An unreachable service probes false", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := remote.NewClient(remote.Config{BaseURL: server.URL})
		assert.False(t, client.Probe(context.Background()))
	})

	t.Run("A failing health endpoint probes false", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := remote.NewClient(remote.Config{BaseURL: server.URL})
		assert.False(t, client.Probe(context.Background()))
	})
}
