package sync_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/memoshare/memoshare/internal/client/cache"
	"github.com/memoshare/memoshare/internal/client/model"
	"github.com/memoshare/memoshare/internal/client/remote"
	"github.com/memoshare/memoshare/internal/client/search"
	"github.com/memoshare/memoshare/internal/client/sync"
	"github.com/memoshare/memoshare/internal/webserver"
	"github.com/memoshare/memoshare/internal/webserver/infrastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appTransport feeds the remote client's requests straight into an
// in-process fiber application, so the whole client core can be
// exercised against the real service without opening a port.
type appTransport struct {
	app *fiber.App
}

func (t appTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.app.Test(req, -1)
}

func bootstrapStack(t *testing.T) (*sync.Coordinator, *probeMock, *fiber.App) {
	t.Helper()

	db := infrastructure.Connect("file::memory:")
	webserverConfig := webserver.Config{
		JwtSecret:         []byte("jwt_secret"),
		MinPasswordLength: 5,
		SessionTimeout:    24 * time.Hour,
	}
	app := webserver.New(webserverConfig, webserver.SetupControllers(webserverConfig, db))

	client := remote.NewClient(remote.Config{
		BaseURL:   "http://memoshare.test",
		Transport: appTransport{app: app},
	})

	store, err := cache.Open(filepath.Join(t.TempDir(), "memoshare.db"))
	require.NoError(t, err)

	index, err := search.NewIndex()
	require.NoError(t, err)

	probe := &probeMock{online: true}
	return sync.NewCoordinator(client, store, probe, index), probe, app
}

// signUp registers and logs in a user against the in-process service,
// returning a coordinator session for them.
func signUp(t *testing.T, app *fiber.App, username, displayName string) sync.Session {
	t.Helper()

	register, _ := json.Marshal(map[string]string{
		"username":    username,
		"email":       username + "@example.com",
		"password":    "secret",
		"displayName": displayName,
	})
	req := httptest.NewRequest(http.MethodPost, "http://memoshare.test/auth/register", bytes.NewReader(register))
	req.Header.Set("Content-Type", "application/json")
	response, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, response.StatusCode)

	login, _ := json.Marshal(map[string]string{
		"username": username,
		"password": "secret",
	})
	req = httptest.NewRequest(http.MethodPost, "http://memoshare.test/auth/login", bytes.NewReader(login))
	req.Header.Set("Content-Type", "application/json")
	response, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var session struct {
		Token       string `json:"token"`
		UserID      string `json:"userId"`
		Username    string `json:"username"`
		DisplayName string `json:"displayName"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&session))

	return sync.Session{
		Token:       session.Token,
		UserID:      session.UserID,
		Username:    session.Username,
		DisplayName: session.DisplayName,
	}
}

// TestEndToEndShareLifecycle drives the full stack: a memo created
// through the coordinator, shared with another user, listed on their
// side with the author's display name, and revoked again.
func TestEndToEndShareLifecycle(t *testing.T) {
	ctx := context.Background()
	coordinator, _, app := bootstrapStack(t)

	aliceSession := signUp(t, app, "alice", "Alice")
	bobSession := signUp(t, app, "bob", "Bob")

	created, err := coordinator.CreateMemo(ctx, aliceSession, "Groceries", "milk,eggs")
	require.NoError(t, err)
	assert.False(t, created.IsShared)
	assert.Equal(t, aliceSession.UserID, created.AuthorID)

	require.NoError(t, coordinator.ShareMemo(ctx, aliceSession, created.ID, bobSession.UserID))

	shared, err := coordinator.SharedMemos(ctx, bobSession)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, created.ID, shared[0].ID)
	assert.Equal(t, "Alice", shared[0].AuthorName)
	assert.True(t, shared[0].IsShared)

	// Sharing twice is answered with a conflict, leaving one grant.
	err = coordinator.ShareMemo(ctx, aliceSession, created.ID, bobSession.UserID)
	assert.ErrorIs(t, err, model.ErrConflict)

	require.NoError(t, coordinator.UnshareMemo(ctx, aliceSession, created.ID, bobSession.UserID))

	shared, err = coordinator.SharedMemos(ctx, bobSession)
	require.NoError(t, err)
	assert.Empty(t, shared)

	memo, err := coordinator.Memo(ctx, aliceSession, created.ID)
	require.NoError(t, err)
	assert.False(t, memo.IsShared, "revoking the last grant must clear the shared flag")
}

// TestEndToEndOfflineFallback checks that reads keep answering from the
// cache when connectivity goes away, and that a stranger never sees the
// memo either way.
func TestEndToEndOfflineFallback(t *testing.T) {
	ctx := context.Background()
	coordinator, probe, app := bootstrapStack(t)

	aliceSession := signUp(t, app, "alice", "Alice")
	carolSession := signUp(t, app, "carol", "Carol")

	created, err := coordinator.CreateMemo(ctx, aliceSession, "Groceries", "milk,eggs")
	require.NoError(t, err)

	_, err = coordinator.MyMemos(ctx, aliceSession)
	require.NoError(t, err)

	probe.online = false

	memos, err := coordinator.MyMemos(ctx, aliceSession)
	require.NoError(t, err, "offline listing must serve the cache, not fail")
	require.Len(t, memos, 1)
	assert.Equal(t, created.ID, memos[0].ID)

	_, err = coordinator.Memo(ctx, carolSession, created.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	probe.online = true
	_, err = coordinator.Memo(ctx, carolSession, created.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
