package webserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/memoshare/memoshare/internal/webserver"
	"github.com/memoshare/memoshare/internal/webserver/infrastructure"
)

func TestHealth(t *testing.T) {
	app := bootstrapApp()

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Errorf("Wrong status code received, expected %d, got %d", http.StatusOK, response.StatusCode)
	}
}

func TestMemoRoutesRequireAuthentication(t *testing.T) {
	var cases = []struct {
		name   string
		method string
		url    string
	}{
		{"Listing own memos requires a token", http.MethodGet, "/memos/my"},
		{"Listing shared memos requires a token", http.MethodGet, "/memos/shared"},
		{"Getting a memo requires a token", http.MethodGet, "/memos/abc"},
		{"Creating a memo requires a token", http.MethodPost, "/memos"},
		{"Updating a memo requires a token", http.MethodPut, "/memos/abc"},
		{"Deleting a memo requires a token", http.MethodDelete, "/memos/abc"},
		{"Sharing a memo requires a token", http.MethodPost, "/memos/abc/share"},
		{"Revoking a share requires a token", http.MethodDelete, "/memos/abc/share/xyz"},
	}

	app := bootstrapApp()

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			response, err := app.Test(httptest.NewRequest(tcase.method, tcase.url, nil))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if response.StatusCode != http.StatusUnauthorized {
				t.Errorf("Wrong status code received, expected %d, got %d", http.StatusUnauthorized, response.StatusCode)
			}
		})
	}
}

func bootstrapApp() *fiber.App {
	db := infrastructure.Connect("file::memory:")

	webserverConfig := webserver.Config{
		JwtSecret:         []byte("jwt_secret"),
		MinPasswordLength: 5,
		SessionTimeout:    24 * time.Hour,
	}

	controllers := webserver.SetupControllers(webserverConfig, db)
	return webserver.New(webserverConfig, controllers)
}

type sessionResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

type memoResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	IsShared   bool      `json:"isShared"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func jsonRequest(method, target, token string, payload any) *http.Request {
	var body io.Reader
	if payload != nil {
		encoded, _ := json.Marshal(payload)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decode[T any](t *testing.T, response *http.Response) T {
	t.Helper()

	var value T
	if err := json.NewDecoder(response.Body).Decode(&value); err != nil {
		t.Fatalf("Error decoding response body: %v", err)
	}
	return value
}

// signUp registers a user and logs them in, returning the session the
// server handed back.
func signUp(t *testing.T, app *fiber.App, username, displayName string) sessionResponse {
	t.Helper()

	response, err := app.Test(jsonRequest(http.MethodPost, "/auth/register", "", fiber.Map{
		"username":    username,
		"email":       fmt.Sprintf("%s@example.com", username),
		"password":    "secret",
		"displayName": displayName,
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("Couldn't register %s, got status %d", username, response.StatusCode)
	}

	response, err = app.Test(jsonRequest(http.MethodPost, "/auth/login", "", fiber.Map{
		"username": username,
		"password": "secret",
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("Couldn't log in %s, got status %d", username, response.StatusCode)
	}

	return decode[sessionResponse](t, response)
}

func createMemo(t *testing.T, app *fiber.App, token, title, content string) memoResponse {
	t.Helper()

	response, err := app.Test(jsonRequest(http.MethodPost, "/memos", token, fiber.Map{
		"title":   title,
		"content": content,
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("Couldn't create memo, got status %d", response.StatusCode)
	}

	return decode[memoResponse](t, response)
}
