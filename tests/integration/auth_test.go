package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow(t *testing.T) {
	app := setupApp(t)

	t.Run("register then login", func(t *testing.T) {
		app.registerUser(t, "maria", "segredo123")

		token := app.loginUser(t, "maria", "segredo123")
		if token == "" {
			t.Fatal("expected non-empty token")
		}

		rec := app.request("GET", "/api/v1/profile", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("profile failed: %d %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		user := result["user"].(map[string]interface{})
		if user["username"] != "maria" {
			t.Errorf("expected maria, got %v", user["username"])
		}
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/register",
			`{"username":"maria","password":"outrasenha"}`, "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("username matching is case-insensitive", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/register",
			`{"username":"MARIA","password":"outrasenha"}`, "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/login",
			`{"username":"maria","password":"wrong"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("protected routes require a token", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/accounts", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
