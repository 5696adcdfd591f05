package api

import (
	"net/http"
	"testing"
)

func TestGetUser(t *testing.T) {
	ts := newTestServer(t)
	token, user := ts.register(t, "ada@example.com")

	t.Run("found", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/users/"+user.ID, token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
		body := decodeBody(t, rec)
		if body["userId"] != user.ID {
			t.Errorf("userId = %v, want %q", body["userId"], user.ID)
		}
		if body["firstName"] != "Ada" {
			t.Errorf("firstName = %v, want Ada", body["firstName"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/users/usr-missing", token, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
		}
		body := decodeBody(t, rec)
		if body["message"] != "User not found" {
			t.Errorf("message = %v, want %q", body["message"], "User not found")
		}
	})

	t.Run("requires token", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/users/"+user.ID, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
