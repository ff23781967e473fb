//go:build integration

package integration

import (
	"net/http"
	"testing"
)

type healthResponse struct {
	Status string `json:"status"`
}

func TestHealth(t *testing.T) {
	resp := doGet(t, "/health")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := decodeJSON[healthResponse](t, resp); body.Status != "ok" {
		t.Fatalf("expected status ok, got %q", body.Status)
	}
}
