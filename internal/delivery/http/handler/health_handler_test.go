package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/cache"
	"github.com/wate11/HyMatch-project/internal/pkg/response"
)

func TestHealthHandler_NoBackingServices(t *testing.T) {
	app := fiber.New()
	NewHealthHandler(&cache.Redis{}, nil).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body response.SemanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	data, ok := body.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data shape: %T", body.Data)
	}
	if data["cache"] != "bypassed" {
		t.Fatalf("unreachable redis must report bypassed, got %v", data["cache"])
	}
	if data["catalog_db"] != "disabled" {
		t.Fatalf("missing db must report disabled, got %v", data["catalog_db"])
	}
}
