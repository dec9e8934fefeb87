package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/testutil"
)

func TestLevelCreateEndpoint(t *testing.T) {
	router, f := setupTest(t)
	ctx := context.Background()

	trolley := &entity.Trolley{Name: "Cart 3", Airline: "Andes Air"}
	if err := f.Trolley.Create(ctx, trolley); err != nil {
		t.Fatalf("Create trolley failed: %v", err)
	}

	w := testutil.DoRequest(router, "POST", "/api/v1/levels", map[string]interface{}{
		"trolley_id":   trolley.ID,
		"level_number": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if int(data["level_number"].(float64)) != 2 {
		t.Errorf("Expected level_number 2, got %v", data["level_number"])
	}
	if int(data["capacity"].(float64)) != 20 {
		t.Errorf("Expected default capacity 20, got %v", data["capacity"])
	}

	// Missing trolley_id is a binding failure.
	w = testutil.DoRequest(router, "POST", "/api/v1/levels", map[string]interface{}{
		"level_number": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	// Unknown trolley maps to 404.
	w = testutil.DoRequest(router, "POST", "/api/v1/levels", map[string]interface{}{
		"trolley_id":   9999,
		"level_number": 1,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}

	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/trolleys/%d/levels", trolley.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	items := testutil.ParseResponse(w)["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 {
		t.Errorf("Expected 1 level, got %d", len(items))
	}
}
