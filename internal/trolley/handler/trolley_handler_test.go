package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/service"
	"github.com/galleyops/trolleyd/internal/trolley/testutil"
)

func TestTrolleyCRUD(t *testing.T) {
	router, _ := setupTest(t)

	w := testutil.DoRequest(router, "POST", "/api/v1/trolleys", map[string]interface{}{
		"name":    "Cart 12",
		"airline": "Andes Air",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	id := uint(data["id"].(float64))

	// Missing required fields are rejected at binding time.
	w = testutil.DoRequest(router, "POST", "/api/v1/trolleys", map[string]interface{}{
		"name": "No Airline",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/trolleys/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	if data["name"] != "Cart 12" || data["airline"] != "Andes Air" {
		t.Errorf("Unexpected trolley payload: %v", data)
	}

	w = testutil.DoRequest(router, "PUT", fmt.Sprintf("/api/v1/trolleys/%d", id), map[string]interface{}{
		"name":    "Cart 12B",
		"airline": "Andes Air",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/trolleys", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	resp = testutil.ParseResponse(w)
	listData := resp["data"].(map[string]interface{})
	items := listData["items"].([]interface{})
	if len(items) != 1 {
		t.Errorf("Expected 1 trolley in listing, got %d", len(items))
	}
	pagination := listData["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 1 {
		t.Errorf("Expected total 1, got %v", pagination["total"])
	}

	w = testutil.DoRequest(router, "DELETE", fmt.Sprintf("/api/v1/trolleys/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/trolleys/%d", id), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestTrolleyLevels(t *testing.T) {
	router, _ := setupTest(t)

	w := testutil.DoRequest(router, "POST", "/api/v1/trolleys", map[string]interface{}{
		"name": "Cart 12", "airline": "Andes Air",
	})
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	id := uint(data["id"].(float64))

	w = testutil.DoRequest(router, "POST", fmt.Sprintf("/api/v1/trolleys/%d/levels", id), map[string]interface{}{
		"level_number": 1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	levelData := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if levelData["capacity"].(float64) != 20 {
		t.Errorf("Expected default capacity 20, got %v", levelData["capacity"])
	}

	// Duplicate level number on the same trolley.
	w = testutil.DoRequest(router, "POST", fmt.Sprintf("/api/v1/trolleys/%d/levels", id), map[string]interface{}{
		"level_number": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for duplicate level, got %d", w.Code)
	}

	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/trolleys/%d/levels", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	levelsData := testutil.ParseResponse(w)["data"].(map[string]interface{})
	levels := levelsData["items"].([]interface{})
	if len(levels) != 1 {
		t.Errorf("Expected 1 level, got %d", len(levels))
	}
}

// seedContents builds a trolley with one level, one drawer, a spec
// requiring 5 cups in that drawer, and one camera reading detecting 4.
func seedContents(t *testing.T, f *testutil.Fakes) uint {
	t.Helper()
	ctx := context.Background()

	trolley := &entity.Trolley{Name: "Cart 12", Airline: "Andes Air"}
	if err := f.Trolley.Create(ctx, trolley); err != nil {
		t.Fatalf("Failed to seed trolley: %v", err)
	}
	level := &entity.TrolleyLevel{TrolleyID: trolley.ID, LevelNumber: entity.LevelTop, Capacity: 20}
	if err := f.Level.Create(ctx, level); err != nil {
		t.Fatalf("Failed to seed level: %v", err)
	}
	drawer := &entity.TrolleyDrawer{TrolleyID: trolley.ID, DrawerID: "DR-A", LevelID: level.ID}
	if err := f.Drawer.Create(ctx, drawer); err != nil {
		t.Fatalf("Failed to seed drawer: %v", err)
	}
	product := &entity.Product{Name: "Paper Cups", SKU: "CUP-001", StockQuantity: 100}
	if err := f.Product.Create(ctx, product); err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	spec := &entity.Specification{SpecID: "SPEC-001", Name: "Breakfast", TrolleyTemplateID: &trolley.ID}
	if err := f.Specification.Create(ctx, spec); err != nil {
		t.Fatalf("Failed to seed spec: %v", err)
	}
	item := &entity.SpecificationItem{
		SpecificationID: spec.ID, DrawerID: drawer.ID, ProductID: product.ID, RequiredQuantity: 5,
	}
	if err := f.Specification.CreateItem(ctx, item); err != nil {
		t.Fatalf("Failed to seed spec item: %v", err)
	}
	reading := &entity.SensorReading{
		StreamID:      "stream-1",
		StationID:     "station-1",
		Timestamp:     time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		DrawerRefID:   &drawer.ID,
		SpecID:        "SPEC-001",
		SensorType:    entity.SensorTypeCamera,
		ExpectedValue: "5",
		DetectedValue: "4",
		AlertFlag:     entity.AlertFlagAlert,
	}
	if err := f.Sensor.Create(ctx, reading); err != nil {
		t.Fatalf("Failed to seed reading: %v", err)
	}
	return trolley.ID
}

func TestTrolleyRequiredContents(t *testing.T) {
	router, f := setupTest(t)
	id := seedContents(t, f)

	w := testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/trolleys/%d/required-contents", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["total_specs"].(float64) != 1 {
		t.Errorf("Expected 1 spec, got %v", data["total_specs"])
	}
	if data["total_quantity"].(float64) != 5 {
		t.Errorf("Expected total quantity 5, got %v", data["total_quantity"])
	}
	if _, hasMessage := data["message"]; hasMessage {
		t.Errorf("Expected no marker message, got %v", data["message"])
	}

	// A trolley without specifications reports the marker, not an error.
	w = testutil.DoRequest(router, "POST", "/api/v1/trolleys", map[string]interface{}{
		"name": "Empty Cart", "airline": "Andes Air",
	})
	emptyData := testutil.ParseResponse(w)["data"].(map[string]interface{})
	emptyID := uint(emptyData["id"].(float64))

	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/trolleys/%d/required-contents", emptyID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	data = testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["message"] != service.MsgNoSpecifications {
		t.Errorf("Expected marker message, got %v", data["message"])
	}
}

func TestTrolleyCurrentContents(t *testing.T) {
	router, f := setupTest(t)
	id := seedContents(t, f)

	w := testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/trolleys/%d/current-contents", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["total_drawers"].(float64) != 1 || data["drawers_with_data"].(float64) != 1 {
		t.Errorf("Unexpected drawer totals: %v", data)
	}
	if data["total_alerts"].(float64) != 1 {
		t.Errorf("Expected 1 alert, got %v", data["total_alerts"])
	}

	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/trolleys/%d/current-contents?alert_flag=BROKEN", id), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for invalid alert flag, got %d", w.Code)
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/trolleys/9999/current-contents", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown trolley, got %d", w.Code)
	}
}

func TestTrolleyStatsEndpoint(t *testing.T) {
	router, f := setupTest(t)
	id := seedContents(t, f)

	w := testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/trolleys/%d/stats", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["total_levels"].(float64) != 1 || data["total_drawers"].(float64) != 1 {
		t.Errorf("Unexpected stats: %v", data)
	}
	levels := data["levels"].([]interface{})
	level := levels[0].(map[string]interface{})
	if level["usage_percentage"].(float64) != 25.0 {
		t.Errorf("Expected 25%% usage, got %v", level["usage_percentage"])
	}
}
