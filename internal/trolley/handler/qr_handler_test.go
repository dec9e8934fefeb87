package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/testutil"
)

func TestQRScanEndpoints(t *testing.T) {
	router, f := setupTest(t)

	trolley := &entity.Trolley{Name: "Cart 12", Airline: "Andes Air"}
	if err := f.Trolley.Create(context.Background(), trolley); err != nil {
		t.Fatalf("Failed to seed trolley: %v", err)
	}

	// No scans yet: latest is null, not 404.
	w := testutil.DoRequest(router, "GET", "/api/v1/qr-scans/latest", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if data := testutil.ParseResponse(w)["data"]; data != nil {
		t.Errorf("Expected null data, got %v", data)
	}

	w = testutil.DoRequest(router, "POST", "/api/v1/qr-scans", map[string]interface{}{
		"station_id":    "station-7",
		"flight_number": "AA123",
		"customer_name": "Andes Air",
		"drawer_id":     "DR-A",
		"trolley_ids":   []uint{trolley.ID},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	scanID := uint(data["id"].(float64))
	trolleys := data["trolleys"].([]interface{})
	if len(trolleys) != 1 {
		t.Errorf("Expected 1 linked trolley, got %d", len(trolleys))
	}

	// Binding rejects an incomplete scan.
	w = testutil.DoRequest(router, "POST", "/api/v1/qr-scans", map[string]interface{}{
		"station_id": "station-7",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	// Unknown trolley reference rejects the scan.
	w = testutil.DoRequest(router, "POST", "/api/v1/qr-scans", map[string]interface{}{
		"station_id":    "station-7",
		"flight_number": "AA123",
		"customer_name": "Andes Air",
		"drawer_id":     "DR-A",
		"trolley_ids":   []uint{9999},
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown trolley, got %d", w.Code)
	}

	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/qr-scans/%d", scanID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/qr-scans/latest", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	latest := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if uint(latest["id"].(float64)) != scanID {
		t.Errorf("Expected latest scan %d, got %v", scanID, latest["id"])
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/qr-scans", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	listData := testutil.ParseResponse(w)["data"].(map[string]interface{})
	items := listData["items"].([]interface{})
	if len(items) != 1 {
		t.Errorf("Expected 1 scan, got %d", len(items))
	}
}
