package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/coolcare_patna/backend/internal/config"
	"github.com/coolcare_patna/backend/internal/db"
	httpapi "github.com/coolcare_patna/backend/internal/http"
)

func newTestRouter(adminKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{Port: "0", CORSAllowed: "*", AdminKey: adminKey}
	store := db.New(db.Options{})
	return httpapi.Router(cfg, store, zerolog.Nop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := newTestRouter("")
	w := doJSON(t, r, http.MethodGet, "/healthz", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestServicesListEnvelope(t *testing.T) {
	r := newTestRouter("")
	w := doJSON(t, r, http.MethodGet, "/api/services?category=repair&limit=5", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data       []map[string]any `json:"data"`
		Pagination struct {
			Total int `json:"total"`
			Limit int `json:"limit"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Pagination.Total != 2 || len(resp.Data) > resp.Pagination.Limit {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
}

func TestServiceGetMissingReturnsNullData(t *testing.T) {
	r := newTestRouter("")
	w := doJSON(t, r, http.MethodGet, "/api/services/svc-missing", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("read miss must be 200, got %d", w.Code)
	}
	var resp struct {
		Data    *json.RawMessage `json:"data"`
		Success bool             `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data != nil && string(*resp.Data) != "null" {
		t.Fatalf("expected null data, got %s", string(*resp.Data))
	}
	if !resp.Success {
		t.Fatalf("expected success=true on read miss")
	}
}

func TestTestimonialCreateRejectsBadRating(t *testing.T) {
	r := newTestRouter("")
	w := doJSON(t, r, http.MethodPost, "/api/testimonials", map[string]any{
		"customer_name": "Ravi",
		"comment":       "ok",
		"rating":        9,
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rating out of range, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCustomerCreateDuplicatePhoneConflict(t *testing.T) {
	r := newTestRouter("")
	body := map[string]any{
		"name":  "Dup Test",
		"phone": "+91-9000000001",
		"address": map[string]any{
			"street": "1 Bailey Road", "area": "Bailey Road", "pincode": "800014",
		},
	}
	if w := doJSON(t, r, http.MethodPost, "/api/customers", body, nil); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPost, "/api/customers", body, nil); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate phone, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBookingCreateAndFetch(t *testing.T) {
	r := newTestRouter("")
	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"service_id":     "svc-basic-service",
		"customer":       map[string]any{"name": "Walk In", "phone": "+91-9000000321"},
		"preferred_date": "2026-05-05",
		"preferred_time_slot": map[string]any{
			"start": "09:00", "end": "11:00", "label": "Morning",
		},
		"address": map[string]any{
			"street": "7 Boring Road", "area": "Boring Road", "pincode": "800001",
		},
		"urgency": "urgent",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			ID       string `json:"id"`
			Priority string `json:"priority"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Priority != "high" {
		t.Fatalf("expected high priority, got %s", resp.Data.Priority)
	}

	w = doJSON(t, r, http.MethodGet, "/api/bookings/"+resp.Data.ID, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching booking, got %d", w.Code)
	}
}

func TestAvailabilityRequiresDateAndArea(t *testing.T) {
	r := newTestRouter("")
	w := doJSON(t, r, http.MethodGet, "/api/availability", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without date/area, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/availability?date=2026-03-10&area=Boring%20Road", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminRoutesRequireKey(t *testing.T) {
	r := newTestRouter("sekrit")

	w := doJSON(t, r, http.MethodPost, "/api/testimonials/tst-004/verify", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without admin key, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/testimonials/tst-004/verify", nil, map[string]string{"X-Admin-Key": "sekrit"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with admin key, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBookingStatusUpdateNotFound(t *testing.T) {
	r := newTestRouter("")
	w := doJSON(t, r, http.MethodPatch, "/api/bookings/apt-missing/status", map[string]any{"status": "confirmed"}, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for mutation on missing booking, got %d", w.Code)
	}
}
