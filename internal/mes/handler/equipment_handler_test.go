package handler

import (
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/testutil"
)

func setupEquipmentTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil)
	h := NewHandlers(services, zap.NewNop())

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1/mes")
	api.POST("/equipment", h.Equipment.Create)
	api.GET("/equipment/:id", h.Equipment.Get)
	api.PATCH("/equipment/:id/status", h.Equipment.Transition)
	api.POST("/equipment/:id/logs", h.Equipment.AppendLog)
	api.GET("/equipment/:id/oee", h.Equipment.OEE)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func createEquipment(t *testing.T, env *testutil.TestEnv, token string) string {
	t.Helper()
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/mes/equipment",
		map[string]interface{}{"equip_code": "BRK-001", "name": "브레이크 프레스 1호기", "pm_cycle_days": 30}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["status"] != "stopped" {
		t.Fatalf("expected initial status stopped, got %v", data["status"])
	}
	return data["id"].(string)
}

func appendLogBody(date, shift string) map[string]interface{} {
	return map[string]interface{}{
		"log_date":         date,
		"shift":            shift,
		"planned_time_min": 480,
		"actual_time_min":  475,
		"setup_min":        5,
		"planned_qty":      1100,
		"actual_qty":       1105,
		"good_qty":         1100,
	}
}

// TestEquipmentStatusMachine tests legal and illegal equipment transitions over the API
func TestEquipmentStatusMachine(t *testing.T) {
	env := setupEquipmentTest(t)
	token := testutil.DefaultTestToken()
	eqID := createEquipment(t, env, token)

	// stopped → breakdown is not a legal edge
	w := testutil.DoRequest(env.Router, http.MethodPatch, "/api/v1/mes/equipment/"+eqID+"/status",
		map[string]interface{}{"status": "breakdown"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for stopped → breakdown, got %d: %s", w.Code, w.Body.String())
	}

	for _, next := range []string{"running", "maintenance", "running"} {
		w2 := testutil.DoRequest(env.Router, http.MethodPatch, "/api/v1/mes/equipment/"+eqID+"/status",
			map[string]interface{}{"status": next}, token)
		if w2.Code != http.StatusOK {
			t.Fatalf("expected 200 for transition to %s, got %d: %s", next, w2.Code, w2.Body.String())
		}
	}

	// maintenance → running stamped the PM date
	var eq entity.Equipment
	env.DB.Where("id = ?", eqID).First(&eq)
	if eq.LastPMDate == nil {
		t.Fatal("expected last_pm_date to be set after maintenance → running")
	}
}

// TestEquipmentLogDuplicateShift tests the one-row-per-equipment/date/shift rule
func TestEquipmentLogDuplicateShift(t *testing.T) {
	env := setupEquipmentTest(t)
	token := testutil.DefaultTestToken()
	eqID := createEquipment(t, env, token)

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/mes/equipment/"+eqID+"/logs",
		appendLogBody("2026-02-04", "day"), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// same equipment, date, shift again
	w2 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/mes/equipment/"+eqID+"/logs",
		appendLogBody("2026-02-04", "day"), token)
	if w2.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate shift log, got %d: %s", w2.Code, w2.Body.String())
	}

	// the night shift is a different row
	w3 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/mes/equipment/"+eqID+"/logs",
		appendLogBody("2026-02-04", "night"), token)
	if w3.Code != http.StatusCreated {
		t.Fatalf("expected 201 for night shift, got %d: %s", w3.Code, w3.Body.String())
	}
}

// TestEquipmentLogValidation tests good_qty > actual_qty and bad dates
func TestEquipmentLogValidation(t *testing.T) {
	env := setupEquipmentTest(t)
	token := testutil.DefaultTestToken()
	eqID := createEquipment(t, env, token)

	body := appendLogBody("2026-02-04", "day")
	body["good_qty"] = 2000 // exceeds actual_qty
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/mes/equipment/"+eqID+"/logs", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for good > actual, got %d: %s", w.Code, w.Body.String())
	}

	w2 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/mes/equipment/"+eqID+"/logs",
		appendLogBody("04.02.2026", "day"), token)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date format, got %d: %s", w2.Code, w2.Body.String())
	}
}

// TestEquipmentOEEEndpoint tests the OEE query over recorded logs
func TestEquipmentOEEEndpoint(t *testing.T) {
	env := setupEquipmentTest(t)
	token := testutil.DefaultTestToken()
	eqID := createEquipment(t, env, token)

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/mes/equipment/"+eqID+"/logs",
		appendLogBody("2026-02-04", "day"), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w2 := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/mes/equipment/"+eqID+"/oee?window=7", nil, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w2.Code, w2.Body.String())
	}
	data := testutil.ParseResponse(w2)["data"].(map[string]interface{})
	if data["availability"].(float64) != 99.0 {
		t.Fatalf("expected availability 99.0, got %v", data["availability"])
	}
	if data["oee"].(float64) != 98.5 {
		t.Fatalf("expected oee 98.5, got %v", data["oee"])
	}
	if data["window_size"].(float64) != 1 {
		t.Fatalf("expected window_size 1, got %v", data["window_size"])
	}

	// equipment detail inlines a default-window OEE
	w3 := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/mes/equipment/"+eqID, nil, token)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w3.Code, w3.Body.String())
	}
	detail := testutil.ParseResponse(w3)["data"].(map[string]interface{})
	if _, ok := detail["oee"]; !ok {
		t.Fatal("expected inline oee in equipment detail")
	}
}

// TestEquipmentOEENoLogs tests that an idle equipment reports zero OEE
func TestEquipmentOEENoLogs(t *testing.T) {
	env := setupEquipmentTest(t)
	token := testutil.DefaultTestToken()
	eqID := createEquipment(t, env, token)

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/mes/equipment/"+eqID+"/oee", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["oee"].(float64) != 0 || data["window_size"].(float64) != 0 {
		t.Fatalf("expected zero OEE for idle equipment, got %v", data)
	}
}
