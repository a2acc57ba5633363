package handler

import (
	"fmt"
	"math"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/testutil"
)

func setupSpcTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil)
	h := NewHandlers(services, zap.NewNop())

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1/mes")
	api.POST("/spc/measurements", h.Spc.Ingest)
	api.GET("/spc/chart", h.Spc.Chart)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func seedSpcWorkOrder(t *testing.T, env *testutil.TestEnv) string {
	t.Helper()
	wo := &entity.WorkOrder{
		ID:         "wo-spc-001",
		WOCode:     "WO-20260215-001",
		ProductID:  "prod-spcc-001",
		PlannedQty: 500,
		Status:     "in_progress",
		CreatedBy:  "test-user",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := env.DB.Create(wo).Error; err != nil {
		t.Fatalf("Failed to seed work order: %v", err)
	}
	return wo.ID
}

func ingestMeasurement(t *testing.T, env *testutil.TestEnv, token, woID string, subgroup int, value float64) {
	t.Helper()
	body := map[string]interface{}{
		"work_order_id":  woID,
		"characteristic": "thickness",
		"subgroup_no":    subgroup,
		"value":          value,
		"usl":            2.10,
		"lsl":            1.90,
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/mes/spc/measurements", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

// TestSpcChartEndpoint ingests subgroups and checks the computed limits
func TestSpcChartEndpoint(t *testing.T) {
	env := setupSpcTest(t)
	token := testutil.DefaultTestToken()
	woID := seedSpcWorkOrder(t, env)

	// 3 subgroups of 4
	values := map[int][]float64{
		1: {2.00, 2.01, 1.99, 2.02},
		2: {2.03, 2.00, 2.01, 2.02},
		3: {1.98, 2.00, 2.02, 2.00},
	}
	for g, vs := range values {
		for _, v := range vs {
			ingestMeasurement(t, env, token, woID, g, v)
		}
	}

	w := testutil.DoRequest(env.Router, http.MethodGet,
		fmt.Sprintf("/api/v1/mes/spc/chart?work_order_id=%s&characteristic=thickness", woID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	points := data["points"].([]interface{})
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if data["subgroup_size"].(float64) != 4 {
		t.Fatalf("expected subgroup size 4, got %v", data["subgroup_size"])
	}

	xbar := data["xbar"].(float64)
	ucl := data["ucl"].(float64)
	lcl := data["lcl"].(float64)
	if math.Abs((ucl-xbar)-(xbar-lcl)) > 1e-9 {
		t.Fatalf("expected symmetric limits, got UCL %v / xbar %v / LCL %v", ucl, xbar, lcl)
	}
	if data["usl"].(float64) != 2.10 || data["lsl"].(float64) != 1.90 {
		t.Fatalf("expected spec limits 2.10/1.90, got %v/%v", data["usl"], data["lsl"])
	}
}

// TestSpcIngestSpecLimitOrder tests that USL must exceed LSL
func TestSpcIngestSpecLimitOrder(t *testing.T) {
	env := setupSpcTest(t)
	token := testutil.DefaultTestToken()
	woID := seedSpcWorkOrder(t, env)

	body := map[string]interface{}{
		"work_order_id":  woID,
		"characteristic": "thickness",
		"subgroup_no":    1,
		"value":          2.0,
		"usl":            1.90,
		"lsl":            2.10,
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/mes/spc/measurements", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted spec limits, got %d: %s", w.Code, w.Body.String())
	}
}

// TestSpcChartUnknownWorkOrder tests 404 for charts against missing work orders
func TestSpcChartUnknownWorkOrder(t *testing.T) {
	env := setupSpcTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodGet,
		"/api/v1/mes/spc/chart?work_order_id=no-such-wo&characteristic=thickness", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

// TestSpcChartEmptyCharacteristic tests that a characteristic with no data is an empty chart
func TestSpcChartEmptyCharacteristic(t *testing.T) {
	env := setupSpcTest(t)
	token := testutil.DefaultTestToken()
	woID := seedSpcWorkOrder(t, env)

	w := testutil.DoRequest(env.Router, http.MethodGet,
		fmt.Sprintf("/api/v1/mes/spc/chart?work_order_id=%s&characteristic=width", woID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	points := data["points"].([]interface{})
	if len(points) != 0 {
		t.Fatalf("expected empty chart, got %d points", len(points))
	}
}
