package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"go.uber.org/zap"
)

// EquipmentHandler 설비 처리기
type EquipmentHandler struct {
	svc    *service.EquipmentService
	logger *zap.Logger
}

func NewEquipmentHandler(svc *service.EquipmentService, logger *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{svc: svc, logger: logger}
}

// Create 설비 등록
// POST /api/v1/mes/equipment
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	eq, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Created(c, eq)
}

// Get 설비 상세. OEE 를 인라인으로 함께 내려준다.
// GET /api/v1/mes/equipment/:id
func (h *EquipmentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	eq, err := h.svc.GetByID(ctx, id)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	oee, err := h.svc.OEE(ctx, id, service.DefaultOEEWindow)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	Success(c, gin.H{
		"equipment": eq,
		"oee":       oee,
	})
}

// List 설비 목록
// GET /api/v1/mes/equipment?status=&page=&limit=
func (h *EquipmentHandler) List(c *gin.Context) {
	page, limit := GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Paged(c, items, page, limit, total)
}

// Transition 설비 상태 전이
// PATCH /api/v1/mes/equipment/:id/status
func (h *EquipmentHandler) Transition(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	eq, err := h.svc.Transition(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Success(c, eq)
}

// AppendLog 가동 실적 등록
// POST /api/v1/mes/equipment/:id/logs
func (h *EquipmentHandler) AppendLog(c *gin.Context) {
	var req service.AppendLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	log, err := h.svc.AppendLog(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Created(c, log)
}

// OEE 설비 OEE 조회
// GET /api/v1/mes/equipment/:id/oee?window=7
func (h *EquipmentHandler) OEE(c *gin.Context) {
	window := service.DefaultOEEWindow
	if w := c.Query("window"); w != "" {
		if v, err := strconv.Atoi(w); err == nil && v > 0 {
			window = v
		}
	}

	result, err := h.svc.OEE(c.Request.Context(), c.Param("id"), window)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Success(c, result)
}
