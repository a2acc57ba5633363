package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"go.uber.org/zap"
)

// WorkOrderHandler 작업지시 처리기
type WorkOrderHandler struct {
	svc    *service.WorkOrderService
	logger *zap.Logger
}

func NewWorkOrderHandler(svc *service.WorkOrderService, logger *zap.Logger) *WorkOrderHandler {
	return &WorkOrderHandler{svc: svc, logger: logger}
}

// Create 작업지시 생성
// POST /api/v1/mes/work-orders
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var req service.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	wo, err := h.svc.Create(c.Request.Context(), req, GetUserID(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Created(c, wo)
}

// Get 작업지시 상세
// GET /api/v1/mes/work-orders/:id
func (h *WorkOrderHandler) Get(c *gin.Context) {
	wo, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Success(c, wo)
}

// List 작업지시 목록
// GET /api/v1/mes/work-orders?status=&product_id=&page=&limit=
func (h *WorkOrderHandler) List(c *gin.Context) {
	page, limit := GetPagination(c)
	params := repository.WOListParams{
		Status:    c.Query("status"),
		ProductID: c.Query("product_id"),
		Page:      page,
		PageSize:  limit,
	}

	items, total, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Paged(c, items, page, limit, total)
}

// transitionRequest 상태 전이 요청 본문
type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Transition 작업지시 상태 전이
// PATCH /api/v1/mes/work-orders/:id/status
func (h *WorkOrderHandler) Transition(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	wo, err := h.svc.Transition(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Success(c, wo)
}

// Export 작업지시 엑셀 다운로드
// GET /api/v1/mes/work-orders/export?status=&product_id=
func (h *WorkOrderHandler) Export(c *gin.Context) {
	params := repository.WOListParams{
		Status:    c.Query("status"),
		ProductID: c.Query("product_id"),
	}

	f, err := h.svc.ExportExcel(c.Request.Context(), params)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("work_orders_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("Excel write failed", zap.Error(err))
	}
}
