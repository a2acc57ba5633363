package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"go.uber.org/zap"
)

// ProductionHandler 생산실적 처리기
type ProductionHandler struct {
	svc    *service.ProductionService
	logger *zap.Logger
}

func NewProductionHandler(svc *service.ProductionService, logger *zap.Logger) *ProductionHandler {
	return &ProductionHandler{svc: svc, logger: logger}
}

// Record 생산실적 등록
// POST /api/v1/mes/production-logs
func (h *ProductionHandler) Record(c *gin.Context) {
	var req service.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}
	if req.OperatorID == "" {
		req.OperatorID = GetUserID(c)
	}

	log, err := h.svc.Record(c.Request.Context(), req)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Created(c, log)
}

// ListByWorkOrder 작업지시별 생산실적
// GET /api/v1/mes/work-orders/:id/production-logs
func (h *ProductionHandler) ListByWorkOrder(c *gin.Context) {
	logs, err := h.svc.ListByWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Success(c, logs)
}

// AssignMaterialLot 작업지시 원자재 로트 배정
// POST /api/v1/mes/work-orders/:id/material-lot
func (h *ProductionHandler) AssignMaterialLot(c *gin.Context) {
	var req service.AssignMaterialLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	a, err := h.svc.AssignMaterialLot(c.Request.Context(), c.Param("id"), req, GetUserID(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Created(c, a)
}
