package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"go.uber.org/zap"
)

// ShipmentHandler 출하 처리기
type ShipmentHandler struct {
	svc    *service.ShipmentService
	logger *zap.Logger
}

func NewShipmentHandler(svc *service.ShipmentService, logger *zap.Logger) *ShipmentHandler {
	return &ShipmentHandler{svc: svc, logger: logger}
}

// Create 출하 생성
// POST /api/v1/mes/shipments
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req service.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	shipment, err := h.svc.Create(c.Request.Context(), req, GetUserID(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Created(c, shipment)
}

// ListByLot 로트별 출하 목록
// GET /api/v1/mes/lots/:lotNo/shipments
func (h *ShipmentHandler) ListByLot(c *gin.Context) {
	items, err := h.svc.ListByLot(c.Request.Context(), c.Param("lotNo"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Success(c, items)
}
