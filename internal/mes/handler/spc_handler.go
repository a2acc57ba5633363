package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"go.uber.org/zap"
)

// SpcHandler SPC 처리기
type SpcHandler struct {
	svc    *service.SpcService
	logger *zap.Logger
}

func NewSpcHandler(svc *service.SpcService, logger *zap.Logger) *SpcHandler {
	return &SpcHandler{svc: svc, logger: logger}
}

// Ingest 측정값 등록
// POST /api/v1/mes/spc/measurements
func (h *SpcHandler) Ingest(c *gin.Context) {
	var req service.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	m, err := h.svc.Ingest(c.Request.Context(), req)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Created(c, m)
}

// Chart 관리도 조회
// GET /api/v1/mes/spc/chart?work_order_id=&characteristic=
func (h *SpcHandler) Chart(c *gin.Context) {
	workOrderID := c.Query("work_order_id")
	characteristic := c.Query("characteristic")
	if workOrderID == "" || characteristic == "" {
		BadRequest(c, "work_order_id 와 characteristic 은 필수입니다")
		return
	}

	chart, err := h.svc.Chart(c.Request.Context(), workOrderID, characteristic)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Success(c, chart)
}
