package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"go.uber.org/zap"
)

// TraceHandler 로트 이력추적 처리기
type TraceHandler struct {
	svc    *service.TraceService
	logger *zap.Logger
}

func NewTraceHandler(svc *service.TraceService, logger *zap.Logger) *TraceHandler {
	return &TraceHandler{svc: svc, logger: logger}
}

// Trace 로트 계보 조회
// GET /api/v1/mes/lots/:lotNo/trace
func (h *TraceHandler) Trace(c *gin.Context) {
	trace, err := h.svc.Trace(c.Request.Context(), c.Param("lotNo"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Success(c, trace)
}
