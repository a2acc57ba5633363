package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"go.uber.org/zap"
)

// QualityHandler 검사/부적합 처리기
type QualityHandler struct {
	svc    *service.QualityService
	logger *zap.Logger
}

func NewQualityHandler(svc *service.QualityService, logger *zap.Logger) *QualityHandler {
	return &QualityHandler{svc: svc, logger: logger}
}

// CreateInspection 검사 기록 생성
// POST /api/v1/mes/inspections
func (h *QualityHandler) CreateInspection(c *gin.Context) {
	var req service.CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	inspection, err := h.svc.CreateInspection(c.Request.Context(), req, GetUserID(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Created(c, inspection)
}

// ListInspections 검사 목록
// GET /api/v1/mes/inspections?work_order_id=&result=&type=&lot_no=
func (h *QualityHandler) ListInspections(c *gin.Context) {
	page, limit := GetPagination(c)
	filters := map[string]string{
		"work_order_id": c.Query("work_order_id"),
		"result":        c.Query("result"),
		"type":          c.Query("type"),
		"lot_no":        c.Query("lot_no"),
	}

	items, total, err := h.svc.ListInspections(c.Request.Context(), page, limit, filters)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Paged(c, items, page, limit, total)
}

// CreateNCR 부적합 보고서 생성
// POST /api/v1/mes/ncrs
func (h *QualityHandler) CreateNCR(c *gin.Context) {
	var req service.CreateNCRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	ncr, err := h.svc.CreateNCR(c.Request.Context(), req, GetUserID(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Created(c, ncr)
}

// GetNCR NCR 상세
// GET /api/v1/mes/ncrs/:id
func (h *QualityHandler) GetNCR(c *gin.Context) {
	ncr, err := h.svc.GetNCR(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Success(c, ncr)
}

// ListNCRs NCR 목록
// GET /api/v1/mes/ncrs?status=
func (h *QualityHandler) ListNCRs(c *gin.Context) {
	page, limit := GetPagination(c)
	items, total, err := h.svc.ListNCRs(c.Request.Context(), page, limit, c.Query("status"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Paged(c, items, page, limit, total)
}

// TransitionNCR NCR 상태 전이
// PATCH /api/v1/mes/ncrs/:id
func (h *QualityHandler) TransitionNCR(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식 오류: "+err.Error())
		return
	}

	ncr, err := h.svc.TransitionNCR(c.Request.Context(), c.Param("id"), req.Status, GetUserID(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}
	Success(c, ncr)
}
