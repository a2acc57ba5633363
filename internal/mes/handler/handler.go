package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"go.uber.org/zap"
)

// Handlers MES 처리기 집합
type Handlers struct {
	WorkOrder  *WorkOrderHandler
	Equipment  *EquipmentHandler
	Production *ProductionHandler
	Trace      *TraceHandler
	Spc        *SpcHandler
	Quality    *QualityHandler
	Shipment   *ShipmentHandler
}

// NewHandlers MES 처리기 집합 생성
func NewHandlers(services *service.Services, logger *zap.Logger) *Handlers {
	return &Handlers{
		WorkOrder:  NewWorkOrderHandler(services.WorkOrder, logger),
		Equipment:  NewEquipmentHandler(services.Equipment, logger),
		Production: NewProductionHandler(services.Production, logger),
		Trace:      NewTraceHandler(services.Trace, logger),
		Spc:        NewSpcHandler(services.Spc, logger),
		Quality:    NewQualityHandler(services.Quality, logger),
		Shipment:   NewShipmentHandler(services.Shipment, logger),
	}
}

// === 응답 봉투 ===

// 오류 코드
const (
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeValidationError = "VALIDATION_ERROR"
	CodeForeignKeyError = "FOREIGN_KEY_ERROR"
	CodeDBError         = "DB_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func Paged(c *gin.Context, data interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Meta:    &Meta{Page: page, Limit: limit, Total: total},
	})
}

func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{
		Success: false,
		Error:   &ErrorInfo{Code: code, Message: message},
	})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, CodeValidationError, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, CodeNotFound, message)
}

// RespondError 서비스/저장소 오류를 오류 코드 체계로 변환.
// 분류되지 않는 오류는 내부 상세를 숨기고 서버측 로그에만 남긴다.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		Fail(c, http.StatusBadRequest, CodeValidationError, vErr.Message)
	case errors.Is(err, repository.ErrNotFound):
		Fail(c, http.StatusNotFound, CodeNotFound, "대상을 찾을 수 없습니다")
	case errors.Is(err, repository.ErrConflict):
		Fail(c, http.StatusConflict, CodeConflict, "상태가 이미 변경되었습니다. 다시 조회 후 재시도하세요")
	case errors.Is(err, repository.ErrDuplicate):
		Fail(c, http.StatusConflict, CodeConflict, "이미 존재하는 키입니다")
	case errors.Is(err, repository.ErrForeignKey):
		Fail(c, http.StatusBadRequest, CodeForeignKeyError, "참조 대상이 유효하지 않습니다")
	default:
		logger.Error("Unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		Fail(c, http.StatusInternalServerError, CodeInternalError, "내부 오류가 발생했습니다")
	}
}

func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

func GetPagination(c *gin.Context) (page, limit int) {
	page = 1
	limit = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	return page, limit
}
