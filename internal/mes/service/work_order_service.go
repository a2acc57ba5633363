package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
	"github.com/xuri/excelize/v2"
)

// WorkOrderService 작업지시 서비스
type WorkOrderService struct {
	woRepo   *repository.WorkOrderRepository
	prodRepo *repository.ProductionRepository
}

func NewWorkOrderService(woRepo *repository.WorkOrderRepository, prodRepo *repository.ProductionRepository) *WorkOrderService {
	return &WorkOrderService{woRepo: woRepo, prodRepo: prodRepo}
}

// CreateWorkOrderRequest 작업지시 생성 요청
type CreateWorkOrderRequest struct {
	ProductID    string  `json:"product_id" binding:"required"`
	CustomerID   string  `json:"customer_id"`
	PlannedQty   float64 `json:"planned_qty" binding:"required,gt=0"`
	Priority     int     `json:"priority"`
	PlannedStart string  `json:"planned_start"` // YYYY-MM-DD
	PlannedEnd   string  `json:"planned_end"`
	DueDate      string  `json:"due_date"`
}

// Create 작업지시 생성. 항상 draft 로 시작한다.
func (s *WorkOrderService) Create(ctx context.Context, req CreateWorkOrderRequest, userID string) (*entity.WorkOrder, error) {
	code := fmt.Sprintf("WO-%s-%03d", time.Now().Format("20060102"), time.Now().UnixNano()%1000)

	wo := &entity.WorkOrder{
		ID:         uuid.New().String(),
		WOCode:     code,
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		PlannedQty: req.PlannedQty,
		Status:     entity.WOStatusDraft,
		Priority:   req.Priority,
		CreatedBy:  userID,
	}

	if t, err := time.Parse("2006-01-02", req.PlannedStart); req.PlannedStart != "" && err == nil {
		wo.PlannedStart = &t
	}
	if t, err := time.Parse("2006-01-02", req.PlannedEnd); req.PlannedEnd != "" && err == nil {
		wo.PlannedEnd = &t
	}
	if t, err := time.Parse("2006-01-02", req.DueDate); req.DueDate != "" && err == nil {
		wo.DueDate = &t
	}

	if err := s.woRepo.Create(ctx, wo); err != nil {
		return nil, fmt.Errorf("작업지시 생성 실패: %w", err)
	}
	return wo, nil
}

// GetByID 작업지시 조회
func (s *WorkOrderService) GetByID(ctx context.Context, id string) (*entity.WorkOrder, error) {
	return s.woRepo.FindByID(ctx, id)
}

// List 작업지시 목록
func (s *WorkOrderService) List(ctx context.Context, params repository.WOListParams) ([]entity.WorkOrder, int64, error) {
	return s.woRepo.List(ctx, params)
}

// Transition 작업지시 상태 전이.
// 전이 테이블에 없는 간선은 쓰기 전에 ValidationError 로 거부하고,
// 테이블에 있는 간선은 조회 시점 상태를 기대값으로 compare-and-set 한다.
// 그 사이 다른 호출자가 먼저 전이시켰으면 repository.ErrConflict 가 돌아온다.
func (s *WorkOrderService) Transition(ctx context.Context, id, nextStatus string) (*entity.WorkOrder, error) {
	wo, err := s.woRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(entity.ValidWorkOrderTransitions, wo.Status, nextStatus) {
		return nil, validationErrorf("작업지시 상태를 %s 에서 %s 로 전이할 수 없습니다", wo.Status, nextStatus)
	}

	if err := s.woRepo.TransitionStatus(ctx, id, wo.Status, nextStatus); err != nil {
		return nil, err
	}
	return s.woRepo.FindByID(ctx, id)
}

// ExportExcel 작업지시 목록 엑셀 생성
func (s *WorkOrderService) ExportExcel(ctx context.Context, params repository.WOListParams) (*excelize.File, error) {
	params.Page = 1
	params.PageSize = 10000
	items, _, err := s.woRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "WorkOrders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"작업지시번호", "제품", "계획수량", "생산수량", "불량수량", "상태", "우선순위", "납기", "등록일"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, wo := range items {
		due := ""
		if wo.DueDate != nil {
			due = wo.DueDate.Format("2006-01-02")
		}
		values := []interface{}{
			wo.WOCode, wo.ProductID, wo.PlannedQty, wo.ProducedQty, wo.DefectQty,
			wo.Status, wo.Priority, due, wo.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return f, nil
}
