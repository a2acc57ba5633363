package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
)

// ProductionService 생산실적 서비스
type ProductionService struct {
	prodRepo  *repository.ProductionRepository
	woRepo    *repository.WorkOrderRepository
	equipRepo *repository.EquipmentRepository
	lotRepo   *repository.LotRepository
}

func NewProductionService(
	prodRepo *repository.ProductionRepository,
	woRepo *repository.WorkOrderRepository,
	equipRepo *repository.EquipmentRepository,
	lotRepo *repository.LotRepository,
) *ProductionService {
	return &ProductionService{
		prodRepo:  prodRepo,
		woRepo:    woRepo,
		equipRepo: equipRepo,
		lotRepo:   lotRepo,
	}
}

// RecordRequest 생산실적 등록 요청
type RecordRequest struct {
	WorkOrderID string  `json:"work_order_id" binding:"required"`
	ProcessID   string  `json:"process_id" binding:"required"`
	ProcessSeq  int     `json:"process_seq"`
	EquipmentID string  `json:"equipment_id" binding:"required"`
	OperatorID  string  `json:"operator_id" binding:"required"`
	LotNo       string  `json:"lot_no" binding:"required"`
	PlannedQty  float64 `json:"planned_qty"`
	GoodQty     float64 `json:"good_qty"`
	DefectQty   float64 `json:"defect_qty"`
	StartTime   string  `json:"start_time"` // RFC3339
	EndTime     string  `json:"end_time"`
}

// Record 생산실적 등록.
// 검증 순서: 수량 → 로트 중복 → 작업지시 상태 → 설비 상태.
// 통과하면 실적/로트/누적수량이 하나의 트랜잭션으로 기록된다.
func (s *ProductionService) Record(ctx context.Context, req RecordRequest) (*entity.ProductionLog, error) {
	if req.GoodQty < 0 || req.DefectQty < 0 {
		return nil, validationErrorf("수량은 음수가 될 수 없습니다")
	}
	if req.GoodQty+req.DefectQty == 0 {
		// 전량 0 실적은 실제 산출을 나타내지 않으므로 거부
		return nil, validationErrorf("양품과 불량이 모두 0인 실적은 등록할 수 없습니다")
	}

	exists, err := s.prodRepo.LotNoExists(ctx, req.LotNo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicate
	}

	wo, err := s.woRepo.FindByID(ctx, req.WorkOrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, validationErrorf("작업지시가 존재하지 않습니다: %s", req.WorkOrderID)
		}
		return nil, err
	}
	if wo.Status != entity.WOStatusInProgress {
		return nil, validationErrorf("작업지시 상태가 실적 등록을 허용하지 않습니다: %s", wo.Status)
	}

	eq, err := s.equipRepo.FindByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, validationErrorf("설비가 존재하지 않습니다: %s", req.EquipmentID)
		}
		return nil, err
	}
	// stopped 는 허용 (방금 끝난 가동분의 수기 등록)
	if eq.Status == entity.EquipStatusBreakdown || eq.Status == entity.EquipStatusMaintenance {
		return nil, validationErrorf("설비 상태가 실적 등록을 허용하지 않습니다: %s", eq.Status)
	}

	started := time.Now()
	ended := started
	if t, err := time.Parse(time.RFC3339, req.StartTime); req.StartTime != "" && err == nil {
		started = t
	}
	if t, err := time.Parse(time.RFC3339, req.EndTime); req.EndTime != "" && err == nil {
		ended = t
	}
	if ended.Before(started) {
		return nil, validationErrorf("종료 시각이 시작 시각보다 빠릅니다")
	}

	materialLotNo, err := s.lotRepo.ActiveMaterialLot(ctx, req.WorkOrderID)
	if err != nil {
		return nil, err
	}

	log := &entity.ProductionLog{
		ID:          uuid.New().String(),
		WorkOrderID: req.WorkOrderID,
		ProcessID:   req.ProcessID,
		ProcessSeq:  req.ProcessSeq,
		EquipmentID: req.EquipmentID,
		OperatorID:  req.OperatorID,
		LotNo:       req.LotNo,
		PlannedQty:  req.PlannedQty,
		GoodQty:     req.GoodQty,
		DefectQty:   req.DefectQty,
		StartedAt:   started,
		EndedAt:     ended,
	}
	lot := &entity.Lot{
		ID:            uuid.New().String(),
		LotNo:         req.LotNo,
		MaterialLotNo: materialLotNo,
		WorkOrderID:   req.WorkOrderID,
		ProductID:     wo.ProductID,
		Qty:           req.GoodQty,
		Status:        entity.LotStatusWIP,
	}

	if err := s.prodRepo.Record(ctx, log, lot); err != nil {
		return nil, err
	}
	return log, nil
}

// ListByWorkOrder 작업지시별 생산실적
func (s *ProductionService) ListByWorkOrder(ctx context.Context, workOrderID string) ([]entity.ProductionLog, error) {
	if _, err := s.woRepo.FindByID(ctx, workOrderID); err != nil {
		return nil, err
	}
	return s.prodRepo.ListByWorkOrder(ctx, workOrderID)
}

// AssignMaterialLotRequest 원자재 로트 배정 요청
type AssignMaterialLotRequest struct {
	MaterialLotNo string `json:"material_lot_no" binding:"required"`
}

// AssignMaterialLot 작업지시에 투입 원자재 로트 배정
func (s *ProductionService) AssignMaterialLot(ctx context.Context, workOrderID string, req AssignMaterialLotRequest, userID string) (*entity.MaterialLotAssignment, error) {
	if _, err := s.woRepo.FindByID(ctx, workOrderID); err != nil {
		return nil, err
	}
	a := &entity.MaterialLotAssignment{
		ID:            uuid.New().String(),
		WorkOrderID:   workOrderID,
		MaterialLotNo: req.MaterialLotNo,
		Active:        true,
		AssignedBy:    userID,
	}
	if err := s.lotRepo.AssignMaterialLot(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
