package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
)

// QualityService 검사/부적합 서비스
type QualityService struct {
	inspectionRepo *repository.InspectionRepository
	ncrRepo        *repository.NCRRepository
	woRepo         *repository.WorkOrderRepository
}

func NewQualityService(
	inspectionRepo *repository.InspectionRepository,
	ncrRepo *repository.NCRRepository,
	woRepo *repository.WorkOrderRepository,
) *QualityService {
	return &QualityService{
		inspectionRepo: inspectionRepo,
		ncrRepo:        ncrRepo,
		woRepo:         woRepo,
	}
}

// CreateInspectionRequest 검사 기록 생성 요청
type CreateInspectionRequest struct {
	WorkOrderID string `json:"work_order_id" binding:"required"`
	LotNo       string `json:"lot_no"`
	Type        string `json:"type" binding:"required,oneof=incoming in_process outgoing"`
	SampleQty   int    `json:"sample_qty" binding:"required,gt=0"`
	PassQty     int    `json:"pass_qty"`
	FailQty     int    `json:"fail_qty"`
	InspectedAt string `json:"inspected_at"` // RFC3339
}

// CreateInspection 검사 기록 생성. 불량이 하나라도 있으면 결과는 fail.
func (s *QualityService) CreateInspection(ctx context.Context, req CreateInspectionRequest, inspectorID string) (*entity.Inspection, error) {
	if req.PassQty < 0 || req.FailQty < 0 {
		return nil, validationErrorf("수량은 음수가 될 수 없습니다")
	}
	if req.PassQty+req.FailQty != req.SampleQty {
		return nil, validationErrorf("합격+불합격 수량이 시료 수량과 일치해야 합니다")
	}
	if _, err := s.woRepo.FindByID(ctx, req.WorkOrderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, validationErrorf("작업지시가 존재하지 않습니다: %s", req.WorkOrderID)
		}
		return nil, err
	}

	result := entity.InspectionResultPass
	if req.FailQty > 0 {
		result = entity.InspectionResultFail
	}

	inspectedAt := time.Now()
	if t, err := time.Parse(time.RFC3339, req.InspectedAt); req.InspectedAt != "" && err == nil {
		inspectedAt = t
	}

	inspection := &entity.Inspection{
		ID:          uuid.New().String(),
		WorkOrderID: req.WorkOrderID,
		LotNo:       req.LotNo,
		Type:        req.Type,
		SampleQty:   req.SampleQty,
		PassQty:     req.PassQty,
		FailQty:     req.FailQty,
		Result:      result,
		InspectorID: inspectorID,
		InspectedAt: inspectedAt,
	}
	if err := s.inspectionRepo.Create(ctx, inspection); err != nil {
		return nil, err
	}
	return inspection, nil
}

// ListInspections 검사 목록
func (s *QualityService) ListInspections(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Inspection, int64, error) {
	return s.inspectionRepo.List(ctx, page, pageSize, filters)
}

// CreateNCRRequest NCR 생성 요청
type CreateNCRRequest struct {
	InspectionID string `json:"inspection_id" binding:"required"`
	Disposition  string `json:"disposition"`
}

// CreateNCR 부적합 보고서 생성.
// fail 결과의 검사에 대해서만 생성할 수 있다 — pass 검사에 대한 시도는
// 아무 테이블도 건드리지 않고 ValidationError 로 끝난다.
func (s *QualityService) CreateNCR(ctx context.Context, req CreateNCRRequest, userID string) (*entity.Nonconformance, error) {
	inspection, err := s.inspectionRepo.FindByID(ctx, req.InspectionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, validationErrorf("검사 기록이 존재하지 않습니다: %s", req.InspectionID)
		}
		return nil, err
	}
	if inspection.Result != entity.InspectionResultFail {
		return nil, validationErrorf("합격 검사에 대해서는 NCR 을 생성할 수 없습니다")
	}

	code, err := s.ncrRepo.GenerateCode(ctx)
	if err != nil {
		return nil, err
	}

	ncr := &entity.Nonconformance{
		ID:           uuid.New().String(),
		NCRCode:      code,
		InspectionID: req.InspectionID,
		Disposition:  req.Disposition,
		Status:       entity.NCRStatusOpen,
		CreatedBy:    userID,
	}
	if err := s.ncrRepo.Create(ctx, ncr); err != nil {
		return nil, err
	}
	return ncr, nil
}

// GetNCR NCR 조회
func (s *QualityService) GetNCR(ctx context.Context, id string) (*entity.Nonconformance, error) {
	return s.ncrRepo.FindByID(ctx, id)
}

// ListNCRs NCR 목록
func (s *QualityService) ListNCRs(ctx context.Context, page, pageSize int, status string) ([]entity.Nonconformance, int64, error) {
	return s.ncrRepo.List(ctx, page, pageSize, status)
}

// TransitionNCR NCR 상태 전이. closed 는 종결 상태로 어떤 전이 시도도
// 테이블 검증에서 거부되며 저장된 상태는 변하지 않는다.
func (s *QualityService) TransitionNCR(ctx context.Context, id, nextStatus, userID string) (*entity.Nonconformance, error) {
	ncr, err := s.ncrRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(entity.ValidNCRTransitions, ncr.Status, nextStatus) {
		return nil, validationErrorf("NCR 상태를 %s 에서 %s 로 전이할 수 없습니다", ncr.Status, nextStatus)
	}

	if err := s.ncrRepo.TransitionStatus(ctx, id, ncr.Status, nextStatus, userID); err != nil {
		return nil, err
	}
	return s.ncrRepo.FindByID(ctx, id)
}
