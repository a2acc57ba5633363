package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
)

// SpcService SPC 서비스
type SpcService struct {
	spcRepo *repository.SpcRepository
	woRepo  *repository.WorkOrderRepository
}

func NewSpcService(spcRepo *repository.SpcRepository, woRepo *repository.WorkOrderRepository) *SpcService {
	return &SpcService{spcRepo: spcRepo, woRepo: woRepo}
}

// IngestRequest 측정값 등록 요청
type IngestRequest struct {
	WorkOrderID    string  `json:"work_order_id" binding:"required"`
	ProcessID      string  `json:"process_id"`
	Characteristic string  `json:"characteristic" binding:"required"`
	SubgroupNo     int     `json:"subgroup_no" binding:"required,gt=0"`
	Value          float64 `json:"value"`
	USL            float64 `json:"usl"`
	LSL            float64 `json:"lsl"`
	Nominal        float64 `json:"nominal"`
	MeasuredAt     string  `json:"measured_at"` // RFC3339
}

// Ingest 측정값 등록 (추가 전용)
func (s *SpcService) Ingest(ctx context.Context, req IngestRequest) (*entity.SpcMeasurement, error) {
	if _, err := s.woRepo.FindByID(ctx, req.WorkOrderID); err != nil {
		return nil, err
	}
	if req.USL != 0 && req.LSL != 0 && req.USL <= req.LSL {
		return nil, validationErrorf("규격 상한이 하한보다 커야 합니다")
	}

	measuredAt := time.Now()
	if t, err := time.Parse(time.RFC3339, req.MeasuredAt); req.MeasuredAt != "" && err == nil {
		measuredAt = t
	}

	m := &entity.SpcMeasurement{
		ID:             uuid.New().String(),
		WorkOrderID:    req.WorkOrderID,
		ProcessID:      req.ProcessID,
		Characteristic: req.Characteristic,
		SubgroupNo:     req.SubgroupNo,
		Value:          req.Value,
		USL:            req.USL,
		LSL:            req.LSL,
		Nominal:        req.Nominal,
		MeasuredAt:     measuredAt,
	}
	if err := s.spcRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Chart (작업지시, 특성) 단위 관리도 조회. 순수 조회.
func (s *SpcService) Chart(ctx context.Context, workOrderID, characteristic string) (*ControlChart, error) {
	if _, err := s.woRepo.FindByID(ctx, workOrderID); err != nil {
		return nil, err
	}
	measurements, err := s.spcRepo.FindByKey(ctx, workOrderID, characteristic)
	if err != nil {
		return nil, err
	}
	return BuildControlChart(characteristic, measurements), nil
}
