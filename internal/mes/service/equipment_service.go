package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
)

// DefaultOEEWindow OEE 기본 계산 윈도우 (최근 실적 수)
const DefaultOEEWindow = 7

// oeeCacheTTL 설비 상세 화면이 연타로 조회되는 것을 흡수하는 수준의 짧은 TTL
const oeeCacheTTL = 30 * time.Second

// EquipmentService 설비 서비스
type EquipmentService struct {
	equipRepo *repository.EquipmentRepository
	rdb       *redis.Client
}

func NewEquipmentService(equipRepo *repository.EquipmentRepository, rdb *redis.Client) *EquipmentService {
	return &EquipmentService{equipRepo: equipRepo, rdb: rdb}
}

// CreateEquipmentRequest 설비 등록 요청
type CreateEquipmentRequest struct {
	EquipCode   string `json:"equip_code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PMCycleDays int    `json:"pm_cycle_days"`
}

// Create 설비 등록. 초기 상태는 stopped.
func (s *EquipmentService) Create(ctx context.Context, req CreateEquipmentRequest) (*entity.Equipment, error) {
	eq := &entity.Equipment{
		ID:          uuid.New().String(),
		EquipCode:   req.EquipCode,
		Name:        req.Name,
		Status:      entity.EquipStatusStopped,
		PMCycleDays: req.PMCycleDays,
	}
	if err := s.equipRepo.Create(ctx, eq); err != nil {
		return nil, fmt.Errorf("설비 등록 실패: %w", err)
	}
	return eq, nil
}

// GetByID 설비 조회
func (s *EquipmentService) GetByID(ctx context.Context, id string) (*entity.Equipment, error) {
	return s.equipRepo.FindByID(ctx, id)
}

// List 설비 목록
func (s *EquipmentService) List(ctx context.Context, status string, page, pageSize int) ([]entity.Equipment, int64, error) {
	return s.equipRepo.List(ctx, status, page, pageSize)
}

// Transition 설비 상태 전이. 작업지시와 같은 compare-and-set 계약.
func (s *EquipmentService) Transition(ctx context.Context, id, nextStatus string) (*entity.Equipment, error) {
	eq, err := s.equipRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(entity.ValidEquipmentTransitions, eq.Status, nextStatus) {
		return nil, validationErrorf("설비 상태를 %s 에서 %s 로 전이할 수 없습니다", eq.Status, nextStatus)
	}

	if err := s.equipRepo.TransitionStatus(ctx, id, eq.Status, nextStatus); err != nil {
		return nil, err
	}
	s.invalidateOEE(ctx, id)
	return s.equipRepo.FindByID(ctx, id)
}

// AppendLogRequest 가동 실적 등록 요청
type AppendLogRequest struct {
	LogDate        string  `json:"log_date" binding:"required"` // YYYY-MM-DD
	Shift          string  `json:"shift" binding:"required"`    // day/night
	PlannedTimeMin float64 `json:"planned_time_min" binding:"required,gt=0"`
	ActualTimeMin  float64 `json:"actual_time_min"`
	BreakdownMin   float64 `json:"breakdown_min"`
	SetupMin       float64 `json:"setup_min"`
	PlannedQty     float64 `json:"planned_qty"`
	ActualQty      float64 `json:"actual_qty"`
	GoodQty        float64 `json:"good_qty"`
}

// AppendLog 가동 실적 등록. 설비/일자/교대 중복은 충돌로 거부된다.
func (s *EquipmentService) AppendLog(ctx context.Context, equipmentID string, req AppendLogRequest) (*entity.EquipmentLog, error) {
	if _, err := s.equipRepo.FindByID(ctx, equipmentID); err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", req.LogDate); err != nil {
		return nil, validationErrorf("잘못된 일자 형식: %s", req.LogDate)
	}
	if req.BreakdownMin < 0 || req.SetupMin < 0 {
		return nil, validationErrorf("비가동 시간은 음수가 될 수 없습니다")
	}
	if req.GoodQty > req.ActualQty {
		return nil, validationErrorf("양품 수량이 생산 수량을 넘을 수 없습니다")
	}

	log := &entity.EquipmentLog{
		ID:             uuid.New().String(),
		EquipmentID:    equipmentID,
		LogDate:        req.LogDate,
		Shift:          req.Shift,
		PlannedTimeMin: req.PlannedTimeMin,
		ActualTimeMin:  req.ActualTimeMin,
		BreakdownMin:   req.BreakdownMin,
		SetupMin:       req.SetupMin,
		PlannedQty:     req.PlannedQty,
		ActualQty:      req.ActualQty,
		GoodQty:        req.GoodQty,
	}
	if err := s.equipRepo.CreateLog(ctx, log); err != nil {
		return nil, err
	}
	s.invalidateOEE(ctx, equipmentID)
	return log, nil
}

// OEE 설비 OEE 계산. 최근 window 개 실적을 읽어 순수 함수에 넘긴다.
// 짧은 TTL 의 redis 캐시를 앞단에 둔다 (캐시 미적중/장애시 재계산).
func (s *EquipmentService) OEE(ctx context.Context, equipmentID string, window int) (*OEEResult, error) {
	if window <= 0 {
		window = DefaultOEEWindow
	}

	cacheKey := fmt.Sprintf("mes:oee:%s:%d", equipmentID, window)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var result OEEResult
			if json.Unmarshal([]byte(cached), &result) == nil {
				return &result, nil
			}
		}
	}

	if _, err := s.equipRepo.FindByID(ctx, equipmentID); err != nil {
		return nil, err
	}
	logs, err := s.equipRepo.RecentLogs(ctx, equipmentID, window)
	if err != nil {
		return nil, err
	}

	result := ComputeOEE(logs)

	if s.rdb != nil {
		if payload, err := json.Marshal(result); err == nil {
			s.rdb.Set(ctx, cacheKey, payload, oeeCacheTTL)
		}
	}
	return &result, nil
}

func (s *EquipmentService) invalidateOEE(ctx context.Context, equipmentID string) {
	if s.rdb == nil {
		return
	}
	iter := s.rdb.Scan(ctx, 0, fmt.Sprintf("mes:oee:%s:*", equipmentID), 100).Iterator()
	for iter.Next(ctx) {
		s.rdb.Del(ctx, iter.Val())
	}
}
