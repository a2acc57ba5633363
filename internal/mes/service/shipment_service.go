package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
)

// ShipmentService 출하 서비스
type ShipmentService struct {
	shipmentRepo *repository.ShipmentRepository
	lotRepo      *repository.LotRepository
}

func NewShipmentService(shipmentRepo *repository.ShipmentRepository, lotRepo *repository.LotRepository) *ShipmentService {
	return &ShipmentService{shipmentRepo: shipmentRepo, lotRepo: lotRepo}
}

// CreateShipmentRequest 출하 생성 요청
type CreateShipmentRequest struct {
	LotNo string  `json:"lot_no" binding:"required"`
	Qty   float64 `json:"qty" binding:"required,gt=0"`
}

// Create 출하 생성. 한 로트를 여러 출하가 분할 소비할 수 있으며
// 누적 출하 수량이 로트 수량을 넘으면 거부된다.
func (s *ShipmentService) Create(ctx context.Context, req CreateShipmentRequest, userID string) (*entity.Shipment, error) {
	lot, err := s.lotRepo.FindByLotNo(ctx, req.LotNo)
	if err != nil {
		return nil, err
	}
	if lot.Status == entity.LotStatusScrapped {
		return nil, validationErrorf("폐기된 로트는 출하할 수 없습니다: %s", req.LotNo)
	}

	shipment := &entity.Shipment{
		ID:          uuid.New().String(),
		ShipCode:    fmt.Sprintf("SHP-%s-%03d", time.Now().Format("20060102"), time.Now().UnixNano()%1000),
		WorkOrderID: lot.WorkOrderID,
		ProductID:   lot.ProductID,
		LotNo:       req.LotNo,
		Qty:         req.Qty,
		Status:      entity.ShipmentStatusShipped,
		CreatedBy:   userID,
	}

	if err := s.shipmentRepo.CreateAgainstLot(ctx, shipment); err != nil {
		if errors.Is(err, repository.ErrLotOverShipped) {
			return nil, validationErrorf("로트 %s 의 생산 수량을 초과하는 출하입니다", req.LotNo)
		}
		return nil, err
	}
	return shipment, nil
}

// ListByLot 로트별 출하 목록
func (s *ShipmentService) ListByLot(ctx context.Context, lotNo string) ([]entity.Shipment, error) {
	if _, err := s.lotRepo.FindByLotNo(ctx, lotNo); err != nil {
		return nil, err
	}
	return s.shipmentRepo.ListByLot(ctx, lotNo)
}
