package service

import (
	"context"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
)

// TraceService 로트 이력추적 서비스
type TraceService struct {
	lotRepo      *repository.LotRepository
	prodRepo     *repository.ProductionRepository
	shipmentRepo *repository.ShipmentRepository
}

func NewTraceService(
	lotRepo *repository.LotRepository,
	prodRepo *repository.ProductionRepository,
	shipmentRepo *repository.ShipmentRepository,
) *TraceService {
	return &TraceService{lotRepo: lotRepo, prodRepo: prodRepo, shipmentRepo: shipmentRepo}
}

// LotTrace 로트 계보 조회 결과.
// 상위 원자재 로트 (0..1) → 소속 작업지시의 공정별 생산실적 → 출하 목록.
type LotTrace struct {
	Lot            *entity.Lot            `json:"lot"`
	MaterialLotNo  string                 `json:"material_lot_no,omitempty"`
	ProductionLogs []entity.ProductionLog `json:"production_logs"`
	Shipments      []entity.Shipment      `json:"shipments"`
}

// Trace 로트 이력추적. 부작용 없는 순수 조회이며 새 기록이 추가되기
// 전까지 반복 호출은 동일한 결과를 낸다. 출하가 없는 로트는 빈 목록이지
// 오류가 아니다.
func (s *TraceService) Trace(ctx context.Context, lotNo string) (*LotTrace, error) {
	lot, err := s.lotRepo.FindByLotNo(ctx, lotNo)
	if err != nil {
		return nil, err
	}

	logs, err := s.prodRepo.ListByWorkOrder(ctx, lot.WorkOrderID)
	if err != nil {
		return nil, err
	}

	shipments, err := s.shipmentRepo.ListByLot(ctx, lotNo)
	if err != nil {
		return nil, err
	}
	if shipments == nil {
		shipments = []entity.Shipment{}
	}

	return &LotTrace{
		Lot:            lot,
		MaterialLotNo:  lot.MaterialLotNo,
		ProductionLogs: logs,
		Shipments:      shipments,
	}, nil
}
