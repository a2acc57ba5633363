package repository

import (
	"context"
	"errors"
	"time"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"gorm.io/gorm"
)

// ErrLotOverShipped 로트 생산 수량을 초과하는 출하
var ErrLotOverShipped = errors.New("lot quantity exceeded")

// ShipmentRepository 출하 저장소
type ShipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

// CreateAgainstLot 로트 수량 검증과 함께 출하 생성.
// 기출하 합계 + 신규 수량이 로트 수량을 넘으면 ErrLotOverShipped.
// 합계 조회와 삽입이 같은 트랜잭션 안에서 수행된다.
func (r *ShipmentRepository) CreateAgainstLot(ctx context.Context, shipment *entity.Shipment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lot entity.Lot
		if err := tx.Where("lot_no = ?", shipment.LotNo).First(&lot).Error; err != nil {
			return err
		}

		var shipped float64
		if err := tx.Model(&entity.Shipment{}).
			Select("COALESCE(SUM(qty),0)").
			Where("lot_no = ?", shipment.LotNo).
			Scan(&shipped).Error; err != nil {
			return err
		}
		if shipped+shipment.Qty > lot.Qty {
			return ErrLotOverShipped
		}

		if err := tx.Create(shipment).Error; err != nil {
			return err
		}

		// 로트가 전량 소진되면 shipped 로 전환
		if shipped+shipment.Qty == lot.Qty {
			if err := tx.Model(&entity.Lot{}).
				Where("lot_no = ? AND status = ?", shipment.LotNo, entity.LotStatusWIP).
				Updates(map[string]interface{}{
					"status":     entity.LotStatusShipped,
					"updated_at": time.Now(),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err)
}

// ListByLot 로트별 출하 목록 (생성 시각 오름차순)
func (r *ShipmentRepository) ListByLot(ctx context.Context, lotNo string) ([]entity.Shipment, error) {
	var items []entity.Shipment
	err := r.db.WithContext(ctx).
		Where("lot_no = ?", lotNo).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
