package repository

import (
	"context"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"gorm.io/gorm"
)

// LotRepository 로트 저장소
type LotRepository struct {
	db *gorm.DB
}

func NewLotRepository(db *gorm.DB) *LotRepository {
	return &LotRepository{db: db}
}

// FindByLotNo 로트 번호로 조회
func (r *LotRepository) FindByLotNo(ctx context.Context, lotNo string) (*entity.Lot, error) {
	var lot entity.Lot
	err := r.db.WithContext(ctx).Where("lot_no = ?", lotNo).First(&lot).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &lot, nil
}

// ActiveMaterialLot 작업지시의 활성 원자재 로트 배정 조회.
// 없으면 빈 문자열 (원자재 추적이 없는 작업지시도 허용).
func (r *LotRepository) ActiveMaterialLot(ctx context.Context, workOrderID string) (string, error) {
	var assignment entity.MaterialLotAssignment
	err := r.db.WithContext(ctx).
		Where("work_order_id = ? AND active = ?", workOrderID, true).
		Order("created_at DESC").
		First(&assignment).Error
	if err != nil {
		if translateError(err) == ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return assignment.MaterialLotNo, nil
}

// AssignMaterialLot 원자재 로트 배정. 기존 활성 배정은 비활성화한다.
func (r *LotRepository) AssignMaterialLot(ctx context.Context, a *entity.MaterialLotAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.MaterialLotAssignment{}).
			Where("work_order_id = ? AND active = ?", a.WorkOrderID, true).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Create(a).Error
	})
}
