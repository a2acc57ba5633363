package repository

import (
	"context"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"gorm.io/gorm"
)

// SpcRepository SPC 측정값 저장소
type SpcRepository struct {
	db *gorm.DB
}

func NewSpcRepository(db *gorm.DB) *SpcRepository {
	return &SpcRepository{db: db}
}

// Create 측정값 추가
func (r *SpcRepository) Create(ctx context.Context, m *entity.SpcMeasurement) error {
	return translateError(r.db.WithContext(ctx).Create(m).Error)
}

// FindByKey (작업지시, 특성) 단위 측정값 전체 (군번호, 측정시각 오름차순)
func (r *SpcRepository) FindByKey(ctx context.Context, workOrderID, characteristic string) ([]entity.SpcMeasurement, error) {
	var items []entity.SpcMeasurement
	err := r.db.WithContext(ctx).
		Where("work_order_id = ? AND characteristic = ?", workOrderID, characteristic).
		Order("subgroup_no ASC, measured_at ASC").
		Find(&items).Error
	return items, err
}
