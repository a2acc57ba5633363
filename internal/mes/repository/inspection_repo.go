package repository

import (
	"context"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"gorm.io/gorm"
)

// InspectionRepository 검사 저장소
type InspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

// Create 검사 기록 생성
func (r *InspectionRepository) Create(ctx context.Context, inspection *entity.Inspection) error {
	return translateError(r.db.WithContext(ctx).Create(inspection).Error)
}

// FindByID ID로 검사 조회
func (r *InspectionRepository) FindByID(ctx context.Context, id string) (*entity.Inspection, error) {
	var inspection entity.Inspection
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&inspection).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &inspection, nil
}

// List 검사 목록 조회
func (r *InspectionRepository) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Inspection, int64, error) {
	var items []entity.Inspection
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Inspection{})
	if workOrderID := filters["work_order_id"]; workOrderID != "" {
		query = query.Where("work_order_id = ?", workOrderID)
	}
	if result := filters["result"]; result != "" {
		query = query.Where("result = ?", result)
	}
	if insType := filters["type"]; insType != "" {
		query = query.Where("type = ?", insType)
	}
	if lotNo := filters["lot_no"]; lotNo != "" {
		query = query.Where("lot_no = ?", lotNo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}
