package repository

import (
	"context"
	"time"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"gorm.io/gorm"
)

// WorkOrderRepository 작업지시 저장소
type WorkOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// Create 작업지시 생성
func (r *WorkOrderRepository) Create(ctx context.Context, wo *entity.WorkOrder) error {
	return translateError(r.db.WithContext(ctx).Create(wo).Error)
}

// FindByID ID로 작업지시 조회
func (r *WorkOrderRepository) FindByID(ctx context.Context, id string) (*entity.WorkOrder, error) {
	var wo entity.WorkOrder
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&wo).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &wo, nil
}

// WOListParams 작업지시 목록 조회 조건
type WOListParams struct {
	Status    string
	ProductID string
	Page      int
	PageSize  int
}

// List 작업지시 목록 조회
func (r *WorkOrderRepository) List(ctx context.Context, params WOListParams) ([]entity.WorkOrder, int64, error) {
	var items []entity.WorkOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.WorkOrder{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.ProductID != "" {
		query = query.Where("product_id = ?", params.ProductID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.PageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(params.PageSize).
		Find(&items).Error

	return items, total, err
}

// TransitionStatus 상태 compare-and-set.
// 저장된 상태가 from 과 다르면 아무것도 갱신하지 않고 ErrConflict 를 돌려준다.
func (r *WorkOrderRepository) TransitionStatus(ctx context.Context, id, from, to string) error {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	now := time.Now()
	switch to {
	case entity.WOStatusInProgress:
		updates["actual_start"] = &now
	case entity.WOStatusCompleted:
		updates["actual_end"] = &now
	}

	result := r.db.WithContext(ctx).
		Model(&entity.WorkOrder{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// 존재하지 않거나 그 사이 다른 호출자가 상태를 바꾼 경우
		var count int64
		r.db.WithContext(ctx).Model(&entity.WorkOrder{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}
	return nil
}
