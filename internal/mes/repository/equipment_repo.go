package repository

import (
	"context"
	"time"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"gorm.io/gorm"
)

// EquipmentRepository 설비 저장소
type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create 설비 등록
func (r *EquipmentRepository) Create(ctx context.Context, eq *entity.Equipment) error {
	return translateError(r.db.WithContext(ctx).Create(eq).Error)
}

// FindByID ID로 설비 조회
func (r *EquipmentRepository) FindByID(ctx context.Context, id string) (*entity.Equipment, error) {
	var eq entity.Equipment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&eq).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &eq, nil
}

// List 설비 목록 조회
func (r *EquipmentRepository) List(ctx context.Context, status string, page, pageSize int) ([]entity.Equipment, int64, error) {
	var items []entity.Equipment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Equipment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("equip_code").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// TransitionStatus 설비 상태 compare-and-set
func (r *EquipmentRepository) TransitionStatus(ctx context.Context, id, from, to string) error {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if to == entity.EquipStatusRunning && from == entity.EquipStatusMaintenance {
		// 보전 완료 시점 기록
		now := time.Now()
		updates["last_pm_date"] = &now
	}

	result := r.db.WithContext(ctx).
		Model(&entity.Equipment{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		r.db.WithContext(ctx).Model(&entity.Equipment{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}
	return nil
}

// CreateLog 가동 실적 추가. 설비/일자/교대 중복은 ErrDuplicate.
func (r *EquipmentRepository) CreateLog(ctx context.Context, log *entity.EquipmentLog) error {
	return translateError(r.db.WithContext(ctx).Create(log).Error)
}

// RecentLogs 최근 N개 가동 실적 (일자 내림차순)
func (r *EquipmentRepository) RecentLogs(ctx context.Context, equipmentID string, n int) ([]entity.EquipmentLog, error) {
	var logs []entity.EquipmentLog
	err := r.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("log_date DESC, shift DESC").
		Limit(n).
		Find(&logs).Error
	return logs, err
}
