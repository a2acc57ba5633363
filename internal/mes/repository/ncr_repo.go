package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"gorm.io/gorm"
)

// NCRRepository 부적합 보고서 저장소
type NCRRepository struct {
	db *gorm.DB
}

func NewNCRRepository(db *gorm.DB) *NCRRepository {
	return &NCRRepository{db: db}
}

// Create NCR 생성
func (r *NCRRepository) Create(ctx context.Context, ncr *entity.Nonconformance) error {
	return translateError(r.db.WithContext(ctx).Create(ncr).Error)
}

// FindByID ID로 NCR 조회
func (r *NCRRepository) FindByID(ctx context.Context, id string) (*entity.Nonconformance, error) {
	var ncr entity.Nonconformance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ncr).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &ncr, nil
}

// List NCR 목록 조회
func (r *NCRRepository) List(ctx context.Context, page, pageSize int, status string) ([]entity.Nonconformance, int64, error) {
	var items []entity.Nonconformance
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Nonconformance{})
	if status != "" {
		query = query.Where("status = ?", status)
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

// TransitionStatus NCR 상태 compare-and-set.
// closed 로의 전이는 승인자와 승인시각을 함께 기록하며, 이미 시각이 찍힌
// 행은 덮어쓰지 않도록 approved_at IS NULL 조건을 건다.
func (r *NCRRepository) TransitionStatus(ctx context.Context, id, from, to, approverID string) error {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}

	query := r.db.WithContext(ctx).
		Model(&entity.Nonconformance{}).
		Where("id = ? AND status = ?", id, from)

	if to == entity.NCRStatusClosed {
		now := time.Now()
		updates["approved_by"] = approverID
		updates["approved_at"] = &now
		query = query.Where("approved_at IS NULL")
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		r.db.WithContext(ctx).Model(&entity.Nonconformance{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}
	return nil
}

// GenerateCode NCR 번호 생성 NCR-{year}-{4자리}
func (r *NCRRepository) GenerateCode(ctx context.Context) (string, error) {
	year := time.Now().Format("2006")
	prefix := fmt.Sprintf("NCR-%s-", year)

	var maxCode string
	err := r.db.WithContext(ctx).
		Model(&entity.Nonconformance{}).
		Select("COALESCE(MAX(ncr_code), '')").
		Where("ncr_code LIKE ?", prefix+"%").
		Scan(&maxCode).Error
	if err != nil {
		return "", err
	}

	var seq int
	if maxCode != "" {
		fmt.Sscanf(maxCode, "NCR-"+year+"-%04d", &seq)
	}
	seq++
	return fmt.Sprintf("NCR-%s-%04d", year, seq), nil
}
