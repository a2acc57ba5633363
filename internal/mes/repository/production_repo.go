package repository

import (
	"context"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"gorm.io/gorm"
)

// ProductionRepository 생산실적 저장소
type ProductionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

// Record 생산실적 원자적 등록.
// 실적 삽입 + 로트 삽입 + 작업지시 누적 수량 증분이 한 트랜잭션으로 묶여
// 셋 다 반영되거나 아무것도 반영되지 않는다. 증분은 상대 델타로만 적용하여
// 동시 등록이 서로의 갱신을 잃지 않는다.
func (r *ProductionRepository) Record(ctx context.Context, log *entity.ProductionLog, lot *entity.Lot) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(log).Error; err != nil {
			return err
		}
		if err := tx.Create(lot).Error; err != nil {
			return err
		}
		result := tx.Model(&entity.WorkOrder{}).
			Where("id = ?", log.WorkOrderID).
			Updates(map[string]interface{}{
				"produced_qty": gorm.Expr("produced_qty + ?", log.GoodQty),
				"defect_qty":   gorm.Expr("defect_qty + ?", log.DefectQty),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translateError(err)
}

// LotNoExists 로트 번호 존재 여부
func (r *ProductionRepository) LotNoExists(ctx context.Context, lotNo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ProductionLog{}).
		Where("lot_no = ?", lotNo).
		Count(&count).Error
	return count > 0, err
}

// ListByWorkOrder 작업지시별 생산실적 (공정 순번, 등록 시각 오름차순)
func (r *ProductionRepository) ListByWorkOrder(ctx context.Context, workOrderID string) ([]entity.ProductionLog, error) {
	var logs []entity.ProductionLog
	err := r.db.WithContext(ctx).
		Where("work_order_id = ?", workOrderID).
		Order("process_seq ASC, created_at ASC").
		Find(&logs).Error
	return logs, err
}

// SumByWorkOrder 작업지시별 양품/불량 수량 합계
func (r *ProductionRepository) SumByWorkOrder(ctx context.Context, workOrderID string) (good, defect float64, err error) {
	row := struct {
		Good   float64
		Defect float64
	}{}
	err = r.db.WithContext(ctx).
		Model(&entity.ProductionLog{}).
		Select("COALESCE(SUM(good_qty),0) AS good, COALESCE(SUM(defect_qty),0) AS defect").
		Where("work_order_id = ?", workOrderID).
		Scan(&row).Error
	return row.Good, row.Defect, err
}
