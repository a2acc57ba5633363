package repository

import (
	"errors"

	"gorm.io/gorm"
)

// 오류 정의
var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("state conflict")   // compare-and-set 실패
	ErrDuplicate  = errors.New("duplicate record")  // 유니크 제약 위반
	ErrForeignKey = errors.New("invalid reference") // 외래키 제약 위반
)

// Repositories 저장소 집합
type Repositories struct {
	WorkOrder  *WorkOrderRepository
	Equipment  *EquipmentRepository
	Production *ProductionRepository
	Lot        *LotRepository
	Spc        *SpcRepository
	Inspection *InspectionRepository
	NCR        *NCRRepository
	Shipment   *ShipmentRepository
}

// NewRepositories 저장소 집합 생성
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		WorkOrder:  NewWorkOrderRepository(db),
		Equipment:  NewEquipmentRepository(db),
		Production: NewProductionRepository(db),
		Lot:        NewLotRepository(db),
		Spc:        NewSpcRepository(db),
		Inspection: NewInspectionRepository(db),
		NCR:        NewNCRRepository(db),
		Shipment:   NewShipmentRepository(db),
	}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrForeignKey
	}
	return err
}
