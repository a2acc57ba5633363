package service

import (
	"github.com/redis/go-redis/v9"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
)

// Services 서비스 집합
type Services struct {
	WorkOrder  *WorkOrderService
	Equipment  *EquipmentService
	Production *ProductionService
	Trace      *TraceService
	Spc        *SpcService
	Quality    *QualityService
	Shipment   *ShipmentService
}

// NewServices 서비스 집합 생성. rdb 는 nil 허용 (캐시 없이 동작).
func NewServices(repos *repository.Repositories, rdb *redis.Client) *Services {
	return &Services{
		WorkOrder:  NewWorkOrderService(repos.WorkOrder, repos.Production),
		Equipment:  NewEquipmentService(repos.Equipment, rdb),
		Production: NewProductionService(repos.Production, repos.WorkOrder, repos.Equipment, repos.Lot),
		Trace:      NewTraceService(repos.Lot, repos.Production, repos.Shipment),
		Spc:        NewSpcService(repos.Spc, repos.WorkOrder),
		Quality:    NewQualityService(repos.Inspection, repos.NCR, repos.WorkOrder),
		Shipment:   NewShipmentService(repos.Shipment, repos.Lot),
	}
}
