package shipment_eta

import (
	"time"
)

const (
	lightShipmentMaxGrams  = 5_000
	mediumShipmentMaxGrams = 20_000
)

type EstimatedDeliveryFactory struct{}

func New() *EstimatedDeliveryFactory {
	return &EstimatedDeliveryFactory{}
}

func (f *EstimatedDeliveryFactory) CalculateEstimatedDelivery(totalWeightGrams int64, baseTime time.Time) time.Time {
	switch {
	case totalWeightGrams <= lightShipmentMaxGrams:
		return baseTime.Add(7 * 24 * time.Hour)
	case totalWeightGrams <= mediumShipmentMaxGrams:
		return baseTime.Add(10 * 24 * time.Hour)
	default:
		return baseTime.Add(14 * 24 * time.Hour)
	}
}
