package booking

import "github.com/pallala1989/beauty-plaza-online-hub-sub000/models"

// TotalAmount computes the appointment price: the sum of the selected
// services' prices, plus the fixed in-home surcharge when applicable, minus
// the loyalty-point discount. pointsPerUnit is the configured conversion
// rate (points per currency unit); the result never goes below zero.
func TotalAmount(services []models.Service, serviceType string, inHomeFee float64, redeemPoints, pointsPerUnit int) float64 {
	total := 0.0
	for _, svc := range services {
		total += svc.Price
	}
	if serviceType == models.ServiceTypeInHome {
		total += inHomeFee
	}
	if redeemPoints > 0 && pointsPerUnit > 0 {
		total -= float64(redeemPoints) / float64(pointsPerUnit)
	}
	if total < 0 {
		total = 0
	}
	return total
}
