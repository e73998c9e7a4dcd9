package booking

import (
	"testing"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

func TestTotalAmount(t *testing.T) {
	cut := models.Service{ID: "svc-cut", Price: 45}
	color := models.Service{ID: "svc-color", Price: 80}

	for _, tc := range []struct {
		name          string
		services      []models.Service
		serviceType   string
		redeemPoints  int
		pointsPerUnit int
		want          float64
	}{
		{"single in-store service", []models.Service{cut}, models.ServiceTypeInStore, 0, 100, 45},
		{"multiple services sum", []models.Service{cut, color}, models.ServiceTypeInStore, 0, 100, 125},
		{"in-home adds surcharge", []models.Service{cut}, models.ServiceTypeInHome, 0, 100, 70},
		{"points discount", []models.Service{cut}, models.ServiceTypeInStore, 500, 100, 40},
		{"discount never goes negative", []models.Service{cut}, models.ServiceTypeInStore, 100000, 100, 0},
		{"zero conversion rate ignores points", []models.Service{cut}, models.ServiceTypeInStore, 500, 0, 45},
		{"no services, in-home", nil, models.ServiceTypeInHome, 0, 100, 25},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := TotalAmount(tc.services, tc.serviceType, 25, tc.redeemPoints, tc.pointsPerUnit)
			if got != tc.want {
				t.Errorf("TotalAmount = %v, want %v", got, tc.want)
			}
		})
	}
}
