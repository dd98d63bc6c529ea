package validation

import (
	"math"

	"github.com/collection-routing/internal/domain"
)

// maxItemsPerPoint is the sanity bound behind the implausible-quantity check.
const maxItemsPerPoint = 10

// Totals is the aggregate demand and supply of a request.
type Totals struct {
	DemandWeight float64
	DemandVolume float64
	DemandItems  float64
	SupplyWeight float64
	SupplyVolume float64
}

// Aggregate sums demand over points and supply over vehicles. Unparsable fields
// count as 0 so one bad record does not poison the totals for everyone else;
// the record itself is reported by the field validators.
func Aggregate(points []domain.Point, vehicles []domain.Vehicle) Totals {
	var t Totals
	for _, p := range points {
		t.DemandWeight += math.Max(0, p.Weight.OrZero())
		t.DemandVolume += math.Max(0, p.Volume.OrZero())
		t.DemandItems += math.Max(0, p.Quantity.OrDefault(1))
	}
	for _, v := range vehicles {
		t.SupplyWeight += math.Max(0, v.Capacity.OrZero())
		// vehicles without a declared volume capacity are left out rather than counted as 0
		if vc := v.VolumeCapacity.OrZero(); vc > 0 {
			t.SupplyVolume += vc
		}
	}
	return t
}

func checkCapacity(c *collector, points []domain.Point, vehicles []domain.Vehicle) {
	t := Aggregate(points, vehicles)

	if t.DemandWeight > t.SupplyWeight {
		c.errorf(domain.CategoryCapacity, nil,
			"Peso total dos pontos (%.2f kg) excede a capacidade total dos veículos (%.2f kg)",
			t.DemandWeight, t.SupplyWeight)
	}

	if t.SupplyVolume > 0 && t.DemandVolume > t.SupplyVolume {
		c.errorf(domain.CategoryCapacity, nil,
			"Volume total dos pontos (%.2f m³) excede a capacidade de volume dos veículos (%.2f m³)",
			t.DemandVolume, t.SupplyVolume)
	}

	if t.DemandItems > float64(maxItemsPerPoint*len(points)) {
		c.errorf(domain.CategoryCapacity, nil,
			"Quantidade total de itens (%.0f) parece incorreta para %d ponto(s), verifique a coluna de quantidade",
			t.DemandItems, len(points))
	}
}
