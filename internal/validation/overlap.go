package validation

import (
	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/pkg/utils"
)

type assignedWindow struct {
	index  int
	point  domain.Point
	window utils.TimeWindow
}

// checkOverlaps reports every pair of points assigned to the same vehicle whose
// service windows overlap. The pairwise scan is O(k²) per vehicle; k stays in the
// tens in practice, so an interval tree would not pay for itself.
func checkOverlaps(c *collector, points []domain.Point, vehicles []domain.Vehicle) {
	byVehicle := make(map[string][]assignedWindow)
	known := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		known[v.ID] = true
	}

	for i, p := range points {
		if p.AssignedVehicleID == "" {
			continue
		}
		if !known[p.AssignedVehicleID] {
			c.warnf(domain.CategoryPoints, pointRef(i, p),
				"%s: atribuído ao veículo %q, que não está entre os veículos selecionados",
				pointLabel(i, p), p.AssignedVehicleID)
			continue
		}
		w, err := pointWindow(p)
		if err != nil || w.Start >= w.End {
			// already reported by the point validator
			continue
		}
		byVehicle[p.AssignedVehicleID] = append(byVehicle[p.AssignedVehicleID], assignedWindow{index: i, point: p, window: w})
	}

	seen := make(map[string]bool, len(vehicles))
	for vi, v := range vehicles {
		if seen[v.ID] {
			continue
		}
		seen[v.ID] = true

		windows := byVehicle[v.ID]
		for i := 0; i < len(windows); i++ {
			for j := i + 1; j < len(windows); j++ {
				a, b := windows[i], windows[j]
				if !a.window.Overlaps(b.window) {
					continue
				}
				c.errorf(domain.CategoryPoints, vehicleRef(vi, v),
					"%s: janelas de tempo sobrepostas entre %s (%s) e %s (%s)",
					vehicleLabel(vi, v),
					pointLabel(a.index, a.point), a.window,
					pointLabel(b.index, b.point), b.window)
			}
		}
	}
}
