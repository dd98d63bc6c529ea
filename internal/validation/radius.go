package validation

import (
	"fmt"
	"strings"

	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/pkg/utils"
)

// maxRadiusListed caps how many offending points the warning names.
const maxRadiusListed = 3

type farPoint struct {
	name   string
	meters float64
}

// checkRadius warns about points farther than radiusKm from the start point.
// Operators may route outliers on purpose, so this never produces errors.
func checkRadius(c *collector, points []domain.Point, startLat, startLng, radiusKm float64) {
	limit := utils.KmToMeters(radiusKm)

	var far []farPoint
	for i, p := range points {
		lat, lng, ok := p.Coordinates()
		if !ok {
			continue
		}
		d := utils.HaversineMeters(startLat, startLng, lat, lng)
		if d > limit {
			far = append(far, farPoint{name: pointName(i, p), meters: d})
		}
	}
	if len(far) == 0 {
		return
	}

	listed := far
	if len(listed) > maxRadiusListed {
		listed = listed[:maxRadiusListed]
	}
	parts := make([]string, len(listed))
	for i, f := range listed {
		parts[i] = fmt.Sprintf("%s (%.1f km)", f.name, f.meters/1000)
	}
	list := strings.Join(parts, ", ")
	if len(far) > maxRadiusListed {
		list += "..."
	}

	c.warnf(domain.CategoryPoints, nil,
		"%d ponto(s) a mais de %s km do ponto de partida: %s",
		len(far), formatKm(radiusKm), list)
}

func formatKm(km float64) string {
	s := fmt.Sprintf("%.1f", km)
	return strings.TrimSuffix(s, ".0")
}
