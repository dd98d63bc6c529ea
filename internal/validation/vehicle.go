package validation

import (
	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/pkg/utils"
)

// validateVehicle checks capacity fields and, when declared, the working shift.
func validateVehicle(c *collector, i int, v domain.Vehicle) {
	ref := vehicleRef(i, v)
	label := vehicleLabel(i, v)

	// A zero-capacity vehicle cannot carry anything, so this is an error, not a warning.
	if capacity, ok := v.Capacity.Float(); !ok || capacity <= 0 {
		c.errorf(domain.CategoryVehicles, ref, "%s: capacidade inválida (%s), deve ser um número maior que 0", label, describe(v.Capacity))
	}
	if !nonNegative(v.MaxWeight) {
		c.errorf(domain.CategoryVehicles, ref, "%s: peso máximo inválido (%s), deve ser um número maior ou igual a 0", label, describe(v.MaxWeight))
	}
	if !nonNegative(v.VolumeCapacity) {
		c.errorf(domain.CategoryVehicles, ref, "%s: capacidade de volume inválida (%s), deve ser um número maior ou igual a 0", label, describe(v.VolumeCapacity))
	}

	if v.StartTime == "" && v.EndTime == "" {
		return
	}
	start, errStart := utils.ParseClock(v.StartTime)
	end, errEnd := utils.ParseClock(v.EndTime)
	switch {
	case errStart != nil || errEnd != nil:
		c.errorf(domain.CategoryVehicles, ref, "%s: formato de horário de jornada inválido (%q - %q), use HH:MM", label, v.StartTime, v.EndTime)
	case start >= end:
		c.errorf(domain.CategoryVehicles, ref, "%s: jornada inválida, o início (%s) deve ser anterior ao fim (%s)",
			label, utils.FormatClock(start), utils.FormatClock(end))
	}
}
