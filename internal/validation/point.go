package validation

import (
	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/pkg/utils"
)

// validatePoint runs the per-point field checks. Each check is independent.
func validatePoint(c *collector, i int, p domain.Point) {
	ref := pointRef(i, p)
	label := pointLabel(i, p)

	if _, _, ok := p.Coordinates(); !ok {
		c.errorf(domain.CategoryPoints, ref,
			"%s: coordenadas inválidas (latitude deve estar entre -90 e 90 e longitude entre -180 e 180)", label)
	}

	if !nonNegative(p.Weight) {
		c.errorf(domain.CategoryPoints, ref, "%s: peso inválido (%s), informe um número maior ou igual a 0", label, describe(p.Weight))
	}
	if !nonNegative(p.Volume) {
		c.errorf(domain.CategoryPoints, ref, "%s: volume inválido (%s), informe um número maior ou igual a 0", label, describe(p.Volume))
	}

	window, err := pointWindow(p)
	switch {
	case err != nil:
		c.errorf(domain.CategoryPoints, ref,
			"%s: formato de horário inválido na janela de tempo (%q - %q), use HH:MM", label, p.TimeWindowStart, p.TimeWindowEnd)
	case window.Start >= window.End:
		c.errorf(domain.CategoryPoints, ref,
			"%s: janela de tempo inválida, o início (%s) deve ser anterior ao fim (%s)",
			label, utils.FormatClock(window.Start), utils.FormatClock(window.End))
	}
}

// nonNegative accepts absent values and numbers >= 0.
func nonNegative(n domain.Number) bool {
	if !n.IsSet() {
		return true
	}
	f, ok := n.Float()
	return ok && f >= 0
}

// pointWindow parses both bounds of a point's time window.
func pointWindow(p domain.Point) (utils.TimeWindow, error) {
	start, err := utils.ParseClock(p.TimeWindowStart)
	if err != nil {
		return utils.TimeWindow{}, err
	}
	end, err := utils.ParseClock(p.TimeWindowEnd)
	if err != nil {
		return utils.TimeWindow{}, err
	}
	return utils.TimeWindow{Start: start, End: end}, nil
}
