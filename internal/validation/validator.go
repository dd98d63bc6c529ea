// Package validation checks an optimization request for geometric, temporal and
// volumetric coherence before it is sent to the optimizer.
//
// Every check always runs and findings accumulate; nothing in this package
// returns early, logs or mutates its input, so Validate is safe to call
// concurrently and repeatedly on the same request.
package validation

import (
	"github.com/collection-routing/internal/domain"
)

// Validator carries the radius applied when a request does not set its own.
type Validator struct {
	defaultRadiusKm float64
}

// New creates a Validator. A non-positive radius falls back to domain.DefaultMaxRadiusKm.
func New(defaultRadiusKm float64) *Validator {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = domain.DefaultMaxRadiusKm
	}
	return &Validator{defaultRadiusKm: defaultRadiusKm}
}

// Validate runs a full pass with the package default radius.
func Validate(req domain.OptimizationRequest) domain.ValidationResult {
	return New(domain.DefaultMaxRadiusKm).Validate(req)
}

// Validate runs every check over req and returns the accumulated result.
func (v *Validator) Validate(req domain.OptimizationRequest) domain.ValidationResult {
	c := &collector{}
	requestRef := &domain.EntityRef{Kind: domain.EntityRequest, Index: -1}

	if len(req.Points) == 0 {
		c.errorf(domain.CategoryPoints, requestRef, "Nenhum ponto de coleta informado, adicione ao menos um ponto")
	} else {
		for i, p := range req.Points {
			validatePoint(c, i, p)
		}
	}

	if len(req.Vehicles) == 0 {
		c.errorf(domain.CategoryVehicles, requestRef, "Nenhum veículo selecionado, selecione ao menos um veículo")
	} else {
		for i, veh := range req.Vehicles {
			validateVehicle(c, i, veh)
		}
	}

	startRef := &domain.EntityRef{Kind: domain.EntityStartPoint, Index: -1}
	switch lat, lng, ok := req.StartPoint.Coordinates(); {
	case req.StartPoint == nil:
		c.errorf(domain.CategoryStartPoint, startRef, "Ponto de partida não informado")
	case !ok:
		c.errorf(domain.CategoryStartPoint, startRef,
			"Ponto de partida com coordenadas inválidas (latitude deve estar entre -90 e 90 e longitude entre -180 e 180)")
	default:
		checkRadius(c, req.Points, lat, lng, req.RadiusKm(v.defaultRadiusKm))
	}

	checkOverlaps(c, req.Points, req.Vehicles)
	checkCapacity(c, req.Points, req.Vehicles)

	return c.result()
}
