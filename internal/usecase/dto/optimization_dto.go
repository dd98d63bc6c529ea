package dto

import (
	"github.com/collection-routing/internal/domain"
)

// OptimizationRequest - body of the validate and submit endpoints.
// Tags only bound the shape; content checks live in internal/validation.
type OptimizationRequest struct {
	Name        string              `json:"name" validate:"max=200"`
	Description string              `json:"description" validate:"max=2000"`
	Points      []PointDTO          `json:"points" validate:"max=5000,dive"`
	Vehicles    []VehicleDTO        `json:"vehicles" validate:"max=200,dive"`
	StartPoint  *StartPointDTO      `json:"startPoint,omitempty"`
	Options     OptimizationOptions `json:"options"`
}

// PointDTO - collection point
type PointDTO struct {
	ID                string        `json:"id" validate:"max=100"`
	Name              string        `json:"name" validate:"max=200"`
	Address           string        `json:"address" validate:"max=500"`
	Lat               domain.Number `json:"lat" swaggertype:"number"`
	Lng               domain.Number `json:"lng" swaggertype:"number"`
	Weight            domain.Number `json:"weight" swaggertype:"number"`
	Volume            domain.Number `json:"volume" swaggertype:"number"`
	Quantity          domain.Number `json:"quantity" swaggertype:"number"`
	TimeWindowStart   string        `json:"time_window_start" validate:"max=10"`
	TimeWindowEnd     string        `json:"time_window_end" validate:"max=10"`
	AssignedVehicleID string        `json:"assigned_vehicle_id" validate:"max=100"`
	ServiceTime       int           `json:"service_time" validate:"min=0,max=1440"`
	Priority          int           `json:"priority" validate:"min=0,max=100"`
}

// VehicleDTO - vehicle selected for the run
type VehicleDTO struct {
	ID             string        `json:"id" validate:"max=100"`
	Name           string        `json:"name" validate:"max=200"`
	Capacity       domain.Number `json:"capacity" swaggertype:"number"`
	MaxWeight      domain.Number `json:"max_weight" swaggertype:"number"`
	VolumeCapacity domain.Number `json:"volume_capacity" swaggertype:"number"`
	StartTime      string        `json:"start_time" validate:"max=10"`
	EndTime        string        `json:"end_time" validate:"max=10"`
	Speed          domain.Number `json:"speed" swaggertype:"number"`
	Length         domain.Number `json:"length" swaggertype:"number"`
	Width          domain.Number `json:"width" swaggertype:"number"`
	Height         domain.Number `json:"height" swaggertype:"number"`
}

// StartPointDTO - depot
type StartPointDTO struct {
	Lat     domain.Number `json:"lat" swaggertype:"number"`
	Lng     domain.Number `json:"lng" swaggertype:"number"`
	Address string        `json:"address" validate:"max=500"`
}

// OptimizationOptions - per-request tunables
type OptimizationOptions struct {
	MaxRadiusKm float64 `json:"max_radius_km" validate:"omitempty,gt=0,lte=20000"`
}

// RequestDefaults are applied to fields the client left blank
type RequestDefaults struct {
	TimeWindowStart string
	TimeWindowEnd   string
	ServiceTime     int
}

// ToDomain converts the DTO, filling blank time windows and service times from d.
func (r *OptimizationRequest) ToDomain(d RequestDefaults) domain.OptimizationRequest {
	req := domain.OptimizationRequest{
		Name:        r.Name,
		Description: r.Description,
		Points:      make([]domain.Point, len(r.Points)),
		Vehicles:    make([]domain.Vehicle, len(r.Vehicles)),
		Options:     domain.OptimizationOptions{MaxRadiusKm: r.Options.MaxRadiusKm},
	}

	for i, p := range r.Points {
		pt := domain.Point{
			ID:                p.ID,
			Name:              p.Name,
			Address:           p.Address,
			Lat:               p.Lat,
			Lng:               p.Lng,
			Weight:            p.Weight,
			Volume:            p.Volume,
			Quantity:          p.Quantity,
			TimeWindowStart:   p.TimeWindowStart,
			TimeWindowEnd:     p.TimeWindowEnd,
			AssignedVehicleID: p.AssignedVehicleID,
			ServiceTime:       p.ServiceTime,
			Priority:          p.Priority,
		}
		if pt.TimeWindowStart == "" {
			pt.TimeWindowStart = d.TimeWindowStart
		}
		if pt.TimeWindowEnd == "" {
			pt.TimeWindowEnd = d.TimeWindowEnd
		}
		if pt.ServiceTime == 0 {
			pt.ServiceTime = d.ServiceTime
		}
		req.Points[i] = pt
	}

	for i, v := range r.Vehicles {
		req.Vehicles[i] = domain.Vehicle{
			ID:             v.ID,
			Name:           v.Name,
			Capacity:       v.Capacity,
			MaxWeight:      v.MaxWeight,
			VolumeCapacity: v.VolumeCapacity,
			StartTime:      v.StartTime,
			EndTime:        v.EndTime,
			Speed:          v.Speed,
			Length:         v.Length,
			Width:          v.Width,
			Height:         v.Height,
		}
	}

	if r.StartPoint != nil {
		req.StartPoint = &domain.StartPoint{
			Lat:     r.StartPoint.Lat,
			Lng:     r.StartPoint.Lng,
			Address: r.StartPoint.Address,
		}
	}

	return req
}

// ValidationResponse - outcome of a validation pass
type ValidationResponse struct {
	IsValid           bool           `json:"is_valid"`
	Errors            []string       `json:"errors"`
	Warnings          []string       `json:"warnings"`
	Issues            []domain.Issue `json:"issues"`
	FormattedErrors   string         `json:"formatted_errors,omitempty"`
	FormattedWarnings string         `json:"formatted_warnings,omitempty"`
}

// SubmitResponse - acknowledgement of an accepted run
type SubmitResponse struct {
	RequestID string                    `json:"request_id"`
	RunID     string                    `json:"run_id"`
	Status    domain.OptimizationStatus `json:"status"`
	Message   string                    `json:"message,omitempty"`
	Warnings  []string                  `json:"warnings"`
}

// StatusRequest - path parameters of the status endpoint
type StatusRequest struct {
	RequestID string `validate:"required,request_id"`
}
