package domain

import "math"

// DefaultMaxRadiusKm is the radius used when a request does not configure one.
const DefaultMaxRadiusKm = 50.0

// Point - collection point submitted for routing
type Point struct {
	ID                string `json:"id" yaml:"id"`
	Name              string `json:"name" yaml:"name"`
	Address           string `json:"address,omitempty" yaml:"address"`
	Lat               Number `json:"lat" yaml:"lat"`
	Lng               Number `json:"lng" yaml:"lng"`
	Weight            Number `json:"weight" yaml:"weight"`     // kg
	Volume            Number `json:"volume" yaml:"volume"`     // m³
	Quantity          Number `json:"quantity" yaml:"quantity"` // items, defaults to 1
	TimeWindowStart   string `json:"time_window_start" yaml:"time_window_start"`
	TimeWindowEnd     string `json:"time_window_end" yaml:"time_window_end"`
	AssignedVehicleID string `json:"assigned_vehicle_id,omitempty" yaml:"assigned_vehicle_id"`
	ServiceTime       int    `json:"service_time,omitempty" yaml:"service_time"` // minutes
	Priority          int    `json:"priority,omitempty" yaml:"priority"`
}

// Vehicle - vehicle available for the routing run
type Vehicle struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Capacity       Number `json:"capacity" yaml:"capacity"`               // kg
	MaxWeight      Number `json:"max_weight" yaml:"max_weight"`           // kg
	VolumeCapacity Number `json:"volume_capacity" yaml:"volume_capacity"` // m³
	StartTime      string `json:"start_time,omitempty" yaml:"start_time"`
	EndTime        string `json:"end_time,omitempty" yaml:"end_time"`
	Speed          Number `json:"speed,omitempty" yaml:"speed"` // km/h
	Length         Number `json:"length,omitempty" yaml:"length"`
	Width          Number `json:"width,omitempty" yaml:"width"`
	Height         Number `json:"height,omitempty" yaml:"height"`
}

// StartPoint - depot where every route starts
type StartPoint struct {
	Lat     Number `json:"lat" yaml:"lat"`
	Lng     Number `json:"lng" yaml:"lng"`
	Address string `json:"address,omitempty" yaml:"address"`
}

// Coordinates returns the parsed coordinates and whether they form a valid position.
func (s *StartPoint) Coordinates() (lat, lng float64, ok bool) {
	if s == nil {
		return 0, 0, false
	}
	return parseCoordinates(s.Lat, s.Lng)
}

// Coordinates returns the parsed coordinates and whether they form a valid position.
func (p Point) Coordinates() (lat, lng float64, ok bool) {
	return parseCoordinates(p.Lat, p.Lng)
}

func parseCoordinates(latN, lngN Number) (float64, float64, bool) {
	lat, latOK := latN.Float()
	lng, lngOK := lngN.Float()
	if !latOK || !lngOK {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}

// OptimizationOptions - tunables sent along with the request
type OptimizationOptions struct {
	MaxRadiusKm float64 `json:"max_radius_km,omitempty" yaml:"max_radius_km"`
}

// OptimizationRequest - full payload validated before it reaches the optimizer
type OptimizationRequest struct {
	Name        string              `json:"name,omitempty" yaml:"name"`
	Description string              `json:"description,omitempty" yaml:"description"`
	Points      []Point             `json:"points" yaml:"points"`
	Vehicles    []Vehicle           `json:"vehicles" yaml:"vehicles"`
	StartPoint  *StartPoint         `json:"startPoint,omitempty" yaml:"startPoint"`
	Options     OptimizationOptions `json:"options,omitempty" yaml:"options"`
}

// RadiusKm returns the configured radius, or fallback when it is unset or unusable.
func (r OptimizationRequest) RadiusKm(fallback float64) float64 {
	radius := r.Options.MaxRadiusKm
	if radius > 0 && !math.IsInf(radius, 0) && !math.IsNaN(radius) {
		return radius
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultMaxRadiusKm
}
