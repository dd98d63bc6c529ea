package optimizer

import (
	"github.com/collection-routing/internal/domain"
)

// Defaults fill fields the optimizer requires but a request may omit.
type Defaults struct {
	WindowStart string
	WindowEnd   string
	ServiceTime int
}

type vehiclePayload struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Capacity       float64 `json:"capacity"`
	MaxWeight      float64 `json:"max_weight"`
	VolumeCapacity float64 `json:"volume_capacity"`
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Speed          float64 `json:"speed"`
}

type pointPayload struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	Order           int     `json:"order"`
	Quantity        int     `json:"quantity"`
	Weight          float64 `json:"weight"`
	Volume          float64 `json:"volume"`
	TimeWindowStart string  `json:"time_window_start"`
	TimeWindowEnd   string  `json:"time_window_end"`
	ServiceTime     int     `json:"service_time"`
	Priority        int     `json:"priority"`
}

type optionsPayload struct {
	MaxRadiusKm float64 `json:"max_radius_km"`
}

type requestPayload struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Vehicles    []vehiclePayload `json:"vehicles"`
	Points      []pointPayload   `json:"points"`
	Options     optionsPayload   `json:"options"`
}

const (
	pointTypeStart  = "start"
	pointTypePickup = "pickup"
)

// buildPayload converts a validated request into the optimizer's wire format.
// The start point, when present, goes first as the depot.
func buildPayload(req *domain.OptimizationRequest, d Defaults, radiusKm float64) requestPayload {
	p := requestPayload{
		Name:        req.Name,
		Description: req.Description,
		Vehicles:    make([]vehiclePayload, 0, len(req.Vehicles)),
		Points:      make([]pointPayload, 0, len(req.Points)+1),
		Options:     optionsPayload{MaxRadiusKm: req.RadiusKm(radiusKm)},
	}

	for _, v := range req.Vehicles {
		p.Vehicles = append(p.Vehicles, vehiclePayload{
			ID:             v.ID,
			Name:           v.Name,
			Capacity:       v.Capacity.OrZero(),
			MaxWeight:      v.MaxWeight.OrDefault(v.Capacity.OrZero()),
			VolumeCapacity: v.VolumeCapacity.OrZero(),
			Length:         v.Length.OrZero(),
			Width:          v.Width.OrZero(),
			Height:         v.Height.OrZero(),
			StartTime:      orDefault(v.StartTime, d.WindowStart),
			EndTime:        orDefault(v.EndTime, d.WindowEnd),
			Speed:          v.Speed.OrZero(),
		})
	}

	if lat, lng, ok := req.StartPoint.Coordinates(); ok {
		p.Points = append(p.Points, pointPayload{
			ID:              "start",
			Type:            pointTypeStart,
			Name:            "Ponto de partida",
			Address:         req.StartPoint.Address,
			Lat:             lat,
			Lng:             lng,
			TimeWindowStart: d.WindowStart,
			TimeWindowEnd:   d.WindowEnd,
		})
	}

	for i, pt := range req.Points {
		lat, lng, _ := pt.Coordinates()
		serviceTime := pt.ServiceTime
		if serviceTime <= 0 {
			serviceTime = d.ServiceTime
		}
		p.Points = append(p.Points, pointPayload{
			ID:              pt.ID,
			Type:            pointTypePickup,
			Name:            pt.Name,
			Address:         pt.Address,
			Lat:             lat,
			Lng:             lng,
			Order:           i + 1,
			Quantity:        int(pt.Quantity.OrDefault(1)),
			Weight:          pt.Weight.OrZero(),
			Volume:          pt.Volume.OrZero(),
			TimeWindowStart: orDefault(pt.TimeWindowStart, d.WindowStart),
			TimeWindowEnd:   orDefault(pt.TimeWindowEnd, d.WindowEnd),
			ServiceTime:     serviceTime,
			Priority:        pt.Priority,
		})
	}

	return p
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
