package domain

import (
	"hash/fnv"
	"math"
	"strings"
)

// CommuteOption is a way of getting to the office, as listed by GET options/.
type CommuteOption struct {
	ID          OptionID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Active      bool     `json:"active"`
}

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Route is the polyline drawn for a commute mode between home and office.
type Route struct {
	Mode   string  `json:"mode"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

var (
	officePoint = Point{Lat: 43.65107, Lng: -79.347015}
	homePoint   = Point{Lat: 43.689, Lng: -79.43}
)

var routes = map[string]Route{
	"transit": {Mode: "transit", Color: "#3b82f6", Points: []Point{homePoint, {43.676, -79.42}, {43.664, -79.39}, officePoint}},
	"drive":   {Mode: "drive", Color: "#ef4444", Points: []Point{homePoint, {43.682, -79.41}, {43.667, -79.37}, officePoint}},
	"carpool": {Mode: "carpool", Color: "#f97316", Points: []Point{homePoint, {43.694, -79.415}, {43.668, -79.38}, officePoint}},
	"bike":    {Mode: "bike", Color: "#22c55e", Points: []Point{homePoint, {43.675, -79.41}, {43.661, -79.38}, officePoint}},
}

// RouteForMode picks the demo polyline for a commute option name.
// Matching is a case-insensitive substring test; unknown names get transit.
func RouteForMode(name string) Route {
	n := strings.ToLower(name)
	key := "transit"
	switch {
	case strings.Contains(n, "bike"), strings.Contains(n, "cycl"):
		key = "bike"
	case strings.Contains(n, "carpool"), strings.Contains(n, "car pool"):
		key = "carpool"
	case strings.Contains(n, "drive"), strings.Contains(n, "car"):
		key = "drive"
	}
	r := routes[key]
	r.Points = append([]Point(nil), r.Points...)
	return r
}

// ClampPercent bounds a progress value to [0, 100]. NaN becomes 0.
func ClampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

var avatarPalette = []string{
	"#0ea5e9", "#22c55e", "#f97316", "#a855f7",
	"#ef4444", "#14b8a6", "#eab308", "#6366f1",
}

// AvatarColor deterministically maps a display name to a palette colour.
func AvatarColor(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return avatarPalette[h.Sum32()%uint32(len(avatarPalette))]
}
