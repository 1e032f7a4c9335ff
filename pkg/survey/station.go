// Package survey holds raw directional survey stations and the quality
// checks applied to them before they feed the trajectory integrator.
package survey

import "time"

// Station is a single directional survey reading taken while drilling.
// Stations are immutable once created; the engine only ever derives from
// them, it never writes back.
type Station struct {
	MeasuredDepth float64 // ft along hole, >= 0
	Inclination   float64 // degrees from vertical, [0,180]
	Azimuth       float64 // degrees from north, [0,360)

	ToolFace    float64 // degrees, optional
	Gamma       float64 // API units, optional
	Vibration   float64 // g, optional
	ToolTemp    float64 // degrees F, valid only when HasToolTemp
	HasToolTemp bool

	Timestamp time.Time
}
