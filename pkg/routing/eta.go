package routing

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
)

var (
	ErrUnknownTravelMode = errors.New("unknown travel mode")
)

type TravelMode string

const (
	Walking TravelMode = "walking"
	Biking  TravelMode = "biking"
)

func ParseTravelMode(s string) (TravelMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "walk", "walking", "foot":
		return Walking, nil
	case "bike", "biking", "bicycle", "cycling":
		return Biking, nil
	}
	return "", pkg.WrapErrorf(ErrUnknownTravelMode, pkg.ErrBadParamInput, "travel mode %q", s)
}

// Speeds holds the average speed in m/s for each travel mode.
type Speeds map[TravelMode]float64

func DefaultSpeeds() Speeds {
	return Speeds{
		Walking: 1.4,
		Biking:  4.16,
	}
}

type ETA struct {
	Duration time.Duration
	Arrival  time.Time
}

// EstimateETA gives the travel time for distance meters at the speed of mode, and the arrival time from now.
// distance must be the accumulated route length, not the straight line between the endpoints.
func EstimateETA(distance float64, mode TravelMode, speeds Speeds) (ETA, error) {
	return EstimateETAAt(distance, mode, speeds, time.Now())
}

func EstimateETAAt(distance float64, mode TravelMode, speeds Speeds, now time.Time) (ETA, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return ETA{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "distance must be a non-negative number, got %v", distance)
	}
	speed, ok := speeds[mode]
	if !ok {
		return ETA{}, pkg.WrapErrorf(ErrUnknownTravelMode, pkg.ErrBadParamInput, "no speed configured for %q", mode)
	}
	if !(speed > 0) || math.IsInf(speed, 0) {
		return ETA{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "speed for %q must be positive, got %v", mode, speed)
	}

	nanos := distance / speed * float64(time.Second)
	if nanos >= math.MaxInt64 {
		return ETA{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "distance %v m at %v m/s exceeds the maximum travel time", distance, speed)
	}
	duration := time.Duration(nanos)
	return ETA{
		Duration: duration,
		Arrival:  now.Add(duration),
	}, nil
}
