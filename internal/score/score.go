// Package score contains the post ranking calculator.
package score

import (
	"math"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
)

// EventKind is a kind of engagement event which nudges the recent update boost.
type EventKind int

const (
	// EventReact ...
	EventReact EventKind = iota
	// EventComment ...
	EventComment
	// EventShare ...
	EventShare
)

const affinity = 1.0

// Config contains ranking tunables.
type Config struct {
	// DecayExponent is applied as (age_hours+1)^DecayExponent. Historically
	// both 0.5 and 1.2 were in use, it must stay a single configured value.
	DecayExponent float64
	// BaseEngagement is a constant added to the weighted engagement sum.
	BaseEngagement float64
	// MinBoost and MaxBoost clamp the recent update boost.
	MinBoost float64
	MaxBoost float64
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		DecayExponent:  0.5,
		BaseEngagement: 1,
		MinBoost:       0,
		MaxBoost:       5,
	}
}

// Input is an engagement snapshot to be scored.
type Input struct {
	LikesCount    uint32
	CommentsCount uint32
	SharesCount   uint32
	ContentWeight float64
	AgeHours      float64
	UpdateBoost   float64
}

func mediaWeight(k entities.MediaKind) float64 {
	switch k {
	case entities.MediaImage:
		return 1.2
	case entities.MediaVideo:
		return 1.5
	default:
		return 1.0
	}
}

// ContentWeight returns the content composition multiplier for a post's
// media references. An empty composition yields exactly 1.0.
func ContentWeight(refs []entities.MediaKind) float64 {
	base := 1.0
	for _, k := range refs {
		base += mediaWeight(k)
	}

	return base / float64(len(refs)+1)
}

// Calculate returns the ranking score for the given snapshot.
// It is a pure function, the caller is responsible for AgeHours >= 0.
func Calculate(cfg Config, in Input) float64 {
	weighted := float64(in.CommentsCount)*3 + float64(in.LikesCount) + float64(in.SharesCount)*5 + cfg.BaseEngagement
	decay := math.Pow(in.AgeHours+1, cfg.DecayExponent)

	return weighted / decay * affinity * in.ContentWeight * in.UpdateBoost
}

// NextBoost applies a single event step to the recent update boost and clamps
// the result to the configured bounds. Steps are added on create and removed
// on the corresponding delete.
func NextBoost(cfg Config, boost float64, kind EventKind, decrease bool) float64 {
	var step float64
	switch kind {
	case EventComment:
		step = 0.3
	case EventShare:
		step = 0.5
	default:
		step = 0.1
	}

	if decrease {
		boost -= step
	} else {
		boost += step
	}

	return math.Min(math.Max(boost, cfg.MinBoost), cfg.MaxBoost)
}
