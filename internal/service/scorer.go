package service

import (
	"strings"

	"github.com/gds-saude/gds-api/internal/models"
	"github.com/gds-saude/gds-api/pkg/config"
)

// Scorer computes the compatibility score for one (demand, room) candidate
// pair. The integer magnitude encodes rule priority: maintenance/restricted
// rejection dominates accessibility, which dominates zone and name-match
// bonuses, which dominate the generic invasion penalty. Rule order is fixed;
// terminal rules short-circuit, the rest accumulate.
type Scorer struct {
	cfg config.ScoringConfig
}

// NewScorer builds a scorer from the configured magnitudes.
func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score evaluates demand against room given the specialty's preferred zone
// (nil when unknown).
func (s *Scorer) Score(demand models.SpecialtyDemand, room models.RoomSupply, zone *models.Zone) int {
	if room.Maintenance {
		return s.cfg.RejectScore
	}

	if demand.Unmapped() {
		if room.Unmapped() {
			return s.cfg.UnmappedMatchBonus
		}
		return s.cfg.UnmappedPenalty
	}

	level := matcherFor(demand, room).Match(demand, room)

	if room.Restricted() {
		if level == MatchExact {
			return s.cfg.RestrictedBonus
		}
		return s.cfg.RejectScore
	}

	score := 0
	switch level {
	case MatchExact:
		score += s.cfg.ExactMatchBonus
	case MatchPartial:
		score += s.cfg.PartialMatchBonus
	}

	if zone != nil {
		switch {
		case zone.Block == room.Block && zone.Floor == room.Floor:
			score += s.cfg.ZoneExactBonus
		case zone.Block == room.Block:
			score += s.cfg.ZoneBlockBonus
		default:
			score += s.cfg.ZoneMissPenalty
		}
	}

	if s.IsMobilitySensitive(demand.Specialty) {
		if room.GroundFloor() {
			score += s.cfg.GroundFloorBonus
		} else {
			score += s.cfg.UpperFloorPenalty
		}
	}

	if s.IsVisionClass(demand.Specialty) && !s.IsVisionClass(room.PreferredSpecialty) {
		score += s.cfg.VisionMismatchPenalty
	}

	if level == MatchNone {
		score += s.cfg.InvasionPenalty
	}

	return score
}

// AcceptThreshold is the minimum score at which a placement is created.
func (s *Scorer) AcceptThreshold() int {
	return s.cfg.AcceptThreshold
}

// RejectScore is the terminal sentinel for unusable rooms.
func (s *Scorer) RejectScore() int {
	return s.cfg.RejectScore
}

// IsMobilitySensitive reports whether the specialty serves patients with
// reduced mobility and therefore needs a ground-floor room.
func (s *Scorer) IsMobilitySensitive(specialty string) bool {
	return specialtyInClass(specialty, s.cfg.MobilitySpecialties)
}

// IsVisionClass reports whether the specialty needs an ophthalmic room.
func (s *Scorer) IsVisionClass(specialty string) bool {
	return specialtyInClass(specialty, s.cfg.VisionSpecialties)
}

// IsHighPriority reports whether the specialty belongs to the configured
// high-priority class.
func (s *Scorer) IsHighPriority(specialty string) bool {
	return specialtyInClass(specialty, s.cfg.HighPrioritySpecialties)
}

func specialtyInClass(specialty string, keywords []string) bool {
	label := normalizeLabel(specialty)
	if label == "" {
		return false
	}
	for _, keyword := range keywords {
		if keyword = normalizeLabel(keyword); keyword != "" && strings.Contains(label, keyword) {
			return true
		}
	}
	return false
}
