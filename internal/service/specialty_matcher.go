package service

import (
	"strings"

	"github.com/gds-saude/gds-api/internal/models"
)

// MatchLevel grades how well a demand specialty fits a room's preferred
// specialty.
type MatchLevel int

const (
	MatchNone MatchLevel = iota
	MatchPartial
	MatchExact
)

// SpecialtyMatcher compares the specialty of a demand item against a room's
// affinity. Canonicalization is best-effort upstream, so two implementations
// exist: one keyed on canonical ids, one on raw labels.
type SpecialtyMatcher interface {
	Match(demand models.SpecialtyDemand, room models.RoomSupply) MatchLevel
}

// matcherFor selects the comparison path per record pair: canonical ids when
// both sides carry one, raw labels otherwise.
func matcherFor(demand models.SpecialtyDemand, room models.RoomSupply) SpecialtyMatcher {
	if demand.SpecialtyID != nil && room.SpecialtyID != nil {
		return canonicalMatcher{}
	}
	return labelMatcher{}
}

// canonicalMatcher equates canonical ids; unequal ids can still rank as a
// partial match when the raw labels overlap (e.g. a paediatric sub-specialty
// hosted by its parent specialty's rooms).
type canonicalMatcher struct{}

func (canonicalMatcher) Match(demand models.SpecialtyDemand, room models.RoomSupply) MatchLevel {
	if demand.SpecialtyID != nil && room.SpecialtyID != nil && *demand.SpecialtyID == *room.SpecialtyID {
		return MatchExact
	}
	if labelContains(room.PreferredSpecialty, demand.Specialty) {
		return MatchPartial
	}
	return MatchNone
}

// labelMatcher falls back to case-insensitive comparison on the raw labels.
type labelMatcher struct{}

func (labelMatcher) Match(demand models.SpecialtyDemand, room models.RoomSupply) MatchLevel {
	demandLabel := normalizeLabel(demand.Specialty)
	roomLabel := normalizeLabel(room.PreferredSpecialty)
	if demandLabel == "" || roomLabel == "" {
		return MatchNone
	}
	if demandLabel == roomLabel {
		return MatchExact
	}
	if strings.Contains(roomLabel, demandLabel) {
		return MatchPartial
	}
	return MatchNone
}

func labelContains(haystack, needle string) bool {
	haystack = normalizeLabel(haystack)
	needle = normalizeLabel(needle)
	if haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(haystack, needle)
}

func normalizeLabel(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
