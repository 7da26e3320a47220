package service

import (
	"sort"
	"strings"

	"github.com/gds-saude/gds-api/internal/models"
)

// PreferredZones derives, per specialty key, the (block, floor) pair hosting
// the most matching rooms. Rooms under maintenance or closed for works are
// skipped. The highest count wins; equal counts resolve to the
// lexicographically smallest (block, floor), so the result does not depend
// on enumeration order.
func PreferredZones(rooms []models.RoomSupply) map[string]models.Zone {
	counts := make(map[string]map[models.Zone]int)
	for _, room := range rooms {
		if room.Maintenance || room.Closed() || room.Unmapped() {
			continue
		}
		key := roomSpecialtyKey(room)
		if counts[key] == nil {
			counts[key] = make(map[models.Zone]int)
		}
		counts[key][room.Zone()]++
	}

	zones := make(map[string]models.Zone, len(counts))
	for key, zoneCounts := range counts {
		candidates := make([]models.Zone, 0, len(zoneCounts))
		for zone := range zoneCounts {
			candidates = append(candidates, zone)
		}
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].Block != candidates[j].Block {
				return candidates[i].Block < candidates[j].Block
			}
			return candidates[i].Floor < candidates[j].Floor
		})

		best := candidates[0]
		for _, zone := range candidates[1:] {
			if zoneCounts[zone] > zoneCounts[best] {
				best = zone
			}
		}
		zones[key] = best
	}
	return zones
}

// roomSpecialtyKey buckets rooms by canonical id when available, raw label
// otherwise.
func roomSpecialtyKey(room models.RoomSupply) string {
	if room.SpecialtyID != nil && *room.SpecialtyID != "" {
		return *room.SpecialtyID
	}
	return normalizeLabel(room.PreferredSpecialty)
}

// demandZone looks up the preferred zone for a demand item, trying its
// canonical id first and its raw label second.
func demandZone(zones map[string]models.Zone, demand models.SpecialtyDemand) *models.Zone {
	if demand.SpecialtyID != nil && *demand.SpecialtyID != "" {
		if zone, ok := zones[*demand.SpecialtyID]; ok {
			return &zone
		}
	}
	label := normalizeLabel(demand.Specialty)
	if label == "" {
		return nil
	}
	if zone, ok := zones[label]; ok {
		return &zone
	}
	// Partial label hit keeps sub-specialties near their parent cluster.
	// Keys are scanned in sorted order so the fallback is deterministic.
	keys := make([]string, 0, len(zones))
	for key := range zones {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(key, label) || strings.Contains(label, key) {
			zone := zones[key]
			return &zone
		}
	}
	return nil
}
