package service

import (
	"sort"
	"strconv"
	"unicode"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/internal/models"
)

// BuildSummary groups assignments by specialty label: distinct room names in
// natural order, distinct location labels, professional head-count. Busiest
// specialties (most distinct rooms) come first.
func BuildSummary(assignments []models.AssignmentDetail) []dto.SummaryGroup {
	type bucket struct {
		rooms         map[string]struct{}
		locations     map[string]struct{}
		professionals map[string]struct{}
	}

	buckets := make(map[string]*bucket)
	for _, a := range assignments {
		b := buckets[a.Specialty]
		if b == nil {
			b = &bucket{
				rooms:         make(map[string]struct{}),
				locations:     make(map[string]struct{}),
				professionals: make(map[string]struct{}),
			}
			buckets[a.Specialty] = b
		}
		b.rooms[a.RoomName] = struct{}{}
		b.locations[models.Zone{Block: a.Block, Floor: a.Floor}.Label()] = struct{}{}
		b.professionals[a.ProfessionalName] = struct{}{}
	}

	groups := make([]dto.SummaryGroup, 0, len(buckets))
	for specialty, b := range buckets {
		rooms := make([]string, 0, len(b.rooms))
		for room := range b.rooms {
			rooms = append(rooms, room)
		}
		sort.Slice(rooms, func(i, j int) bool { return naturalLess(rooms[i], rooms[j]) })

		locations := make([]string, 0, len(b.locations))
		for location := range b.locations {
			locations = append(locations, location)
		}
		sort.Strings(locations)

		groups = append(groups, dto.SummaryGroup{
			Specialty:     specialty,
			RoomCount:     len(rooms),
			Rooms:         rooms,
			Locations:     locations,
			Professionals: len(b.professionals),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].RoomCount != groups[j].RoomCount {
			return groups[i].RoomCount > groups[j].RoomCount
		}
		return groups[i].Specialty < groups[j].Specialty
	})
	return groups
}

// naturalLess orders strings treating embedded digit runs as numbers, so
// "E2-2" sorts before "E2-10".
func naturalLess(a, b string) bool {
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		ar, br := rune(a[ai]), rune(b[bi])
		if unicode.IsDigit(ar) && unicode.IsDigit(br) {
			aNum, aNext := readDigits(a, ai)
			bNum, bNext := readDigits(b, bi)
			if aNum != bNum {
				return aNum < bNum
			}
			ai, bi = aNext, bNext
			continue
		}
		if ar != br {
			return ar < br
		}
		ai++
		bi++
	}
	return len(a)-ai < len(b)-bi
}

func readDigits(s string, start int) (int, int) {
	end := start
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	value, _ := strconv.Atoi(s[start:end])
	return value, end
}
