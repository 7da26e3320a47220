package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gds-saude/gds-api/internal/models"
)

func TestLabelMatcher(t *testing.T) {
	room := roomFixture("r1", "Sala 1", "A", "1", "Cardiologia Pediátrica")

	exact := demandFixture("d1", "Ana", "cardiologia pediátrica", models.Monday, models.ShiftMorning)
	partial := demandFixture("d2", "Bia", "Cardiologia", models.Monday, models.ShiftMorning)
	none := demandFixture("d3", "Caio", "Dermatologia", models.Monday, models.ShiftMorning)

	assert.Equal(t, MatchExact, labelMatcher{}.Match(exact, room))
	assert.Equal(t, MatchPartial, labelMatcher{}.Match(partial, room))
	assert.Equal(t, MatchNone, labelMatcher{}.Match(none, room))
}

func TestCanonicalMatcher(t *testing.T) {
	sameID := "spec-1"
	otherID := "spec-2"

	room := roomFixture("r1", "Sala 1", "A", "1", "Cardiologia Pediátrica")
	room.SpecialtyID = &sameID

	matched := demandFixture("d1", "Ana", "Cardio Ped", models.Monday, models.ShiftMorning)
	matched.SpecialtyID = &sameID

	related := demandFixture("d2", "Bia", "Cardiologia", models.Monday, models.ShiftMorning)
	related.SpecialtyID = &otherID

	unrelated := demandFixture("d3", "Caio", "Dermatologia", models.Monday, models.ShiftMorning)
	unrelated.SpecialtyID = &otherID

	assert.Equal(t, MatchExact, canonicalMatcher{}.Match(matched, room))
	// Different ids but overlapping labels still count as partial.
	assert.Equal(t, MatchPartial, canonicalMatcher{}.Match(related, room))
	assert.Equal(t, MatchNone, canonicalMatcher{}.Match(unrelated, room))
}

func TestMatcherSelection(t *testing.T) {
	id := "spec-1"

	withID := demandFixture("d1", "Ana", "Cardiologia", models.Monday, models.ShiftMorning)
	withID.SpecialtyID = &id
	withoutID := demandFixture("d2", "Bia", "Cardiologia", models.Monday, models.ShiftMorning)

	roomWithID := roomFixture("r1", "Sala 1", "A", "1", "Cardiologia")
	roomWithID.SpecialtyID = &id
	roomWithoutID := roomFixture("r2", "Sala 2", "A", "1", "Cardiologia")

	assert.IsType(t, canonicalMatcher{}, matcherFor(withID, roomWithID))
	assert.IsType(t, labelMatcher{}, matcherFor(withID, roomWithoutID))
	assert.IsType(t, labelMatcher{}, matcherFor(withoutID, roomWithID))
}
