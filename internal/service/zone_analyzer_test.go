package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gds-saude/gds-api/internal/models"
)

func TestPreferredZonesPicksDensestZone(t *testing.T) {
	zones := PreferredZones([]models.RoomSupply{
		roomFixture("r1", "Sala 1", "A", "1", "Cardiologia"),
		roomFixture("r2", "Sala 2", "A", "1", "Cardiologia"),
		roomFixture("r3", "Sala 3", "B", "2", "Cardiologia"),
		roomFixture("r4", "Sala 4", "B", "2", "Pediatria"),
	})

	require.Contains(t, zones, "cardiologia")
	assert.Equal(t, models.Zone{Block: "A", Floor: "1"}, zones["cardiologia"])
	assert.Equal(t, models.Zone{Block: "B", Floor: "2"}, zones["pediatria"])
}

func TestPreferredZonesTieBreaksLexicographically(t *testing.T) {
	zones := PreferredZones([]models.RoomSupply{
		roomFixture("r1", "Sala 1", "B", "2", "Cardiologia"),
		roomFixture("r2", "Sala 2", "A", "3", "Cardiologia"),
	})

	assert.Equal(t, models.Zone{Block: "A", Floor: "3"}, zones["cardiologia"])
}

func TestPreferredZonesSkipsUnusableRooms(t *testing.T) {
	maintenance := roomFixture("r1", "Sala 1", "A", "1", "Cardiologia")
	maintenance.Maintenance = true
	closed := roomFixture("r2", "Sala 2", "A", "1", "Cardiologia", models.FeatureClosedForWorks)
	unmapped := roomFixture("r3", "Sala 3", "A", "1", "")

	zones := PreferredZones([]models.RoomSupply{maintenance, closed, unmapped})
	assert.Empty(t, zones)
}

func TestDemandZoneLookup(t *testing.T) {
	zones := map[string]models.Zone{
		"cardiologia": {Block: "A", Floor: "1"},
		"pediatria":   {Block: "B", Floor: "2"},
	}

	direct := demandFixture("d1", "Ana", "Cardiologia", models.Monday, models.ShiftMorning)
	zone := demandZone(zones, direct)
	require.NotNil(t, zone)
	assert.Equal(t, "A", zone.Block)

	// Sub-specialty labels fall back to partial containment.
	sub := demandFixture("d2", "Bia", "Cardiologia Pediátrica", models.Monday, models.ShiftMorning)
	zone = demandZone(zones, sub)
	require.NotNil(t, zone)
	assert.Equal(t, "A", zone.Block)

	unknown := demandFixture("d3", "Caio", "Radiologia", models.Monday, models.ShiftMorning)
	assert.Nil(t, demandZone(zones, unknown))
}

func TestDemandZonePrefersCanonicalID(t *testing.T) {
	specialtyID := "spec-1"
	zones := map[string]models.Zone{
		"spec-1":      {Block: "C", Floor: "3"},
		"cardiologia": {Block: "A", Floor: "1"},
	}

	demand := demandFixture("d1", "Ana", "Cardiologia", models.Monday, models.ShiftMorning)
	demand.SpecialtyID = &specialtyID

	zone := demandZone(zones, demand)
	require.NotNil(t, zone)
	assert.Equal(t, "C", zone.Block)
}
