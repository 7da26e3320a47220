// Command seed prepares a local database for development: it applies the
// schema migrations in order and loads a small demo dataset of specialties,
// rooms and weekly demand.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gds-saude/gds-api/internal/models"
	"github.com/gds-saude/gds-api/pkg/config"
	"github.com/gds-saude/gds-api/pkg/database"
)

func main() {
	var (
		migrationsDir string
		wipe          bool
		skipDemoData  bool
	)

	flag.StringVar(&migrationsDir, "migrations", filepath.Join("scripts", "migrations"), "Directory with .sql migration files")
	flag.BoolVar(&wipe, "wipe", false, "Delete existing rows before seeding")
	flag.BoolVar(&skipDemoData, "schema-only", false, "Apply migrations without inserting demo data")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := applyMigrations(db, migrationsDir); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	if skipDemoData {
		log.Println("schema ready, skipping demo data")
		return
	}

	if wipe {
		if err := wipeTables(db); err != nil {
			log.Fatalf("failed to wipe tables: %v", err)
		}
	}

	if err := seedDemoData(db); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}
	log.Println("seed complete")
}

func applyMigrations(db *sqlx.DB, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		if _, err := db.Exec(string(raw)); err != nil {
			return fmt.Errorf("applying %s: %w", name, err)
		}
		log.Printf("applied %s", name)
	}
	return nil
}

func wipeTables(db *sqlx.DB) error {
	// Order respects foreign keys.
	for _, table := range []string{"conflicts", "assignments", "demands", "rooms", "specialties"} {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("wiping %s: %w", table, err)
		}
	}
	return nil
}

func seedDemoData(db *sqlx.DB) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("opening tx: %w", err)
	}
	defer tx.Rollback()

	specialties := []models.Specialty{
		{ID: "cardiologia", Name: "Cardiologia"},
		{ID: "pediatria", Name: "Pediatria"},
		{ID: "oftalmologia", Name: "Oftalmologia"},
		{ID: "fisioterapia", Name: "Fisioterapia"},
	}
	for _, s := range specialties {
		if _, err := tx.Exec(
			`INSERT INTO specialties (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			s.ID, s.Name,
		); err != nil {
			return fmt.Errorf("inserting specialty %s: %w", s.ID, err)
		}
	}

	cardio := "cardiologia"
	oftalmo := "oftalmologia"
	rooms := []models.RoomSupply{
		{ID: "E1-1", DisplayName: "Sala E1-1", Block: "E1", Floor: "Térreo", PreferredSpecialty: "Cardiologia", SpecialtyID: &cardio, Features: pq.StringArray{}},
		{ID: "E1-2", DisplayName: "Sala E1-2", Block: "E1", Floor: "Térreo", Features: pq.StringArray{}},
		{ID: "E2-1", DisplayName: "Sala E2-1", Block: "E2", Floor: "1º andar", PreferredSpecialty: "Oftalmologia", SpecialtyID: &oftalmo, Features: pq.StringArray{models.FeatureRestrictedSpecialty}},
		{ID: "E2-2", DisplayName: "Sala E2-2", Block: "E2", Floor: "1º andar", Features: pq.StringArray{}},
		{ID: "E2-10", DisplayName: "Sala E2-10", Block: "E2", Floor: "1º andar", Features: pq.StringArray{models.FeatureClosedForWorks}, Maintenance: true},
	}
	for i := range rooms {
		r := &rooms[i]
		r.Status = models.RoomFree
		if r.Maintenance {
			r.Status = models.RoomMaintenance
		}
		if _, err := tx.Exec(
			`INSERT INTO rooms (id, display_name, block, floor, preferred_specialty, specialty_id, features, maintenance, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (id) DO NOTHING`,
			r.ID, r.DisplayName, r.Block, r.Floor, r.PreferredSpecialty, r.SpecialtyID, r.Features, r.Maintenance, r.Status,
		); err != nil {
			return fmt.Errorf("inserting room %s: %w", r.ID, err)
		}
	}

	demands := []models.SpecialtyDemand{
		{ID: "seed-d1", ProfessionalName: "Dra. Ana Lima", Specialty: "Cardiologia", SpecialtyID: &cardio, ResourceKind: models.ResourceStaff, DayOfWeek: models.Monday, Shift: models.ShiftMorning},
		{ID: "seed-d2", ProfessionalName: "Dr. Bruno Sá", Specialty: "Oftalmologia", SpecialtyID: &oftalmo, ResourceKind: models.ResourceStaff, DayOfWeek: models.Monday, Shift: models.ShiftMorning},
		{ID: "seed-d3", ProfessionalName: "Carla Nunes", Specialty: "Fisioterapia", ResourceKind: models.ResourceResident, DayOfWeek: models.Tuesday, Shift: models.ShiftAfternoon},
		{ID: "seed-d4", ProfessionalName: "Diego Prado", Specialty: "Pediatria", ResourceKind: models.ResourceExtra, DayOfWeek: models.Wednesday, Shift: models.ShiftNight},
	}
	for _, d := range demands {
		if _, err := tx.Exec(
			`INSERT INTO demands (id, professional_name, specialty, specialty_id, resource_kind, day_of_week, shift, origin)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (id) DO NOTHING`,
			d.ID, d.ProfessionalName, d.Specialty, d.SpecialtyID, d.ResourceKind, d.DayOfWeek, d.Shift, models.OriginImport,
		); err != nil {
			return fmt.Errorf("inserting demand %s: %w", d.ID, err)
		}
	}

	return tx.Commit()
}
