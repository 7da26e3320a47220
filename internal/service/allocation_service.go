package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/internal/models"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
)

type demandLister interface {
	List(ctx context.Context, filter models.DemandFilter) ([]models.SpecialtyDemand, error)
}

type roomSupplier interface {
	ListActive(ctx context.Context) ([]models.RoomSupply, error)
}

type assignmentStore interface {
	ListDetailed(ctx context.Context) ([]models.AssignmentDetail, error)
	DeleteAll(ctx context.Context, exec sqlx.ExtContext) error
	BulkCreate(ctx context.Context, exec sqlx.ExtContext, assignments []models.Assignment) error
}

type conflictStore interface {
	List(ctx context.Context) ([]models.Conflict, error)
	DeleteAll(ctx context.Context, exec sqlx.ExtContext) error
	BulkCreate(ctx context.Context, exec sqlx.ExtContext, conflicts []models.Conflict) error
}

type summaryCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

const summaryCacheKey = "gds:allocation:summary"

// AllocationService orchestrates the greedy per-slot matching loop and owns
// the persisted weekly plan.
type AllocationService struct {
	demands     demandLister
	rooms       roomSupplier
	assignments assignmentStore
	conflicts   conflictStore
	cache       summaryCache
	tx          txProvider
	scorer      *Scorer
	metrics     *MetricsService
	logger      *zap.Logger
	cacheTTL    time.Duration

	// Regenerations replace the whole schedule; a single serialization point
	// keeps the delete/rebuild pair from racing another run.
	mu sync.Mutex
}

// NewAllocationService wires the allocation engine.
func NewAllocationService(
	demands demandLister,
	rooms roomSupplier,
	assignments assignmentStore,
	conflicts conflictStore,
	cache summaryCache,
	tx txProvider,
	scorer *Scorer,
	metrics *MetricsService,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *AllocationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &AllocationService{
		demands:     demands,
		rooms:       rooms,
		assignments: assignments,
		conflicts:   conflicts,
		cache:       cache,
		tx:          tx,
		scorer:      scorer,
		metrics:     metrics,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// placement pairs a created assignment with the records that justify it,
// so the response can be built without re-reading the database.
type placement struct {
	assignment models.Assignment
	demand     models.SpecialtyDemand
	room       models.RoomSupply
}

// Regenerate rebuilds the entire weekly plan: all prior assignments and
// conflicts are discarded and the greedy matcher runs over the full demand
// set. The delete/rebuild pair commits atomically; on failure the previous
// plan stays intact.
func (s *AllocationService) Regenerate(ctx context.Context) (*dto.RegenerateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()

	demand, err := s.demands.List(ctx, models.DemandFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load demand")
	}
	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room supply")
	}

	demand = s.dropMalformed(demand)

	// Supply changes between runs, so zones are recomputed every time.
	zones := PreferredZones(rooms)

	// Deterministic scan order: natural id order also settles score ties in
	// favour of the smaller room id.
	sort.Slice(rooms, func(i, j int) bool { return naturalLess(rooms[i].ID, rooms[j].ID) })

	ranked := make([]models.SpecialtyDemand, len(demand))
	copy(ranked, demand)
	sort.SliceStable(ranked, func(i, j int) bool {
		return s.priorityRank(ranked[i], zones) < s.priorityRank(ranked[j], zones)
	})

	// Occupancy arena scoped to this run: slot -> occupied room ids.
	occupancy := make(map[models.Slot]map[string]bool)

	placements := make([]placement, 0, len(ranked))
	conflicts := make([]models.Conflict, 0)

	for _, item := range ranked {
		slot := models.Slot{Day: item.DayOfWeek, Shift: item.Shift}
		occupied := occupancy[slot]
		if occupied == nil {
			occupied = make(map[string]bool)
			occupancy[slot] = occupied
		}

		// Physical saturation: no scoring once every active room is taken.
		if len(occupied) >= len(rooms) {
			conflicts = append(conflicts, conflictFor(item, models.ReasonCapacityExhausted, nil))
			continue
		}

		zone := demandZone(zones, item)

		var best *models.RoomSupply
		bestScore := 0
		scored := false
		for i := range rooms {
			room := &rooms[i]
			if occupied[room.ID] {
				continue
			}
			score := s.scorer.Score(item, *room, zone)
			if !scored || score > bestScore {
				best = room
				bestScore = score
				scored = true
			}
		}

		if best != nil && bestScore > s.scorer.AcceptThreshold() {
			placements = append(placements, placement{
				assignment: models.Assignment{
					RoomID:    best.ID,
					DemandID:  item.ID,
					DayOfWeek: item.DayOfWeek,
					Shift:     item.Shift,
					Score:     bestScore,
				},
				demand: item,
				room:   *best,
			})
			occupied[best.ID] = true
			continue
		}

		var attempted *int
		if scored {
			score := bestScore
			attempted = &score
		}
		conflicts = append(conflicts, conflictFor(item, models.ReasonNoCompatibleRoom, attempted))
	}

	if err := s.persist(ctx, placements, conflicts); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, summaryCacheKey); err != nil {
			s.logger.Warn("summary cache invalidation failed", zap.Error(err))
		}
	}

	duration := time.Since(started)
	s.metrics.ObserveAllocationRun(len(placements), len(conflicts), duration)
	s.logger.Info("allocation regenerated",
		zap.Int("demand", len(ranked)),
		zap.Int("assigned", len(placements)),
		zap.Int("conflicts", len(conflicts)),
		zap.Int("active_rooms", len(rooms)),
		zap.Duration("duration", duration),
	)

	views := make([]dto.AssignmentView, 0, len(placements))
	details := make([]models.AssignmentDetail, 0, len(placements))
	for _, p := range placements {
		views = append(views, assignmentView(p))
		details = append(details, models.AssignmentDetail{
			Assignment:       p.assignment,
			ProfessionalName: p.demand.ProfessionalName,
			Specialty:        p.demand.Specialty,
			SpecialtyID:      p.demand.SpecialtyID,
			RoomName:         p.room.DisplayName,
			Block:            p.room.Block,
			Floor:            p.room.Floor,
		})
	}

	return &dto.RegenerateResponse{
		Assignments: views,
		Conflicts:   conflictViews(conflicts),
		Summary:     BuildSummary(details),
		Stats: dto.RegenerateStats{
			DemandTotal:    len(ranked),
			Assigned:       len(placements),
			Conflicted:     len(conflicts),
			ActiveRooms:    len(rooms),
			Duration:       duration,
			DurationMillis: duration.Milliseconds(),
		},
	}, nil
}

// CurrentSummary reads the committed plan without recomputation. Responses
// are cached until the plan changes.
func (s *AllocationService) CurrentSummary(ctx context.Context) (*dto.CurrentSummaryResponse, bool, error) {
	if s.cache != nil {
		var cached dto.CurrentSummaryResponse
		if err := s.cache.Get(ctx, summaryCacheKey, &cached); err == nil {
			s.metrics.RecordCacheLookup(true)
			return &cached, true, nil
		} else if err != appErrors.ErrCacheMiss {
			s.logger.Warn("summary cache read failed", zap.Error(err))
		}
		s.metrics.RecordCacheLookup(false)
	}

	details, err := s.assignments.ListDetailed(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignments")
	}

	views := make([]dto.AssignmentView, 0, len(details))
	for _, d := range details {
		views = append(views, detailView(d))
	}

	resp := &dto.CurrentSummaryResponse{
		Summary:     BuildSummary(details),
		Assignments: views,
		GeneratedAt: time.Now().UTC(),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summaryCacheKey, resp, s.cacheTTL); err != nil {
			s.logger.Warn("summary cache write failed", zap.Error(err))
		}
	}
	return resp, false, nil
}

// Conflicts returns the persisted conflict list for operator review.
func (s *AllocationService) Conflicts(ctx context.Context) ([]models.Conflict, error) {
	conflicts, err := s.conflicts.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list conflicts")
	}
	return conflicts, nil
}

// persist swaps in the rebuilt plan as one transaction.
func (s *AllocationService) persist(ctx context.Context, placements []placement, conflicts []models.Conflict) error {
	if s.tx == nil {
		return appErrors.Clone(appErrors.ErrInternal, "transaction provider missing")
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin regeneration transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.assignments.DeleteAll(ctx, tx); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear assignments")
		return err
	}
	if err = s.conflicts.DeleteAll(ctx, tx); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear conflicts")
		return err
	}

	records := make([]models.Assignment, len(placements))
	for i, p := range placements {
		records[i] = p.assignment
	}
	if err = s.assignments.BulkCreate(ctx, tx, records); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist assignments")
		return err
	}
	for i := range placements {
		placements[i].assignment = records[i]
	}

	if err = s.conflicts.BulkCreate(ctx, tx, conflicts); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist conflicts")
		return err
	}

	if err = tx.Commit(); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit regeneration")
		return err
	}
	return nil
}

// priorityRank orders demand for the greedy loop; lower ranks are placed
// first and therefore win under capacity pressure.
func (s *AllocationService) priorityRank(demand models.SpecialtyDemand, zones map[string]models.Zone) int {
	if demand.Unmapped() {
		return 100
	}
	if s.scorer.IsMobilitySensitive(demand.Specialty) {
		return 0
	}
	if s.scorer.IsVisionClass(demand.Specialty) {
		return 1
	}
	if s.scorer.IsHighPriority(demand.Specialty) {
		return 2
	}
	if demandZone(zones, demand) != nil {
		return 10
	}
	if demand.ResourceKind == models.ResourceStaff && hasFormalTitle(demand.ProfessionalName) {
		return 20
	}
	return 50
}

// dropMalformed filters records that cannot be scheduled, logging each skip.
// Malformed input never aborts a run.
func (s *AllocationService) dropMalformed(demand []models.SpecialtyDemand) []models.SpecialtyDemand {
	valid := demand[:0]
	for _, item := range demand {
		if !models.ValidDay(item.DayOfWeek) || !models.ValidShift(item.Shift) {
			s.logger.Warn("skipping malformed demand record",
				zap.String("demand_id", item.ID),
				zap.String("day", string(item.DayOfWeek)),
				zap.String("shift", string(item.Shift)),
			)
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

func hasFormalTitle(name string) bool {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for _, title := range []string{"dr.", "dra.", "prof.", "profa."} {
		if strings.HasPrefix(lowered, title) {
			return true
		}
	}
	return false
}

func conflictFor(demand models.SpecialtyDemand, reason models.ConflictReason, bestScore *int) models.Conflict {
	demandID := demand.ID
	return models.Conflict{
		DemandID:         &demandID,
		ProfessionalName: demand.ProfessionalName,
		Specialty:        demand.Specialty,
		DayOfWeek:        demand.DayOfWeek,
		Shift:            demand.Shift,
		Reason:           reason,
		BestScore:        bestScore,
	}
}

func conflictViews(conflicts []models.Conflict) []dto.ConflictView {
	views := make([]dto.ConflictView, 0, len(conflicts))
	for _, c := range conflicts {
		views = append(views, dto.ConflictView{
			ProfessionalName: c.ProfessionalName,
			Specialty:        c.Specialty,
			DayOfWeek:        c.DayOfWeek,
			Shift:            c.Shift,
			Reason:           c.Reason,
			BestScore:        c.BestScore,
		})
	}
	return views
}

func assignmentView(p placement) dto.AssignmentView {
	return dto.AssignmentView{
		AssignmentID:     p.assignment.ID,
		ProfessionalName: p.demand.ProfessionalName,
		Specialty:        p.demand.Specialty,
		RoomID:           p.room.ID,
		RoomName:         p.room.DisplayName,
		Block:            p.room.Block,
		Floor:            p.room.Floor,
		DayOfWeek:        p.assignment.DayOfWeek,
		Shift:            p.assignment.Shift,
		Score:            p.assignment.Score,
	}
}

func detailView(d models.AssignmentDetail) dto.AssignmentView {
	return dto.AssignmentView{
		AssignmentID:     d.ID,
		ProfessionalName: d.ProfessionalName,
		Specialty:        d.Specialty,
		RoomID:           d.RoomID,
		RoomName:         d.RoomName,
		Block:            d.Block,
		Floor:            d.Floor,
		DayOfWeek:        d.DayOfWeek,
		Shift:            d.Shift,
		Score:            d.Score,
	}
}
