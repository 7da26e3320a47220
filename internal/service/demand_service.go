package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/internal/models"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
)

type demandStore interface {
	List(ctx context.Context, filter models.DemandFilter) ([]models.SpecialtyDemand, error)
	Create(ctx context.Context, demand *models.SpecialtyDemand) error
}

// DemandService manages the weekly demand template. Manual additions are
// picked up by the next regeneration; the service never reschedules on its
// own.
type DemandService struct {
	demands     demandStore
	specialties specialtyStore
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewDemandService constructs a DemandService. The specialty catalogue may be
// nil; labels then stay unresolved.
func NewDemandService(demands demandStore, specialties specialtyStore, logger *zap.Logger) *DemandService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DemandService{demands: demands, specialties: specialties, validate: validator.New(), logger: logger}
}

// List returns demand matching the filter.
func (s *DemandService) List(ctx context.Context, filter models.DemandFilter) ([]models.SpecialtyDemand, error) {
	demands, err := s.demands.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list demand")
	}
	return demands, nil
}

// Create adds one manual demand record, e.g. a professional who arrived
// after the weekly import.
func (s *DemandService) Create(ctx context.Context, req dto.CreateDemandRequest) (*models.SpecialtyDemand, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid demand payload")
	}

	day := models.DayOfWeek(req.DayOfWeek)
	shift := models.Shift(req.Shift)
	if !models.ValidDay(day) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown day of week")
	}
	if !models.ValidShift(shift) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown shift")
	}

	kind := models.ResourceKind(req.ResourceKind)
	if kind == "" {
		kind = models.ResourceExtra
	}

	demand := &models.SpecialtyDemand{
		ProfessionalName: req.ProfessionalName,
		Specialty:        req.Specialty,
		SpecialtyID:      s.resolveSpecialtyID(ctx, req.Specialty),
		ResourceKind:     kind,
		DayOfWeek:        day,
		Shift:            shift,
		Origin:           models.OriginManual,
	}
	if err := s.demands.Create(ctx, demand); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create demand")
	}

	s.logger.Info("manual demand created",
		zap.Bool("canonical", demand.SpecialtyID != nil),
		zap.String("demand_id", demand.ID),
		zap.String("specialty", demand.Specialty),
		zap.String("day", string(demand.DayOfWeek)),
		zap.String("shift", string(demand.Shift)),
	)
	return demand, nil
}

// resolveSpecialtyID maps a raw label onto the canonical catalogue so the
// scheduler can match by id instead of substring. A missing catalogue or a
// read failure leaves the label unresolved.
func (s *DemandService) resolveSpecialtyID(ctx context.Context, label string) *string {
	if s.specialties == nil {
		return nil
	}
	catalogue, err := s.specialties.List(ctx)
	if err != nil {
		s.logger.Warn("specialty catalogue unavailable", zap.Error(err))
		return nil
	}
	want := normalizeLabel(label)
	for _, specialty := range catalogue {
		if normalizeLabel(specialty.Name) == want {
			id := specialty.ID
			return &id
		}
	}
	return nil
}
