package commands

import (
	"context"
	"strings"

	"nexus-booking/internal/domain/availability"
	"nexus-booking/internal/domain/service"
	"nexus-booking/internal/infra"
	"nexus-booking/internal/pkg/apperr"
	"nexus-booking/internal/pkg/timeutil"
)

type CreateServiceInput struct {
	Name            string
	Description     string
	DurationMinutes int
}

type CreateWindowInput struct {
	ServiceID int64
	DayOfWeek string
	StartTime string
	EndTime   string
}

// CatalogCommands covers the admin workflow: services and their weekly
// availability windows.
type CatalogCommands interface {
	CreateService(ctx context.Context, in CreateServiceInput) (*service.Service, error)
	CreateWindow(ctx context.Context, in CreateWindowInput) (*availability.Window, error)
}

type catalogCommandsImpl struct {
	services     ServiceRepository
	availability AvailabilityRepository
}

func NewCatalogCommands(services ServiceRepository, avail AvailabilityRepository) CatalogCommands {
	return &catalogCommandsImpl{services: services, availability: avail}
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, in CreateServiceInput) (*service.Service, error) {
	validName := strings.TrimSpace(in.Name) != ""
	validDuration := in.DurationMinutes > 0
	if !validName || !validDuration {
		return nil, apperr.New(apperr.KindValidation, map[string]any{
			"name":             validName,
			"duration_minutes": validDuration,
		})
	}

	created, err := c.services.Create(ctx, &service.Service{
		Name:            strings.TrimSpace(in.Name),
		Description:     strings.TrimSpace(in.Description),
		DurationMinutes: in.DurationMinutes,
		Active:          true,
	})
	if err != nil {
		return nil, apperr.WrapInternal(err)
	}
	return created, nil
}

func (c *catalogCommandsImpl) CreateWindow(ctx context.Context, in CreateWindowInput) (*availability.Window, error) {
	day := timeutil.DayOfWeek(in.DayOfWeek)
	startMinute, validStart := timeutil.ParseClockTime(in.StartTime)
	endMinute, validEnd := timeutil.ParseClockTime(in.EndTime)

	validDay := day.IsValid()
	validOrder := validStart && validEnd && startMinute < endMinute
	if !validDay || !validStart || !validEnd || !validOrder {
		return nil, apperr.New(apperr.KindValidation, map[string]any{
			"day_of_week": validDay,
			"start_time":  validStart,
			"end_time":    validEnd && validOrder,
		})
	}

	if _, err := c.services.FindByID(ctx, in.ServiceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, apperr.New(apperr.KindNotFound, map[string]any{"target": "service", "service_id": in.ServiceID})
		}
		return nil, apperr.WrapInternal(err)
	}

	created, err := c.availability.Create(ctx, &availability.Window{
		ServiceID:   in.ServiceID,
		DayOfWeek:   day,
		StartMinute: startMinute,
		EndMinute:   endMinute,
		Active:      true,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, apperr.New(apperr.KindNotFound, map[string]any{"target": "service", "service_id": in.ServiceID})
		}
		return nil, apperr.WrapInternal(err)
	}
	return created, nil
}
