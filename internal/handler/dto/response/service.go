package response

import (
	"fmt"
	"time"

	"nexus-booking/internal/domain/availability"
	"nexus-booking/internal/domain/service"
)

type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

type ServiceEnvelope struct {
	OK      bool            `json:"ok"`
	Service ServiceResponse `json:"service"`
}

type ServiceListEnvelope struct {
	OK       bool              `json:"ok"`
	Services []ServiceResponse `json:"services"`
}

type WindowResponse struct {
	ID        int64  `json:"id"`
	ServiceID int64  `json:"service_id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

type WindowEnvelope struct {
	OK     bool           `json:"ok"`
	Window WindowResponse `json:"window"`
}

func FromService(svc *service.Service) ServiceEnvelope {
	return ServiceEnvelope{OK: true, Service: toServiceResponse(svc)}
}

func FromServices(svcs []service.Service) ServiceListEnvelope {
	out := make([]ServiceResponse, len(svcs))
	for i := range svcs {
		out[i] = toServiceResponse(&svcs[i])
	}
	return ServiceListEnvelope{OK: true, Services: out}
}

func FromWindow(w *availability.Window) WindowEnvelope {
	return WindowEnvelope{
		OK: true,
		Window: WindowResponse{
			ID:        w.ID,
			ServiceID: w.ServiceID,
			DayOfWeek: string(w.DayOfWeek),
			StartTime: minuteToClock(w.StartMinute),
			EndTime:   minuteToClock(w.EndMinute),
			Active:    w.Active,
		},
	}
}

func toServiceResponse(svc *service.Service) ServiceResponse {
	return ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Active:          svc.Active,
		CreatedAt:       svc.CreatedAt.UTC(),
	}
}

func minuteToClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
