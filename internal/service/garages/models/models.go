package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var dayNames = [7]string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

// DaySchedule расписание одного дня
type DaySchedule struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = понедельник
	Day         string `json:"day"`
	OpeningTime string `json:"openingTime,omitempty"`
	ClosingTime string `json:"closingTime,omitempty"`
	IsClosed    bool   `json:"isClosed"`
}

// ScheduleResponse недельное расписание гаража
// Дни без записи в расписании возвращаются как выходные
type ScheduleResponse struct {
	GarageID  uuid.UUID     `json:"garageId"`
	Name      string        `json:"name"`
	Days      []DaySchedule `json:"days"`
	OpenNow   bool          `json:"openNow"`
	OpenOn    *bool         `json:"openOn,omitempty"` // работает ли гараж в запрошенную дату
	CheckedAt time.Time     `json:"checkedAt"`
}

// FromDomainGarage конвертирует расписание в DTO, дополняя недостающие дни
func FromDomainGarage(g *domain.Garage) *ScheduleResponse {
	resp := &ScheduleResponse{
		GarageID: g.ID,
		Name:     g.Name,
		Days:     make([]DaySchedule, 7),
	}

	for i := range resp.Days {
		resp.Days[i] = DaySchedule{DayOfWeek: i, Day: dayNames[i], IsClosed: true}
	}

	for _, e := range g.Schedule {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			continue
		}
		day := &resp.Days[e.DayOfWeek]
		day.IsClosed = e.IsClosed
		if !e.IsClosed {
			day.OpeningTime = e.OpeningTime.String()
			day.ClosingTime = e.ClosingTime.String()
		}
	}

	return resp
}
