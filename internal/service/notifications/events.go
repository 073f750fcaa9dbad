package notifications

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentAssigned уведомление сотруднику о назначенной записи
func AppointmentAssigned(a *domain.Appointment, employeeEmail, garageName string) domain.Notification {
	return domain.Notification{
		Event:         domain.EventAppointmentAssigned,
		Recipient:     employeeEmail,
		AppointmentID: a.ID,
		Payload: map[string]string{
			domain.PayloadDate:       a.SelectedDate.Format(domain.DateFormat),
			domain.PayloadGarageName: garageName,
		},
	}
}

// AppointmentStatusChanged уведомление клиенту о смене статуса
func AppointmentStatusChanged(a *domain.Appointment) domain.Notification {
	return domain.Notification{
		Event:         domain.EventAppointmentStatusChanged,
		Recipient:     a.CustomerEmail,
		AppointmentID: a.ID,
		Payload: map[string]string{
			domain.PayloadDate:   a.SelectedDate.Format(domain.DateFormat),
			domain.PayloadStatus: string(a.Status),
		},
	}
}

// NoEmployeeAvailable уведомление клиенту, что переназначить запись некому
func NoEmployeeAvailable(a *domain.Appointment, garageName string) domain.Notification {
	return domain.Notification{
		Event:         domain.EventNoEmployeeAvailable,
		Recipient:     a.CustomerEmail,
		AppointmentID: a.ID,
		Payload: map[string]string{
			domain.PayloadDate:       a.SelectedDate.Format(domain.DateFormat),
			domain.PayloadGarageName: garageName,
		},
	}
}
