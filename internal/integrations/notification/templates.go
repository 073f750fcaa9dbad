package notification

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const signature = "Best regards,\nGarage Service Team"

// Message готовое к отправке письмо
type Message struct {
	Subject string
	Body    string
}

// Render формирует текст письма для уведомления
func Render(n domain.Notification) (Message, error) {
	date := n.Payload[domain.PayloadDate]

	switch n.Event {
	case domain.EventAppointmentAssigned:
		return Message{
			Subject: "New Appointment Assigned",
			Body: fmt.Sprintf("Hello,\n\n"+
				"You have been assigned a new appointment at garage: %s\n"+
				"Date: %s\n\n"+
				"Please check your dashboard for more details.\n\n%s",
				n.Payload[domain.PayloadGarageName], date, signature),
		}, nil
	case domain.EventAppointmentStatusChanged:
		return Message{
			Subject: "Appointment Status Update",
			Body: fmt.Sprintf("Hello,\n\n"+
				"The status of your appointment on %s has changed to: %s\n\n"+
				"Please check your dashboard for more details.\n\n%s",
				date, n.Payload[domain.PayloadStatus], signature),
		}, nil
	case domain.EventNoEmployeeAvailable:
		return Message{
			Subject: "No Employees Available",
			Body: fmt.Sprintf("Hello,\n\n"+
				"Unfortunately, there are no available employees at garage: %s for your appointment on %s.\n"+
				"Please reschedule your appointment at another service.\n\n"+
				"We apologize for the inconvenience.\n\n%s",
				n.Payload[domain.PayloadGarageName], date, signature),
		}, nil
	}

	return Message{}, fmt.Errorf("%w: %q", ErrUnknownEvent, n.Event)
}
