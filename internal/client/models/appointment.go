package models

import "time"

// HoldPayloadItem is the wire shape of one held slot in a create-appointment
// request. Absent references are sent as JSON null.
type HoldPayloadItem struct {
	TechnicianUID *string `json:"technician_uid"`
	ResourceUID   *string `json:"resource_uid"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
}

// CreateAppointmentRequest is the body of POST /schedule/appointments.
type CreateAppointmentRequest struct {
	Items []HoldPayloadItem `json:"items"`
}

// Appointment is a booking confirmed by the server.
type Appointment struct {
	UID           string `json:"uid"`
	TechnicianUID string `json:"technician_uid,omitempty"`
	ResourceUID   string `json:"resource_uid,omitempty"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status,omitempty"`
}

// Receipt is a locally kept record of an appointment created by this client.
type Receipt struct {
	AppointmentUID string
	TechnicianUID  string
	ResourceUID    string
	StartTime      string
	EndTime        string
	Status         string
	CreatedAt      time.Time
}

func ReceiptFromAppointment(a Appointment, at time.Time) Receipt {
	return Receipt{
		AppointmentUID: a.UID,
		TechnicianUID:  a.TechnicianUID,
		ResourceUID:    a.ResourceUID,
		StartTime:      a.StartTime,
		EndTime:        a.EndTime,
		Status:         a.Status,
		CreatedAt:      at,
	}
}
