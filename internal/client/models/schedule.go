package models

import (
	"fmt"
	"net/url"
)

type Location struct {
	UID     string `json:"uid"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type Service struct {
	UID         string  `json:"uid"`
	Name        string  `json:"name"`
	DurationMin int     `json:"duration_minutes,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// Resource is a physical resource at a location, typically a bed.
type Resource struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	LocationUID string `json:"location_uid"`
}

type Technician struct {
	UID      string    `json:"uid"`
	Name     string    `json:"name"`
	Services []Service `json:"services,omitempty"`
}

type Shift struct {
	UID           string `json:"uid,omitempty"`
	TechnicianUID string `json:"technician_uid"`
	LocationUID   string `json:"location_uid"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

// Slot is one bookable combination returned by the availability endpoint.
type Slot struct {
	TechnicianUID  string `json:"technician_uid,omitempty"`
	TechnicianName string `json:"technician_name,omitempty"`
	ResourceUID    string `json:"resource_uid,omitempty"`
	ResourceName   string `json:"resource_name,omitempty"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

func (s Slot) String() string {
	who := s.TechnicianName
	if who == "" {
		who = s.TechnicianUID
	}
	if who == "" {
		who = "any technician"
	}
	where := s.ResourceName
	if where == "" {
		where = s.ResourceUID
	}
	if where == "" {
		return fmt.Sprintf("%s - %s  %s", s.StartTime, s.EndTime, who)
	}
	return fmt.Sprintf("%s - %s  %s @ %s", s.StartTime, s.EndTime, who, where)
}

// AvailabilityQuery are the query parameters of GET /schedule/availability.
type AvailabilityQuery struct {
	LocationUID   string `validate:"required"`
	ServiceUID    string `validate:"required"`
	Date          string `validate:"required,datetime=2006-01-02"`
	TechnicianUID string
}

func (q AvailabilityQuery) Values() url.Values {
	v := url.Values{}
	v.Set("location_uid", q.LocationUID)
	v.Set("service_uid", q.ServiceUID)
	v.Set("date", q.Date)
	if q.TechnicianUID != "" {
		v.Set("technician_uid", q.TechnicianUID)
	}
	return v
}

// ShiftQuery filters shift listings. All fields are optional.
type ShiftQuery struct {
	LocationUID   string
	TechnicianUID string
	StartDate     string `validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `validate:"omitempty,datetime=2006-01-02"`
}

func (q ShiftQuery) Values() url.Values {
	v := url.Values{}
	for k, val := range map[string]string{
		"location_uid":   q.LocationUID,
		"technician_uid": q.TechnicianUID,
		"start_date":     q.StartDate,
		"end_date":       q.EndDate,
	} {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// ShiftInput is one item of a shift creation request.
type ShiftInput struct {
	TechnicianUID string `json:"technician_uid,omitempty"`
	LocationUID   string `json:"location_uid" validate:"required"`
	StartTime     string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime       string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}
