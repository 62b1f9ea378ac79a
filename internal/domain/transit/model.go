package transit

import (
	"time"
)

// Record is one entry/exit event for a person and vehicle at the checkpoint.
// All free-text fields are optional; an empty value is shown as "-".
// ExitTime stays nil until the subject leaves.
type Record struct {
	ID          int64      `json:"id"`
	PersonName  string     `json:"person_name,omitempty"`
	CarModel    string     `json:"car_model,omitempty"`
	CarNumber   string     `json:"car_number,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	PersonType  string     `json:"person_type,omitempty"`
	PermitGiver string     `json:"permit_giver,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	EntryTime   *time.Time `json:"entry_time,omitempty"`
	ExitTime    *time.Time `json:"exit_time,omitempty"`
	// Date is a free-form record-keeping day (YYYY-MM-DD). It is not derived
	// from EntryTime.
	Date      string    `json:"date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Draft carries the form fields for a new record. An empty EntryTime or Date
// is defaulted at creation time; an empty ExitTime stays unset.
type Draft struct {
	PersonName  string     `json:"person_name,omitempty"`
	CarModel    string     `json:"car_model,omitempty"`
	CarNumber   string     `json:"car_number,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	PersonType  string     `json:"person_type,omitempty"`
	PermitGiver string     `json:"permit_giver,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	EntryTime   *time.Time `json:"entry_time,omitempty"`
	ExitTime    *time.Time `json:"exit_time,omitempty"`
	Date        string     `json:"date,omitempty"`
}

// ListResponse is the payload returned for a full record listing.
type ListResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}
