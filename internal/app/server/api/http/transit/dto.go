package transit

import (
	"time"

	"gatepost/internal/domain/transit"
)

type listOutput struct {
	Body transit.ListResponse
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	PersonName  string     `json:"person_name,omitempty" doc:"Person name"`
	CarModel    string     `json:"car_model,omitempty" doc:"Vehicle model"`
	CarNumber   string     `json:"car_number,omitempty" doc:"Plate number"`
	Unit        string     `json:"unit,omitempty" doc:"Unit or battalion"`
	PersonType  string     `json:"person_type,omitempty" doc:"Person type, e.g. soldier, guest, worker"`
	PermitGiver string     `json:"permit_giver,omitempty" doc:"Who authorized the transit"`
	Notes       string     `json:"notes,omitempty" doc:"Free-form notes"`
	EntryTime   *time.Time `json:"entry_time,omitempty" doc:"Manual entry time; defaults to now shifted by the display offset"`
	ExitTime    *time.Time `json:"exit_time,omitempty" doc:"Manual exit time; normally left unset"`
	Date        string     `json:"date,omitempty" doc:"Record-keeping day (YYYY-MM-DD); defaults to the entry day"`
}

type output struct {
	Body response
}

type response struct {
	ID       int64      `json:"id,omitempty"`
	Status   string     `json:"status"`
	ExitTime *time.Time `json:"exit_time,omitempty"`
	Error    string     `json:"error,omitempty"`
}

type findInput struct {
	ID int64 `path:"id" example:"1" doc:"Record ID"`
}

type findOutput struct {
	Body findResponse
}

type findResponse struct {
	Status string          `json:"status"`
	Record *transit.Record `json:"record"`
	Error  string          `json:"error,omitempty"`
}

type exitInput struct {
	ID int64 `path:"id" example:"1" doc:"Record ID"`
}

type exportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
