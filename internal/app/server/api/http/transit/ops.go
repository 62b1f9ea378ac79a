package transit

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/records",
		Summary:     "List transit records, newest first",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-create",
		Method:      http.MethodPost,
		Path:        "/api/v1/records",
		Summary:     "Create a transit record",
		Description: "Registers an entry event. Missing entry time and date are defaulted on the server.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-find",
		Method:      http.MethodGet,
		Path:        "/api/v1/records/{id}",
		Summary:     "Get a transit record",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) recordExitOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-exit",
		Method:      http.MethodPost,
		Path:        "/api/v1/records/{id}/exit",
		Summary:     "Record the exit for a transit record",
		Description: "Stamps the current time as the exit. Fails with 409 if the exit was already recorded.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) exportOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-export",
		Method:      http.MethodGet,
		Path:        "/api/v1/records/export",
		Summary:     "Export all transit records as an xlsx workbook",
		Tags:        []string{"records", "export"},
		Middlewares: h.middleware,
	}
}
