package transit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gatepost/internal/domain/transit"
	"gatepost/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service    transit.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service transit.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.recordExitOp(), h.recordExit)
	huma.Register(api, h.exportOp(), h.export)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	resp, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}

	return &listOutput{
		Body: resp,
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	rec, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, transit.ErrNotFound) {
			return nil, huma.Error404NotFound("record not found")
		}
		return nil, err
	}

	return &findOutput{
		Body: findResponse{
			Status: "Ok",
			Record: rec,
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	draft := transit.Draft{
		PersonName:  input.Body.PersonName,
		CarModel:    input.Body.CarModel,
		CarNumber:   input.Body.CarNumber,
		Unit:        input.Body.Unit,
		PersonType:  input.Body.PersonType,
		PermitGiver: input.Body.PermitGiver,
		Notes:       input.Body.Notes,
		EntryTime:   input.Body.EntryTime,
		ExitTime:    input.Body.ExitTime,
		Date:        input.Body.Date,
	}

	id, err := h.service.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &output{
		Body: response{
			ID:     id,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) recordExit(ctx context.Context, input *exitInput) (*output, error) {
	exitAt, err := h.service.RecordExit(ctx, input.ID)
	if err != nil {
		switch {
		case errors.Is(err, transit.ErrNotFound):
			return nil, huma.Error404NotFound("record not found")
		case errors.Is(err, transit.ErrExitAlreadySet):
			return nil, huma.Error409Conflict("exit time already recorded")
		}
		return nil, err
	}

	return &output{
		Body: response{
			ID:       input.ID,
			Status:   "Ok",
			ExitTime: &exitAt,
		},
	}, nil
}

func (h *Handler) export(ctx context.Context, _ *struct{}) (*exportOutput, error) {
	resp, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}

	buf, err := export.Workbook(resp.Records)
	if err != nil {
		return nil, err
	}

	filename := export.Filename(export.DefaultPrefix, time.Now())
	return &exportOutput{
		ContentType:        xlsxContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", filename),
		Body:               buf.Bytes(),
	}, nil
}
