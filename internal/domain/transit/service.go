package transit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

// Service implements the business rules for transit records: entry-time and
// date defaulting on creation and the single guarded exit transition.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

type Servicer interface {
	List(ctx context.Context) (ListResponse, error)
	Get(ctx context.Context, id int64) (*Record, error)
	Create(ctx context.Context, draft Draft) (int64, error)
	RecordExit(ctx context.Context, id int64) (time.Time, error)
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "transit_service"),
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context) (ListResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return ListResponse{}, fmt.Errorf("list records: %w", err)
	}
	return ListResponse{
		Records: records,
		Total:   len(records),
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}
	return rec, nil
}

// Create stores a new record from the draft. A missing entry time defaults
// to the shifted "now"; a missing date defaults to that same instant's
// calendar day. The exit time is taken from the draft or left unset.
func (s *Service) Create(ctx context.Context, draft Draft) (int64, error) {
	stamped := ShiftedNow(s.now())

	rec := &Record{
		PersonName:  draft.PersonName,
		CarModel:    draft.CarModel,
		CarNumber:   draft.CarNumber,
		Unit:        draft.Unit,
		PersonType:  draft.PersonType,
		PermitGiver: draft.PermitGiver,
		Notes:       draft.Notes,
		EntryTime:   draft.EntryTime,
		ExitTime:    draft.ExitTime,
		Date:        draft.Date,
	}
	if rec.EntryTime == nil {
		rec.EntryTime = &stamped
	}
	if rec.Date == "" {
		rec.Date = stamped.Format(dateLayout)
	}

	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("create record: %w", err)
	}

	s.log.Info("record created", "id", id, "date", rec.Date)
	return id, nil
}

// RecordExit stamps the shifted "now" as the record's exit time. A record
// that already has an exit time is left untouched and ErrExitAlreadySet is
// returned.
func (s *Service) RecordExit(ctx context.Context, id int64) (time.Time, error) {
	exitAt := ShiftedNow(s.now())

	if err := s.repo.SetExitTime(ctx, id, exitAt); err != nil {
		return time.Time{}, fmt.Errorf("record exit for %d: %w", id, err)
	}

	s.log.Info("exit recorded", "id", id)
	return exitAt, nil
}
