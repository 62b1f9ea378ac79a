package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"gatepost/internal/app/client/config"
	"gatepost/internal/domain/transit"
	"gatepost/internal/export"
)

// RecordStore is the remote collaborator holding the authoritative table of
// transit records.
type RecordStore interface {
	HealthCheck(ctx context.Context) error
	List(ctx context.Context) ([]transit.Record, error)
	Create(ctx context.Context, draft transit.Draft) (int64, error)
	RecordExit(ctx context.Context, id int64) error
}

// Session is the in-memory state of one client session. The three record
// slices are derived projections of the remote table, recomputed and never
// persisted: SearchFiltered narrows All by the search term, and DateFiltered
// always narrows SearchFiltered by the date bounds (with no bounds set the
// two are equal).
type Session struct {
	All            []transit.Record
	SearchFiltered []transit.Record
	DateFiltered   []transit.Record
	Draft          transit.Draft
	SearchTerm     string
	StartDate      string
	EndDate        string
	StatusMessage  string
	Loading        bool
}

// App owns a session and orchestrates its operations against the store.
type App struct {
	config  *config.Config
	log     *slog.Logger
	store   RecordStore
	session Session
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init http client: %w", err)
	}

	return &App{
		config: cfg,
		log:    log,
		store:  httpCl,
	}, nil
}

// Session exposes the current session state.
func (a *App) Session() *Session {
	return &a.session
}

// CheckConnection verifies the server answers its health endpoint.
func (a *App) CheckConnection(ctx context.Context) error {
	return a.store.HealthCheck(ctx)
}

// FetchAll replaces all three projections with a fresh listing and resets
// the search term and date bounds. On failure the session is left untouched
// apart from the status message.
func (a *App) FetchAll(ctx context.Context) error {
	s := &a.session
	s.Loading = true
	defer func() { s.Loading = false }()

	records, err := a.store.List(ctx)
	if err != nil {
		s.StatusMessage = "Error fetching records: " + err.Error()
		return fmt.Errorf("fetch records: %w", err)
	}

	s.All = records
	s.SearchTerm = ""
	s.StartDate, s.EndDate = "", ""
	a.recompute()
	a.log.Debug("records fetched", "total", len(records))
	return nil
}

// Submit sends the session draft to the store. On success the draft is
// cleared and the listing refreshed; on failure the draft is kept so the
// operator can retry.
func (a *App) Submit(ctx context.Context) error {
	s := &a.session

	id, err := a.store.Create(ctx, s.Draft)
	if err != nil {
		s.StatusMessage = "Error saving record: " + err.Error()
		return fmt.Errorf("submit record: %w", err)
	}

	s.Draft = transit.Draft{}
	s.StatusMessage = fmt.Sprintf("Record %d saved", id)
	return a.FetchAll(ctx)
}

// RecordExit stamps the exit time for the given record and refreshes the
// listing.
func (a *App) RecordExit(ctx context.Context, id int64) error {
	s := &a.session

	if err := a.store.RecordExit(ctx, id); err != nil {
		s.StatusMessage = "Error recording exit: " + err.Error()
		return fmt.Errorf("record exit: %w", err)
	}

	s.StatusMessage = fmt.Sprintf("Exit recorded for record %d", id)
	return a.FetchAll(ctx)
}

// Search stores the term and recomputes both projections. Active date
// bounds stay applied.
func (a *App) Search(term string) {
	a.session.SearchTerm = term
	a.recompute()
}

// SetDateRange stores the inclusive bounds (YYYY-MM-DD, either may be
// empty) and recomputes the date projection.
func (a *App) SetDateRange(start, end string) {
	a.session.StartDate = start
	a.session.EndDate = end
	a.recompute()
}

// ClearDateRange drops the bounds; the date projection falls back to the
// search projection.
func (a *App) ClearDateRange() {
	a.SetDateRange("", "")
}

// Displayed is the subset currently shown: the date projection, which with
// no bounds active equals the search projection.
func (a *App) Displayed() []transit.Record {
	return a.session.DateFiltered
}

// ExportCurrent writes the displayed subset to an xlsx workbook in the
// configured export directory and returns the written path.
func (a *App) ExportCurrent() (string, error) {
	s := &a.session

	source := s.DateFiltered
	if len(source) == 0 {
		source = s.SearchFiltered
	}

	path, err := export.WriteFile(source, a.exportPrefix(), a.config.ExportDir)
	if err != nil {
		s.StatusMessage = "Error exporting records: " + err.Error()
		return "", fmt.Errorf("export records: %w", err)
	}

	s.StatusMessage = fmt.Sprintf("Exported %d records to %s", len(source), path)
	return path, nil
}

func (a *App) exportPrefix() string {
	s := &a.session
	if s.StartDate == "" && s.EndDate == "" {
		return export.DefaultPrefix
	}
	start, end := s.StartDate, s.EndDate
	if start == "" {
		start = "start"
	}
	if end == "" {
		end = "end"
	}
	return fmt.Sprintf("transit-%s-to-%s", start, end)
}

func (a *App) recompute() {
	s := &a.session
	s.SearchFiltered = transit.FilterBySearch(s.All, s.SearchTerm)
	s.DateFiltered = transit.FilterByDateRange(s.SearchFiltered, s.StartDate, s.EndDate)
}
