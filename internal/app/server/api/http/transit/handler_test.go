package transit

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gatepost/internal/domain/transit"
	"gatepost/internal/export"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) (transit.ListResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(transit.ListResponse), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int64) (*transit.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transit.Record), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, draft transit.Draft) (int64, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) RecordExit(ctx context.Context, id int64) (time.Time, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(time.Time), args.Error(1)
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, nil, nil)

	records := []transit.Record{{ID: 2, PersonName: "Ali"}, {ID: 1}}
	svc.On("List", mock.Anything).Return(transit.ListResponse{Records: records, Total: 2}, nil)

	resp, err := h.list(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Body.Total)
	assert.Equal(t, int64(2), resp.Body.Records[0].ID)
}

func TestHandler_Create_PassesDraftThrough(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, nil, nil)

	manualEntry := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

	input := &createInput{}
	input.Body.PersonName = "Ali"
	input.Body.CarNumber = "ERB 1234"
	input.Body.EntryTime = &manualEntry

	svc.On("Create", mock.Anything, mock.MatchedBy(func(d transit.Draft) bool {
		return d.PersonName == "Ali" &&
			d.CarNumber == "ERB 1234" &&
			d.EntryTime != nil && d.EntryTime.Equal(manualEntry) &&
			d.ExitTime == nil
	})).Return(int64(5), nil)

	resp, err := h.create(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), resp.Body.ID)
	assert.Equal(t, "Ok", resp.Body.Status)
	svc.AssertExpectations(t)
}

func TestHandler_RecordExit(t *testing.T) {
	exitAt := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("RecordExit", mock.Anything, int64(3)).Return(exitAt, nil)

		resp, err := h.recordExit(context.Background(), &exitInput{ID: 3})

		assert.NoError(t, err)
		assert.Equal(t, "Ok", resp.Body.Status)
		require.NotNil(t, resp.Body.ExitTime)
		assert.True(t, resp.Body.ExitTime.Equal(exitAt))
	})

	t.Run("unknown record maps to 404", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("RecordExit", mock.Anything, int64(99)).
			Return(time.Time{}, transit.ErrNotFound)

		resp, err := h.recordExit(context.Background(), &exitInput{ID: 99})

		assert.Nil(t, resp)
		var statusErr huma.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 404, statusErr.GetStatus())
	})

	t.Run("second exit maps to 409", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("RecordExit", mock.Anything, int64(3)).
			Return(time.Time{}, transit.ErrExitAlreadySet)

		resp, err := h.recordExit(context.Background(), &exitInput{ID: 3})

		assert.Nil(t, resp)
		var statusErr huma.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 409, statusErr.GetStatus())
	})
}

func TestHandler_Find_NotFound(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, nil, nil)

	svc.On("Get", mock.Anything, int64(42)).Return(nil, transit.ErrNotFound)

	resp, err := h.find(context.Background(), &findInput{ID: 42})

	assert.Nil(t, resp)
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestHandler_Export(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, nil, nil)

	entry := time.Date(2024, time.March, 5, 5, 0, 0, 0, time.UTC)
	records := []transit.Record{{ID: 1, PersonName: "Ali", EntryTime: &entry, Date: "2024-03-05"}}
	svc.On("List", mock.Anything).Return(transit.ListResponse{Records: records, Total: 1}, nil)

	resp, err := h.export(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, xlsxContentType, resp.ContentType)
	assert.Contains(t, resp.ContentDisposition, "attachment")
	assert.Contains(t, resp.ContentDisposition, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(resp.Body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ali", rows[1][1])
}

func TestHandler_List_Error(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, nil, nil)

	svc.On("List", mock.Anything).Return(transit.ListResponse{}, errors.New("db down"))

	resp, err := h.list(context.Background(), nil)

	assert.Nil(t, resp)
	assert.Error(t, err)
}
