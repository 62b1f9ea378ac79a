package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []Record {
	return []Record{
		{ID: 3, PersonName: "Ali Hassan", CarModel: "Toyota Hilux", CarNumber: "ERB 1234", Unit: "1st Battalion", Date: "2024-01-15"},
		{ID: 2, PersonName: "Omar", CarNumber: "SLE 99", PersonType: "Guest", PermitGiver: "Duty Officer", Date: "2024-02-01"},
		{ID: 1, Unit: "HQ", PersonType: "Worker", Date: "bad-date"},
	}
}

func TestFilterBySearch(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name        string
		term        string
		expectedIDs []int64
	}{
		{
			name:        "empty term is identity",
			term:        "",
			expectedIDs: []int64{3, 2, 1},
		},
		{
			name:        "case-insensitive name match",
			term:        "ali",
			expectedIDs: []int64{3},
		},
		{
			name:        "car number substring",
			term:        "sle",
			expectedIDs: []int64{2},
		},
		{
			name:        "unit match",
			term:        "battalion",
			expectedIDs: []int64{3},
		},
		{
			name:        "multi-record match keeps original order",
			term:        "r",
			expectedIDs: []int64{3, 2, 1},
		},
		{
			name:        "permit giver match",
			term:        "officer",
			expectedIDs: []int64{2},
		},
		{
			name:        "car model match",
			term:        "hilux",
			expectedIDs: []int64{3},
		},
		{
			name:        "no field contains the term",
			term:        "zebra",
			expectedIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterBySearch(records, tt.term)
			ids := make([]int64, 0, len(filtered))
			for _, rec := range filtered {
				ids = append(ids, rec.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilterBySearch_EmptyTermReturnsSameSlice(t *testing.T) {
	records := sampleRecords()
	filtered := FilterBySearch(records, "")
	assert.Equal(t, records, filtered)
}

func TestFilterByDateRange(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name        string
		start       string
		end         string
		expectedIDs []int64
	}{
		{
			name:        "both bounds absent is identity",
			start:       "",
			end:         "",
			expectedIDs: []int64{3, 2, 1},
		},
		{
			name:        "inclusive window",
			start:       "2024-01-01",
			end:         "2024-01-31",
			expectedIDs: []int64{3},
		},
		{
			name:        "bound equal to record date is included",
			start:       "2024-01-15",
			end:         "2024-02-01",
			expectedIDs: []int64{3, 2},
		},
		{
			name:        "open start defaults to distant past",
			start:       "",
			end:         "2024-01-31",
			expectedIDs: []int64{3},
		},
		{
			name:        "open end defaults to distant future",
			start:       "2024-02-01",
			end:         "",
			expectedIDs: []int64{2},
		},
		{
			name:        "unparsable record date is excluded",
			start:       "1900-01-01",
			end:         "2100-01-01",
			expectedIDs: []int64{3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterByDateRange(records, tt.start, tt.end)
			ids := make([]int64, 0, len(filtered))
			for _, rec := range filtered {
				ids = append(ids, rec.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}
