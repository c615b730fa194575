package query_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/service/slots/models"
)

func TestQueryRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		request  QueryRequest
		expected []string
	}{
		{
			name: "valid request has no violations",
			request: QueryRequest{
				Date:     "2024-05-03",
				Products: []string{"SolarPanels"},
				Language: "German",
				Rating:   "Gold",
			},
			expected: []string{},
		},
		{
			name: "every missing field is reported at once",
			request: QueryRequest{
				Date: "2024-05-03",
			},
			expected: []string{
				"At least one product must be specified.",
				"Rating is not specified.",
				"Language is not specified.",
			},
		},
		{
			name: "invalid date is a violation",
			request: QueryRequest{
				Date:     "not-a-date",
				Products: []string{"SolarPanels"},
				Language: "German",
				Rating:   "Gold",
			},
			expected: []string{"Date is not specified or invalid."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.expected, tt.request.Validate())
		})
	}
}

func TestQueryRequest_ToServiceRequest_AcceptsDateAndDatetime(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "plain date", date: "2024-05-03"},
		{name: "RFC 3339 datetime", date: "2024-05-03T00:00:00Z"},
		{name: "datetime without zone", date: "2024-05-03T10:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := QueryRequest{
				Date:     tt.date,
				Products: []string{"SolarPanels"},
				Language: "German",
				Rating:   "Gold",
			}

			serviceReq, err := req.ToServiceRequest()
			require.NoError(t, err)
			assert.Equal(t, "2024-05-03", serviceReq.Date.Format("2006-01-02"))
		})
	}
}

func TestFromServiceResponse_FormatsTimestampsWithMilliseconds(t *testing.T) {
	resp := &models.Response{
		Slots: []models.AvailableSlot{
			{StartDate: time.Date(2024, 5, 3, 10, 30, 0, 0, time.UTC), AvailableCount: 2},
		},
	}

	result := FromServiceResponse(resp)

	require.Len(t, result, 1)
	assert.Equal(t, "2024-05-03T10:30:00.000Z", result[0].StartDate)
	assert.Equal(t, 2, result[0].AvailableCount)
}

func TestFromServiceResponse_EmptyInputYieldsEmptySlice(t *testing.T) {
	result := FromServiceResponse(&models.Response{Slots: []models.AvailableSlot{}})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
