package sharedtypes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", input: "2025-06-15", want: NewDate(2025, time.June, 15)},
		{name: "month out of range", input: "2025-13-01", wantErr: true},
		{name: "day out of range", input: "2025-02-30", wantErr: true},
		{name: "wrong layout", input: "15-06-2025", wantErr: true},
		{name: "not a date", input: "tomorrow", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var badDate *ErrBadDate
				assert.ErrorAs(t, err, &badDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	out, err := json.Marshal(payload{Date: NewDate(2024, time.October, 10)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-10-10"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-10-10"}`), &in))
	assert.True(t, in.Date.Equal(NewDate(2024, time.October, 10)))
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2024-10-99"`), &d)
	require.Error(t, err)
	var badDate *ErrBadDate
	assert.ErrorAs(t, err, &badDate)
}
