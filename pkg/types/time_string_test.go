package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{in: "08:00", minutes: 480},
		{in: "13:30", minutes: 810},
		{in: "00:00", minutes: 0},
		{in: "24:00", minutes: 1440},
		{in: "25:00", wantErr: true},
		{in: "8am", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NewTimeStringFromString(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeString, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.minutes, got.Minutes(), tt.in)
		assert.Equal(t, tt.in, got.String())
	}
}

func TestTimeString_JSON(t *testing.T) {
	var payload struct {
		Open TimeString `json:"open"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"open":"21:00"}`), &payload))
	assert.Equal(t, 1260, payload.Open.Minutes())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"open":"21:00"}`, string(out))
}
