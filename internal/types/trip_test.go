package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripRequest_WithDefaults(t *testing.T) {
	t.Run("fills planner defaults", func(t *testing.T) {
		req := TripRequest{Destination: "  Rome "}.WithDefaults()

		assert.Equal(t, "Rome", req.Destination)
		assert.Equal(t, TripDuration(1), req.Duration)
		assert.Equal(t, VibeSightseeing, req.Vibe)
		assert.Equal(t, DefaultBudget, req.Budget)
		assert.Equal(t, IntensityChill, req.Intensity)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		in := TripRequest{
			Destination: "Rome",
			Hotel:       "Hotel Artemide",
			Duration:    3,
			Vibe:        VibeFoodie,
			Budget:      "Luxury",
			Intensity:   IntensityActionPacked,
		}
		assert.Equal(t, in, in.WithDefaults())
	})
}

func TestTripDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    TripDuration
		wantErr bool
	}{
		{name: "number", body: `{"duration":2}`, want: 2},
		{name: "numeric string", body: `{"duration":"3"}`, want: 3},
		{name: "padded string", body: `{"duration":" 4 "}`, want: 4},
		{name: "empty string", body: `{"duration":""}`, want: 0},
		{name: "null", body: `{"duration":null}`, want: 0},
		{name: "missing", body: `{}`, want: 0},
		{name: "words", body: `{"duration":"two"}`, wantErr: true},
		{name: "fraction", body: `{"duration":1.5}`, wantErr: true},
		{name: "boolean", body: `{"duration":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req TripRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "duration must be a whole number of days")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Duration)
		})
	}
}
