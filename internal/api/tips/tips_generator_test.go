package tips

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

func TestParseTips(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bullets and numbering are stripped",
			text: "- Book the Colosseum ahead\n* Carry water\n1. Validate bus tickets\n2) Eat late\n• Dress modestly in churches",
			want: []string{"Book the Colosseum ahead", "Carry water", "Validate bus tickets", "Eat late", "Dress modestly in churches"},
		},
		{
			name: "blank lines are ignored",
			text: "\n\n  Walk early  \n\n",
			want: []string{"Walk early"},
		},
		{
			name: "capped at five",
			text: "a\nb\nc\nd\ne\nf\ng",
			want: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "number without marker is kept",
			text: "24 hour metro passes save money",
			want: []string{"24 hour metro passes save money"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTips(tt.text))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	req := types.TripRequest{
		Destination: "Rome",
		Hotel:       "Hotel Artemide",
		Duration:    3,
		Vibe:        types.VibeFoodie,
		Budget:      "Luxury",
		Intensity:   types.IntensityHalfAndHalf,
	}
	itinerary := &types.Itinerary{Places: []types.Place{{Name: "Roscioli"}, {Name: "Da Enzo"}}}

	prompt := buildPrompt(req, itinerary)

	assert.Contains(t, prompt, "3-day foodie trip to Rome")
	assert.Contains(t, prompt, "Budget: Luxury")
	assert.Contains(t, prompt, "Pace: Half and Half")
	assert.Contains(t, prompt, "Hotel Artemide")
	assert.Contains(t, prompt, "Planned stops: Roscioli, Da Enzo.")

	t.Run("no hotel and no places", func(t *testing.T) {
		prompt := buildPrompt(types.TripRequest{Destination: "Oslo", Duration: 1, Vibe: types.VibeSightseeing}, nil)
		assert.NotContains(t, prompt, "staying at")
		assert.NotContains(t, prompt, "Planned stops")
	})
}
