package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tunegrip/internal/domain"
)

func tracks(n int) []domain.Track {
	out := make([]domain.Track, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Track{
			Artist: "A",
			Title:  "T" + string(rune('1'+i)),
		})
	}
	return out
}

func TestFormatTruncatesToMax(t *testing.T) {
	got := Format(tracks(7), 5)

	require.Equal(t, []string{"A - T1", "A - T2", "A - T3", "A - T4", "A - T5"}, got)
}

func TestFormatKeepsShortInput(t *testing.T) {
	got := Format(tracks(2), 5)

	require.Equal(t, []string{"A - T1", "A - T2"}, got)
}

func TestFormatEmptyInput(t *testing.T) {
	require.Empty(t, Format(nil, 5))
	require.Empty(t, Format(tracks(3), 0))
}

func TestFormatDoesNotMutateInput(t *testing.T) {
	in := []domain.Track{
		{Artist: "Miles Davis", Title: "So What"},
		{Artist: "Miles Davis", Title: "Freddie Freeloader"},
	}
	want := make([]domain.Track, len(in))
	copy(want, in)

	Format(in, 1)

	require.Equal(t, want, in)
}

func TestDisplayNameTemplate(t *testing.T) {
	got := DisplayName(domain.Track{Artist: "Nina Simone", Title: "Sinnerman", Album: "Pastel Blues"})

	require.Equal(t, "Nina Simone - Sinnerman", got)
}
