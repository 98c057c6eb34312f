package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRange(t *testing.T) {
	now := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		from      string
		to        string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   string
	}{
		{
			name:      "Defaults to today",
			wantStart: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "Explicit range covers whole days",
			from:      "2026-03-01",
			to:        "2026-03-07",
			wantStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 7, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "From only extends to today",
			from:      "2026-03-01",
			wantStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "Single day",
			from:      "2026-03-10",
			to:        "2026-03-10",
			wantStart: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name:    "Malformed from",
			from:    "yesterday",
			wantErr: "invalid --from",
		},
		{
			name:    "Malformed to",
			to:      "03/15/2026",
			wantErr: "invalid --to",
		},
		{
			name:    "Inverted range",
			from:    "2026-03-10",
			to:      "2026-03-01",
			wantErr: "--to is before --from",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := reportRange(tt.from, tt.to, now)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart.Unix(), start)
			assert.Equal(t, tt.wantEnd.Unix(), end)
		})
	}
}

func TestReportCmd(t *testing.T) {
	setupCLI(t)

	id := addProduct(t, "Mie Instan", "3500", "10")

	_, err := runCommand(t, "sale", "new", id+":2", "--payment", "7000")
	require.NoError(t, err)

	out, err := runCommand(t, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Revenue: 7000.00")
	assert.Contains(t, out, "Sales:   1")
	assert.Contains(t, out, "2x Mie Instan")
}

func TestReportCmdEmptyRange(t *testing.T) {
	setupCLI(t)

	out, err := runCommand(t, "report", "--from", "2000-01-01", "--to", "2000-01-02")
	require.NoError(t, err)
	assert.Contains(t, out, "Revenue: 0.00")
	assert.Contains(t, out, "Sales:   0")
}
