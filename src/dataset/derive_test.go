package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDepHour(t *testing.T) {
	cases := []struct {
		sched string
		want  int
	}{
		{"5", 0},     // 00:05
		{"630", 6},   // 06:30
		{"1259", 12}, // 12:59
		{"2359", 23},
		{"2400", 23}, // midnight encoded as 2400, clamped
	}

	var rows string
	for _, c := range cases {
		rows += fmt.Sprintf("1,3,AA,ATL,LAX,%s,5,10,0,0,0,0\n", c.sched)
	}
	tables := loadTables(t, rows)
	clean, err := Clean(tables)
	require.NoError(t, err)

	df := Derive(clean)
	require.True(t, HasColumn(df, ColDepHour))

	got := df.Col(ColDepHour).Float()
	require.Len(t, got, len(cases))
	for i, c := range cases {
		assert.Equal(t, float64(c.want), got[i], "sched %s", c.sched)
		assert.GreaterOrEqual(t, got[i], 0.0)
		assert.LessOrEqual(t, got[i], 23.0)
	}
}

func TestDeriveIsLate15Boundary(t *testing.T) {
	rows := "1,3,AA,ATL,LAX,900,5,14.9,0,0,0,0\n" +
		"1,3,AA,ATL,LAX,900,5,15,0,0,0,0\n" +
		"1,3,AA,ATL,LAX,900,5,16,0,0,0,0\n" +
		"1,3,AA,ATL,LAX,900,5,-3,0,0,0,0\n"
	tables := loadTables(t, rows)
	clean, err := Clean(tables)
	require.NoError(t, err)

	df := Derive(clean)
	late := df.Col(ColIsLate15).Records()
	assert.Equal(t, []string{"false", "true", "true", "false"}, late)
}

func TestDeriveDelayCauseFlags(t *testing.T) {
	rows := "1,3,AA,ATL,LAX,900,5,10,0,0,0,0\n" + // no causes
		"1,3,AA,ATL,LAX,900,5,10,12,0,0,0\n" + // weather 12 min
		"1,3,AA,ATL,LAX,900,5,10,,31,0,0\n" // missing weather, late aircraft 31 min
	tables := loadTables(t, rows)
	clean, err := Clean(tables)
	require.NoError(t, err)

	df := Derive(clean)
	assert.Equal(t, []string{"false", "true", "false"}, df.Col(ColHasWeatherDelay).Records())
	assert.Equal(t, []string{"false", "false", "true"}, df.Col(ColHasLateAircraftDelay).Records())
}

func TestDeriveLeavesFrameWithoutSourceColumnsAlone(t *testing.T) {
	tables := loadTables(t, "1,3,AA,ATL,LAX,900,5,10,0,0,0,0\n")
	clean, err := Clean(tables)
	require.NoError(t, err)

	slim := clean.Select([]string{ColAirline, ColOrigin})
	df := Derive(slim)

	assert.False(t, HasColumn(df, ColDepHour))
	assert.False(t, HasColumn(df, ColIsLate15))
}
