package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = "Name,Set ID,Weight,Reps,Avg Velocity"

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sets.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSetRecords(t *testing.T) {
	t.Run("parses rows and ignores extra columns", func(t *testing.T) {
		in := "Name,Set ID,Weight,Reps,Avg Velocity,Coach Notes\n" +
			"Ana Diaz,1,100,5,0.6,solid\n" +
			"Ana Diaz,2,120,3,0.45,\n"
		records, err := readSetRecords(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Ana Diaz", records[0].Athlete)
		assert.Equal(t, "1", records[0].SetID)
		assert.InDelta(t, 100.0, records[0].Weight, 1e-9)
		assert.Equal(t, 5, records[0].Reps)
		assert.InDelta(t, 0.6, records[0].AvgVelocity, 1e-9)
	})

	t.Run("drops rows with missing weight or velocity", func(t *testing.T) {
		in := sampleHeader + "\n" +
			"Ana,1,,5,0.6\n" +
			"Ana,2,120,3,\n" +
			"Ana,3,140,2,0.3\n"
		records, err := readSetRecords(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.InDelta(t, 140.0, records[0].Weight, 1e-9)
	})

	t.Run("non-numeric weight is fatal", func(t *testing.T) {
		in := sampleHeader + "\nAna,1,heavy,5,0.6\n"
		_, err := readSetRecords(strings.NewReader(in))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data row 1")
		assert.Contains(t, err.Error(), "weight")
	})

	t.Run("non-numeric velocity is fatal", func(t *testing.T) {
		in := sampleHeader + "\nAna,1,100,5,fast\n"
		_, err := readSetRecords(strings.NewReader(in))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "avg velocity")
	})

	t.Run("non-integer reps is fatal", func(t *testing.T) {
		in := sampleHeader + "\nAna,1,100,five,0.6\n"
		_, err := readSetRecords(strings.NewReader(in))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reps")
	})

	t.Run("empty reps cell is tolerated", func(t *testing.T) {
		in := sampleHeader + "\nAna,1,100,,0.6\n"
		records, err := readSetRecords(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 0, records[0].Reps)
	})

	t.Run("missing required column is fatal", func(t *testing.T) {
		in := "Name,Set ID,Weight,Reps\nAna,1,100,5\n"
		_, err := readSetRecords(strings.NewReader(in))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Avg Velocity")
	})

	t.Run("empty input is fatal", func(t *testing.T) {
		_, err := readSetRecords(strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestDedupeRecords(t *testing.T) {
	in := sampleHeader + "\n" +
		"Ana,1,100,5,0.60\n" +
		"Ana,2,100,5,0.58\n" + // duplicate weight, later set id
		"Ana,3,120,3,0.45\n" +
		"Ben,1,100,5,0.62\n" // same weight, different athlete
	records, err := readSetRecords(strings.NewReader(in))
	require.NoError(t, err)

	deduped := dedupeRecords(records)
	require.Len(t, deduped, 3)
	// First occurrence survives, by input order.
	assert.Equal(t, "1", deduped[0].SetID)
	assert.InDelta(t, 0.60, deduped[0].AvgVelocity, 1e-9)
	assert.Equal(t, "Ben", deduped[2].Athlete)
}

func TestGroupByAthlete(t *testing.T) {
	in := sampleHeader + "\n" +
		"Ben,1,100,5,0.62\n" +
		"Ana,1,100,5,0.60\n" +
		"Ana,2,120,3,0.45\n" +
		"Cara,1,90,5,0.70\n" // single set, excluded
	records, err := readSetRecords(strings.NewReader(in))
	require.NoError(t, err)

	groups, skipped, err := groupByAthlete(dedupeRecords(records))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, groups, 1)
	assert.Equal(t, "Ana", groups[0].Athlete)
	assert.Len(t, groups[0].Records, 2)
}

func TestLoadGroups(t *testing.T) {
	t.Run("loads and groups from file", func(t *testing.T) {
		path := writeTempCSV(t, sampleHeader+"\n"+
			"Ana,1,100,5,0.6\n"+
			"Ana,2,120,3,0.45\n"+
			"Solo,1,90,5,0.7\n")
		groups, skipped, err := LoadGroups(path)
		require.NoError(t, err)
		assert.Equal(t, 1, skipped)
		require.Len(t, groups, 1)
		assert.Equal(t, "Ana", groups[0].Athlete)
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		_, _, err := LoadGroups(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})
}
