package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/strengthlab/velomax/schema"
)

// columnIndexes maps the required input headers to their positions in the
// header row. Extra columns in the input are ignored.
type columnIndexes struct {
	name, setID, weight, reps, velocity int
}

// LoadGroups reads the input CSV and returns cleaned athlete groups in
// first-seen order, plus the number of athletes skipped for having fewer
// than two usable sets. Loading and cleaning errors are fatal for the run.
func LoadGroups(path string) ([]schema.AthleteGroup, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := readSetRecords(f)
	if err != nil {
		return nil, 0, err
	}
	cleaned := dedupeRecords(records)
	return groupByAthlete(cleaned)
}

// readSetRecords parses the CSV stream into raw set records. Rows with a
// missing weight or velocity are dropped; a value that is present but does
// not parse as numeric aborts the load with its data row number.
func readSetRecords(r io.Reader) ([]schema.SetRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows surface as missing cells below

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header row: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []schema.SetRecord
	for row := 1; ; row++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read data row %d: %w", row, err)
		}

		weightStr := cell(rec, cols.weight)
		velocityStr := cell(rec, cols.velocity)
		if weightStr == "" || velocityStr == "" {
			// Incomplete set, dropped rather than imputed.
			continue
		}

		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			return nil, fmt.Errorf("data row %d: weight %q is not numeric", row, weightStr)
		}
		velocity, err := strconv.ParseFloat(velocityStr, 64)
		if err != nil {
			return nil, fmt.Errorf("data row %d: avg velocity %q is not numeric", row, velocityStr)
		}

		reps := 0
		if repsStr := cell(rec, cols.reps); repsStr != "" {
			reps, err = strconv.Atoi(repsStr)
			if err != nil {
				return nil, fmt.Errorf("data row %d: reps %q is not an integer", row, repsStr)
			}
		}

		records = append(records, schema.SetRecord{
			Athlete:     cell(rec, cols.name),
			SetID:       cell(rec, cols.setID),
			Weight:      weight,
			Reps:        reps,
			AvgVelocity: velocity,
		})
	}
	return records, nil
}

// resolveColumns locates every required header in the header row.
func resolveColumns(header []string) (columnIndexes, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	cols := columnIndexes{}
	required := []struct {
		name string
		dst  *int
	}{
		{schema.HeaderName, &cols.name},
		{schema.HeaderSetID, &cols.setID},
		{schema.HeaderWeight, &cols.weight},
		{schema.HeaderReps, &cols.reps},
		{schema.HeaderAvgVelocity, &cols.velocity},
	}
	var missing []string
	for _, req := range required {
		i, ok := index[req.name]
		if !ok {
			missing = append(missing, req.name)
			continue
		}
		*req.dst = i
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("input is missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// cell returns the trimmed value at index i, or "" when the row is short.
func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// dedupeRecords keeps the first record per (athlete, weight) pair.
// Duplicate weights for the same athlete are assumed to be repeated or
// erroneous submissions and are silently dropped.
func dedupeRecords(records []schema.SetRecord) []schema.SetRecord {
	type key struct {
		athlete string
		weight  float64
	}
	seen := make(map[key]bool, len(records))
	out := make([]schema.SetRecord, 0, len(records))
	for _, r := range records {
		k := key{r.Athlete, r.Weight}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

// groupByAthlete collects records into per-athlete groups, preserving the
// order athletes first appear in the input. Groups with fewer than two
// records cannot support a regression and are counted as skipped.
func groupByAthlete(records []schema.SetRecord) ([]schema.AthleteGroup, int, error) {
	byName := make(map[string][]schema.SetRecord)
	var order []string
	for _, r := range records {
		if _, ok := byName[r.Athlete]; !ok {
			order = append(order, r.Athlete)
		}
		byName[r.Athlete] = append(byName[r.Athlete], r)
	}

	groups := make([]schema.AthleteGroup, 0, len(order))
	skipped := 0
	for _, name := range order {
		recs := byName[name]
		if len(recs) <= 1 {
			skipped++
			continue
		}
		groups = append(groups, schema.AthleteGroup{Athlete: name, Records: recs})
	}
	return groups, skipped, nil
}
