package schema

// OutputMode represents the format of the summary output.
type OutputMode string

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// Input column headers the loader requires. Matching is exact after
// trimming surrounding whitespace; extra columns are ignored.
const (
	HeaderName        = "Name"
	HeaderSetID       = "Set ID"
	HeaderWeight      = "Weight"
	HeaderReps        = "Reps"
	HeaderAvgVelocity = "Avg Velocity"
)

// DefaultVelocityThreshold is the target velocity in m/s representing an
// estimated maximal effort. The fitted line is extrapolated to this point.
const DefaultVelocityThreshold = 0.25

// DefaultSummaryFile is where the CSV summary lands when no output file is
// given for csv output.
const DefaultSummaryFile = "predicted_maxes.csv"

// Chart artifact naming. One PNG per athlete: prefix + slug(name) + ext.
const (
	ChartFilePrefix = "load_velocity_"
	ChartFileExt    = ".png"
)
