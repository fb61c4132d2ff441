package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strengthlab/velomax/schema"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		InputPathStr: "sets.csv",
		Output:       "text",
		Charts:       "yes",
		ChartDir:     ".",
		Precision:    1,
		Workers:      4,
		Threshold:    0.25,
		PeriodLabel:  "Spring Testing",
		Color:        "no",
	}
}

func TestProcessAndValidate(t *testing.T) {
	t.Run("success minimal", func(t *testing.T) {
		cfg := &Config{}
		err := ProcessAndValidate(cfg, validRawInput())
		require.NoError(t, err)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.True(t, cfg.Charts)
		assert.False(t, cfg.UseColors)
		assert.Equal(t, 4, cfg.Workers)
		assert.InDelta(t, 0.25, cfg.Threshold, 1e-9)
		assert.Equal(t, "Spring Testing", cfg.PeriodLabel)
		assert.NotEmpty(t, cfg.InputPath)
	})

	t.Run("csv defaults output file", func(t *testing.T) {
		cfg := &Config{}
		input := validRawInput()
		input.Output = "csv"
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.DefaultSummaryFile, cfg.OutputFile)
	})

	t.Run("parquet requires output file", func(t *testing.T) {
		cfg := &Config{}
		input := validRawInput()
		input.Output = "parquet"
		require.Error(t, ProcessAndValidate(cfg, input))

		input.OutputFile = "maxes.parquet"
		require.NoError(t, ProcessAndValidate(cfg, input))
	})

	t.Run("empty period label falls back to default", func(t *testing.T) {
		cfg := &Config{}
		input := validRawInput()
		input.PeriodLabel = "  "
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, DefaultPeriodLabel, cfg.PeriodLabel)
	})

	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"invalid output mode", func(in *ConfigRawInput) { in.Output = "xml" }},
		{"invalid charts flag", func(in *ConfigRawInput) { in.Charts = "maybe" }},
		{"invalid color flag", func(in *ConfigRawInput) { in.Color = "sometimes" }},
		{"precision too low", func(in *ConfigRawInput) { in.Precision = 0 }},
		{"precision too high", func(in *ConfigRawInput) { in.Precision = 3 }},
		{"zero workers", func(in *ConfigRawInput) { in.Workers = 0 }},
		{"too many workers", func(in *ConfigRawInput) { in.Workers = MaxWorkers + 1 }},
		{"zero threshold", func(in *ConfigRawInput) { in.Threshold = 0 }},
		{"negative threshold", func(in *ConfigRawInput) { in.Threshold = -0.25 }},
		{"missing input path", func(in *ConfigRawInput) { in.InputPathStr = "" }},
	}
	for _, tt := range tests {
		t.Run("failure "+tt.name, func(t *testing.T) {
			cfg := &Config{}
			input := validRawInput()
			tt.mutate(input)
			require.Error(t, ProcessAndValidate(cfg, input))
		})
	}
}
