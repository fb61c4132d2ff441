package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugName(t *testing.T) {
	assert.Equal(t, "Ana_Diaz", SlugName("Ana Diaz"))
	assert.Equal(t, "Ana_Maria_Diaz", SlugName("  Ana Maria Diaz "))
	assert.Equal(t, "Solo", SlugName("Solo"))
}

func TestChartFileName(t *testing.T) {
	assert.Equal(t, "load_velocity_Ana_Diaz.png", ChartFileName("Ana Diaz"))
}
