package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 25, EstimateTokens(strings.Repeat("a", 100)))
}

func TestFormatTokenCount(t *testing.T) {
	assert.Equal(t, "999", FormatTokenCount(999))
	assert.Equal(t, "1.0k", FormatTokenCount(1000))
	assert.Equal(t, "12.5k", FormatTokenCount(12500))
}
