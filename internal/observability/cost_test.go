package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGeminiCost(t *testing.T) {
	// 1000 input + 1000 output tokens = one full unit of each price
	cost := CalculateGeminiCost("gemini-2.5-flash", 1000, 1000)
	assert.InDelta(t, 0.0003+0.0025, cost, 1e-9)

	cost = CalculateGeminiCost("gemini-2.5-pro", 2000, 500)
	assert.InDelta(t, 2*0.00125+0.5*0.01, cost, 1e-9)
}

func TestCalculateGeminiCost_UnknownModelUsesFlashPricing(t *testing.T) {
	unknown := CalculateGeminiCost("gemini-9000", 1000, 1000)
	flash := CalculateGeminiCost("gemini-2.5-flash", 1000, 1000)
	assert.Equal(t, flash, unknown)
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.002800", FormatCost(0.0028))
	assert.Equal(t, "$0.000000", FormatCost(0))
}
