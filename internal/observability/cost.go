package observability

import "strconv"

// Pricing constants (USD per 1K tokens)
const (
	tokensPerKilo       = 1000.0
	costFormatPrecision = 6

	gemini25FlashInputPrice  = 0.0003
	gemini25FlashOutputPrice = 0.0025

	gemini25ProInputPrice  = 0.00125
	gemini25ProOutputPrice = 0.01

	gemini25FlashLiteInputPrice  = 0.0001
	gemini25FlashLiteOutputPrice = 0.0004
)

// ModelPricing contains pricing information per 1K tokens
type ModelPricing struct {
	InputPricePer1K  float64
	OutputPricePer1K float64
}

// PricingTable contains pricing for the Gemini models we use
var PricingTable = map[string]ModelPricing{
	"gemini-2.5-flash": {
		InputPricePer1K:  gemini25FlashInputPrice,
		OutputPricePer1K: gemini25FlashOutputPrice,
	},
	"gemini-2.5-pro": {
		InputPricePer1K:  gemini25ProInputPrice,
		OutputPricePer1K: gemini25ProOutputPrice,
	},
	"gemini-2.5-flash-lite": {
		InputPricePer1K:  gemini25FlashLiteInputPrice,
		OutputPricePer1K: gemini25FlashLiteOutputPrice,
	},
}

// CalculateGeminiCost calculates the cost in USD for a Gemini API call
func CalculateGeminiCost(model string, inputTokens, outputTokens int32) float64 {
	pricing, exists := PricingTable[model]
	if !exists {
		// Default to flash pricing if model not found
		pricing = PricingTable["gemini-2.5-flash"]
	}

	inputCost := (float64(inputTokens) / tokensPerKilo) * pricing.InputPricePer1K
	outputCost := (float64(outputTokens) / tokensPerKilo) * pricing.OutputPricePer1K

	return inputCost + outputCost
}

// FormatCost formats a cost value as a USD string
func FormatCost(cost float64) string {
	return "$" + strconv.FormatFloat(cost, 'f', costFormatPrecision, 64)
}
