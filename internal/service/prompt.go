package service

import (
	"fmt"
	"strings"

	"onestop-backend/internal/catalog"
)

func buildPrompt(slug, message string) string {
	return "You are a helpful shopping consultant for a web store.\n" +
		"Context: " + catalog.PromptContext(slug) + "\n" +
		"User question: " + message + "\n" +
		"Answer in a clear and short way."
}

// shippingKeywords cover English and Russian phrasings for shipping cost.
var shippingKeywords = []string{
	"shipping cost",
	"shipping costs",
	"delivery cost",
	"shipping price",
	"shipping fee",
	"shipping charges",
	"стоимость доставки",
	"цена доставки",
	"доставка",
}

// shippingReply answers shipping cost questions from catalog data without
// calling the model.
func shippingReply(slug, message string) (string, bool) {
	lower := strings.ToLower(message)
	matched := false
	for _, k := range shippingKeywords {
		if strings.Contains(lower, k) {
			matched = true
			break
		}
	}
	if !matched {
		return "", false
	}

	p, ok := catalog.Get(slug)
	return shippingAnswer(p, ok), true
}

// shippingAnswer reports the product's shipping costs; a zero cost is a
// valid price (free shipping), only an unknown product has no answer.
func shippingAnswer(p catalog.Product, known bool) string {
	if !known {
		return "Shipping cost information is currently unavailable."
	}

	provider := p.ShippingProvider
	if provider == "" {
		provider = "AusPost"
	}
	origin := p.OriginCountry
	if origin == "" {
		origin = "Australia"
	}
	return fmt.Sprintf(
		"Standard shipping costs %d AUD and express shipping costs %d AUD within %s. Shipping is handled by %s.",
		p.ShippingCostStandard, p.ShippingCostExpress, origin, provider,
	)
}
