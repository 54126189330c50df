// Package catalog holds the demo product data shown on the store front.
// Products live in code; the chat service only needs them for prompt context
// and shipping answers.
package catalog

import (
	"fmt"
	"strings"
)

// DefaultSlug is the product the UI lands on when none is given.
const DefaultSlug = "galaxy-s25-ultra"

type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type Product struct {
	Name                  string   `json:"name"`
	Rating                float64  `json:"rating"`
	Range                 string   `json:"range"`
	Colors                []Color  `json:"colors"`
	Capacities            []string `json:"capacities"`
	PriceAUD              int      `json:"price_aud"`
	DiscountPercent       int      `json:"discount_percent"`
	InStock               bool     `json:"in_stock"`
	Images                []string `json:"images"`
	KeyFeatures           []string `json:"key_features"`
	ReturnsPolicy         string   `json:"returns_policy"`
	FreeShippingThreshold int      `json:"free_shipping_threshold"`
	ShippingCostStandard  int      `json:"shipping_cost_standard"`
	ShippingCostExpress   int      `json:"shipping_cost_express"`
	ShippingProvider      string   `json:"shipping_provider"`
	OriginCountry         string   `json:"origin_country"`
}

var products = map[string]Product{
	"galaxy-s25-ultra": {
		Name:   "Samsung Galaxy S25 Ultra",
		Rating: 4.8,
		Range:  "Galaxy S25 Ultra",
		Colors: []Color{
			{Name: "Titanium Black", Hex: "#0a0a0a"},
			{Name: "Titanium Grey", Hex: "#8f949a"},
			{Name: "Titanium Blue", Hex: "#9ec1da"},
			{Name: "Titanium Whitesilver", Hex: "#dfe8f0"},
		},
		Capacities:      []string{"256 GB", "512 GB", "1 TB"},
		PriceAUD:        1499,
		DiscountPercent: 32,
		InStock:         true,
		Images: []string{
			"/images/main_sam.png",
			"/images/front_sam.png",
			"/images/common_sam.png",
			"/images/back_sam.png",
		},
		KeyFeatures: []string{
			`6.9" AMOLED, 144Hz`,
			"Snapdragon Gen 4",
			"Periscope 200MP camera",
			"S Pen support",
			"5500mAh 65W fast charge",
		},
		ReturnsPolicy:         "30 Days returns",
		FreeShippingThreshold: 250,
		ShippingCostStandard:  10,
		ShippingCostExpress:   15,
		ShippingProvider:      "AusPost",
		OriginCountry:         "Australia",
	},
}

// Get returns the product for slug, if known.
func Get(slug string) (Product, bool) {
	p, ok := products[slug]
	return p, ok
}

// PromptContext builds the context sentence handed to the language model.
// Unknown slugs yield a minimal context rather than an error.
func PromptContext(slug string) string {
	p := products[slug]
	features := strings.Join(p.KeyFeatures, "; ")

	ctx := fmt.Sprintf("Product: %s. Key features: %s. Price: %d AUD.", p.Name, features, p.PriceAUD)
	if p.ShippingCostStandard > 0 && p.ShippingCostExpress > 0 {
		ctx += fmt.Sprintf(" Standard shipping cost is %d AUD and express shipping cost is %d AUD.",
			p.ShippingCostStandard, p.ShippingCostExpress)
	}
	if p.ShippingProvider != "" {
		origin := p.OriginCountry
		if origin == "" {
			origin = "Australia"
		}
		ctx += fmt.Sprintf(" Shipping is handled by %s and the platform is located in %s.", p.ShippingProvider, origin)
	}
	return ctx
}
