package catalog

import (
	"github.com/shopspring/decimal"

	"shopcore/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// seedProducts is the default dataset used when no seller inventory has been
// persisted yet. DiscountPercent is computed at load time, not stored here.
func seedProducts() []model.Product {
	return []model.Product{
		{
			ID: 1, Title: "Aurora Wireless Headphones", Brand: "Soundline",
			Category: "electronics", Image: "aurora-headphones.jpg",
			Price: dec("80"), OriginalPrice: decp("100"),
			Stock: 34, Rating: dec("4.5"),
			Description: "Over-ear wireless headphones with 40h battery life.",
		},
		{
			ID: 2, Title: "Slate Mechanical Keyboard", Brand: "Keyforge",
			Category: "electronics", Image: "slate-keyboard.jpg",
			Price: dec("129.99"),
			Stock: 18, Rating: dec("4.7"),
			Description: "Hot-swappable tenkeyless board with PBT caps.",
		},
		{
			ID: 3, Title: "Trailstep Running Shoes", Brand: "Northpace",
			Category: "footwear", Image: "trailstep-shoes.jpg",
			Price: dec("64.5"), OriginalPrice: decp("86"),
			Stock: 52, Rating: dec("4.2"),
			Description: "Lightweight trail runners with a grippy outsole.",
		},
		{
			ID: 4, Title: "Canvas Weekender Bag", Brand: "Harbor & Co",
			Category: "accessories", Image: "canvas-weekender.jpg",
			Price: dec("45"),
			Stock: 27, Rating: dec("4.0"),
			Description: "Waxed canvas duffel sized for carry-on.",
		},
		{
			ID: 5, Title: "Ember Pour-Over Kettle", Brand: "Brewcraft",
			Category: "kitchen", Image: "ember-kettle.jpg",
			Price: dec("39.95"), OriginalPrice: decp("55"),
			Stock: 41, Rating: dec("4.6"),
			Description: "Gooseneck kettle with built-in thermometer.",
		},
		{
			ID: 6, Title: "Linen Throw Blanket", Brand: "Harbor & Co",
			Category: "home", Image: "linen-throw.jpg",
			Price: dec("58"),
			Stock: 15, Rating: dec("4.3"),
			Description: "Stonewashed linen throw, 130x170cm.",
		},
		{
			ID: 7, Title: "Summit Insulated Bottle", Brand: "Northpace",
			Category: "accessories", Image: "summit-bottle.jpg",
			Price: dec("24"), OriginalPrice: decp("30"),
			Stock: 88, Rating: dec("4.8"),
			Description: "750ml double-wall steel bottle, 24h cold.",
		},
		{
			ID: 8, Title: "Drift Desk Lamp", Brand: "Lumen Atelier",
			Category: "home", Image: "drift-lamp.jpg",
			Price: dec("72.4"),
			Stock: 9, Rating: dec("3.9"),
			Description: "Dimmable aluminum desk lamp with USB-C.",
		},
	}
}
