package content

import "healthquiz/internal/domain"

// Myths returns the authored set of common health misconceptions.
func Myths() []domain.Myth {
	return []domain.Myth{
		{ID: "cold", Claim: "Exposure to cold causes colds", Truth: "Viruses cause colds, not temperature"},
		{ID: "sugar", Claim: "Sugar makes children hyperactive", Truth: "No scientific link found"},
		{ID: "vitamin", Claim: "Vitamin C prevents colds", Truth: "Extra vitamin C doesn't prevent colds"},
		{ID: "water", Claim: "Drink exactly 8 glasses of water daily", Truth: "Needs vary by person"},
		{ID: "knuckles", Claim: "Cracking knuckles causes arthritis", Truth: "No link found"},
	}
}
