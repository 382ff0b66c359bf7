package research

import (
	"strings"

	"healthquiz/internal/domain"
)

// CDCSource implements domain.CDCSource over a curated set of CDC
// prevention summaries. The CDC publishes these facts openly; the set is
// embedded rather than fetched because the entries change rarely.
type CDCSource struct {
	guidelines map[string]domain.CDCGuideline
}

// NewCDCSource creates a source preloaded with the curated guideline set.
func NewCDCSource() *CDCSource {
	return &CDCSource{guidelines: map[string]domain.CDCGuideline{
		"cardiovascular-disease": {
			Topic:       "Cardiovascular Disease",
			Fact:        "Leading cause of death in the US",
			Prevention:  "Regular exercise, healthy diet, manage stress",
			RiskFactors: "High blood pressure, high cholesterol, smoking, diabetes, obesity",
			Statistics:  "1 in 5 deaths caused by heart disease",
		},
		"diabetes": {
			Topic:       "Diabetes",
			Fact:        "37.3 million Americans have diabetes",
			Prevention:  "Maintain healthy weight, exercise, healthy diet",
			RiskFactors: "Family history, obesity, age",
			Statistics:  "1 new case every 11 seconds",
		},
		"respiratory-health": {
			Topic:       "Respiratory Health",
			Fact:        "Chronic lower respiratory disease is the #3 cause of death",
			Prevention:  "Don't smoke, avoid air pollution, exercise",
			RiskFactors: "Smoking, air pollution, genetic factors",
			Statistics:  "6.2 million adults have chronic bronchitis",
		},
		"cancer": {
			Topic:       "Cancer Prevention",
			Fact:        "Cancer is the 2nd leading cause of death",
			Prevention:  "Avoid tobacco, limit alcohol, sun protection, screening",
			RiskFactors: "Tobacco, alcohol, sun exposure, family history",
			Statistics:  "1 in 3 Americans diagnosed with cancer in their lifetime",
		},
	}}
}

// Guideline implements domain.CDCSource. Lookups are case-insensitive and
// tolerate spaces or underscores in place of hyphens.
func (s *CDCSource) Guideline(topic string) (*domain.CDCGuideline, bool) {
	guideline, ok := s.guidelines[normalizeTopic(topic)]
	if !ok {
		return nil, false
	}
	return &guideline, true
}

func normalizeTopic(topic string) string {
	topic = strings.ToLower(strings.TrimSpace(topic))
	topic = strings.ReplaceAll(topic, " ", "-")
	return strings.ReplaceAll(topic, "_", "-")
}
