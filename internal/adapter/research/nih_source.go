package research

import "healthquiz/internal/domain"

// NIHSource implements domain.NIHSource over a curated set of NIH
// institute pointers.
type NIHSource struct {
	resources map[string]domain.NIHResource
}

// NewNIHSource creates a source preloaded with the curated resource set.
func NewNIHSource() *NIHSource {
	return &NIHSource{resources: map[string]domain.NIHResource{
		"mental-wellness": {
			Topic:     "Mental Wellness",
			Institute: "National Institute of Mental Health (NIMH)",
			Services:  []string{"Therapy", "Counseling", "Support groups", "Crisis helpline"},
			Website:   "nimh.nih.gov",
		},
		"nutrition": {
			Topic:     "Nutrition",
			Institute: "National Institute of Diabetes and Digestive and Kidney Diseases",
			Services:  []string{"Nutrition guides", "Meal planning", "Dietary research"},
			Website:   "niddk.nih.gov",
		},
		"aging": {
			Topic:     "Healthy Aging",
			Institute: "National Institute on Aging",
			Services:  []string{"Senior health info", "Cognitive health", "Caregiving resources"},
			Website:   "nia.nih.gov",
		},
	}}
}

// Resource implements domain.NIHSource.
func (s *NIHSource) Resource(topic string) (*domain.NIHResource, bool) {
	resource, ok := s.resources[normalizeTopic(topic)]
	if !ok {
		return nil, false
	}
	return &resource, true
}
