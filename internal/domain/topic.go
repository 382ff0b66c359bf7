package domain

// TopicSection is one named block of facts inside a health topic, e.g.
// symptoms, prevention tips or screening guidance.
type TopicSection struct {
	Heading string   `json:"heading"`
	Items   []string `json:"items"`
}

// Topic is one static health-education article. Topics are authored
// content, loaded once and immutable for the life of the process.
type Topic struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Category Category       `json:"category"`
	Overview string         `json:"overview"`
	Sections []TopicSection `json:"sections"`
	Stats    string         `json:"stats"`
}

// Validate validates the topic content.
func (t *Topic) Validate() error {
	if t.ID == "" {
		return NewInvalidInputError("topic id is required")
	}
	if t.Title == "" {
		return NewInvalidInputError("topic title is required")
	}
	if !t.Category.IsValid() {
		return NewInvalidCategoryError(string(t.Category))
	}
	if t.Overview == "" {
		return NewInvalidInputError("topic overview is required")
	}
	return nil
}

// Myth pairs a common health misconception with the evidence-based truth.
type Myth struct {
	ID    string `json:"id"`
	Claim string `json:"claim"`
	Truth string `json:"truth"`
}
