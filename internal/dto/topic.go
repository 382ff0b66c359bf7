package dto

// TopicSectionResponse is one section of an education topic.
type TopicSectionResponse struct {
	Heading string   `json:"heading"`
	Items   []string `json:"items"`
}

// TopicResponse represents a health education topic in the API response.
type TopicResponse struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Category string                 `json:"category"`
	Overview string                 `json:"overview"`
	Sections []TopicSectionResponse `json:"sections"`
	Stats    string                 `json:"stats,omitempty"`
}

// TopicListItemResponse is the compact topic form used by list endpoints.
type TopicListItemResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// MythResponse represents one myth-vs-fact entry.
type MythResponse struct {
	ID    string `json:"id"`
	Claim string `json:"claim"`
	Truth string `json:"truth"`
}
