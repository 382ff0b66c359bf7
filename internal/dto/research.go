package dto

// ArticleResponse represents one PubMed article in the API response.
type ArticleResponse struct {
	Title   string `json:"title"`
	Authors string `json:"authors,omitempty"`
	Journal string `json:"journal,omitempty"`
	Year    string `json:"year,omitempty"`
}

// GuidelineResponse represents a curated CDC summary in the API response.
type GuidelineResponse struct {
	Topic       string `json:"topic"`
	Fact        string `json:"fact"`
	Prevention  string `json:"prevention"`
	RiskFactors string `json:"risk_factors"`
	Statistics  string `json:"statistics"`
}

// ResourceResponse represents an NIH program in the API response.
type ResourceResponse struct {
	Topic     string   `json:"topic"`
	Institute string   `json:"institute"`
	Services  []string `json:"services"`
	Website   string   `json:"website"`
}

// ResearchResponse is the combined result of a research lookup.
type ResearchResponse struct {
	Query     string             `json:"query"`
	Articles  []ArticleResponse  `json:"articles"`
	Guideline *GuidelineResponse `json:"guideline,omitempty"`
	Resource  *ResourceResponse  `json:"resource,omitempty"`
}
