package domain

import "context"

// PubMedArticle is one research article reference returned by PubMed.
type PubMedArticle struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Journal string `json:"journal"`
	Year    string `json:"year"`
}

// CDCGuideline is a curated CDC prevention summary for a health topic.
type CDCGuideline struct {
	Topic       string `json:"topic"`
	Fact        string `json:"fact"`
	Prevention  string `json:"prevention"`
	RiskFactors string `json:"risk_factors"`
	Statistics  string `json:"statistics"`
}

// NIHResource points at a National Institutes of Health program for a topic.
type NIHResource struct {
	Topic     string   `json:"topic"`
	Institute string   `json:"institute"`
	Services  []string `json:"services"`
	Website   string   `json:"website"`
}

// PubMedClient defines the port for PubMed article search.
type PubMedClient interface {
	Search(ctx context.Context, query string, limit int) ([]PubMedArticle, error)
}

// CDCSource defines the port for CDC guideline lookups.
type CDCSource interface {
	Guideline(topic string) (*CDCGuideline, bool)
}

// NIHSource defines the port for NIH resource lookups.
type NIHSource interface {
	Resource(topic string) (*NIHResource, bool)
}
