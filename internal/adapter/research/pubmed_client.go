package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"healthquiz/internal/domain"
)

// PubMedClient implements domain.PubMedClient against the NCBI E-utilities
// API (esearch + esummary). No API key is required for light use.
type PubMedClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPubMedClient creates a PubMed client. baseURL defaults to the public
// E-utilities endpoint when empty.
func NewPubMedClient(baseURL string, timeout time.Duration) *PubMedClient {
	if baseURL == "" {
		baseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &PubMedClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type esearchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type esummaryDoc struct {
	Title   string `json:"title"`
	Source  string `json:"source"`
	PubDate string `json:"pubdate"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
}

// Search implements domain.PubMedClient. It resolves article IDs for the
// query first, then fetches their summaries.
func (c *PubMedClient) Search(ctx context.Context, query string, limit int) ([]domain.PubMedArticle, error) {
	if limit <= 0 {
		limit = 5
	}

	ids, err := c.searchIDs(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.PubMedArticle{}, nil
	}
	return c.fetchSummaries(ctx, ids)
}

func (c *PubMedClient) searchIDs(ctx context.Context, query string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", query)
	params.Set("retmode", "json")
	params.Set("retmax", strconv.Itoa(limit))

	var result esearchResponse
	if err := c.getJSON(ctx, "/esearch.fcgi", params, &result); err != nil {
		return nil, err
	}
	return result.ESearchResult.IDList, nil
}

func (c *PubMedClient) fetchSummaries(ctx context.Context, ids []string) ([]domain.PubMedArticle, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "json")

	var result esummaryResponse
	if err := c.getJSON(ctx, "/esummary.fcgi", params, &result); err != nil {
		return nil, err
	}

	articles := make([]domain.PubMedArticle, 0, len(ids))
	for _, id := range ids {
		raw, ok := result.Result[id]
		if !ok {
			continue
		}
		var doc esummaryDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		articles = append(articles, domain.PubMedArticle{
			Title:   doc.Title,
			Authors: joinAuthors(doc.Authors),
			Journal: doc.Source,
			Year:    pubYear(doc.PubDate),
		})
	}
	return articles, nil
}

func (c *PubMedClient) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build PubMed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("PubMed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("PubMed returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode PubMed response: %w", err)
	}
	return nil
}

func joinAuthors(authors []struct {
	Name string `json:"name"`
}) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// pubYear extracts the year from a pubdate like "2024 Mar 5".
func pubYear(pubDate string) string {
	fields := strings.Fields(pubDate)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
