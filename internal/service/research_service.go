package service

import (
	"context"

	"healthquiz/internal/config"
	"healthquiz/internal/domain"
	"healthquiz/internal/dto"
	"healthquiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ResearchService defines the interface for health research lookups
type ResearchService interface {
	Lookup(ctx context.Context, query string) (*dto.ResearchResponse, error)
}

// researchService fans a lookup out to PubMed, the CDC guideline set and
// the NIH resource set. The curated sources are optional extras; PubMed is
// the primary one.
type researchService struct {
	pubmed domain.PubMedClient
	cdc    domain.CDCSource
	nih    domain.NIHSource
	cfg    *config.Config
}

// NewResearchService creates a new instance of researchService
func NewResearchService(pubmed domain.PubMedClient, cdc domain.CDCSource, nih domain.NIHSource, cfg *config.Config) ResearchService {
	return &researchService{pubmed: pubmed, cdc: cdc, nih: nih, cfg: cfg}
}

// Lookup implements ResearchService. The three sources are queried
// concurrently. A PubMed failure degrades to curated results only; the
// lookup fails when no source produced anything.
func (s *researchService) Lookup(ctx context.Context, query string) (*dto.ResearchResponse, error) {
	var (
		articles  []domain.PubMedArticle
		pubmedErr error
		guideline *domain.CDCGuideline
		resource  *domain.NIHResource
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		articles, pubmedErr = s.pubmed.Search(gctx, query, s.cfg.Research.MaxResults)
		return nil
	})
	g.Go(func() error {
		guideline, _ = s.cdc.Guideline(query)
		return nil
	})
	g.Go(func() error {
		resource, _ = s.nih.Resource(query)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("research lookup failed", err)
	}

	if pubmedErr != nil {
		logger.Get().Warn("pubmed search failed, returning curated results only",
			zap.Error(pubmedErr),
			zap.String("query", query))
		if guideline == nil && resource == nil {
			return nil, domain.NewResearchUnavailableError("pubmed", pubmedErr)
		}
	}

	resp := &dto.ResearchResponse{
		Query:    query,
		Articles: make([]dto.ArticleResponse, 0, len(articles)),
	}
	for _, a := range articles {
		resp.Articles = append(resp.Articles, dto.ArticleResponse{
			Title:   a.Title,
			Authors: a.Authors,
			Journal: a.Journal,
			Year:    a.Year,
		})
	}
	if guideline != nil {
		resp.Guideline = &dto.GuidelineResponse{
			Topic:       guideline.Topic,
			Fact:        guideline.Fact,
			Prevention:  guideline.Prevention,
			RiskFactors: guideline.RiskFactors,
			Statistics:  guideline.Statistics,
		}
	}
	if resource != nil {
		resp.Resource = &dto.ResourceResponse{
			Topic:     resource.Topic,
			Institute: resource.Institute,
			Services:  resource.Services,
			Website:   resource.Website,
		}
	}
	return resp, nil
}
