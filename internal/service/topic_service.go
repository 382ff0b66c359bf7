package service

import (
	"sort"

	"healthquiz/internal/domain"
	"healthquiz/internal/dto"
)

// TopicService defines the interface for education topic and myth lookups
type TopicService interface {
	ListTopics() ([]dto.TopicListItemResponse, error)
	GetTopic(topicID string) (*dto.TopicResponse, error)
	ListMyths() ([]dto.MythResponse, error)
	GetMyth(mythID string) (*dto.MythResponse, error)
}

// topicService implements TopicService over the curated content set.
type topicService struct {
	topics    []domain.Topic
	byID      map[string]domain.Topic
	myths     []domain.Myth
	mythsByID map[string]domain.Myth
}

// NewTopicService creates a new instance of topicService. Topics and myths
// are indexed once; the service is read-only afterwards.
func NewTopicService(topics []domain.Topic, myths []domain.Myth) TopicService {
	byID := make(map[string]domain.Topic, len(topics))
	for _, t := range topics {
		byID[t.ID] = t
	}
	mythsByID := make(map[string]domain.Myth, len(myths))
	for _, m := range myths {
		mythsByID[m.ID] = m
	}
	return &topicService{topics: topics, byID: byID, myths: myths, mythsByID: mythsByID}
}

// ListTopics implements TopicService. Topics are returned sorted by title.
func (s *topicService) ListTopics() ([]dto.TopicListItemResponse, error) {
	items := make([]dto.TopicListItemResponse, 0, len(s.topics))
	for _, t := range s.topics {
		items = append(items, dto.TopicListItemResponse{
			ID:       t.ID,
			Title:    t.Title,
			Category: string(t.Category),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Title < items[j].Title })
	return items, nil
}

// GetTopic implements TopicService
func (s *topicService) GetTopic(topicID string) (*dto.TopicResponse, error) {
	topic, ok := s.byID[topicID]
	if !ok {
		return nil, domain.NewTopicNotFoundError(topicID)
	}

	sections := make([]dto.TopicSectionResponse, 0, len(topic.Sections))
	for _, section := range topic.Sections {
		sections = append(sections, dto.TopicSectionResponse{
			Heading: section.Heading,
			Items:   section.Items,
		})
	}

	return &dto.TopicResponse{
		ID:       topic.ID,
		Title:    topic.Title,
		Category: string(topic.Category),
		Overview: topic.Overview,
		Sections: sections,
		Stats:    topic.Stats,
	}, nil
}

// ListMyths implements TopicService
func (s *topicService) ListMyths() ([]dto.MythResponse, error) {
	myths := make([]dto.MythResponse, 0, len(s.myths))
	for _, m := range s.myths {
		myths = append(myths, dto.MythResponse{ID: m.ID, Claim: m.Claim, Truth: m.Truth})
	}
	return myths, nil
}

// GetMyth implements TopicService
func (s *topicService) GetMyth(mythID string) (*dto.MythResponse, error) {
	myth, ok := s.mythsByID[mythID]
	if !ok {
		return nil, domain.NewMythNotFoundError(mythID)
	}
	return &dto.MythResponse{ID: myth.ID, Claim: myth.Claim, Truth: myth.Truth}, nil
}
