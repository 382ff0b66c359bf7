package handler

import (
	"healthquiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TopicHandler handles education topic and myth HTTP requests
type TopicHandler struct {
	service service.TopicService
}

// NewTopicHandler creates a new TopicHandler instance
func NewTopicHandler(service service.TopicService) *TopicHandler {
	return &TopicHandler{service: service}
}

// ListTopics godoc
// @Summary List education topics
// @Tags topics
// @Produce json
// @Success 200 {array} dto.TopicListItemResponse
// @Router /topics [get]
func (h *TopicHandler) ListTopics(c *fiber.Ctx) error {
	topics, err := h.service.ListTopics()
	if err != nil {
		return err
	}
	return c.JSON(topics)
}

// GetTopic godoc
// @Summary Get one education topic
// @Tags topics
// @Produce json
// @Param topicID path string true "Topic ID"
// @Success 200 {object} dto.TopicResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /topics/{topicID} [get]
func (h *TopicHandler) GetTopic(c *fiber.Ctx) error {
	topic, err := h.service.GetTopic(c.Params("topicID"))
	if err != nil {
		return err
	}
	return c.JSON(topic)
}

// ListMyths godoc
// @Summary List health myths
// @Tags myths
// @Produce json
// @Success 200 {array} dto.MythResponse
// @Router /myths [get]
func (h *TopicHandler) ListMyths(c *fiber.Ctx) error {
	myths, err := h.service.ListMyths()
	if err != nil {
		return err
	}
	return c.JSON(myths)
}

// GetMyth godoc
// @Summary Get one health myth
// @Tags myths
// @Produce json
// @Param mythID path string true "Myth ID"
// @Success 200 {object} dto.MythResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /myths/{mythID} [get]
func (h *TopicHandler) GetMyth(c *fiber.Ctx) error {
	myth, err := h.service.GetMyth(c.Params("mythID"))
	if err != nil {
		return err
	}
	return c.JSON(myth)
}
