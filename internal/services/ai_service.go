package services

import (
	"context"
	"errors"
	"fmt"

	"order-assistant/internal/domain"
	"order-assistant/internal/infra"
	"order-assistant/internal/prompt"
	"order-assistant/internal/repository"
)

// ErrGenerationFailed covers every backend failure mode: unreachable,
// timed out, bad status, malformed response. Callers map it to 502 and
// never retry.
var ErrGenerationFailed = errors.New("generation failed")

const (
	summaryTemperature = 0.2
	emailTemperature   = 0.3
	chatTemperature    = 0.4
)

const summarySystem = "You are a concise assistant. Use only provided order data. Do not invent missing information."

const emailSystem = "You are a professional e-commerce customer support agent, " +
	"use only provided data and never invent tracking numbers or delivery dates"

type AIService struct {
	repo  repository.OrderRepository
	llm   infra.GenerationClientInterface
	model string
}

func NewAIService(r repository.OrderRepository, llm infra.GenerationClientInterface, model string) *AIService {
	return &AIService{repo: r, llm: llm, model: model}
}

func (s *AIService) getOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// SummarizeOrder generates a very short Italian summary of the order.
func (s *AIService) SummarizeOrder(ctx context.Context, id uint64) (string, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return "", err
	}

	userPrompt := fmt.Sprintf(`Summarize this e-commerce order in Italian language using 5-8 words
Include: items, quantities, destination city/country, and current shipping status

ORDER:
%s`, prompt.FormatOrder(order))

	text, err := s.llm.Generate(ctx, s.model, userPrompt, summarySystem, summaryTemperature)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return text, nil
}

// DraftStatusEmail generates an Italian status email for the order.
// Unrecognized stages fall back to "shipped".
func (s *AIService) DraftStatusEmail(ctx context.Context, id uint64, stage string) (subject, body string, err error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return "", "", err
	}

	switch stage {
	case "received", "shipped", "delayed":
	default:
		stage = "shipped"
	}

	userPrompt := fmt.Sprintf(`Write an email in Italian to the customer describing their order
Stage: %s

Rules:
1) max 120 words
2) formal tone
3) if tracking number is missing, say it will be shared when available
4) include the order number

ORDER:
%s`, stage, prompt.FormatOrder(order))

	text, err := s.llm.Generate(ctx, s.model, userPrompt, emailSystem, emailTemperature)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return "Aggiornamento ordine " + order.OrderNumber, text, nil
}

// SupportReply answers a customer message about the order, in the resolved
// language and tone, grounded on the order data alone.
func (s *AIService) SupportReply(ctx context.Context, orderID uint64, message, language, tone string) (string, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	sysLang := "Italian"
	if language == "en" {
		sysLang = "English"
	}

	system := fmt.Sprintf(`You are a customer support assistant for an e-commerce seller
Language: %s
Tone: %s

Constraints:
1) use ONLY the order data provided
2) if the customer asks something not present, say you don't have that information
3) suggest next steps
4) NEVER invent tracking numbers and delivery dates`, sysLang, tone)

	userPrompt := fmt.Sprintf(`Customer message:
%s

Order data:
%s

Reply as customer support:`, message, prompt.FormatOrder(order))

	text, err := s.llm.Generate(ctx, s.model, userPrompt, system, chatTemperature)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return text, nil
}
