package infra

import "context"

type GenerationClientInterface interface {
	Generate(ctx context.Context, model, prompt, system string, temperature float64) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

var _ GenerationClientInterface = (*OllamaClient)(nil)
