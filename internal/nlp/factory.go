package nlp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notesift/notesift/internal/model"
)

// ErrUnknownProvider marks a provider name the factory does not recognize.
// It is a configuration mistake, unlike a provider that is merely
// unavailable (missing credentials, unreachable endpoint).
var ErrUnknownProvider = errors.New("unknown NLP provider")

// NewProvider creates a new NLP provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - return nil (NLP disabled)
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: %s (supported: openai, anthropic, ollama)", ErrUnknownProvider, config.Provider)
	}
}

// ConfigFromModel converts model.NLPConfig to nlp.Config
func ConfigFromModel(modelConfig model.NLPConfig) Config {
	return Config{
		Provider:   modelConfig.Provider,
		Model:      modelConfig.Model,
		APIKey:     modelConfig.APIKey,
		BaseURL:    modelConfig.BaseURL,
		Timeout:    modelConfig.Timeout,
		MaxTokens:  modelConfig.MaxTokens,
		HTTPProxy:  modelConfig.HTTPProxy,
		HTTPSProxy: modelConfig.HTTPSProxy,
		NoProxy:    modelConfig.NoProxy,
	}
}
