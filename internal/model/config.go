package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the full notesift configuration.
// Hierarchy (highest to lowest priority): CLI flags, NOTESIFT_* environment
// variables, ~/.notesift/config.yaml, built-in defaults.
type Config struct {
	Classifier  ClassifierConfig  `yaml:"classifier" mapstructure:"classifier"`
	NLP         NLPConfig         `yaml:"nlp" mapstructure:"nlp"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
}

// ClassifierConfig holds the pattern-rule keyword lists and tie-break order.
// The lists are illustrative defaults, not a fixed contract; edit them in
// the config file to tune extraction for your team's note-taking style.
type ClassifierConfig struct {
	// Priority is the tie-break order when several rules match one sentence.
	// First match wins.
	Priority []string `yaml:"priority" mapstructure:"priority"`

	ActionKeywords   []string `yaml:"action_keywords" mapstructure:"action_keywords"`
	DecisionKeywords []string `yaml:"decision_keywords" mapstructure:"decision_keywords"`
	QuestionKeywords []string `yaml:"question_keywords" mapstructure:"question_keywords"`
}

// NLPConfig holds NLP provider configuration.
// An empty Provider means pattern-based classification only.
type NLPConfig struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for OpenAI/Anthropic (prefer env vars OPENAI_API_KEY / ANTHROPIC_API_KEY)
	APIKey string `yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Timeout for API requests in seconds
	Timeout int `yaml:"timeout" mapstructure:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`

	// Proxy settings
	HTTPProxy  string `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy    string `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// CacheConfig controls the analysis-result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"` // Empty means ~/.notesift/cache
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	// Theme names the terminal palette: "light", "dark", or "none"
	Theme         string `yaml:"theme" mapstructure:"theme"`
	Verbose       bool   `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool   `yaml:"include_footer" mapstructure:"include_footer"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	// Workers is the number of documents analyzed in parallel by `notesift batch`
	Workers int `yaml:"workers" mapstructure:"workers"`

	// NLPRequestsPerSecond rate-limits provider calls during batch runs
	NLPRequestsPerSecond float64 `yaml:"nlp_requests_per_second" mapstructure:"nlp_requests_per_second"`
	NLPBurst             int     `yaml:"nlp_burst" mapstructure:"nlp_burst"`

	// NLPProviderRates overrides the request rate per provider name,
	// e.g. {"anthropic": 0.5} to slow one API below the default
	NLPProviderRates map[string]float64 `yaml:"nlp_provider_rates,omitempty" mapstructure:"nlp_provider_rates"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			Priority: []string{
				string(CategoryActionItem),
				string(CategoryDecision),
				string(CategoryOpenQuestion),
			},
			ActionKeywords: []string{
				"will", "should", "must", "need to", "have to", "going to",
				"todo", "action", "task", "assign", "responsible",
				"follow up", "next step", "deliverable", "owner",
			},
			DecisionKeywords: []string{
				"decided", "agreed", "resolved", "concluded", "determined",
				"approved", "confirmed", "decision", "agreement", "conclusion",
			},
			QuestionKeywords: []string{
				"question", "unclear", "unsure", "wondering", "tbd",
				"need clarification", "open item",
			},
		},
		NLP: NLPConfig{
			Provider:  "", // Disabled by default; pattern rules only
			Timeout:   30,
			MaxTokens: 1000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			Theme:         "light",
			IncludeFooter: true,
		},
		Concurrency: ConcurrencyConfig{
			Workers:              4,
			NLPRequestsPerSecond: 2,
			NLPBurst:             2,
		},
	}
}

// CacheDir resolves the cache directory, defaulting to ~/.notesift/cache
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "notesift-cache")
	}
	return filepath.Join(home, ".notesift", "cache")
}
