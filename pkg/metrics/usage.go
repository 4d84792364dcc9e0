package metrics

import (
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// TokenUsage captures LLM token counts used to satisfy a request.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens,omitempty"`
	TotalTokens      int `json:"totalTokens"`
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}

// TokenCounter estimates how many tokens a piece of text costs.
type TokenCounter interface {
	Count(text string) int
}

// EstimateUsage builds a TokenUsage from prompt and completion text.
func EstimateUsage(counter TokenCounter, prompt, completion string) TokenUsage {
	if counter == nil {
		return TokenUsage{}
	}
	usage := TokenUsage{
		PromptTokens:     counter.Count(prompt),
		CompletionTokens: counter.Count(completion),
	}
	usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
	return usage
}

// TiktokenCounter counts tokens with the BPE encoding of the configured model.
// The encoding is resolved lazily because tiktoken may fetch vocabulary files on first use.
type TiktokenCounter struct {
	model  string
	logger *slog.Logger

	once sync.Once
	enc  *tiktoken.Tiktoken
}

// NewTiktokenCounter constructs a counter for the model.
func NewTiktokenCounter(model string, logger *slog.Logger) *TiktokenCounter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TiktokenCounter{model: model, logger: logger.With("component", "metrics.tiktoken")}
}

// Count returns the token count, or a chars/4 estimate when no encoding is available.
func (c *TiktokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	c.once.Do(c.load)
	if c.enc == nil {
		return approxTokens(text)
	}
	return len(c.enc.Encode(text, nil, nil))
}

func (c *TiktokenCounter) load() {
	enc, err := tiktoken.EncodingForModel(c.model)
	if err == nil {
		c.enc = enc
		return
	}
	enc, err = tiktoken.GetEncoding(fallbackEncoding)
	if err != nil {
		c.logger.Warn("tiktoken encoding unavailable, using estimate", "model", c.model, "error", err)
		return
	}
	c.enc = enc
}

func approxTokens(text string) int {
	n := (len(text) + 3) / 4
	if n == 0 {
		return 1
	}
	return n
}

var _ TokenCounter = (*TiktokenCounter)(nil)
