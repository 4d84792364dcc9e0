package summarizer

import (
	"encoding/json"
	"time"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/llm/chatgpt"
	"github.com/ashiskumarwork/SmartNotesAI-backend/pkg/metrics"
)

// Config configures the completion pipeline.
type Config struct {
	Model           string
	Temperature     float32
	BeautifyPrompt  string
	SummarizePrompt string
	// Timeout bounds a single attempt.
	Timeout time.Duration
	// RetryDelay is the pause between the first failed summarize attempt and the retry.
	// Zero selects the 1.2s default, like a zero Timeout.
	RetryDelay time.Duration
}

// BeautifyRequest is the incoming beautify payload.
type BeautifyRequest struct {
	Content string `json:"content"`
}

// BeautifyResponse carries the reformatted notes verbatim.
type BeautifyResponse struct {
	Result string `json:"result"`
}

// SummarizeRequest is the incoming summarize payload.
type SummarizeRequest struct {
	Text string `json:"text"`
}

// SummaryResult is the segmented model output. Takeaways is never nil.
type SummaryResult struct {
	SummaryText string   `json:"summaryText"`
	Takeaways   []string `json:"takeaways"`
}

// CompletionRequest is one immutable provider request. Retries resend the same value.
type CompletionRequest struct {
	SystemPrompt string
	UserContent  string
	Model        string
	Temperature  float32
}

func (r CompletionRequest) chatRequest() chatgpt.ChatCompletionRequest {
	return chatgpt.ChatCompletionRequest{
		Model: r.Model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: r.SystemPrompt},
			{Role: "user", Content: r.UserContent},
		},
		Temperature: r.Temperature,
	}
}

// OutcomeKind classifies a single attempt.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeTimeout
	OutcomeTransportError
	OutcomeMalformedResponse
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// AttemptOutcome is produced once per attempt and never mutated.
type AttemptOutcome struct {
	Kind OutcomeKind
	// Text is the generated text; set only on success.
	Text string
	Err  error
	// Raw is the provider body when one was received.
	Raw json.RawMessage
	// Usage is the provider reported usage, zero when absent.
	Usage metrics.TokenUsage
}

// Succeeded reports whether the attempt produced validated text.
func (o AttemptOutcome) Succeeded() bool {
	return o.Kind == OutcomeSuccess
}
