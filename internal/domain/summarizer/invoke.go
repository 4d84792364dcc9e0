package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/llm/chatgpt"
	"github.com/ashiskumarwork/SmartNotesAI-backend/pkg/metrics"
)

var (
	errAttemptTimeout = errors.New("completion attempt timed out")
	errMissingContent = errors.New("completion response has no choices[0].message.content")
)

type callResult struct {
	resp chatgpt.ChatCompletionResponse
	err  error
}

// boundedInvoke races one provider call against a timer. When the timer wins the
// call goroutine is abandoned: its result lands in a buffered channel nobody reads.
// Caller cancellation does not reach the call.
func boundedInvoke(ctx context.Context, client ChatClient, req CompletionRequest, timeout time.Duration) AttemptOutcome {
	done := make(chan callResult, 1)
	callCtx := context.WithoutCancel(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callResult{err: fmt.Errorf("completion call panicked: %v", r)}
			}
		}()
		resp, err := client.CreateChatCompletion(callCtx, req.chatRequest())
		done <- callResult{resp: resp, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		if res.err != nil {
			return classifyError(res.err, res.resp)
		}
		return validateResponse(res.resp)
	case <-timer.C:
		return AttemptOutcome{Kind: OutcomeTimeout, Err: errAttemptTimeout}
	}
}

// validateResponse accepts only a non-blank choices[0].message.content. No partial recovery.
func validateResponse(resp chatgpt.ChatCompletionResponse) AttemptOutcome {
	content, ok := resp.FirstContent()
	if !ok || strings.TrimSpace(content) == "" {
		return AttemptOutcome{Kind: OutcomeMalformedResponse, Err: errMissingContent, Raw: resp.Raw}
	}
	outcome := AttemptOutcome{Kind: OutcomeSuccess, Text: content, Raw: resp.Raw}
	if resp.Usage != nil {
		outcome.Usage = metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return outcome
}

func classifyError(err error, resp chatgpt.ChatCompletionResponse) AttemptOutcome {
	if errors.Is(err, chatgpt.ErrMalformedResponse) {
		return AttemptOutcome{Kind: OutcomeMalformedResponse, Err: err, Raw: resp.Raw}
	}
	return AttemptOutcome{Kind: OutcomeTransportError, Err: err}
}
