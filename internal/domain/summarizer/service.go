package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/llm/chatgpt"
	apperrors "github.com/ashiskumarwork/SmartNotesAI-backend/pkg/errors"
	"github.com/ashiskumarwork/SmartNotesAI-backend/pkg/metrics"
)

const (
	opBeautify  = "beautify"
	opSummarize = "summarize"

	msgNoContent      = "No content provided"
	msgNoText         = "No text provided"
	msgBeautifyFailed = "AI beautification failed. Please try again."
	msgBeautifyDown   = "AI service unavailable. Please try again later."
	msgSummarizeBusy  = "The AI service is currently busy or slow. Please try again in a few moments."
	msgPipelinePanic  = "The AI service is currently unavailable. Please try again later."

	defaultTimeout    = 12 * time.Second
	defaultRetryDelay = 1200 * time.Millisecond
)

// Service exposes the beautify and summarize pipelines.
type Service interface {
	Beautify(ctx context.Context, req BeautifyRequest) (BeautifyResponse, error)
	Summarize(ctx context.Context, req SummarizeRequest) (SummaryResult, error)
}

// ChatClient is the completion provider boundary.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

type service struct {
	cfg      Config
	client   ChatClient
	retry    retryCoordinator
	recorder *metrics.Recorder
	counter  metrics.TokenCounter
	logger   *slog.Logger
}

// NewService is a wire provider for the summarizer domain.
func NewService(cfg Config, client ChatClient, recorder *metrics.Recorder, counter metrics.TokenCounter, logger *slog.Logger) Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	s := &service{
		cfg:      cfg,
		client:   client,
		retry:    newRetryCoordinator(cfg.RetryDelay),
		recorder: recorder,
		counter:  counter,
		logger:   logger.With("component", "summarizer.service"),
	}
	s.retry.onRetry = func(first AttemptOutcome) {
		s.logger.Warn("completion attempt failed, retrying", "outcome", first.Kind.String(), "delay_ms", cfg.RetryDelay.Milliseconds(), "error", first.Err)
	}
	return s
}

// Beautify makes a single bounded attempt and returns the generated text verbatim.
func (s *service) Beautify(ctx context.Context, req BeautifyRequest) (resp BeautifyResponse, err error) {
	defer s.recoverTerminal(opBeautify, &err)

	if isBlank(req.Content) {
		return BeautifyResponse{}, apperrors.Wrap("invalid_input", msgNoContent, nil)
	}

	creq := s.newRequest(s.cfg.BeautifyPrompt, req.Content)
	outcome := s.invoke(ctx, opBeautify, creq)
	s.recorder.ObserveResult(opBeautify, outcome.Kind.String(), 1)

	switch outcome.Kind {
	case OutcomeSuccess:
		s.observeUsage(opBeautify, creq, outcome)
		return BeautifyResponse{Result: outcome.Text}, nil
	case OutcomeMalformedResponse:
		s.logger.Error("beautify response malformed", "error", outcome.Err)
		return BeautifyResponse{}, apperrors.WithDetails("llm_malformed", msgBeautifyFailed, outcome.Err, rawDetails(outcome))
	default:
		s.logger.Error("beautify failed", "outcome", outcome.Kind.String(), "error", outcome.Err)
		return BeautifyResponse{}, apperrors.Wrap("llm_unavailable", msgBeautifyDown, outcome.Err)
	}
}

// Summarize drives the retry coordinator and segments the terminal success.
func (s *service) Summarize(ctx context.Context, req SummarizeRequest) (result SummaryResult, err error) {
	defer s.recoverTerminal(opSummarize, &err)

	if isBlank(req.Text) {
		return SummaryResult{}, apperrors.Wrap("invalid_input", msgNoText, nil)
	}

	creq := s.newRequest(s.cfg.SummarizePrompt, req.Text)
	outcome, attempts := s.retry.run(func() AttemptOutcome {
		return s.invoke(ctx, opSummarize, creq)
	})
	s.recorder.ObserveResult(opSummarize, outcome.Kind.String(), attempts)

	if !outcome.Succeeded() {
		s.logger.Error("summarize failed", "outcome", outcome.Kind.String(), "attempts", attempts, "error", outcome.Err)
		return SummaryResult{}, apperrors.Wrap("llm_unavailable", msgSummarizeBusy, outcome.Err)
	}

	s.observeUsage(opSummarize, creq, outcome)
	s.logger.Debug("summary generated", "attempts", attempts, "content", outcome.Text)
	return Segment(outcome.Text), nil
}

func (s *service) invoke(ctx context.Context, op string, req CompletionRequest) AttemptOutcome {
	start := time.Now()
	outcome := boundedInvoke(ctx, s.client, req, s.cfg.Timeout)
	s.recorder.ObserveAttempt(op, outcome.Kind.String(), time.Since(start))
	return outcome
}

func (s *service) newRequest(prompt, content string) CompletionRequest {
	return CompletionRequest{
		SystemPrompt: prompt,
		UserContent:  content,
		Model:        s.cfg.Model,
		Temperature:  s.cfg.Temperature,
	}
}

// observeUsage prefers provider reported usage and falls back to a local estimate.
func (s *service) observeUsage(op string, req CompletionRequest, outcome AttemptOutcome) {
	usage := outcome.Usage
	if usage.IsZero() {
		usage = metrics.EstimateUsage(s.counter, req.SystemPrompt+"\n"+req.UserContent, outcome.Text)
	}
	if usage.IsZero() {
		return
	}
	s.recorder.ObserveUsage(op, usage)
	s.logger.Debug("completion usage", "operation", op, "prompt_tokens", usage.PromptTokens, "completion_tokens", usage.CompletionTokens)
}

// recoverTerminal turns a panic anywhere in the pipeline into the generic unavailable error,
// so every call ends with exactly one result.
func (s *service) recoverTerminal(op string, err *error) {
	if r := recover(); r != nil {
		s.logger.Error("completion pipeline panicked", "operation", op, "panic", r)
		*err = apperrors.Wrap("llm_unavailable", msgPipelinePanic, fmt.Errorf("panic: %v", r))
	}
}

func rawDetails(outcome AttemptOutcome) any {
	if len(outcome.Raw) == 0 {
		return nil
	}
	return outcome.Raw
}

// isBlank only gates the request; the submitted text is forwarded unmodified.
func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
