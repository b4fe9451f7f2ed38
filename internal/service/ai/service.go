// Package ai gates all access to the Gemini API: it assembles the
// system instruction, translates browser-held history into API turns,
// performs the single generate call, and extracts answer text plus
// grounding sources.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/qiscet/campusbot/internal/config"
	"github.com/qiscet/campusbot/internal/model/chat"
	"github.com/qiscet/campusbot/internal/service/status"
)

// ErrEmptyResponse reports that the API call succeeded but carried no
// usable answer text.
var ErrEmptyResponse = errors.New("API returned an empty text response")

// Responder generates one assistant reply per user message. Handlers
// depend on this interface so tests can substitute a fake.
type Responder interface {
	Reply(ctx context.Context, message string, history []chat.Turn) (*chat.Reply, error)
}

// Service is the Gemini-backed Responder. It is stateless across
// requests; the client handle and static data are read-only after
// construction.
type Service struct {
	client      *genai.Client
	model       string
	temperature *float64
	transport   string
	status      *status.Service
}

// NewService constructs the Gemini client. Construction failure is not
// fatal to the process: the router short-circuits chat requests while
// the service is nil.
func NewService(ctx context.Context, cfg config.AIConfig, transportData string, statusSvc *status.Service) (*Service, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Service{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		transport:   transportData,
		status:      statusSvc,
	}, nil
}

// Reply performs one synchronous generate call with the Google Search
// tool enabled. No retries; the user controls retry by resubmitting.
func (s *Service) Reply(ctx context.Context, message string, history []chat.Turn) (*chat.Reply, error) {
	system := buildSystemPrompt(s.transport, s.status.Current().PromptBlock())

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(system)},
		},
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
	if s.temperature != nil {
		cfg.Temperature = genai.Ptr(float32(*s.temperature))
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, buildContents(message, history), cfg)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := firstCandidateText(resp)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	reply := &chat.Reply{
		Response: text,
		Sources:  extractSources(resp),
	}
	log.Printf("[ai] generated reply, length=%d, sources=%d", len(reply.Response), len(reply.Sources))
	return reply, nil
}

// buildContents translates the browser history into API turns in order
// and appends the new user message as the final turn.
func buildContents(message string, history []chat.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, genai.NewContentFromText(turn.Text, genai.Role(turn.Role)))
	}
	return append(contents, genai.NewContentFromText(message, genai.RoleUser))
}

// firstCandidateText pulls the answer from the first candidate's first
// content part. Empty string means no usable answer.
func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	return content.Parts[0].Text
}

// extractSources collects web citations from the grounding metadata.
// Malformed or missing metadata degrades to no sources, never an error.
// Chunks lacking a URI or title are skipped; order is preserved.
func extractSources(resp *genai.GenerateContentResponse) []chat.Source {
	sources := make([]chat.Source, 0)
	if resp == nil || len(resp.Candidates) == 0 {
		return sources
	}

	metadata := resp.Candidates[0].GroundingMetadata
	if metadata == nil {
		return sources
	}

	for _, chunk := range metadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		if chunk.Web.URI == "" || chunk.Web.Title == "" {
			continue
		}
		sources = append(sources, chat.Source{
			URI:   chunk.Web.URI,
			Title: chunk.Web.Title,
		})
	}
	return sources
}
