package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/qiscet/campusbot/internal/model/chat"
	"github.com/qiscet/campusbot/internal/service/status"
)

func TestBuildContentsAppendsUserTurn(t *testing.T) {
	history := []chat.Turn{
		{Role: "user", Text: "Is the library open?"},
		{Role: "model", Text: "The library quiet zone is moderately busy right now."},
	}

	contents := buildContents("What bus goes to Ongole?", history)
	require.Len(t, contents, len(history)+1)

	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "Is the library open?", contents[0].Parts[0].Text)
	assert.Equal(t, "model", contents[1].Role)

	last := contents[len(contents)-1]
	assert.Equal(t, string(genai.RoleUser), last.Role)
	require.Len(t, last.Parts, 1)
	assert.Equal(t, "What bus goes to Ongole?", last.Parts[0].Text)
}

func TestBuildContentsEmptyHistory(t *testing.T) {
	contents := buildContents("hello", nil)
	require.Len(t, contents, 1)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
}

func TestFirstCandidateText(t *testing.T) {
	assert.Empty(t, firstCandidateText(nil))
	assert.Empty(t, firstCandidateText(&genai.GenerateContentResponse{}))
	assert.Empty(t, firstCandidateText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))
	assert.Empty(t, firstCandidateText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: "Bus 12 runs to Ongole."}, {Text: "ignored"}},
			},
		}},
	}
	assert.Equal(t, "Bus 12 runs to Ongole.", firstCandidateText(resp))
}

func TestExtractSourcesFiltersIncompleteCitations(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "answer"}}},
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{Web: &genai.GroundingChunkWeb{URI: "https://qiscet.edu.in/admissions", Title: "Admissions"}},
					{Web: &genai.GroundingChunkWeb{URI: "https://example.com/untitled"}}, // no title
					{Web: &genai.GroundingChunkWeb{Title: "No link"}},                    // no URI
					nil,
					{},
					{Web: &genai.GroundingChunkWeb{URI: "https://jntuk.edu.in", Title: "JNTUK"}},
				},
			},
		}},
	}

	sources := extractSources(resp)
	require.Len(t, sources, 2)
	assert.Equal(t, chat.Source{URI: "https://qiscet.edu.in/admissions", Title: "Admissions"}, sources[0])
	assert.Equal(t, chat.Source{URI: "https://jntuk.edu.in", Title: "JNTUK"}, sources[1])
}

func TestExtractSourcesMissingMetadata(t *testing.T) {
	assert.Empty(t, extractSources(nil))
	assert.Empty(t, extractSources(&genai.GenerateContentResponse{}))
	assert.Empty(t, extractSources(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	}))
	// Non-nil, never nil slice: the JSON response must say "sources":[].
	assert.NotNil(t, extractSources(nil))
}

func TestBuildSystemPrompt(t *testing.T) {
	statusSvc := status.NewServiceWithClock(func() time.Time {
		return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	})

	prompt := buildSystemPrompt("Route 12: Ongole Bus Stand -> QISCET Campus", statusSvc.Current().PromptBlock())

	assert.Contains(t, prompt, "QIS Bot, the official AI Admissions Counselor")
	assert.Contains(t, prompt, "TRANSPORTATION DATA")
	assert.Contains(t, prompt, "Route 12: Ongole Bus Stand -> QISCET Campus")
	assert.Contains(t, prompt, "CURRENT CAMPUS STATUS")
	assert.Contains(t, prompt, `"AI Lab 301 Occupancy": "High (85% occupied)"`)
}
