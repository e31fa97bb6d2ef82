// README: Gemini-backed implementation of the Generator contract.
package ai

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator is the outbound contract to the generation service. It keeps
// the planning pipeline testable and the provider swappable.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (*RawResponse, error)
}

// GeminiProvider implements Generator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider initializes a new Gemini client. An empty apiKey is a
// configuration error and no call is ever attempted with it.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, newAPIError(CodeMissingAPIKey, 500,
			"GEMINI_API_KEY is missing. Set it in the environment before starting the server.", nil)
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(strings.TrimSpace(apiKey)))
	if err != nil {
		return nil, classify(err)
	}
	return &GeminiProvider{client: client}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Generate issues one generation call and flattens the reply into a
// RawResponse. Search grounding is prompt-level with this SDK: grounded
// requests carry the search instruction in their prompt text, and
// UseSearch controls only whether citation URIs from the winning
// candidate are carried along as source URLs.
func (p *GeminiProvider) Generate(ctx context.Context, req GenerationRequest) (*RawResponse, error) {
	model := p.client.GenerativeModel(req.Model)
	// Creative but structured output.
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, newAPIError(CodeNoResponse, 500, "No response from AI", nil)
	}

	candidate := resp.Candidates[0]
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	out := &RawResponse{Text: text.String()}
	if req.UseSearch {
		out.SourceURLs = citationURLs(candidate)
	}
	return out, nil
}

// citationURLs collects the unique source URIs the model cited while
// grounding its answer.
func citationURLs(c *genai.Candidate) []string {
	if c.CitationMetadata == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var urls []string
	for _, src := range c.CitationMetadata.CitationSources {
		if src == nil || src.URI == nil || *src.URI == "" {
			continue
		}
		if _, ok := seen[*src.URI]; ok {
			continue
		}
		seen[*src.URI] = struct{}{}
		urls = append(urls, *src.URI)
	}
	return urls
}
