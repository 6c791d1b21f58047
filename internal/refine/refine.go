package refine

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/spf13/viper"
	"google.golang.org/api/option"

	"tripweaver/internal/logger"
	"tripweaver/internal/story"
)

const (
	// DefaultModel is the default Gemini model used for prose refinement.
	DefaultModel = "gemini-1.5-flash"

	refinePromptTemplate = `Polish the following travel story text. Keep the meaning, place names and facts exactly as written; improve only flow and word choice. Write only the polished text, no commentary.

---
%s
---`
)

// Client wraps the Gemini API for optional post-refinement of generated story
// prose. The pipeline is fully functional without it; every failure here
// degrades to the original generated text.
type Client struct {
	modelName string
	gClient   *genai.Client
}

// NewClient creates a refinement client. The API key is taken from the
// GEMINI_API_KEY environment variable first, then from viper configuration
// under refine.api_key.
func NewClient(ctx context.Context, modelName string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = viper.GetString("refine.api_key")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no Gemini API key configured")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	gClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{modelName: modelName, gClient: gClient}, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.gClient.Close()
}

// RefineText polishes one paragraph. On any failure the original text is
// returned with a nil error, keeping refinement strictly best-effort.
func (c *Client) RefineText(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	model := c.gClient.GenerativeModel(c.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(refinePromptTemplate, text)))
	if err != nil {
		logger.Warn("text refinement failed, keeping generated text", "reason", err.Error())
		return text, nil
	}

	refined := extractText(resp)
	if refined == "" {
		return text, nil
	}
	return refined, nil
}

// RefineStory polishes the free-prose sections of a story in place and
// returns it. Structure (chapter count, order, scores, keywords) is never
// touched.
func (c *Client) RefineStory(ctx context.Context, s story.TravelStory) story.TravelStory {
	s.Opening, _ = c.RefineText(ctx, s.Opening)
	for i := range s.Chapters {
		s.Chapters[i].Body, _ = c.RefineText(ctx, s.Chapters[i].Body)
	}
	s.Climax, _ = c.RefineText(ctx, s.Climax)
	s.Closing, _ = c.RefineText(ctx, s.Closing)
	return s
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
