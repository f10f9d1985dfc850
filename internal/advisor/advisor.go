package advisor

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lexdesk-dev/lexdesk/internal/config"
	"google.golang.org/api/option"
)

const modelName = "gemini-2.0-flash"

const systemInstruction = `You are an expert legal assistant specializing in Colombian law.
You help the staff of a small law office with questions about statutes,
procedure, deadlines and document drafting.

Always disclose that you are an AI assistant, and always state that your
answers are general information and no substitute for the advice of a
licensed attorney. Answer in the language the question was asked in.`

// ErrMissingAPIKey means no GEMINI_API_KEY is configured. It is
// returned before any network call is made.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// ProviderError wraps any failure reported by the AI provider, whether
// network, auth or quota. The provider's message passes through.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }

// Advisor forwards free-text legal questions to the Gemini API. Every
// call is stateless from the provider's perspective; conversation
// history lives only in the UI transcript.
type Advisor struct{}

func New() *Advisor {
	return &Advisor{}
}

// Ask sends one prompt with the fixed system instruction and returns
// the model's response text verbatim. The API credential is re-read
// from the environment on every call.
func (a *Advisor) Ask(ctx context.Context, prompt string) (string, error) {
	apiKey := config.GetEnv("GEMINI_API_KEY", "")
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", &ProviderError{Err: err}
	}
	defer client.Close()

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{Err: err}
	}

	answer := responseText(resp)
	if answer == "" {
		return "", &ProviderError{Err: errors.New("the model returned an empty response")}
	}

	return answer, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
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
		break
	}
	return sb.String()
}
