package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/matthewfreeze/rpg-engine/internal/constants"
	"github.com/matthewfreeze/rpg-engine/internal/game"
)

// enemyPromptTemplate can be set at application startup to customize the
// prompt used when requesting enemy generation from Gemini. Use the token
// "{{biome}}" in the template where the chosen biome name should be
// substituted.
var enemyPromptTemplate string

// SetEnemyPromptTemplate sets a custom prompt template for enemy
// generation. Call this during app initialization if you wish to override
// the built-in default.
func SetEnemyPromptTemplate(t string) {
	enemyPromptTemplate = strings.TrimSpace(t)
}

const defaultEnemyPrompt = `Generate a random enemy for a fantasy RPG. The enemy should fit the biome: {{biome}}.

Please provide the following in JSON format:
- name: A creative enemy name fitting the biome
- description: A brief atmospheric description (1-2 sentences)
- hp: Health points (between 50-100)
- mp: Magic points (between 10-40)
- strength: Physical attack power (between 8-20)
- magic: Magical power (between 8-20)
- speed: Speed stat for turn order (between 5-15)
- weakness: Elemental weakness (choose from: fire, ice, thunder)

Return only valid JSON without any markdown formatting or code blocks.`

// Client calls the Gemini generateContent REST API to invent an enemy for a
// biome. It is a thin transport wrapper; fallback substitution on failure
// lives in Generator.
type Client struct {
	model    string
	endpoint string
	http     *http.Client
}

// NewClient builds a Gemini client. Empty model or endpoint fall back to
// the compiled-in defaults; either may also come from the environment
// overrides read in main.
func NewClient(model, endpoint string) *Client {
	if model == "" {
		model = constants.GeminiModel
	}
	if endpoint == "" {
		endpoint = constants.GeminiBaseURL
	}
	return &Client{
		model:    model,
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: constants.GeminiRequestTimeoutSecs * time.Second},
	}
}

// GenerateEnemy asks Gemini for an enemy descriptor fitting the biome and
// validates it against the documented stat ranges. Any transport, decoding
// or validation problem is returned as an error; callers are expected to
// substitute a fallback descriptor.
func (c *Client) GenerateEnemy(ctx context.Context, biome string) (game.EnemyDescriptor, error) {
	apiKey := os.Getenv(constants.EnvGeminiAPIKey)
	if apiKey == "" {
		return game.EnemyDescriptor{}, fmt.Errorf(constants.ErrEnvNotSetFmt, constants.EnvGeminiAPIKey)
	}

	prompt := enemyPromptTemplate
	if prompt == "" {
		prompt = defaultEnemyPrompt
	}
	prompt = strings.ReplaceAll(prompt, "{{biome}}", biome)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	b, _ := json.Marshal(payload)
	url := c.endpoint + fmt.Sprintf(constants.GeminiGenerateContentFmt, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, strings.NewReader(string(b)))
	if err != nil {
		return game.EnemyDescriptor{}, fmt.Errorf("%s: %w", constants.ErrFailedCreateRequest, err)
	}
	req.Header.Set(constants.HeaderGoogAPIKey, apiKey)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return game.EnemyDescriptor{}, fmt.Errorf("%s: %w", constants.ErrRequestToGeminiFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return game.EnemyDescriptor{}, fmt.Errorf("%s: %d %s", constants.ErrGeminiGenerationFailed, resp.StatusCode, string(body))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return game.EnemyDescriptor{}, fmt.Errorf("%s: %w", constants.ErrFailedDecodeGeminiResponse, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return game.EnemyDescriptor{}, fmt.Errorf(constants.ErrGeminiReturnedNoContent)
	}

	text := stripCodeFences(out.Candidates[0].Content.Parts[0].Text)
	var d game.EnemyDescriptor
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return game.EnemyDescriptor{}, fmt.Errorf("%s: %w", constants.ErrFailedDecodeGeminiResponse, err)
	}
	d.Weakness = d.Weakness.Normalize()
	if err := d.Validate(); err != nil {
		return game.EnemyDescriptor{}, err
	}
	return d, nil
}

// stripCodeFences removes a surrounding markdown code block from the model
// output, with or without a "json" language tag. Models sometimes fence the
// JSON despite the prompt asking them not to.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	parts := strings.SplitN(s, "```", 3)
	if len(parts) < 2 {
		return s
	}
	inner := parts[1]
	inner = strings.TrimPrefix(inner, "json")
	return strings.TrimSpace(inner)
}
