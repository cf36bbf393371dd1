// Package advisor asks a chat-completion model which catalog stock to buy.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/patruff/moltapp/internal/catalog"
	"github.com/patruff/moltapp/internal/metrics"
)

const systemPrompt = "You are a stock picking assistant. Respond with ONLY the ticker symbol, nothing else."

type Client struct {
	Base        string
	Key         string
	Model       string
	Temperature float64
	Default     string // ticker substituted when the reply matches nothing
	Http        *http.Client
	log         zerolog.Logger
}

func New(base, key, model string, temperature float64, defaultTicker string, log zerolog.Logger) *Client {
	return &Client{
		Base:        strings.TrimSuffix(base, "/"),
		Key:         key,
		Model:       model,
		Temperature: temperature,
		Default:     defaultTicker,
		Http:        &http.Client{},
		log:         log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Pick sends the catalog to the model and resolves its reply to one entry.
func (c *Client) Pick(ctx context.Context) (catalog.Entry, error) {
	var list []string
	for _, e := range catalog.Stocks {
		list = append(list, fmt.Sprintf("%s (%s)", e.Symbol, e.Name))
	}
	userPrompt := fmt.Sprintf(
		"Pick one tokenized stock for me to buy a tiny test amount of. Available: %s. Just respond with the symbol like AAPLx.",
		strings.Join(list, ", "),
	)
	c.log.Info().Str("prompt", userPrompt).Msg("asking advisor for a stock pick")

	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.Temperature,
	})
	if err != nil {
		return catalog.Entry{}, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Base+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return catalog.Entry{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Key)
	req.Header.Set("Content-Type", "application/json")

	metrics.AdvisorRequests.Inc()
	resp, err := c.Http.Do(req)
	if err != nil {
		return catalog.Entry{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return catalog.Entry{}, fmt.Errorf("advisor status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return catalog.Entry{}, fmt.Errorf("decode chat response: %w", err)
	}
	if len(out.Choices) == 0 {
		return catalog.Entry{}, fmt.Errorf("advisor returned no choices")
	}

	reply := strings.TrimSpace(out.Choices[0].Message.Content)
	pick, err := c.resolve(reply)
	if err != nil {
		return catalog.Entry{}, err
	}
	c.log.Info().Str("symbol", pick.Symbol).Str("name", pick.Name).Msg("advisor pick resolved")
	return pick, nil
}

// resolve maps a free-form reply onto the catalog. Symbols are scanned in
// declared order and the first one appearing in the reply wins; a reply
// matching nothing falls back to the configured default ticker.
func (c *Client) resolve(reply string) (catalog.Entry, error) {
	for _, e := range catalog.Stocks {
		if strings.Contains(reply, e.Symbol) {
			return e, nil
		}
	}

	c.log.Warn().Str("reply", reply).Str("default", c.Default).Msg("advisor reply matched no catalog ticker, using default")
	pick, ok := catalog.BySymbol(c.Default)
	if !ok {
		return catalog.Entry{}, fmt.Errorf("default ticker %q not in catalog", c.Default)
	}
	return pick, nil
}
