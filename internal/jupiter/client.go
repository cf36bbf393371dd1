// Package jupiter implements thin clients for the Jupiter price and Ultra swap APIs.
package jupiter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/patruff/moltapp/internal/metrics"
)

type Client struct {
	Base string
	Key  string
	Http *http.Client
	log  zerolog.Logger
}

// New builds a client for the given API base. Call deadlines are the caller's
// business via ctx; the HTTP client itself carries no global timeout.
func New(base, key string, log zerolog.Logger) *Client {
	return &Client{
		Base: strings.TrimSuffix(base, "/"),
		Key:  key,
		Http: &http.Client{},
		log:  log,
	}
}

// Prices fetches current prices for the given mints. Mints absent from the
// response are simply absent from the returned map; the caller decides
// whether that matters.
func (c *Client) Prices(ctx context.Context, mints []string) (map[string]Price, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(mints, ","))
	u := c.Base + "/price/v3?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.Key)

	metrics.JupiterRequests.WithLabelValues("price").Inc()
	resp, err := c.Http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("jupiter price status %d", resp.StatusCode)
	}

	var out struct {
		Data map[string]Price `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode price response: %w", err)
	}
	return out.Data, nil
}

// Order requests a swap quote plus unsigned transaction from the Ultra API.
// amount is in the input mint's smallest on-chain unit.
func (c *Client) Order(ctx context.Context, inputMint, outputMint string, amount uint64, taker string) (*Order, error) {
	q := url.Values{}
	q.Set("inputMint", inputMint)
	q.Set("outputMint", outputMint)
	q.Set("amount", fmt.Sprintf("%d", amount))
	q.Set("taker", taker)
	u := c.Base + "/ultra/v1/order?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.Key)

	metrics.JupiterRequests.WithLabelValues("order").Inc()
	resp, err := c.Http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("jupiter order status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read order response: %w", err)
	}
	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	order.Raw = body

	c.log.Info().
		Str("in", order.InAmount).
		Str("out", order.OutAmount).
		Str("swap_type", order.SwapType).
		Int("slippage_bps", order.SlippageBps).
		Msg("order received")
	return &order, nil
}

// Execute submits the signed transaction and its request identifier for
// execution. HTTP failures are errors; a non-success Status is not.
func (c *Client) Execute(ctx context.Context, signedTx, requestID string) (*ExecuteResult, error) {
	body, err := json.Marshal(map[string]string{
		"signedTransaction": signedTx,
		"requestId":         requestID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal execute request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Base+"/ultra/v1/execute", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.Key)
	req.Header.Set("Content-Type", "application/json")

	metrics.JupiterRequests.WithLabelValues("execute").Inc()
	resp, err := c.Http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("jupiter execute status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read execute response: %w", err)
	}
	var result ExecuteResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode execute response: %w", err)
	}
	result.Raw = raw

	c.log.Info().Str("status", result.Status).Msg("execution reply")
	return &result, nil
}
