// Package trade runs the end-to-end smoke swap: advisor pick, price check,
// Ultra order, local signing, execution, report.
package trade

import (
	"context"
	"errors"
	"fmt"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	"github.com/patruff/moltapp/internal/advisor"
	"github.com/patruff/moltapp/internal/catalog"
	"github.com/patruff/moltapp/internal/config"
	"github.com/patruff/moltapp/internal/jupiter"
	"github.com/patruff/moltapp/internal/metrics"
	"github.com/patruff/moltapp/internal/wallet"
)

// ErrNoTransaction reports an order response lacking the unsigned transaction
// blob. The run cannot proceed to signing; main maps this to exit code 1.
var ErrNoTransaction = errors.New("order response missing transaction")

// Result summarizes a completed run for final reporting. A run with a
// non-success execution status still completes; Succeeded is false.
type Result struct {
	Pick        catalog.Entry
	Order       *jupiter.Order
	Execution   *jupiter.ExecuteResult
	Succeeded   bool
	ExplorerURL string
}

// Runner wires the clients for one sequential run. Every stage depends on the
// previous one; any error aborts the whole run.
type Runner struct {
	Config  *config.Config
	Advisor *advisor.Client
	Jupiter *jupiter.Client
	Wallet  solana.PrivateKey
	Log     zerolog.Logger
}

// NewRunner builds the advisor and aggregator clients from config and secrets.
func NewRunner(cfg *config.Config, secrets config.Secrets, key solana.PrivateKey, log zerolog.Logger) *Runner {
	return &Runner{
		Config: cfg,
		Advisor: advisor.New(
			cfg.Advisor.BaseURL,
			secrets.XAIAPIKey,
			cfg.Advisor.Model,
			cfg.Advisor.Temperature,
			cfg.Advisor.DefaultTicker,
			log,
		),
		Jupiter: jupiter.New(cfg.Jupiter.BaseURL, secrets.JupiterAPIKey, log),
		Wallet:  key,
		Log:     log,
	}
}

// Run executes the stages in order and returns the terminal result. The only
// controlled failure is ErrNoTransaction; everything else propagates as-is.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	log := r.Log
	taker := r.Wallet.PublicKey().String()
	log.Info().Str("wallet", taker).Msg("wallet loaded")

	pick, err := r.pickStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("advisor: %w", err)
	}

	if err := r.checkPrice(ctx, pick); err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}

	amount := r.Config.Trade.BuyAmountUSDC
	log.Info().
		Str("symbol", pick.Symbol).
		Float64("usdc", float64(amount)/1_000_000).
		Msg("requesting swap order")

	order, err := r.requestOrder(ctx, pick, amount, taker)
	if err != nil {
		return nil, err
	}

	signed, err := wallet.SignOrderTransaction(order.Transaction, r.Wallet)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	log.Info().Str("tx_prefix", head(signed, 40)).Msg("transaction signed")

	execution, err := r.execute(ctx, signed, order.RequestID)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}

	return r.report(pick, order, execution), nil
}

func (r *Runner) pickStock(ctx context.Context) (catalog.Entry, error) {
	actx, cancel := r.stageCtx(ctx, r.Config.Advisor.TimeoutSecs, 30*time.Second)
	defer cancel()
	return r.Advisor.Pick(actx)
}

// checkPrice narrates the current price; a missing entry for the pick is
// tolerated and the run continues.
func (r *Runner) checkPrice(ctx context.Context, pick catalog.Entry) error {
	pctx, cancel := r.stageCtx(ctx, r.Config.Jupiter.PriceTimeoutSecs, 15*time.Second)
	defer cancel()

	prices, err := r.Jupiter.Prices(pctx, []string{pick.Mint})
	if err != nil {
		return err
	}
	if info, ok := prices[pick.Mint]; ok {
		r.Log.Info().Str("symbol", pick.Symbol).Str("price_usd", info.Price).Msg("current price")
	} else {
		r.Log.Warn().Str("symbol", pick.Symbol).Msg("price not available, continuing anyway")
	}
	return nil
}

func (r *Runner) requestOrder(ctx context.Context, pick catalog.Entry, amount uint64, taker string) (*jupiter.Order, error) {
	octx, cancel := r.stageCtx(ctx, r.Config.Jupiter.OrderTimeoutSecs, 30*time.Second)
	defer cancel()

	order, err := r.Jupiter.Order(octx, catalog.USDCMint, pick.Mint, amount, taker)
	if err != nil {
		return nil, fmt.Errorf("order: %w", err)
	}
	if order.Transaction == "" {
		r.Log.Error().RawJSON("response", order.Raw).Msg("no transaction in order response")
		return nil, ErrNoTransaction
	}
	return order, nil
}

func (r *Runner) execute(ctx context.Context, signedTx, requestID string) (*jupiter.ExecuteResult, error) {
	ectx, cancel := r.stageCtx(ctx, r.Config.Jupiter.ExecuteTimeoutSecs, 60*time.Second)
	defer cancel()

	result, err := r.Jupiter.Execute(ectx, signedTx, requestID)
	if err != nil {
		return nil, err
	}
	metrics.SwapsTotal.WithLabelValues(result.Status).Inc()
	return result, nil
}

func (r *Runner) report(pick catalog.Entry, order *jupiter.Order, execution *jupiter.ExecuteResult) *Result {
	result := &Result{Pick: pick, Order: order, Execution: execution}
	if !execution.Succeeded() {
		r.Log.Warn().RawJSON("response", execution.Raw).Msg("swap failed")
		return result
	}

	result.Succeeded = true
	result.ExplorerURL = r.Config.Trade.ExplorerBase + execution.Signature

	spent := execution.InputAmount
	if spent == "" {
		spent = order.InAmount
	}
	received := execution.OutputAmount
	if received == "" {
		received = order.OutAmount
	}
	r.Log.Info().
		Str("symbol", pick.Symbol).
		Str("name", pick.Name).
		Str("spent", spent).
		Str("received", received).
		Str("explorer", result.ExplorerURL).
		Msg("swap succeeded")
	return result
}

func (r *Runner) stageCtx(ctx context.Context, secs int, fallback time.Duration) (context.Context, context.CancelFunc) {
	d := fallback
	if secs > 0 {
		d = time.Duration(secs) * time.Second
	}
	return context.WithTimeout(ctx, d)
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
