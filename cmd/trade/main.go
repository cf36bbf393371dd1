// Binary trade performs one end-to-end smoke swap: an advisor model picks a
// tokenized stock from the catalog and a tiny USDC amount is swapped for it
// via the Jupiter Ultra API. One attempt per stage, no retries.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/patruff/moltapp/internal/config"
	"github.com/patruff/moltapp/internal/metrics"
	"github.com/patruff/moltapp/internal/trade"
	"github.com/patruff/moltapp/internal/util"
	"github.com/patruff/moltapp/internal/wallet"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := util.NewLogger(cfg.App.LogLevel)

	secrets, missing := config.LoadSecrets()
	if len(missing) > 0 {
		for _, name := range missing {
			fmt.Fprintf(os.Stderr, "missing env var: %s\n", name)
		}
		os.Exit(1)
	}

	key, err := wallet.Load(secrets.PrivateKeyBase58)
	if err != nil {
		log.Fatal().Err(err).Msg("load wallet")
	}

	if cfg.App.MetricsAddr != "" {
		_ = metrics.Serve(cfg.App.MetricsAddr)
		log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")
	}

	runner := trade.NewRunner(cfg, secrets, key, log)
	result, err := runner.Run(context.Background())
	if err != nil {
		if errors.Is(err, trade.ErrNoTransaction) {
			// The runner already dumped the full order payload.
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("trade aborted")
	}

	// A completed run exits 0 even when the aggregator reports a failed swap;
	// the status branch only changes the report, not the exit code.
	if result.Succeeded {
		log.Info().Str("explorer", result.ExplorerURL).Msg("done")
	}
}
