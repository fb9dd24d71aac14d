package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jackoske/AllGoGrand/agent"
	"github.com/jackoske/AllGoGrand/config"
	"github.com/jackoske/AllGoGrand/ledger"
	logger "github.com/jackoske/AllGoGrand/logging"
)

// app bundles the wired agent for the subcommands.
type app struct {
	client *agent.Client
	broker *agent.HTTPBrokerClient
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		backendURL  string
		seedB64     string
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:          "agent",
		Short:        "Autonomous weather agent that buys access tokens on demand",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&backendURL, "backend", "", "broker base URL (default from config)")
	cmd.PersistentFlags().StringVar(&seedB64, "seed", "", "base64 account seed (generates a fresh wallet when empty)")
	cmd.PersistentFlags().IntVar(&maxAttempts, "max-attempts", 0, "acquisition attempt budget per request (default from config)")

	build := func() (*app, error) {
		return buildApp(backendURL, seedB64, maxAttempts)
	}

	cmd.AddCommand(
		newRunCmd(build),
		newTokensCmd(build),
	)

	return cmd
}

func buildApp(backendURL, seedB64 string, maxAttempts int) (*app, error) {
	if err := config.InitConfig(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.InitLogger("")

	account, err := loadAccount(seedB64)
	if err != nil {
		return nil, err
	}

	if backendURL == "" {
		backendURL = config.GetString("agent.backendURL")
	}
	broker := agent.NewHTTPBrokerClient(backendURL)

	gateway := ledger.NewAlgodClient(
		config.GetString("ledger.address"),
		config.GetString("ledger.token"),
	)
	market := agent.NewMarketplace(
		config.GetUint64("marketplace.priceMicro"),
		time.Duration(config.GetInt("marketplace.tokenDuration"))*time.Second,
		config.GetString("marketplace.sinkAddress"),
	)
	acquirer := agent.NewAcquirer(gateway, market, agent.DefaultConfirmRounds)

	agentConfig := agent.Config{
		MaxAttempts:  config.GetInt("agent.maxAttempts"),
		RetryDelay:   config.GetDuration("agent.retryDelay"),
		SettleDelay:  config.GetDuration("agent.settleDelay"),
		RequestDelay: config.GetDuration("agent.requestDelay"),
	}
	if maxAttempts > 0 {
		agentConfig.MaxAttempts = maxAttempts
	}

	client := agent.NewClient(account, broker, acquirer, agentConfig, nil)
	logger.Info("Agent ready", zap.String("address", account.Address))

	return &app{client: client, broker: broker}, nil
}

func loadAccount(seedB64 string) (*ledger.Account, error) {
	if seedB64 == "" {
		account, err := ledger.GenerateAccount()
		if err != nil {
			return nil, err
		}
		logger.Info("Generated new wallet", zap.String("address", account.Address))
		return account, nil
	}

	seed, err := base64.StdEncoding.DecodeString(seedB64)
	if err != nil {
		return nil, fmt.Errorf("seed is not valid base64: %w", err)
	}
	return ledger.AccountFromSeed(seed)
}
