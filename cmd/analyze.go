package cmd

import (
	"context"
	"crypto-advisor/internal/repository"
	"crypto-advisor/internal/service"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a single advisory pass and print each stage",
	RunE:  Analyze,
}

func Analyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		return fmt.Errorf("failed to create app dependency: %w", err)
	}
	defer appDep.Close()

	repo, err := repository.NewRepository(appDep.cfg, appDep.log)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	services := service.NewService(appDep.cfg, appDep.log, repo, appDep.notifier)

	asset := strings.ToUpper(appDep.cfg.CoinGecko.AssetID)
	currency := strings.ToUpper(appDep.cfg.CoinGecko.VsCurrency)

	fmt.Printf("=== Fetching %s Price ===\n", asset)
	advice, err := services.AdvisorService.Advise(ctx)
	if errors.Is(err, repository.ErrPriceUnavailable) {
		fmt.Println("Could not fetch price. Exiting.")
		return err
	}
	if err != nil {
		return err
	}

	fmt.Printf("Current %s Price (%s): %v\n", asset, currency, advice.Price)

	fmt.Println("\n=== News Headlines ===")
	for _, headline := range advice.Headlines {
		fmt.Println(" -", headline)
	}

	fmt.Println("\n=== Analyzing Sentiment ===")
	for _, score := range advice.Scores {
		fmt.Printf(" %s %.4f  %s\n", score.Label, score.Confidence, score.Headline)
	}
	fmt.Printf("Average sentiment score: %.4f\n", advice.AggregateSentiment)

	fmt.Println("\n=== Making Decision ===")
	fmt.Printf("Final Recommendation: %s\n", advice.Decision)

	return nil
}
