package main

import (
	"context"
	"log"

	"stockpulse/cmd"
	"stockpulse/internal/db/models/postgres/public/model"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stockpulse-script",
	Short: "operational scripts for the stockpulse backend",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "seed the recommended stocks reference list",
	RunE: func(c *cobra.Command, args []string) error {
		deps, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		return deps.ApiHandler.RecommendedStockRepository.Seed([]model.RecommendedStock{
			{Symbol: "AAPL", Name: "Apple Inc.", Reason: "Strong earnings momentum and services growth", Priority: 1},
			{Symbol: "MSFT", Name: "Microsoft Corporation", Reason: "Cloud revenue expansion", Priority: 2},
			{Symbol: "AMZN", Name: "Amazon.com, Inc.", Reason: "Retail margin recovery", Priority: 3},
			{Symbol: "GOOGL", Name: "Alphabet Inc.", Reason: "Ad market stabilization", Priority: 4},
			{Symbol: "TSLA", Name: "Tesla, Inc.", Reason: "High volatility watch candidate", Priority: 5},
		})
	},
}

var refreshQuotesCmd = &cobra.Command{
	Use:   "refresh-quotes",
	Short: "fetch a quote for every watched symbol once",
	RunE: func(c *cobra.Command, args []string) error {
		deps, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		return deps.QuoteRefreshApp.RefreshAll(context.Background())
	},
}

func main() {
	rootCmd.AddCommand(seedCmd, refreshQuotesCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
