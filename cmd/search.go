package cmd

import (
	"strings"

	"shopping-agent/core/source"
	"shopping-agent/feature/search"

	"github.com/spf13/cobra"
)

var (
	searchCategory   string
	searchMinPrice   float64
	searchMaxPrice   float64
	searchMaxResults int
	similarPlatform  string
	dealPerPlatform  int
)

// searchCmd searches every configured platform.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search shopping platforms for a product",
	Long: `Searches every configured platform in parallel and prints the
listings ranked by relevance.

Examples:
  shopping-agent search running shoes
  shopping-agent search "desk lamp" --min-price 20 --max-price 60 --max-results 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		svc := search.NewService(e.registry, e.logger)
		q := source.Query{
			Text:     strings.Join(args, " "),
			Category: searchCategory,
			Limit:    svc.DefaultLimit(),
		}
		if cmd.Flags().Changed("max-results") {
			q.Limit = searchMaxResults
		}
		if cmd.Flags().Changed("min-price") || cmd.Flags().Changed("max-price") {
			pr, err := search.ParsePriceRange([]any{searchMinPrice, searchMaxPrice})
			if err != nil {
				return err
			}
			q.PriceRange = pr
		}

		res, err := svc.Search(cmd.Context(), q)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), res)
	},
}

// similarCmd finds products similar to a given one.
var similarCmd = &cobra.Command{
	Use:   "similar [product-id]",
	Short: "Find products similar to a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		svc := search.NewService(e.registry, e.logger)
		limit := svc.DefaultLimit()
		if cmd.Flags().Changed("max-results") {
			limit = searchMaxResults
		}
		products, err := svc.Similar(cmd.Context(), args[0], similarPlatform, limit)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), map[string]any{"similar_products": products})
	},
}

// bestDealCmd finds the cheapest listing across platforms.
var bestDealCmd = &cobra.Command{
	Use:   "best-deal [product name]",
	Short: "Find the cheapest listing across platforms",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		deal, err := search.NewService(e.registry, e.logger).BestDeal(cmd.Context(), strings.Join(args, " "), dealPerPlatform)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), deal)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Restrict to a category")
	searchCmd.Flags().Float64Var(&searchMinPrice, "min-price", 0, "Minimum price")
	searchCmd.Flags().Float64Var(&searchMaxPrice, "max-price", 0, "Maximum price")
	searchCmd.Flags().IntVar(&searchMaxResults, "max-results", 0, "Maximum number of results (default from config)")

	similarCmd.Flags().StringVar(&similarPlatform, "platform", "", "Platform of the product")
	similarCmd.Flags().IntVar(&searchMaxResults, "max-results", 0, "Maximum number of results (default from config)")
	_ = similarCmd.MarkFlagRequired("platform")

	bestDealCmd.Flags().IntVar(&dealPerPlatform, "per-platform", search.DefaultPerPlatform, "Listings compared per platform")

	RootCmd.AddCommand(searchCmd, similarCmd, bestDealCmd)
}
