package cmd

import (
	"strings"

	"shopping-agent/feature/pricing"

	"github.com/spf13/cobra"
)

var (
	pricingPlatform string
	historyDays     int
	trackTarget     float64
	trackEmail      string
	trackPhone      string
)

// historyCmd prints the price history of a product.
var historyCmd = &cobra.Command{
	Use:   "history [product-id]",
	Short: "Show the price history of a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		h, err := pricing.NewService(pricing.NewMemoryStore(), e.logger).History(args[0], pricingPlatform, historyDays)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), h)
	},
}

// trackCmd registers a price watch.
var trackCmd = &cobra.Command{
	Use:   "track [product-id]",
	Short: "Register price tracking for a product",
	Long: `Registers price tracking for a product. The registration is stored
in the database when DATABASE_ENABLED is set; otherwise it is only printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		store := pricing.NewStore(e.connectDatabase())
		if gs, ok := store.(*pricing.GormStore); ok {
			if err := gs.Migrate(); err != nil {
				return err
			}
		}

		var opts pricing.TrackOptions
		if cmd.Flags().Changed("target-price") {
			opts.TargetPrice = &trackTarget
		}
		if trackEmail != "" {
			opts.NotifyEmail = &trackEmail
		}
		if trackPhone != "" {
			opts.NotifyPhone = &trackPhone
		}

		w, err := pricing.NewService(store, e.logger).Track(cmd.Context(), args[0], pricingPlatform, opts)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), w)
	},
}

// buyingOptionsCmd prints new, used and refurbished offers.
var buyingOptionsCmd = &cobra.Command{
	Use:   "buying-options [product name]",
	Short: "Compare new, used and refurbished offers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		opts, err := pricing.NewService(pricing.NewMemoryStore(), e.logger).BuyingOptions(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), opts)
	},
}

func init() {
	historyCmd.Flags().StringVar(&pricingPlatform, "platform", "", "Platform of the product")
	historyCmd.Flags().IntVar(&historyDays, "days", pricing.DefaultHistoryDays, "Number of days")
	_ = historyCmd.MarkFlagRequired("platform")

	trackCmd.Flags().StringVar(&pricingPlatform, "platform", "", "Platform of the product")
	trackCmd.Flags().Float64Var(&trackTarget, "target-price", 0, "Notify when the price drops to this value")
	trackCmd.Flags().StringVar(&trackEmail, "email", "", "Notification email")
	trackCmd.Flags().StringVar(&trackPhone, "phone", "", "Notification phone number")
	_ = trackCmd.MarkFlagRequired("platform")

	RootCmd.AddCommand(historyCmd, trackCmd, buyingOptionsCmd)
}
