package cmd

import (
	"fmt"
	"os"

	"shopping-agent/core/source"
	"shopping-agent/feature/detection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	detectConfidence float64
	detectMaxResults int
	detectArchive    bool
)

// detectCmd detects products in a local image file.
var detectCmd = &cobra.Command{
	Use:   "detect [image]",
	Short: "Detect products in an image file",
	Long: `Runs every configured vision source on the image and prints the
reconciled detections as JSON.

Examples:
  shopping-agent detect photo.jpg
  shopping-agent detect photo.jpg --confidence 0.5 --max-results 3 -o result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().Float64Var(&detectConfidence, "confidence", -1, "Minimum confidence (default from config)")
	detectCmd.Flags().IntVar(&detectMaxResults, "max-results", 0, "Maximum number of products (default from config)")
	detectCmd.Flags().BoolVar(&detectArchive, "archive", false, "Archive the image to object storage when storage is enabled")
	RootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	e, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	img, err := source.NewImage(data)
	if err != nil {
		return fmt.Errorf("%w: %v", detection.ErrNoImage, err)
	}

	var opts detection.Options
	if cmd.Flags().Changed("confidence") {
		opts.ConfidenceThreshold = &detectConfidence
	}
	if cmd.Flags().Changed("max-results") {
		opts.MaxResults = &detectMaxResults
	}

	var archiver detection.Archiver
	if detectArchive {
		if a := e.connectArchive(ctx); a != nil {
			archiver = a
		}
	}

	e.logger.Info("Detecting products", zap.String("image", args[0]), zap.String("mime_type", img.MimeType))
	report, err := detection.NewService(e.registry, archiver, e.logger).Detect(ctx, img, opts)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), report)
}
