package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Ask the AI provider about the job market for a career",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()
		log, config := setup()

		engine, err := newEngine(config, log)
		if err != nil {
			log.Fatal("preparing the scoring engine", zap.Error(err))
		}

		title, _ := cmd.Flags().GetString("career")
		profile, ok := engine.Catalog().Find(title)
		if !ok {
			log.Fatal("career not found",
				zap.String("career", title),
				zap.Strings("available", engine.Catalog().Candidates().Titles()),
			)
		}

		analyst, err := newTrendAnalyst(ctx, config.AI, log)
		if err != nil {
			log.Fatal("preparing the ai provider", zap.Error(err))
		}

		trend, err := analyst.Trends(ctx, profile)
		if err != nil {
			log.Fatal("looking up market trends", zap.Error(err))
		}

		if format, _ := cmd.Flags().GetString("output"); format == OutputJSON {
			if err := printJSON(cmd.OutOrStdout(), trend); err != nil {
				log.Fatal("writing output", zap.Error(err))
			}
			return
		}

		printTrend(cmd.OutOrStdout(), trend)
	},
}

func init() {
	rootCmd.AddCommand(trendsCmd)

	trendsCmd.Flags().StringP("career", "c", "", "career title, case-insensitive")
	trendsCmd.Flags().StringP("output", "o", OutputText, "output format: text or json")

	trendsCmd.MarkFlagRequired("career")
}
