package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "List the careers in the catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		log, config := setup()

		engine, err := newEngine(config, log)
		if err != nil {
			log.Fatal("preparing the scoring engine", zap.Error(err))
		}

		profiles := engine.Catalog().Candidates()
		log.Debug("listing careers", zap.Int("count", profiles.Len()))

		if format, _ := cmd.Flags().GetString("output"); format == OutputJSON {
			if err := printJSON(cmd.OutOrStdout(), profiles.Items); err != nil {
				log.Fatal("writing output", zap.Error(err))
			}
			return
		}

		printCareers(cmd.OutOrStdout(), profiles.Items)
	},
}

func init() {
	rootCmd.AddCommand(careersCmd)

	careersCmd.Flags().StringP("output", "o", OutputText, "output format: text or json")
}
