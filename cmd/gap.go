package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/skillgap"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Show the skills left to learn for a career",
	Example: `  careerfit gap --career "Data Scientist" --skills "Python,Statistics"`,
	Run: func(cmd *cobra.Command, _ []string) {
		showGap(cmd)
	},
}

func init() {
	rootCmd.AddCommand(gapCmd)

	gapCmd.Flags().StringP("career", "c", "", "career title, case-insensitive")
	gapCmd.Flags().StringSlice("skills", nil, "skills you already have")
	gapCmd.Flags().StringP("output", "o", OutputText, "output format: text or json")

	gapCmd.MarkFlagRequired("career")
}

func showGap(cmd *cobra.Command) {
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

	skills, _ := cmd.Flags().GetStringSlice("skills")
	report := skillgap.Analyze(skills, profile)

	out := cmd.OutOrStdout()
	if format, _ := cmd.Flags().GetString("output"); format == OutputJSON {
		if err := printJSON(out, struct {
			*skillgap.Report
			Coverage int              `json:"coverage"`
			Plan     []skillgap.Phase `json:"plan"`
		}{report, report.Coverage(), report.Plan()}); err != nil {
			log.Fatal("writing output", zap.Error(err))
		}
		return
	}

	printGap(out, report)
}
