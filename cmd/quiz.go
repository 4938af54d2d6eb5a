package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/career"
	"github.com/spigell/careerfit/internal/history"
	"github.com/spigell/careerfit/internal/logger"
	"github.com/spigell/careerfit/internal/scoring"
	"github.com/spigell/careerfit/internal/skillgap"
)

const (
	PromptYes        = "Yes"
	PromptNo         = "No"
	PromptSkillsDone = "Done"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer the questionnaire interactively and get a career match",
	Run: func(cmd *cobra.Command, _ []string) {
		quiz(cmd)
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)

	quizCmd.Flags().BoolP("save", "s", false, "save the result to the history file without asking")
	quizCmd.Flags().Bool("trends", false, "look up market trends without asking (requires ai.enabled)")
}

func quiz(cmd *cobra.Command) {
	ctx := context.Background()
	log, config := setup()

	log.Debug("starting the quiz", zap.String("version", appVersion()))

	engine, err := newEngine(config, log)
	if err != nil {
		log.Fatal("preparing the scoring engine", zap.Error(err))
	}

	answers, err := askQuestions(engine.Bank())
	if err != nil {
		log.Fatal("exiting", zap.Error(err))
	}

	profile, report, err := engine.Compute(ctx, answers)
	if err != nil {
		log.Fatal("computing career profile", zap.Error(err))
	}

	out := cmd.OutOrStdout()
	printProfile(out, profile, report)

	skills, err := askSkills(profile)
	if err != nil {
		log.Fatal("exiting", zap.Error(err))
	}

	gap := skillgap.Analyze(skills, profile)
	printGap(out, gap)

	if config.AI.Enabled && confirm(cmd, "trends", "Look up current market trends for "+profile.Title+"?") {
		showTrends(ctx, out, config, profile, log)
	}

	historyFile := strings.TrimSpace(viper.GetString("history-file"))
	if historyFile == "" {
		return
	}
	if !confirm(cmd, "save", "Save this result to "+historyFile+"?") {
		return
	}

	entry := history.NewEntry(answers, profile, skills, gap)
	if err := history.Append(historyFile, entry); err != nil {
		log.Fatal("saving the result", zap.Error(err), zap.String("filename", historyFile))
	}
	log.Info("result saved", zap.String("filename", historyFile), zap.String("id", entry.ID.String()))
}

func askQuestions(bank *career.Bank) (scoring.Answers, error) {
	questions := bank.Questions()
	answers := make(scoring.Answers, len(questions))

	for i, q := range questions {
		labels := make([]string, 0, len(q.Options))
		for _, opt := range q.Options {
			labels = append(labels, opt.Label)
		}

		prompt := promptui.Select{
			Label: fmt.Sprintf("[%d/%d] %s", i+1, len(questions), q.Text),
			Items: labels,
			Size:  len(labels),
		}

		idx, _, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		answers[q.ID] = idx
	}

	return answers, nil
}

// askSkills lets the user tick the required skills they already have.
func askSkills(profile *career.Profile) ([]string, error) {
	have := make(map[string]bool, len(profile.RequiredSkills))

	for {
		items := make([]string, 0, len(profile.RequiredSkills)+1)
		items = append(items, PromptSkillsDone)
		for _, s := range profile.RequiredSkills {
			mark := "[ ]"
			if have[s.Name] {
				mark = "[x]"
			}
			items = append(items, fmt.Sprintf("%s %s (%s)", mark, s.Name, s.Importance))
		}

		prompt := promptui.Select{
			Label: "Which of these skills do you already have? Select to toggle",
			Items: items,
			Size:  len(items),
		}

		idx, _, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		if idx == 0 {
			break
		}

		name := profile.RequiredSkills[idx-1].Name
		have[name] = !have[name]
	}

	skills := make([]string, 0, len(have))
	for _, s := range profile.RequiredSkills {
		if have[s.Name] {
			skills = append(skills, s.Name)
		}
	}
	return skills, nil
}

// confirm returns true when the flag is set or the user agrees.
func confirm(cmd *cobra.Command, flag, label string) bool {
	if set, _ := cmd.Flags().GetBool(flag); set {
		return true
	}

	prompt := promptui.Select{Label: label, Items: []string{PromptYes, PromptNo}}
	_, answer, err := prompt.Run()
	if err != nil {
		return false
	}
	return answer == PromptYes
}

func showTrends(ctx context.Context, out io.Writer, config *Config, profile *career.Profile, log *zap.Logger) {
	analyst, err := newTrendAnalyst(ctx, config.AI, log)
	if err != nil {
		log.Warn("skipping market trends", zap.Error(err))
		return
	}

	trend, err := analyst.Trends(ctx, profile)
	if err != nil {
		log.Warn("market trends lookup failed", logger.ProfileFields(profile.Title, 0, zap.Error(err))...)
		return
	}

	printTrend(out, trend)
}
