package cmd

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/spigell/careerfit/internal/career"
	"github.com/spigell/careerfit/internal/history"
	"github.com/spigell/careerfit/internal/logger"
	"github.com/spigell/careerfit/internal/scoring"
	"github.com/spigell/careerfit/internal/skillgap"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score answers given by flags or a file without prompting",
	Example: `  careerfit assess -a q1=0 -a q2=3 --skills "Python,Git"
  careerfit assess -f answers.yaml -o json`,
	Run: func(cmd *cobra.Command, _ []string) {
		assess(cmd)
	},
}

// answersFile keys are question ids and keep their case, so the file is
// decoded directly instead of through viper.
type answersFile struct {
	Answers map[string]int `yaml:"answers"`
	Skills  []string       `yaml:"skills"`
}

type assessmentOutput struct {
	Profile  *career.Profile  `json:"profile"`
	Report   *scoring.Report  `json:"report"`
	SkillGap *skillgap.Report `json:"skillGap,omitempty"`
}

func init() {
	rootCmd.AddCommand(assessCmd)

	addAnswerFlags(assessCmd)
	assessCmd.Flags().StringP("output", "o", OutputText, "output format: text or json")
	assessCmd.Flags().BoolP("save", "s", false, "save the result to the history file")
}

func assess(cmd *cobra.Command) {
	ctx := context.Background()
	log, config := setup()

	answers, skills, err := collectAnswers(cmd)
	if err != nil {
		log.Fatal("reading answers", zap.Error(err))
	}

	engine, err := newEngine(config, log)
	if err != nil {
		log.Fatal("preparing the scoring engine", zap.Error(err))
	}

	profile, report, err := engine.Compute(ctx, answers)
	if err != nil {
		log.Fatal("computing career profile", zap.Error(err))
	}

	log.Debug("assessment finished", logger.ProfileFields(profile.Title, profile.MatchScore,
		zap.Strings("unknown_questions", report.Unknown),
	)...)

	var gap *skillgap.Report
	if skills != nil {
		gap = skillgap.Analyze(skills, profile)
	}

	out := cmd.OutOrStdout()
	switch format, _ := cmd.Flags().GetString("output"); format {
	case OutputJSON:
		if err := printJSON(out, assessmentOutput{Profile: profile, Report: report, SkillGap: gap}); err != nil {
			log.Fatal("writing output", zap.Error(err))
		}
	case OutputText:
		printProfile(out, profile, report)
		if gap != nil {
			printGap(out, gap)
		}
	default:
		log.Fatal("unknown output format", zap.String("output", format))
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		historyFile := strings.TrimSpace(viper.GetString("history-file"))
		if historyFile == "" {
			log.Fatal("history file is not configured", zap.String("hint", "set history-file in the config or pass --history-file"))
		}
		entry := history.NewEntry(answers, profile, skills, gap)
		if err := history.Append(historyFile, entry); err != nil {
			log.Fatal("saving the result", zap.Error(err))
		}
		log.Info("result saved", zap.String("filename", historyFile), zap.String("id", entry.ID.String()))
	}
}

func addAnswerFlags(cmd *cobra.Command) {
	cmd.Flags().StringToIntP("answer", "a", nil, "answer as question-id=option-index, repeatable")
	cmd.Flags().StringP("file", "f", "", "yaml or json file with answers and skills")
	cmd.Flags().StringSlice("skills", nil, "skills you already have, for the skill-gap report")
}

// collectAnswers merges answers from --file with --answer flags; flags win.
func collectAnswers(cmd *cobra.Command) (scoring.Answers, []string, error) {
	answers := scoring.Answers{}
	var skills []string

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		file, err := readAnswersFile(path)
		if err != nil {
			return nil, nil, err
		}
		maps.Copy(answers, file.Answers)
		skills = file.Skills
	}

	flagAnswers, err := cmd.Flags().GetStringToInt("answer")
	if err != nil {
		return nil, nil, err
	}
	for id, idx := range flagAnswers {
		answers[strings.TrimSpace(id)] = idx
	}

	if cmd.Flags().Changed("skills") {
		skills, _ = cmd.Flags().GetStringSlice("skills")
	}

	if len(answers) == 0 {
		return nil, nil, errors.New("no answers given (use --answer or --file)")
	}

	return answers, skills, nil
}

// readAnswersFile reads a yaml or json answers file.
func readAnswersFile(path string) (*answersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file %q: %w", path, err)
	}

	var file answersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding answers file %q: %w", path, err)
	}
	return &file, nil
}
