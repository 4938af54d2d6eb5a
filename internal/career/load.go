package career

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	questionsKey = "questions"
	profilesKey  = "profiles"
)

var (
	automationRisks = []AutomationRisk{AutomationRiskLow, AutomationRiskMedium, AutomationRiskHigh}
	marketDemands   = []MarketDemand{MarketDemandStable, MarketDemandGrowing, MarketDemandFutureProof, MarketDemandCompetitive}
	importances     = []Importance{ImportanceCritical, ImportanceImportant, ImportanceOptional}
	questionTypes   = []QuestionType{QuestionDirection, QuestionDeepDive, QuestionPersonality}
)

// LoadBank reads a question bank from a yaml, json or toml file with a
// top-level "questions" list.
func LoadBank(path string) (*Bank, error) {
	raw, err := readKey(path, questionsKey)
	if err != nil {
		return nil, err
	}

	var questions []Question
	if err := decode(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode questions from %s: %w", path, err)
	}

	bank, err := NewBank(questions)
	if err != nil {
		return nil, fmt.Errorf("questions from %s: %w", path, err)
	}
	return bank, nil
}

// LoadCatalog reads a profile catalog from a yaml, json or toml file with a
// top-level "profiles" list. A roadmap entry may be a plain string or a map
// with title, description and timeframe.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := readKey(path, profilesKey)
	if err != nil {
		return nil, err
	}

	var profiles []Profile
	if err := decode(raw, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles from %s: %w", path, err)
	}

	catalog, err := NewCatalog(profiles)
	if err != nil {
		return nil, fmt.Errorf("profiles from %s: %w", path, err)
	}
	return catalog, nil
}

func readKey(path, key string) (any, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("path to %s file is empty", key)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	raw := v.Get(key)
	if raw == nil {
		return nil, fmt.Errorf("%s: top-level %q key is missing", path, key)
	}
	return raw, nil
}

func decode(input, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           result,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			roadmapHook,
			enumHook,
		),
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// roadmapHook turns a bare string roadmap entry into a label step.
func roadmapHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(RoadmapStep{}) {
		return data, nil
	}
	return Label(reflect.ValueOf(data).String()), nil
}

// enumHook resolves enum values ignoring case and separators. It also runs
// for map keys, which viper lowercases.
func enumHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	s := reflect.ValueOf(data).String()

	switch to {
	case reflect.TypeOf(Stream("")):
		return parseEnum(s, Streams, "stream")
	case reflect.TypeOf(Branch("")):
		return parseEnum(s, Branches, "branch")
	case reflect.TypeOf(Trait("")):
		return parseEnum(s, Traits, "trait")
	case reflect.TypeOf(Archetype("")):
		return parseEnum(s, Archetypes, "archetype")
	case reflect.TypeOf(AutomationRisk("")):
		return parseEnum(s, automationRisks, "automation risk")
	case reflect.TypeOf(MarketDemand("")):
		return parseEnum(s, marketDemands, "market demand")
	case reflect.TypeOf(Importance("")):
		return parseEnum(s, importances, "importance")
	case reflect.TypeOf(QuestionType("")):
		return parseEnum(s, questionTypes, "question type")
	default:
		return data, nil
	}
}

func parseEnum[T ~string](s string, values []T, kind string) (T, error) {
	key := NormalizeKey(s)
	for _, v := range values {
		if NormalizeKey(string(v)) == key {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, s)
}

// ParseBranch resolves a branch name ignoring case and separators.
func ParseBranch(s string) (Branch, error) {
	return parseEnum(s, Branches, "branch")
}

// ParseStream resolves a stream name ignoring case and separators.
func ParseStream(s string) (Stream, error) {
	return parseEnum(s, Streams, "stream")
}
