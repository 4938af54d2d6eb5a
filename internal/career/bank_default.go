package career

import "sync"

// DefaultBank returns the built-in question bank.
var DefaultBank = sync.OnceValue(func() *Bank {
	bank, err := NewBank(defaultQuestions())
	if err != nil {
		panic("career: invalid built-in question bank: " + err.Error())
	}
	return bank
})

func defaultQuestions() []Question {
	return []Question{
		{
			ID:     "q1",
			Text:   "Which school subject did you enjoy the most?",
			Type:   QuestionDirection,
			Weight: WeightHigh,
			Options: []Option{
				{Label: "Mathematics and physics", Impact: ScoreImpact{
					Stream: map[Stream]int{StreamEngineering: 3, StreamScience: 1},
					Trait:  map[Trait]int{TraitLogical: 2},
				}},
				{Label: "Biology and chemistry", Impact: ScoreImpact{
					Stream: map[Stream]int{StreamMedical: 3, StreamScience: 1},
					Trait:  map[Trait]int{TraitTheoretical: 1},
				}},
				{Label: "Economics and accounting", Impact: ScoreImpact{
					Stream: map[Stream]int{StreamBusiness: 3},
					Trait:  map[Trait]int{TraitLogical: 1},
				}},
				{Label: "Art, music or literature", Impact: ScoreImpact{
					Stream: map[Stream]int{StreamCreative: 3},
					Trait:  map[Trait]int{TraitSolo: 1},
				}},
				{Label: "History, civics or languages", Impact: ScoreImpact{
					Stream: map[Stream]int{StreamHumanities: 3},
					Trait:  map[Trait]int{TraitSocial: 1},
				}},
			},
		},
		{
			ID:     "q2",
			Text:   "On a free weekend, what would you rather do?",
			Type:   QuestionDirection,
			Weight: WeightMedium,
			Options: []Option{
				{Label: "Take apart a gadget or build something", Impact: ScoreImpact{
					Stream:    map[Stream]int{StreamEngineering: 2},
					Trait:     map[Trait]int{TraitHandsOn: 2},
					Archetype: map[Archetype]int{ArchetypeBuilder: 2},
				}},
				{Label: "Volunteer at a clinic or shelter", Impact: ScoreImpact{
					Stream:    map[Stream]int{StreamMedical: 2},
					Trait:     map[Trait]int{TraitEmpathetic: 2, TraitSocial: 1},
					Archetype: map[Archetype]int{ArchetypeCaregiver: 2},
				}},
				{Label: "Plan a small side business", Impact: ScoreImpact{
					Stream:    map[Stream]int{StreamBusiness: 2},
					Trait:     map[Trait]int{TraitRiskTaker: 2},
					Archetype: map[Archetype]int{ArchetypeLeader: 2},
				}},
				{Label: "Paint, film or write a story", Impact: ScoreImpact{
					Stream:    map[Stream]int{StreamCreative: 2},
					Trait:     map[Trait]int{TraitSolo: 1},
					Archetype: map[Archetype]int{ArchetypeCreator: 2},
				}},
				{Label: "Read about a scientific mystery", Impact: ScoreImpact{
					Stream:    map[Stream]int{StreamScience: 2},
					Trait:     map[Trait]int{TraitTheoretical: 2},
					Archetype: map[Archetype]int{ArchetypeExplorer: 2},
				}},
			},
		},
		{
			ID:     "q3",
			Text:   "Which problem would you most like to solve?",
			Type:   QuestionDirection,
			Weight: WeightHigh,
			Options: []Option{
				{Label: "Make software that millions of people use", Impact: ScoreImpact{
					Stream: map[Stream]int{StreamEngineering: 2},
					Branch: map[Branch]int{BranchComputerScience: 3},
				}},
				{Label: "Cure a disease", Impact: ScoreImpact{
					Stream: map[Stream]int{StreamMedical: 2},
					Branch: map[Branch]int{BranchMedicine: 3},
				}},
				{Label: "Grow a company's revenue", Impact: ScoreImpact{
					Stream: map[Stream]int{StreamBusiness: 2},
					Branch: map[Branch]int{BranchFinance: 2, BranchEntrepreneurship: 1},
				}},
				{Label: "Tell stories that move people", Impact: ScoreImpact{
					Stream: map[Stream]int{StreamCreative: 2},
					Branch: map[Branch]int{BranchMedia: 3},
				}},
				{Label: "Defend someone's rights", Impact: ScoreImpact{
					Stream:    map[Stream]int{StreamHumanities: 2},
					Branch:    map[Branch]int{BranchLaw: 3},
					Archetype: map[Archetype]int{ArchetypeGuardian: 2},
				}},
			},
		},
		{
			ID:     "q4",
			Text:   "Which kind of tool do you like working with?",
			Type:   QuestionDeepDive,
			Weight: WeightMedium,
			Options: []Option{
				{Label: "Code editors and terminals", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchComputerScience: 3},
					Trait:  map[Trait]int{TraitLogical: 1},
				}},
				{Label: "Machines, engines and CAD", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchMechanical: 3},
					Trait:  map[Trait]int{TraitHandsOn: 2},
				}},
				{Label: "Spreadsheets and dashboards", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchFinance: 2, BranchDataScience: 1},
					Trait:  map[Trait]int{TraitLogical: 1},
				}},
				{Label: "Sketchbooks and design software", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchDesign: 3},
				}},
				{Label: "Microscopes and lab equipment", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchResearch: 3},
					Trait:  map[Trait]int{TraitTheoretical: 1},
				}},
			},
		},
		{
			ID:     "q5",
			Text:   "Which role in a group project fits you best?",
			Type:   QuestionDeepDive,
			Weight: WeightMedium,
			Options: []Option{
				{Label: "The one who pitches the idea to everyone", Impact: ScoreImpact{
					Branch:    map[Branch]int{BranchMarketing: 3},
					Trait:     map[Trait]int{TraitSocial: 2},
					Archetype: map[Archetype]int{ArchetypeLeader: 1},
				}},
				{Label: "The one who listens and keeps people together", Impact: ScoreImpact{
					Branch:    map[Branch]int{BranchPsychology: 3},
					Trait:     map[Trait]int{TraitEmpathetic: 2},
					Archetype: map[Archetype]int{ArchetypeCaregiver: 1},
				}},
				{Label: "The one who crunches the numbers", Impact: ScoreImpact{
					Branch:    map[Branch]int{BranchDataScience: 3},
					Trait:     map[Trait]int{TraitLogical: 2},
					Archetype: map[Archetype]int{ArchetypeAnalyst: 2},
				}},
				{Label: "The one who explains it to the others", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchEducation: 3},
					Trait:  map[Trait]int{TraitSocial: 2},
				}},
				{Label: "The one who builds the prototype", Impact: ScoreImpact{
					Branch:    map[Branch]int{BranchMechanical: 2, BranchComputerScience: 1},
					Trait:     map[Trait]int{TraitHandsOn: 2},
					Archetype: map[Archetype]int{ArchetypeBuilder: 1},
				}},
			},
		},
		{
			ID:     "q6",
			Text:   "What would you like to be known for in ten years?",
			Type:   QuestionDeepDive,
			Weight: WeightLow,
			Options: []Option{
				{Label: "Launching my own company", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchEntrepreneurship: 3},
					Trait:  map[Trait]int{TraitRiskTaker: 2},
				}},
				{Label: "A discovery with my name on it", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchResearch: 3},
					Trait:  map[Trait]int{TraitTheoretical: 2},
				}},
				{Label: "A product design everybody recognises", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchDesign: 3},
				}},
				{Label: "Shaping how the next generation learns", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchEducation: 3},
					Trait:  map[Trait]int{TraitEmpathetic: 1},
				}},
				{Label: "Winning landmark cases", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchLaw: 3},
					Trait:  map[Trait]int{TraitLogical: 1},
				}},
			},
		},
		{
			ID:     "q7",
			Text:   "How do you prefer to work?",
			Type:   QuestionPersonality,
			Weight: WeightHigh,
			Options: []Option{
				{Label: "Alone, with headphones on", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitSolo: 3},
				}},
				{Label: "In a small focused team", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitSolo: 1, TraitSocial: 1},
				}},
				{Label: "Surrounded by people all day", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitSocial: 3},
				}},
			},
		},
		{
			ID:     "q8",
			Text:   "An opportunity pays double but might fail within a year. Do you take it?",
			Type:   QuestionPersonality,
			Weight: WeightHigh,
			Options: []Option{
				{Label: "Absolutely, fortune favours the bold", Impact: ScoreImpact{
					Trait:     map[Trait]int{TraitRiskTaker: 3},
					Archetype: map[Archetype]int{ArchetypeExplorer: 1},
				}},
				{Label: "Only with a backup plan", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitRiskTaker: 1, TraitStable: 1},
				}},
				{Label: "No, I value a steady path", Impact: ScoreImpact{
					Trait:     map[Trait]int{TraitStable: 3},
					Archetype: map[Archetype]int{ArchetypeGuardian: 1},
				}},
			},
		},
		{
			ID:     "q9",
			Text:   "How do you learn something new?",
			Type:   QuestionPersonality,
			Weight: WeightMedium,
			Options: []Option{
				{Label: "By doing it and breaking things", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitHandsOn: 3},
				}},
				{Label: "By reading the theory first", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitTheoretical: 3},
				}},
				{Label: "By asking someone to show me", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitSocial: 2},
				}},
			},
		},
		{
			ID:     "q10",
			Text:   "A friend is upset about a bad grade. What do you do first?",
			Type:   QuestionPersonality,
			Weight: WeightLow,
			Options: []Option{
				{Label: "Listen and comfort them", Impact: ScoreImpact{
					Trait:     map[Trait]int{TraitEmpathetic: 3},
					Archetype: map[Archetype]int{ArchetypeCaregiver: 1},
				}},
				{Label: "Go over what went wrong in the exam", Impact: ScoreImpact{
					Trait:     map[Trait]int{TraitLogical: 3},
					Archetype: map[Archetype]int{ArchetypeAnalyst: 1},
				}},
				{Label: "Suggest a study group", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitSocial: 2},
				}},
			},
		},
		{
			ID:     "q11",
			Text:   "What kind of job security do you need?",
			Type:   QuestionPersonality,
			Weight: WeightMedium,
			Options: []Option{
				{Label: "A predictable salary and clear ladder", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitStable: 3},
				}},
				{Label: "Some stability, some upside", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitStable: 1, TraitRiskTaker: 1},
				}},
				{Label: "I will bet on myself", Impact: ScoreImpact{
					Trait: map[Trait]int{TraitRiskTaker: 3},
				}},
			},
		},
		{
			ID:     "q12",
			Text:   "Which headline would you click first?",
			Type:   QuestionDeepDive,
			Weight: WeightLow,
			Options: []Option{
				{Label: "New AI model writes its own code", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchComputerScience: 2, BranchDataScience: 2},
				}},
				{Label: "Breakthrough therapy for anxiety", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchPsychology: 2, BranchMedicine: 1},
				}},
				{Label: "Viral campaign doubles brand sales", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchMarketing: 3},
				}},
				{Label: "Electric car maker unveils new engine", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchMechanical: 3},
				}},
				{Label: "Documentary wins a festival award", Impact: ScoreImpact{
					Branch: map[Branch]int{BranchMedia: 2, BranchDesign: 1},
				}},
			},
		},
	}
}
