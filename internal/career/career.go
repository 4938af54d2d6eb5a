package career

import "strings"

// Stream is a broad career field.
type Stream string

const (
	StreamEngineering Stream = "Engineering"
	StreamMedical     Stream = "Medical"
	StreamBusiness    Stream = "Business"
	StreamCreative    Stream = "Creative"
	StreamScience     Stream = "Science"
	StreamHumanities  Stream = "Humanities"
)

// Streams lists every stream in declaration order.
var Streams = []Stream{
	StreamEngineering,
	StreamMedical,
	StreamBusiness,
	StreamCreative,
	StreamScience,
	StreamHumanities,
}

func (s Stream) Valid() bool {
	switch s {
	case StreamEngineering, StreamMedical, StreamBusiness, StreamCreative, StreamScience, StreamHumanities:
		return true
	default:
		return false
	}
}

// Branch is a specific path within a stream.
type Branch string

const (
	BranchComputerScience  Branch = "Computer Science"
	BranchMechanical       Branch = "Mechanical"
	BranchMedicine         Branch = "Medicine"
	BranchPsychology       Branch = "Psychology"
	BranchFinance          Branch = "Finance"
	BranchMarketing        Branch = "Marketing"
	BranchEntrepreneurship Branch = "Entrepreneurship"
	BranchDesign           Branch = "Design"
	BranchMedia            Branch = "Media"
	BranchDataScience      Branch = "Data Science"
	BranchResearch         Branch = "Research"
	BranchLaw              Branch = "Law"
	BranchEducation        Branch = "Education"
)

// Branches lists every branch in declaration order.
var Branches = []Branch{
	BranchComputerScience,
	BranchMechanical,
	BranchMedicine,
	BranchPsychology,
	BranchFinance,
	BranchMarketing,
	BranchEntrepreneurship,
	BranchDesign,
	BranchMedia,
	BranchDataScience,
	BranchResearch,
	BranchLaw,
	BranchEducation,
}

func (b Branch) Valid() bool {
	switch b {
	case BranchComputerScience, BranchMechanical, BranchMedicine, BranchPsychology,
		BranchFinance, BranchMarketing, BranchEntrepreneurship, BranchDesign,
		BranchMedia, BranchDataScience, BranchResearch, BranchLaw, BranchEducation:
		return true
	default:
		return false
	}
}

// Trait is a work-style axis.
type Trait string

const (
	TraitSolo        Trait = "Solo"
	TraitSocial      Trait = "Social"
	TraitRiskTaker   Trait = "RiskTaker"
	TraitStable      Trait = "Stable"
	TraitHandsOn     Trait = "HandsOn"
	TraitEmpathetic  Trait = "Empathetic"
	TraitLogical     Trait = "Logical"
	TraitTheoretical Trait = "Theoretical"
)

// Traits lists every trait in declaration order. The order is used to break
// ties when picking the dominant trait.
var Traits = []Trait{
	TraitSolo,
	TraitSocial,
	TraitRiskTaker,
	TraitStable,
	TraitHandsOn,
	TraitEmpathetic,
	TraitLogical,
	TraitTheoretical,
}

func (t Trait) Valid() bool {
	switch t {
	case TraitSolo, TraitSocial, TraitRiskTaker, TraitStable,
		TraitHandsOn, TraitEmpathetic, TraitLogical, TraitTheoretical:
		return true
	default:
		return false
	}
}

// Archetype is a high-level persona label.
type Archetype string

const (
	ArchetypeBuilder   Archetype = "Builder"
	ArchetypeCaregiver Archetype = "Caregiver"
	ArchetypeLeader    Archetype = "Leader"
	ArchetypeCreator   Archetype = "Creator"
	ArchetypeExplorer  Archetype = "Explorer"
	ArchetypeGuardian  Archetype = "Guardian"
	ArchetypeAnalyst   Archetype = "Analyst"
)

// Archetypes lists every archetype in declaration order.
var Archetypes = []Archetype{
	ArchetypeBuilder,
	ArchetypeCaregiver,
	ArchetypeLeader,
	ArchetypeCreator,
	ArchetypeExplorer,
	ArchetypeGuardian,
	ArchetypeAnalyst,
}

func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeBuilder, ArchetypeCaregiver, ArchetypeLeader, ArchetypeCreator,
		ArchetypeExplorer, ArchetypeGuardian, ArchetypeAnalyst:
		return true
	default:
		return false
	}
}

// AutomationRisk describes how exposed a career is to automation.
type AutomationRisk string

const (
	AutomationRiskLow    AutomationRisk = "Low"
	AutomationRiskMedium AutomationRisk = "Medium"
	AutomationRiskHigh   AutomationRisk = "High"
)

func (r AutomationRisk) Valid() bool {
	switch r {
	case AutomationRiskLow, AutomationRiskMedium, AutomationRiskHigh:
		return true
	default:
		return false
	}
}

// MarketDemand describes the hiring outlook of a career.
type MarketDemand string

const (
	MarketDemandStable      MarketDemand = "Stable"
	MarketDemandGrowing     MarketDemand = "Growing"
	MarketDemandFutureProof MarketDemand = "Future-Proof"
	MarketDemandCompetitive MarketDemand = "Competitive"
)

func (d MarketDemand) Valid() bool {
	switch d {
	case MarketDemandStable, MarketDemandGrowing, MarketDemandFutureProof, MarketDemandCompetitive:
		return true
	default:
		return false
	}
}

// Importance is the priority tier of a required skill.
type Importance string

const (
	ImportanceCritical  Importance = "Critical"
	ImportanceImportant Importance = "Important"
	ImportanceOptional  Importance = "Optional"
)

func (i Importance) Valid() bool {
	switch i {
	case ImportanceCritical, ImportanceImportant, ImportanceOptional:
		return true
	default:
		return false
	}
}

// QuestionType tags a question. It is informational only.
type QuestionType string

const (
	QuestionDirection   QuestionType = "Direction"
	QuestionDeepDive    QuestionType = "DeepDive"
	QuestionPersonality QuestionType = "Personality"
)

func (q QuestionType) Valid() bool {
	switch q {
	case QuestionDirection, QuestionDeepDive, QuestionPersonality:
		return true
	default:
		return false
	}
}

// NormalizeKey folds case and drops spaces, dashes and underscores so that
// "computer_science", "Computer Science" and "computer-science" compare equal.
func NormalizeKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
