package career

import "sync"

// DefaultCatalog returns the built-in profile catalog. The order of the
// profiles decides ties during selection.
var DefaultCatalog = sync.OnceValue(func() *Catalog {
	catalog, err := NewCatalog(defaultProfiles())
	if err != nil {
		panic("career: invalid built-in catalog: " + err.Error())
	}
	return catalog
})

func defaultProfiles() []Profile {
	return []Profile{
		{
			Title:          "Software Engineer",
			Archetype:      ArchetypeBuilder,
			Stream:         StreamEngineering,
			Branch:         BranchComputerScience,
			Description:    "Designs, builds and operates the software systems that run modern products.",
			Salary:         "$85k - $180k",
			Timeline:       "4 years degree or 1-2 years intensive self-study",
			AutomationRisk: AutomationRiskMedium,
			MarketDemand:   MarketDemandFutureProof,
			Roadmap: []RoadmapStep{
				Label("Programming Fundamentals"),
				Label("Data Structures and Algorithms"),
				{Title: "Build Real Projects", Description: "Ship two or three complete applications and publish them with source code.", Timeframe: "Months 5-8"},
				Label("System Design"),
				Label("Internships and Open Source"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Programming", Importance: ImportanceCritical, EstimatedWeeksToLearn: 12},
				{Name: "Data Structures", Importance: ImportanceCritical, EstimatedWeeksToLearn: 8},
				{Name: "Git", Importance: ImportanceImportant, EstimatedWeeksToLearn: 2},
				{Name: "Databases", Importance: ImportanceImportant, EstimatedWeeksToLearn: 4},
				{Name: "Cloud Platforms", Importance: ImportanceOptional, EstimatedWeeksToLearn: 6},
			},
		},
		{
			Title:          "Mechanical Engineer",
			Archetype:      ArchetypeBuilder,
			Stream:         StreamEngineering,
			Branch:         BranchMechanical,
			Description:    "Designs machines, engines and manufacturing systems from concept to production.",
			Salary:         "$70k - $130k",
			Timeline:       "4 years degree plus licensure",
			AutomationRisk: AutomationRiskLow,
			MarketDemand:   MarketDemandStable,
			Roadmap: []RoadmapStep{
				Label("Physics and Calculus"),
				Label("CAD Modelling"),
				Label("Thermodynamics and Materials"),
				Label("Hands-on Workshop Projects"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Mathematics", Importance: ImportanceCritical, EstimatedWeeksToLearn: 10},
				{Name: "CAD", Importance: ImportanceCritical, EstimatedWeeksToLearn: 8},
				{Name: "Thermodynamics", Importance: ImportanceImportant, EstimatedWeeksToLearn: 8},
				{Name: "Technical Drawing", Importance: ImportanceImportant, EstimatedWeeksToLearn: 4},
				{Name: "Programming", Importance: ImportanceOptional, EstimatedWeeksToLearn: 8},
			},
		},
		{
			Title:          "Doctor",
			Archetype:      ArchetypeCaregiver,
			Stream:         StreamMedical,
			Branch:         BranchMedicine,
			Description:    "Diagnoses and treats patients, combining clinical science with daily human contact.",
			Salary:         "$120k - $300k",
			Timeline:       "5-6 years medical school plus residency",
			AutomationRisk: AutomationRiskLow,
			MarketDemand:   MarketDemandCompetitive,
			Roadmap: []RoadmapStep{
				Label("Pre-medical Sciences"),
				Label("Entrance Exam Preparation"),
				Label("Medical School"),
				Label("Clinical Rotations"),
				Label("Residency"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Biology", Importance: ImportanceCritical, EstimatedWeeksToLearn: 16},
				{Name: "Chemistry", Importance: ImportanceCritical, EstimatedWeeksToLearn: 12},
				{Name: "Communication", Importance: ImportanceImportant, EstimatedWeeksToLearn: 4},
				{Name: "First Aid", Importance: ImportanceImportant, EstimatedWeeksToLearn: 2},
				{Name: "Research Methods", Importance: ImportanceOptional, EstimatedWeeksToLearn: 6},
			},
		},
		{
			Title:          "Clinical Psychologist",
			Archetype:      ArchetypeCaregiver,
			Stream:         StreamMedical,
			Branch:         BranchPsychology,
			Description:    "Assesses and treats mental health conditions through evidence-based therapy.",
			Salary:         "$65k - $140k",
			Timeline:       "Bachelor's plus 4-6 years doctoral training",
			AutomationRisk: AutomationRiskLow,
			MarketDemand:   MarketDemandGrowing,
			Roadmap: []RoadmapStep{
				Label("Introductory Psychology"),
				Label("Statistics for Behavioural Science"),
				Label("Supervised Practicum"),
				Label("Licensure"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Active Listening", Importance: ImportanceCritical, EstimatedWeeksToLearn: 4},
				{Name: "Psychology Fundamentals", Importance: ImportanceCritical, EstimatedWeeksToLearn: 12},
				{Name: "Statistics", Importance: ImportanceImportant, EstimatedWeeksToLearn: 6},
				{Name: "Report Writing", Importance: ImportanceImportant, EstimatedWeeksToLearn: 3},
				{Name: "Second Language", Importance: ImportanceOptional, EstimatedWeeksToLearn: 20},
			},
		},
		{
			Title:          "Investment Analyst",
			Archetype:      ArchetypeAnalyst,
			Stream:         StreamBusiness,
			Branch:         BranchFinance,
			Description:    "Evaluates companies and markets to guide investment decisions.",
			Salary:         "$70k - $160k",
			Timeline:       "3-4 years degree plus certification",
			AutomationRisk: AutomationRiskMedium,
			MarketDemand:   MarketDemandCompetitive,
			Roadmap: []RoadmapStep{
				Label("Accounting Basics"),
				Label("Financial Modelling"),
				Label("Valuation Techniques"),
				Label("Professional Certification"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Accounting", Importance: ImportanceCritical, EstimatedWeeksToLearn: 8},
				{Name: "Excel", Importance: ImportanceCritical, EstimatedWeeksToLearn: 3},
				{Name: "Financial Modelling", Importance: ImportanceImportant, EstimatedWeeksToLearn: 6},
				{Name: "Presentation", Importance: ImportanceImportant, EstimatedWeeksToLearn: 2},
				{Name: "Python", Importance: ImportanceOptional, EstimatedWeeksToLearn: 8},
			},
		},
		{
			Title:          "Marketing Strategist",
			Archetype:      ArchetypeLeader,
			Stream:         StreamBusiness,
			Branch:         BranchMarketing,
			Description:    "Plans campaigns and positions brands so the right people hear about them.",
			Salary:         "$55k - $130k",
			Timeline:       "3-4 years degree or portfolio of campaigns",
			AutomationRisk: AutomationRiskMedium,
			MarketDemand:   MarketDemandGrowing,
			Roadmap: []RoadmapStep{
				Label("Marketing Principles"),
				Label("Digital Channels and Analytics"),
				Label("Run a Real Campaign"),
				Label("Brand Strategy"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Communication", Importance: ImportanceCritical, EstimatedWeeksToLearn: 4},
				{Name: "Digital Marketing", Importance: ImportanceCritical, EstimatedWeeksToLearn: 6},
				{Name: "Analytics", Importance: ImportanceImportant, EstimatedWeeksToLearn: 4},
				{Name: "Copywriting", Importance: ImportanceImportant, EstimatedWeeksToLearn: 3},
				{Name: "Graphic Design", Importance: ImportanceOptional, EstimatedWeeksToLearn: 6},
			},
		},
		{
			Title:          "Startup Founder",
			Archetype:      ArchetypeLeader,
			Stream:         StreamBusiness,
			Branch:         BranchEntrepreneurship,
			Description:    "Turns an idea into a company by building a product, a team and a market.",
			Salary:         "Highly variable, equity driven",
			Timeline:       "No fixed path, typically 2-5 years to traction",
			AutomationRisk: AutomationRiskLow,
			MarketDemand:   MarketDemandCompetitive,
			Roadmap: []RoadmapStep{
				Label("Problem Discovery"),
				Label("Minimum Viable Product"),
				Label("First Customers"),
				Label("Fundraising"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Sales", Importance: ImportanceCritical, EstimatedWeeksToLearn: 6},
				{Name: "Leadership", Importance: ImportanceCritical, EstimatedWeeksToLearn: 8},
				{Name: "Finance Basics", Importance: ImportanceImportant, EstimatedWeeksToLearn: 4},
				{Name: "Product Management", Importance: ImportanceImportant, EstimatedWeeksToLearn: 6},
				{Name: "Programming", Importance: ImportanceOptional, EstimatedWeeksToLearn: 12},
			},
		},
		{
			Title:          "UX Designer",
			Archetype:      ArchetypeCreator,
			Stream:         StreamCreative,
			Branch:         BranchDesign,
			Description:    "Shapes how digital products look, feel and behave for the people using them.",
			Salary:         "$60k - $140k",
			Timeline:       "1-4 years degree or bootcamp plus portfolio",
			AutomationRisk: AutomationRiskMedium,
			MarketDemand:   MarketDemandGrowing,
			Roadmap: []RoadmapStep{
				Label("Design Fundamentals"),
				Label("User Research"),
				Label("Prototyping Tools"),
				{Title: "Portfolio", Description: "Document three case studies from research to final design.", Timeframe: "Months 7-10"},
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Figma", Importance: ImportanceCritical, EstimatedWeeksToLearn: 4},
				{Name: "User Research", Importance: ImportanceCritical, EstimatedWeeksToLearn: 6},
				{Name: "Visual Design", Importance: ImportanceImportant, EstimatedWeeksToLearn: 8},
				{Name: "Communication", Importance: ImportanceImportant, EstimatedWeeksToLearn: 4},
				{Name: "HTML and CSS", Importance: ImportanceOptional, EstimatedWeeksToLearn: 4},
			},
		},
		{
			Title:          "Content Creator",
			Archetype:      ArchetypeCreator,
			Stream:         StreamCreative,
			Branch:         BranchMedia,
			Description:    "Produces video, audio and written content and grows an audience around it.",
			Salary:         "$30k - $150k+",
			Timeline:       "No formal path, 1-3 years to build an audience",
			AutomationRisk: AutomationRiskHigh,
			MarketDemand:   MarketDemandCompetitive,
			Roadmap: []RoadmapStep{
				Label("Storytelling"),
				Label("Video Production"),
				Label("Consistent Publishing"),
				Label("Monetisation"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Storytelling", Importance: ImportanceCritical, EstimatedWeeksToLearn: 4},
				{Name: "Video Editing", Importance: ImportanceCritical, EstimatedWeeksToLearn: 6},
				{Name: "Social Media", Importance: ImportanceImportant, EstimatedWeeksToLearn: 3},
				{Name: "Photography", Importance: ImportanceOptional, EstimatedWeeksToLearn: 6},
			},
		},
		{
			Title:          "Data Scientist",
			Archetype:      ArchetypeAnalyst,
			Stream:         StreamScience,
			Branch:         BranchDataScience,
			Description:    "Extracts insight from data with statistics and machine learning.",
			Salary:         "$90k - $180k",
			Timeline:       "4 years degree, often a master's",
			AutomationRisk: AutomationRiskMedium,
			MarketDemand:   MarketDemandFutureProof,
			Roadmap: []RoadmapStep{
				Label("Statistics and Probability"),
				Label("Python for Data"),
				Label("Machine Learning"),
				Label("Domain Projects"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Python", Importance: ImportanceCritical, EstimatedWeeksToLearn: 8},
				{Name: "Statistics", Importance: ImportanceCritical, EstimatedWeeksToLearn: 8},
				{Name: "SQL", Importance: ImportanceImportant, EstimatedWeeksToLearn: 3},
				{Name: "Machine Learning", Importance: ImportanceImportant, EstimatedWeeksToLearn: 12},
				{Name: "Data Visualisation", Importance: ImportanceOptional, EstimatedWeeksToLearn: 3},
			},
		},
		{
			Title:          "Research Scientist",
			Archetype:      ArchetypeExplorer,
			Stream:         StreamScience,
			Branch:         BranchResearch,
			Description:    "Designs experiments that push the boundaries of what we know.",
			Salary:         "$60k - $150k",
			Timeline:       "Bachelor's plus 4-6 years PhD",
			AutomationRisk: AutomationRiskLow,
			MarketDemand:   MarketDemandStable,
			Roadmap: []RoadmapStep{
				Label("Core Sciences"),
				Label("Laboratory Techniques"),
				Label("Undergraduate Research"),
				Label("Graduate Studies"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Research Methods", Importance: ImportanceCritical, EstimatedWeeksToLearn: 6},
				{Name: "Statistics", Importance: ImportanceCritical, EstimatedWeeksToLearn: 8},
				{Name: "Scientific Writing", Importance: ImportanceImportant, EstimatedWeeksToLearn: 4},
				{Name: "Lab Safety", Importance: ImportanceImportant, EstimatedWeeksToLearn: 1},
				{Name: "Programming", Importance: ImportanceOptional, EstimatedWeeksToLearn: 10},
			},
		},
		{
			Title:          "Corporate Lawyer",
			Archetype:      ArchetypeGuardian,
			Stream:         StreamHumanities,
			Branch:         BranchLaw,
			Description:    "Advises organisations on contracts, compliance and disputes.",
			Salary:         "$80k - $220k",
			Timeline:       "3-5 years law degree plus bar exam",
			AutomationRisk: AutomationRiskMedium,
			MarketDemand:   MarketDemandStable,
			Roadmap: []RoadmapStep{
				Label("Legal Foundations"),
				Label("Moot Court"),
				Label("Law Firm Internship"),
				Label("Bar Exam"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Legal Research", Importance: ImportanceCritical, EstimatedWeeksToLearn: 8},
				{Name: "Writing", Importance: ImportanceCritical, EstimatedWeeksToLearn: 6},
				{Name: "Negotiation", Importance: ImportanceImportant, EstimatedWeeksToLearn: 4},
				{Name: "Public Speaking", Importance: ImportanceImportant, EstimatedWeeksToLearn: 3},
				{Name: "Accounting", Importance: ImportanceOptional, EstimatedWeeksToLearn: 6},
			},
		},
		{
			Title:          "Teacher",
			Archetype:      ArchetypeCaregiver,
			Stream:         StreamHumanities,
			Branch:         BranchEducation,
			Description:    "Helps students understand a subject and grow as people.",
			Salary:         "$40k - $90k",
			Timeline:       "4 years degree plus teaching certification",
			AutomationRisk: AutomationRiskLow,
			MarketDemand:   MarketDemandStable,
			Roadmap: []RoadmapStep{
				Label("Subject Mastery"),
				Label("Pedagogy"),
				Label("Student Teaching"),
				Label("Certification"),
			},
			RequiredSkills: []SkillRequirement{
				{Name: "Subject Knowledge", Importance: ImportanceCritical, EstimatedWeeksToLearn: 12},
				{Name: "Communication", Importance: ImportanceCritical, EstimatedWeeksToLearn: 4},
				{Name: "Classroom Management", Importance: ImportanceImportant, EstimatedWeeksToLearn: 4},
				{Name: "Patience", Importance: ImportanceImportant, EstimatedWeeksToLearn: 2},
				{Name: "EdTech Tools", Importance: ImportanceOptional, EstimatedWeeksToLearn: 2},
			},
		},
	}
}
