package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/spigell/careerfit/internal/ai"
	"github.com/spigell/careerfit/internal/career"
	"github.com/spigell/careerfit/internal/history"
	"github.com/spigell/careerfit/internal/scoring"
	"github.com/spigell/careerfit/internal/skillgap"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

var importanceColor = map[career.Importance]func(a ...any) string{
	career.ImportanceCritical:  red,
	career.ImportanceImportant: yellow,
	career.ImportanceOptional:  gray,
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printProfile(w io.Writer, p *career.Profile, report *scoring.Report) {
	fmt.Fprintf(w, "\n%s  %s\n", bold(cyan(p.Title)), green(fmt.Sprintf("(match %d%%)", p.MatchScore)))
	fmt.Fprintf(w, "%s\n\n", p.Description)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Stream\t%s / %s\n", p.Stream, p.Branch)
	fmt.Fprintf(tw, "Archetype\t%s\n", p.Archetype)
	fmt.Fprintf(tw, "Salary\t%s\n", p.Salary)
	fmt.Fprintf(tw, "Timeline\t%s\n", p.Timeline)
	fmt.Fprintf(tw, "Automation risk\t%s\n", p.AutomationRisk)
	fmt.Fprintf(tw, "Market demand\t%s\n", p.MarketDemand)
	tw.Flush()

	fmt.Fprintln(w, "\n"+bold("Why this path:"))
	for _, reason := range p.MatchReason {
		fmt.Fprintf(w, "  - %s\n", reason)
	}

	fmt.Fprintln(w, "\n"+bold("Roadmap:"))
	for i, step := range p.Roadmap {
		fmt.Fprintf(w, "  %d. %s %s\n     %s\n", i+1, step.Title, gray("["+step.Timeframe+"]"), step.Description)
	}

	if report != nil && report.Fallback {
		fmt.Fprintln(w, "\n"+yellow("Note: every career was ruled out by your answers, so the whole catalog was considered."))
	}
}

func printGap(w io.Writer, report *skillgap.Report) {
	fmt.Fprintf(w, "\n%s %d%% covered, %d weeks to close\n", bold("Skill gap for "+report.Career+":"), report.Coverage(), report.TotalWeeksToClose)

	if len(report.Matched) > 0 {
		fmt.Fprintf(w, "  %s %s\n", green("Already have:"), strings.Join(skillNames(report.Matched), ", "))
	}

	for _, phase := range report.Plan() {
		until := fmt.Sprintf("by week %d", phase.EndsAtWeek)
		if phase.Importance == career.ImportanceOptional {
			until = "any time"
		}
		paint := importanceColor[phase.Importance]
		fmt.Fprintf(w, "  %s (%d weeks, %s):\n", paint(string(phase.Importance)), phase.Weeks, until)
		for _, s := range phase.Skills {
			fmt.Fprintf(w, "    - %s (%d weeks)\n", s.Name, s.EstimatedWeeksToLearn)
		}
	}
}

func printTrend(w io.Writer, trend *ai.MarketTrend) {
	fmt.Fprintf(w, "\n%s\n", bold(cyan("Market trends for "+trend.Career)))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Demand\t%s\n", trend.Demand)
	fmt.Fprintf(tw, "Growth\t%s\n", trend.GrowthOutlook)
	fmt.Fprintf(tw, "Salary\t%s\n", trend.SalaryTrend)
	fmt.Fprintf(tw, "Hot skills\t%s\n", strings.Join(trend.HotSkills, ", "))
	tw.Flush()

	if trend.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", trend.Summary)
	}
}

func printCareers(w io.Writer, profiles []*career.Profile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tSTREAM\tBRANCH\tDEMAND\tAUTOMATION RISK\tSKILLS")
	for _, p := range profiles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n", p.Title, p.Stream, p.Branch, p.MarketDemand, p.AutomationRisk, len(p.RequiredSkills))
	}
	tw.Flush()
}

func printHistory(w io.Writer, h *history.History) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tCAREER\tMATCH\tWEEKS TO CLOSE")
	for _, e := range h.Items {
		weeks := "-"
		if e.Gap != nil {
			weeks = fmt.Sprint(e.Gap.TotalWeeksToClose)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\n", e.ID.String()[:8], e.CreatedAt.Format("2006-01-02 15:04"), e.Career, e.MatchScore, weeks)
	}
	tw.Flush()
}

func skillNames(skills []career.SkillRequirement) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}
