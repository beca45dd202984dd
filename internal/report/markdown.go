package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/globalbridge/readiness-cli/internal/model"
)

// dimensionTitles maps dimension keys to their report headings.
var dimensionTitles = map[string]string{
	model.DimFoundation: "Foundation",
	model.DimProduct:    "Product Competitiveness",
	model.DimOperation:  "Operating Capability",
	model.DimResource:   "Resources & Planning",
	model.DimPotential:  "Growth Potential",
}

// RenderMarkdown renders the report as a self-contained markdown document.
func RenderMarkdown(r model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Export Readiness Report: %s\n\n", orDash(r.Profile.Name))
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04 MST"))

	fmt.Fprintf(&b, "## Assessment\n\n")
	fmt.Fprintf(&b, "- Total score: **%d/100**\n", r.Assessment.TotalScore)
	fmt.Fprintf(&b, "- Stage: %s\n", label(stageLabels, r.Assessment.Stage))
	fmt.Fprintf(&b, "- Level: %s\n\n", r.Assessment.Level)

	b.WriteString("| Dimension | Score |\n|---|---|\n")
	for _, d := range r.Assessment.DimensionScores.Ordered() {
		fmt.Fprintf(&b, "| %s | %d |\n", dimensionTitles[d.Name], d.Score)
	}
	b.WriteString("\n")

	writeBullets(&b, "### Key Findings", r.Assessment.KeyFindings)

	b.WriteString("## SWOT\n\n")
	writeBullets(&b, "### Strengths", r.Assessment.SWOT.Strengths)
	writeBullets(&b, "### Weaknesses", r.Assessment.SWOT.Weaknesses)
	writeBullets(&b, "### Opportunities", r.Assessment.SWOT.Opportunities)
	writeBullets(&b, "### Threats", r.Assessment.SWOT.Threats)

	if len(r.Benchmarks) > 0 {
		b.WriteString("## Benchmark Companies\n\n")
		for i, bench := range r.Benchmarks {
			fmt.Fprintf(&b, "%d. **%s** (%s, fit %d/100)\n", i+1, bench.Company.Name, bench.Company.Industry, bench.Score)
			for _, reason := range bench.Reasons {
				fmt.Fprintf(&b, "   - %s\n", reason)
			}
		}
		b.WriteString("\n")
	}

	if len(r.Markets) > 0 {
		b.WriteString("## Recommended Markets\n\n")
		for i, m := range r.Markets {
			fmt.Fprintf(&b, "%d. **%s** (fit %d/100, %s priority)\n", i+1, m.Market.Region, m.FitScore, m.Priority)
			fmt.Fprintf(&b, "   - %s\n", m.Rationale)
		}
		b.WriteString("\n")
	}

	if len(r.Services) > 0 {
		b.WriteString("## Recommended Services\n\n")
		for i, s := range r.Services {
			fmt.Fprintf(&b, "%d. **%s** — %s\n", i+1, s.Service.Name, s.Service.Description)
			fmt.Fprintf(&b, "   - Investment: %d-%d, duration %s\n",
				s.Service.InvestmentRange.Min, s.Service.InvestmentRange.Max, s.Service.Duration)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Action Plan\n\n")
	writeBullets(&b, "### Immediate", r.ActionPlan.Immediate)
	writeBullets(&b, "### Short Term (1-3 months)", r.ActionPlan.ShortTerm)
	writeBullets(&b, "### Medium Term (3-6 months)", r.ActionPlan.MediumTerm)
	writeBullets(&b, "### Long Term (6-12 months)", r.ActionPlan.LongTerm)

	b.WriteString("## Investment Plan\n\n")
	fmt.Fprintf(&b, "Total budget: %d-%d\n\n", r.Investment.TotalBudget.Min, r.Investment.TotalBudget.Max)
	b.WriteString("| Category | Share | Amount |\n|---|---|---|\n")
	for _, a := range r.Investment.Allocation {
		fmt.Fprintf(&b, "| %s | %d%% | %s |\n", a.Category, a.Percentage, a.Amount)
	}
	fmt.Fprintf(&b, "\n%s\n\n", r.Investment.ROIProjection)

	b.WriteString("## Questionnaire Summary\n\n")
	writeSummarySection(&b, "Company", r.DataSummary.Profile)
	writeSummarySection(&b, "Export History", r.DataSummary.Diagnosis)
	writeSummarySection(&b, "Product", r.DataSummary.Product)
	writeSummarySection(&b, "Operations", r.DataSummary.Operation)
	writeSummarySection(&b, "Resources", r.DataSummary.Resource)

	return b.String()
}

func writeBullets(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(heading + "\n\n")
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

// writeSummarySection renders one label→value map with sorted keys so
// output is deterministic.
func writeSummarySection(b *strings.Builder, heading string, section map[string]string) {
	if len(section) == 0 {
		return
	}
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(b, "### %s\n\n", heading)
	for _, k := range keys {
		fmt.Fprintf(b, "- %s: %s\n", k, section[k])
	}
	b.WriteString("\n")
}
