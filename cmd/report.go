package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sells-group/advisor-cli/internal/market"
	"github.com/sells-group/advisor-cli/internal/model"
)

// Console rendering for plan output. Mirrors the JSON structure but is meant
// for humans at a terminal.

func renderPlan(w io.Writer, plan *model.Plan) {
	renderHeader(w, "FINANCIAL PLAN")

	p := plan.Profile
	fmt.Fprintf(w, "Profile: age %d, %s, %s risk tolerance\n", p.Age, p.Location, p.RiskTolerance)
	fmt.Fprintf(w, "Income $%.0f/yr, expenses $%.0f/mo, savings $%.0f, debt $%.0f\n",
		p.AnnualIncome, p.MonthlyExpenses, p.CurrentSavings, p.TotalDebt)

	renderAnalysis(w, &plan.Analysis)
	renderRecommendations(w, plan.Recommendations)
	renderProjections(w, &plan.Projections, plan.Summary.RetirementOutlook)
	renderSummary(w, &plan.Summary)
}

func renderAnalysis(w io.Writer, a *model.Analysis) {
	renderHeader(w, "FINANCIAL HEALTH")
	h := a.FinancialHealth
	fmt.Fprintf(w, "Savings rate:         %.2f%%\n", h.SavingsRate)
	fmt.Fprintf(w, "Debt-to-income ratio: %.2f%%\n", h.DebtToIncomeRatio)
	fmt.Fprintf(w, "Years to debt-free:   %s\n", formatYearsToDebtFree(h.YearsToDebtFree))
	fmt.Fprintf(w, "Emergency fund:       %.1f months\n", h.EmergencyFundMonths)

	renderHeader(w, "RECOMMENDED ALLOCATION")
	al := a.RecommendedAllocation
	fmt.Fprintf(w, "Stocks %.1f%% / Bonds %.1f%%\n", al.Stocks, al.Bonds)
	fmt.Fprintf(w, "  Large cap:     %.1f%%\n", al.Breakdown.LargeCap)
	fmt.Fprintf(w, "  Mid cap:       %.1f%%\n", al.Breakdown.MidCap)
	fmt.Fprintf(w, "  Small cap:     %.1f%%\n", al.Breakdown.SmallCap)
	fmt.Fprintf(w, "  International: %.1f%%\n", al.Breakdown.International)
	fmt.Fprintf(w, "  Bonds:         %.1f%%\n", al.Breakdown.Bonds)

	fmt.Fprintf(w, "\nStrategy: %s\n", a.InvestmentStrategy)

	renderHeader(w, "RISK ASSESSMENT")
	fmt.Fprintf(w, "Level: %s\n", a.RiskAssessment.Level)
	for _, f := range a.RiskAssessment.Factors {
		fmt.Fprintf(w, "  - %s\n", f)
	}
	fmt.Fprintf(w, "Recommendation: %s\n", a.RiskAssessment.Recommendation)

	if a.Insights != "" {
		renderHeader(w, "INSIGHTS")
		fmt.Fprintln(w, a.Insights)
	}
}

func renderRecommendations(w io.Writer, recs []model.Recommendation) {
	renderHeader(w, "STOCK RECOMMENDATIONS")
	if len(recs) == 0 {
		fmt.Fprintln(w, "No stocks matched the profile.")
		return
	}
	for i, r := range recs {
		fmt.Fprintf(w, "%2d. %-6s %-30s score %.0f\n", i+1, r.Ticker, r.Name, r.Score)
		fmt.Fprintf(w, "    %s | $%.2f | yield %.2f%% | P/E %.1f\n",
			r.Sector, r.CurrentPrice, r.DividendYield*100, r.PERatio)
		fmt.Fprintf(w, "    %s\n", r.Rationale)
	}
}

func renderProjections(w io.Writer, proj *model.Projections, readiness model.RetirementReadiness) {
	renderHeader(w, "NET WORTH PROJECTION")
	for _, pt := range sampleYears(proj.NetWorth) {
		fmt.Fprintf(w, "Year %2d (age %d): net worth $%.2f, saving $%.2f/yr\n",
			pt.Year, pt.Age, pt.NetWorth, pt.AnnualSavings)
	}

	renderHeader(w, "DIVIDEND INCOME PROJECTION")
	for _, pt := range sampleDividends(proj.Dividends) {
		fmt.Fprintf(w, "Year %2d (age %d): $%.2f/yr ($%.2f/mo) at %.2f%% yield\n",
			pt.Year, pt.Age, pt.AnnualDividend, pt.MonthlyDividend, pt.DividendYieldPct)
	}

	renderHeader(w, "RETIREMENT READINESS")
	fmt.Fprintf(w, "Projected net worth at retirement: $%.2f\n", readiness.RetirementNetWorth)
	fmt.Fprintf(w, "Retirement goal (25x expenses):    $%.2f\n", readiness.RetirementGoal)
	fmt.Fprintf(w, "Safe annual withdrawal (4%% rule):  $%.2f\n", readiness.SafeAnnualWithdrawal)
	fmt.Fprintf(w, "Estimated annual expenses:         $%.2f\n", readiness.EstimatedAnnualExpenses)
	fmt.Fprintf(w, "Income replacement ratio:          %.1f%%\n", readiness.ReplacementRatio)
	if readiness.OnTrack {
		fmt.Fprintf(w, "On track: yes (surplus $%.2f)\n", readiness.SurplusShortfall)
	} else {
		fmt.Fprintf(w, "On track: no (shortfall $%.2f)\n", -readiness.SurplusShortfall)
	}
}

func renderSummary(w io.Writer, s *model.Summary) {
	renderHeader(w, "SUMMARY")
	fmt.Fprintf(w, "Today (age %d):        net worth $%.2f, income $%.2f\n",
		s.CurrentSnapshot.Age, s.CurrentSnapshot.NetWorth, s.CurrentSnapshot.AnnualIncome)
	fmt.Fprintf(w, "In %d years (age %d):  net worth $%.2f, income $%.2f, dividends $%.2f\n",
		s.FutureProjection.YearsAhead, s.FutureProjection.Age,
		s.FutureProjection.NetWorth, s.FutureProjection.AnnualIncome, s.FutureProjection.AnnualDividend)
	fmt.Fprintf(w, "Growth:               net worth %+.1f%%, income %+.1f%%\n",
		s.Growth.NetWorthGrowth, s.Growth.IncomeGrowth)
}

func renderIndexes(w io.Writer, quotes []market.IndexQuote) {
	renderHeader(w, "MARKET INDICES")
	if len(quotes) == 0 {
		fmt.Fprintln(w, "No index data available.")
		return
	}
	for _, q := range quotes {
		fmt.Fprintf(w, "%-10s %10.2f  %+.2f (%+.2f%%)\n", q.Name, q.Value, q.Change, q.ChangePercent)
	}
}

func renderHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
}

func formatYearsToDebtFree(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f years", *v)
}

// sampleYears thins a long projection to every fifth year plus the final one.
func sampleYears(points []model.NetWorthPoint) []model.NetWorthPoint {
	var out []model.NetWorthPoint
	for i, pt := range points {
		if pt.Year%5 == 0 || i == len(points)-1 {
			out = append(out, pt)
		}
	}
	return out
}

func sampleDividends(points []model.DividendPoint) []model.DividendPoint {
	var out []model.DividendPoint
	for i, pt := range points {
		if pt.Year%5 == 0 || i == len(points)-1 {
			out = append(out, pt)
		}
	}
	return out
}
