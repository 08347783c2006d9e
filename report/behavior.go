package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/epsilab/insight/behavior"
)

// BehaviorReport renders the behavior insights as a text report.
func BehaviorReport(insights *behavior.Insights) string {
	var b strings.Builder

	line := strings.Repeat("=", 50)
	fmt.Fprintf(&b, "User Behavior Analysis Report\n%s\n", line)

	fmt.Fprintf(&b, "\nUSER ACTIVITY:\n")
	fmt.Fprintf(&b, "  average DAU: %.1f\n", insights.Activity.AvgDAU)
	fmt.Fprintf(&b, "  peak hour: %02d:00\n", insights.Activity.PeakHour)

	fmt.Fprintf(&b, "\nCONTENT PREFERENCE:\n")
	fmt.Fprintf(&b, "  most popular category: %s\n", insights.Content.MostPopular)
	fmt.Fprintf(&b, "  longest-read category: %s\n", insights.Content.LongestRead)
	for _, category := range sortedKeys(insights.Content.Popularity) {
		fmt.Fprintf(&b, "  %s: %d events, %.1f min mean reading time\n",
			category, insights.Content.Popularity[category], insights.Content.AvgReadTime[category])
	}

	fmt.Fprintf(&b, "\nUSER VALUE:\n")
	fmt.Fprintf(&b, "  high-value users: %d\n", insights.Value.HighValue)
	for _, tier := range []string{behavior.TierLow, behavior.TierMedium, behavior.TierHigh} {
		fmt.Fprintf(&b, "  %s tier: %d users\n", tier, insights.Value.TierCounts[tier])
	}
	rt := &insights.Value.ReadTime
	fmt.Fprintf(&b, "  reading time per event: mean %.1f min, stddev %.1f, skewness %.2f, max %.1f\n",
		rt.Mean(), rt.StdDev(), rt.Skewness(), rt.Max())

	fmt.Fprintf(&b, "\nACTION TYPES:\n")
	total := 0
	for _, n := range insights.Actions.Distribution {
		total += n
	}
	for _, action := range sortedKeys(insights.Actions.Distribution) {
		n := insights.Actions.Distribution[action]
		fmt.Fprintf(&b, "  %s: %d (%.1f%%)\n", action, n, 100*float64(n)/float64(total))
	}

	return b.String()
}

// WriteBehaviorReport writes the text report to a file.
func WriteBehaviorReport(insights *behavior.Insights, filename string) error {
	if err := os.WriteFile(filename, []byte(BehaviorReport(insights)), 0644); err != nil {
		return fmt.Errorf("failed to write report; %v", err)
	}
	return nil
}

// BehaviorSummary writes the console summary: the top readers table and the
// headline insights.
func BehaviorSummary(w io.Writer, insights *behavior.Insights) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"User", "Events", "Minutes", "Books", "Tier"})
	tbl.SetBorder(true)
	top := insights.Value.Users
	if len(top) > 5 {
		top = top[:5]
	}
	for _, u := range top {
		tbl.Append([]string{
			u.UserID,
			fmt.Sprintf("%d", u.TotalEvents),
			fmt.Sprintf("%.0f", u.TotalReadTime),
			fmt.Sprintf("%d", u.UniqueBooks),
			u.Tier,
		})
	}
	tbl.Render()

	fmt.Fprintf(w, "average DAU: %.1f, peak hour %02d:00\n", insights.Activity.AvgDAU, insights.Activity.PeakHour)
	fmt.Fprintf(w, "most popular category: %s\n", insights.Content.MostPopular)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
