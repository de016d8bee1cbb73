package main

import (
	"strconv"

	"github.com/JonMunkholm/draftclean/internal/core"
	"github.com/JonMunkholm/draftclean/internal/pipeline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ruleLabels are the human-readable names shown in the summary table.
var ruleLabels = map[core.SplitRule]string{
	core.RulePositionPresent: "Already split",
	core.RuleTeamMissing:     "Team missing",
	core.RuleCombinedCode:    "Combined code split",
	core.RuleFallback:        "Kept verbatim",
}

// renderSummary formats per-rule row counts for a completed run.
func renderSummary(s *pipeline.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Run " + s.RunID)
	tw.AppendHeader(table.Row{"Rule", "Rows"})

	for _, rule := range core.SplitRules {
		tw.AppendRow(table.Row{ruleLabels[rule], strconv.Itoa(s.Report.Count(rule))})
	}
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(s.Rows)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
