package prompts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/courtside-ai/courtside-engine/pkg/models"
)

// TranslationSystemMessage frames every translation call.
const TranslationSystemMessage = "You translate natural-language basketball statistics questions into a structured JSON query. You only emit JSON conforming to the provided schema; you never answer the question yourself."

// BuildTranslationPrompt creates the instruction block for translating a
// question into the structured query schema. The worked examples and
// trigger-phrase rules are part of the behavioral contract: the repair layer
// and the tests both assume them.
func BuildTranslationPrompt(question string, currentSeason int) string {
	var b strings.Builder

	b.WriteString("# Basketball Question Translation\n\n")
	b.WriteString("Translate the user's question into a structured query. ")
	fmt.Fprintf(&b, "The current season is %d; use it whenever the question does not name a season.\n\n", currentSeason)

	b.WriteString("## Metrics\n\n")
	b.WriteString("Pick exactly one metric value, or \"all\" when the question asks for a full stat line or an overall assessment:\n\n")
	for _, m := range sortedMetrics() {
		info := models.MetricCatalog[m]
		fmt.Fprintf(&b, "- %s: %s\n", m, info.Description)
	}
	b.WriteString("\n")

	b.WriteString("## Tasks\n\n")
	b.WriteString("Choose the task by checking these triggers in order; the first match wins:\n\n")
	b.WriteString("1. team -> the question is about a team's record, standing, or roster (\"how good are the Celtics\", \"what is the best team\").\n")
	b.WriteString("2. historical_comparison -> the question asks which past players a current player resembles (\"who does Anthony Edwards play like\", \"historical comparisons for Luka Doncic\").\n")
	b.WriteString("3. compare -> two or more named players are compared (\"compare X and Y\", \"X versus Y\", \"who is better, X or Y\").\n")
	b.WriteString("4. leaders -> \"top\", \"best\", or \"leaders\" phrasing over a stat (\"top scorers\", \"league leaders in assists\").\n")
	b.WriteString("5. rank -> any other ranking request (\"who averages the most rebounds\", \"players with the lowest turnovers\").\n")
	b.WriteString("6. solo -> a full profile of one named player (\"tell me about Jayson Tatum\").\n")
	b.WriteString("7. lookup -> a single stat for one named player (\"what is Stephen Curry's three point percentage\").\n\n")

	b.WriteString("## Teams\n\n")
	b.WriteString("Only use these abbreviations. Map city names and nicknames through this dictionary; never invent an abbreviation:\n\n")
	for _, t := range TeamDictionary {
		fmt.Fprintf(&b, "- %s = %s (%s)\n", t.Abbreviation, t.Name, strings.Join(t.Aliases, ", "))
	}
	b.WriteString("\n")

	b.WriteString("## Filter rules\n\n")
	fmt.Fprintf(&b, "- mentions \"rookies\" or \"rookie\" -> filters.draft_year_range = {\"gte\": %d, \"lte\": %d}\n", currentSeason, currentSeason)
	b.WriteString("- mentions \"sophomores\" or \"second-year players\" -> draft_year_range covering the previous season only\n")
	b.WriteString("- mentions a college (\"players from Duke\") -> filters.colleges\n")
	b.WriteString("- mentions a country (\"international players from France\") -> filters.countries\n")
	b.WriteString("- mentions an age bound (\"under 25\") -> filters.age_range\n")
	b.WriteString("- mentions minutes played bounds -> filters.minutes_range\n")
	b.WriteString("- mentions games played minimum -> filters.min_games\n")
	b.WriteString("- salary stated in millions must be scaled by 1000000 before it goes in filters.salary_range: \"making more than 50 million\" -> {\"gte\": 50000000}\n")
	b.WriteString("- \"clutch\" or \"in the clutch\" or \"late game\" -> clutch = true\n")
	b.WriteString("- guards/forwards/centers -> position\n")
	b.WriteString("- named players the question is about -> filters.players (full names only)\n\n")

	b.WriteString("## Filtering by one metric while ranking by another\n\n")
	b.WriteString("When the question filters on one stat but ranks by a different one, the rank metric goes in metric and the filter goes in filters.filter_by_metric plus filters.min_metric_value.\n")
	b.WriteString("Example: \"players averaging over 20 points ranked by field goal percentage\" ->\n")
	b.WriteString("  {\"task\": \"rank\", \"metric\": \"fg_pct\", \"filters\": {\"filter_by_metric\": \"ppg\", \"min_metric_value\": 20}}\n")
	b.WriteString("Omit filter_by_metric when the filter stat and the rank stat are the same metric.\n\n")

	b.WriteString("## Order direction\n\n")
	b.WriteString("Descending is the default. Set order_direction to \"asc\" ONLY when the question contains an explicit ascending trigger: least, lowest, worst, fewest, bottom, minimum.\n")
	b.WriteString("Words like most, highest, best, top are the descending default, not a reason to set order_direction.\n\n")
	b.WriteString("Examples:\n")
	b.WriteString("- \"who is averaging the least amount of points\" -> {\"task\": \"rank\", \"metric\": \"ppg\", \"order_direction\": \"asc\"}\n")
	b.WriteString("- \"who are the top scorers\" -> {\"task\": \"leaders\", \"metric\": \"ppg\"} (no order_direction)\n")
	fmt.Fprintf(&b, "- \"top scoring rookies this year\" -> {\"task\": \"leaders\", \"metric\": \"ppg\", \"season\": %d, \"filters\": {\"draft_year_range\": {\"gte\": %d, \"lte\": %d}}}\n\n", currentSeason, currentSeason, currentSeason)

	b.WriteString("## Question\n\n")
	b.WriteString(question)
	b.WriteString("\n")

	return b.String()
}

// sortedMetrics returns the metric vocabulary in stable order for prompt
// reproducibility.
func sortedMetrics() []models.Metric {
	out := make([]models.Metric, 0, len(models.MetricCatalog))
	for m := range models.MetricCatalog {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
