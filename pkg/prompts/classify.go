package prompts

import (
	"fmt"
	"strings"
)

// ClassifierSystemMessage frames the in-domain decision call.
const ClassifierSystemMessage = "You decide whether a question is a basketball statistics or comparison request. Answer with exactly one word: yes or no."

// BuildClassifierPrompt creates the narrow yes/no instruction for deciding
// whether a question is a data question or an informational one.
func BuildClassifierPrompt(question string) string {
	var b strings.Builder

	b.WriteString("Is the following question asking for basketball statistics, rankings, standings, or player comparisons?\n\n")
	b.WriteString("Answer \"no\" for informational or off-topic questions such as \"what is the NBA\", \"how do you play basketball\", or \"who invented the three point line\".\n")
	b.WriteString("Answer \"yes\" for anything that can be answered from player or team statistics.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\nAnswer yes or no.", question)

	return b.String()
}
