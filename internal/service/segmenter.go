package service

import (
	"regexp"
	"strings"
)

// clauseSplitRe breaks a meal description into food clauses on commas,
// semicolons and the connectives "and"/"with".
var clauseSplitRe = regexp.MustCompile(`(?i)\s*(?:,|;|\band\b|\bwith\b)\s*`)

// narrativeLeadRe strips conversational lead-ins such as "I had",
// "we ate" or "for breakfast" so that only the food phrase remains.
var narrativeLeadRe = regexp.MustCompile(`(?i)^(?:(?:i|we)\s+(?:just\s+)?(?:had|ate|consumed|ordered|drank|got|made)\s+|(?:for\s+)?(?:breakfast|lunch|dinner|brunch|snack|supper)\s*(?:,|:|\s+(?:i|we)\s+(?:had|ate))?\s*|today\s+(?:i|we)?\s*(?:had|ate)?\s*)`)

// SegmentClauses splits free text into candidate food clauses. Each
// clause is trimmed, has narrative lead-ins and leading articles
// removed, and is at least two characters long. "a"/"an" survive when they quantify a unit
// word ("a slice of bread") since the parser reads them as quantity one.
func SegmentClauses(text string) []string {
	parts := clauseSplitRe.Split(text, -1)
	clauses := make([]string, 0, len(parts))
	for _, part := range parts {
		clause := strings.TrimSpace(part)
		for {
			stripped := strings.TrimSpace(narrativeLeadRe.ReplaceAllString(clause, ""))
			if stripped == clause {
				break
			}
			clause = stripped
		}
		clause = stripLeadingArticle(clause)
		// fragments shorter than two characters carry no food content
		if len(clause) >= 2 {
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// stripLeadingArticle removes "the"/"some" always, and "a"/"an" only
// when the next word is not a unit ("an apple" loses its article, "a
// slice of bread" keeps it so the quantity survives parsing).
func stripLeadingArticle(clause string) string {
	fields := strings.Fields(clause)
	if len(fields) < 2 {
		return clause
	}
	first := strings.ToLower(fields[0])
	switch first {
	case "the", "some":
		return strings.Join(fields[1:], " ")
	case "a", "an":
		if !IsUnitToken(fields[1]) {
			return strings.Join(fields[1:], " ")
		}
	}
	return clause
}
