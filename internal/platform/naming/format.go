package naming

import (
	"fmt"
	"html"
	"strings"
)

// Placeholder is rendered wherever an optional value is absent.
const Placeholder = "-"

var positions = map[string]string{
	"D":  "Defense",
	"G":  "Goalie",
	"F":  "Forward",
	"C":  "Center",
	"W":  "Left Wing / Right Wing",
	"L":  "Left Wing",
	"R":  "Right Wing",
	"LW": "Left Wing",
	"RW": "Right Wing",
}

// FullPos expands a position code. Unknown codes are returned unchanged.
func FullPos(pos string) string {
	if pos == "" {
		return Placeholder
	}
	if full, ok := positions[pos]; ok {
		return full
	}
	return pos
}

func FullShoots(shoots string) string {
	switch shoots {
	case "L":
		return "Left"
	case "R":
		return "Right"
	case "":
		return Placeholder
	default:
		return shoots
	}
}

var playoffs = map[string]string{
	"champions":               "Champions!",
	"canceled":                "Canceled",
	"cancelled":               "Canceled",
	"eliminated":              "Eliminated",
	"eliminated-championship": "Eliminated in Championship",
	"pending":                 "In progress",
}

func FullPlayoffs(status string) string {
	if status == "" {
		return Placeholder
	}
	if full, ok := playoffs[status]; ok {
		return full
	}
	return status
}

// FullLeague names a league tier the way the roster pages label it.
func FullLeague(league string) string {
	switch league {
	case "":
		return Placeholder
	case "Rec":
		return "Rec League"
	case "C", "CC":
		return "C/CC League"
	default:
		return league + " League"
	}
}

// FullRecord renders a W-L(-T) record. Ties are only shown when non-zero.
func FullRecord(wins, losses, ties int) string {
	if wins == 0 && losses == 0 && ties == 0 {
		return Placeholder
	}
	if ties > 0 {
		return fmt.Sprintf("%d-%d-%d", wins, losses, ties)
	}
	return fmt.Sprintf("%d-%d", wins, losses)
}

// ShortenName abbreviates the last name to an initial: "Asa Storm" -> "Asa S".
func ShortenName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return Placeholder
	}
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return parts[0]
	}
	last := []rune(parts[1])
	return fmt.Sprintf(`<abbr title="%s">%s %s</abbr>`, html.EscapeString(name), html.EscapeString(parts[0]), html.EscapeString(string(last[:1])))
}

// NotableAbbr truncates long notes to limit runes and keeps the full text in
// the title attribute.
func NotableAbbr(notable string, limit int) string {
	if notable == "" {
		return Placeholder
	}
	runes := []rune(notable)
	if limit <= 0 || len(runes) < limit {
		return notable
	}
	return fmt.Sprintf(`<abbr title="%s">%s…</abbr>`, html.EscapeString(notable), html.EscapeString(string(runes[:limit])))
}
