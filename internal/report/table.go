package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cory-johannsen/mudreport/internal/player"
)

const bannerWidth = 60

// numberPrinter groups integers with thousands separators (1,234,567). The
// locale is fixed; the report has no i18n surface.
var numberPrinter = message.NewPrinter(language.English)

// WriteTable renders a ranked leaderboard as a fixed-width table: banner,
// title, column headers, one row per player.
//
// Column widths match the original tbaMUD report and are not sized to
// content, so an overlong name runs into the next column. An empty ranked
// slice renders the banner and headers with no rows.
func WriteTable(w io.Writer, title string, ranked []*player.Player, f Field, catalog *player.Catalog) {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "%s\n", banner)
	fmt.Fprintf(w, "%-6s %-15s %-12s %-18s %-6s\n", "Rank", "Player", f.Label(), "Class", "Level")
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", bannerWidth))

	for i, p := range ranked {
		value := numberPrinter.Sprintf("%d", f.Value(p))
		fmt.Fprintf(w, "%-6d %-15s %-12s %-18s %-6d\n",
			i+1, p.Name, value, catalog.Display(p.ClassID), p.Level)
	}

	fmt.Fprintln(w)
}

// WriteClassSummary counts class ids over the given players and prints one
// line per class, ordered by descending count. The caller passes an already
// ranked and truncated slice, so the summary covers exactly the top players
// it was given. Ties keep encounter order.
func WriteClassSummary(w io.Writer, ranked []*player.Player, catalog *player.Catalog) {
	counts := make(map[int]int)
	var order []int
	for _, p := range ranked {
		if counts[p.ClassID] == 0 {
			order = append(order, p.ClassID)
		}
		counts[p.ClassID]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	fmt.Fprintln(w, "Class Distribution:")
	for _, id := range order {
		fmt.Fprintf(w, "  %s %s: %d player(s)\n", catalog.Icon(id), catalog.Name(id), counts[id])
	}
}
