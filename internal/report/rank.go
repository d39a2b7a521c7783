// Package report ranks player records and renders leaderboard tables.
package report

import (
	"sort"

	"github.com/cory-johannsen/mudreport/internal/player"
)

// Field selects which numeric column a leaderboard ranks by.
type Field int

const (
	FieldExperience Field = iota
	FieldGold
)

// Label returns the column header for the field.
func (f Field) Label() string {
	switch f {
	case FieldGold:
		return "GOLD"
	default:
		return "XP"
	}
}

// Value extracts the ranked field from p.
func (f Field) Value(p *player.Player) int {
	switch f {
	case FieldGold:
		return p.Gold
	default:
		return p.XP
	}
}

// Rank returns at most limit players ordered by f descending. The sort is
// stable: players with equal values keep their input order. The input slice
// is not modified.
func Rank(players []*player.Player, f Field, limit int) []*player.Player {
	ranked := make([]*player.Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return f.Value(ranked[i]) > f.Value(ranked[j])
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
