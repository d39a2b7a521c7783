// Package player provides parsing of tbaMUD player files into records and the
// class catalog used to label them.
package player

// Player holds the fields extracted from one player file. A Player always has
// a non-empty Name; numeric fields default to zero when the source file omits
// them or carries an unparsable value. Players are built once by Parse and
// read-only afterward.
type Player struct {
	Name    string
	ClassID int
	Level   int
	XP      int
	Gold    int
}

// ClassName returns the display name for the player's class from the default
// catalog, "Unknown" for ids outside it.
func (p *Player) ClassName() string {
	return DefaultCatalog().Name(p.ClassID)
}

// ClassIcon returns the display icon for the player's class from the default
// catalog.
func (p *Player) ClassIcon() string {
	return DefaultCatalog().Icon(p.ClassID)
}
