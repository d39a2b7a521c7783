package player

import (
	"strconv"
	"strings"
)

// Field prefixes in tbaMUD player files. The experience label is written
// "Exp : 1234" on disk, so it is matched by the token plus a trailing space
// rather than a colon-terminated prefix like the others.
const (
	namePrefix  = "Name:"
	classPrefix = "Clas:"
	levelPrefix = "Levl:"
	expPrefix   = "Exp "
	goldPrefix  = "Gold:"
)

// Parse extracts a Player from the contents of one player file.
//
// Lines are trimmed and matched against the known prefixes; unrecognized
// lines are ignored and a non-integer value leaves its field at zero. The
// second return is false when no name was found, in which case the caller
// skips the file.
//
// Postcondition: When ok is true the returned Player has a non-empty Name.
func Parse(data []byte) (*Player, bool) {
	var p Player
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, namePrefix):
			p.Name = strings.TrimSpace(line[len(namePrefix):])
		case strings.HasPrefix(line, classPrefix):
			p.ClassID = intAfterColon(line, p.ClassID)
		case strings.HasPrefix(line, levelPrefix):
			p.Level = intAfterColon(line, p.Level)
		case strings.HasPrefix(line, expPrefix):
			p.XP = intAfterColon(line, p.XP)
		case strings.HasPrefix(line, goldPrefix):
			p.Gold = intAfterColon(line, p.Gold)
		}
	}

	if p.Name == "" {
		return nil, false
	}
	return &p, true
}

// intAfterColon parses the integer after the first colon in line, returning
// fallback when the line has no colon or the value is not an integer.
func intAfterColon(line string, fallback int) int {
	_, rest, found := strings.Cut(line, ":")
	if !found {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return fallback
	}
	return n
}
