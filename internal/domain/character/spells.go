package character

// SpellList tracks learned spells. Wizard spellbook spells are KnownSpells.
type SpellList struct {
	KnownSpells []string `json:"known_spells"`
	Cantrips    []string `json:"cantrips"`
}

// Knows reports whether key is a known spell or cantrip
func (l *SpellList) Knows(key string) bool {
	if l == nil {
		return false
	}
	return contains(l.KnownSpells, key) || contains(l.Cantrips, key)
}

// add records a spell once; cantrips go to their own list
func (l *SpellList) add(key string, cantrip bool) {
	if l.Knows(key) {
		return
	}
	if cantrip {
		l.Cantrips = append(l.Cantrips, key)
		return
	}
	l.KnownSpells = append(l.KnownSpells, key)
}

func (l *SpellList) clone() *SpellList {
	if l == nil {
		return &SpellList{}
	}
	return &SpellList{
		KnownSpells: append([]string(nil), l.KnownSpells...),
		Cantrips:    append([]string(nil), l.Cantrips...),
	}
}

func contains(list []string, key string) bool {
	for _, k := range list {
		if k == key {
			return true
		}
	}
	return false
}
