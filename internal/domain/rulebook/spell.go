package rulebook

// Spell is the subset of spell data level-up needs
type Spell struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Level   int      `json:"level"` // 0 for cantrips
	Classes []string `json:"classes"`
}

// OnList reports whether the spell is on the given class spell list
func (s *Spell) OnList(list string) bool {
	for _, c := range s.Classes {
		if c == list {
			return true
		}
	}
	return false
}
