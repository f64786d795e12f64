package lounge

import "strconv"

// Identifiers returns every alias this participant can be referenced by:
// the numeric league id and, when linked, the external account id. Within
// one match no two participants share an alias.
func (p PlayerResult) Identifiers() []string {
	ids := make([]string, 0, 2)
	if p.PlayerID != 0 {
		ids = append(ids, strconv.FormatInt(p.PlayerID, 10))
	}
	if p.DiscordID != "" {
		ids = append(ids, p.DiscordID)
	}
	return ids
}

// Is reports whether id refers to this participant under any alias.
func (p PlayerResult) Is(id string) bool {
	if id == "" {
		return false
	}
	for _, alias := range p.Identifiers() {
		if alias == id {
			return true
		}
	}
	return false
}
