package ui

// AppMode is the screen zone that receives keys when no modal is open.
type AppMode int

const (
	ModeCards AppMode = iota
	ModeSearch
	ModeLetters
)

// zoneOrder is the tab order across zones.
var zoneOrder = []AppMode{ModeSearch, ModeLetters, ModeCards}

func (m AppMode) String() string {
	switch m {
	case ModeCards:
		return "Cards"
	case ModeSearch:
		return "Search"
	case ModeLetters:
		return "Letters"
	default:
		return "Unknown"
	}
}
