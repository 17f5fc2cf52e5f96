package game

// Action represents a playing decision at a single decision point.
type Action int

const (
	Hit Action = iota
	Stand
	Surrender
	Double
	Split
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "Hit"
	case Stand:
		return "Stand"
	case Surrender:
		return "Surrender"
	case Double:
		return "Double"
	case Split:
		return "Split"
	default:
		return "?"
	}
}
