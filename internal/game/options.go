package game

// Options is the rule set for one session. It is immutable for the life of
// a Game and is not validated here; callers supply sane values.
type Options struct {
	MinBet           int     // table minimum bet
	Payout           float64 // payout multiplier for a natural blackjack
	NumDecks         int     // 52-card decks in the shoe
	ShoeMinPercent   float64 // session ends when the shoe drops to this percent
	HitSoftSeventeen bool    // dealer hits soft 17
	DoubleAfterSplit bool    // doubling allowed on split hands
	LateSurrender    bool    // surrender allowed on an unsplit two-card hand
	MaxSplit         int     // maximum number of splits (2 splits = up to 4 hands)
}

// DefaultOptions returns the standard six-deck rule set.
func DefaultOptions() Options {
	return Options{
		MinBet:           10,
		Payout:           1.5,
		NumDecks:         6,
		ShoeMinPercent:   20.0,
		HitSoftSeventeen: false,
		DoubleAfterSplit: true,
		LateSurrender:    true,
		MaxSplit:         2,
	}
}
