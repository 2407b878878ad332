package cards

import "fmt"

// Rank represents a card rank, Two through Ace.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace // highest intrinsic rank
)

// Ranks lists all thirteen ranks in ascending intrinsic order.
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Glyph returns the short display form of the rank, e.g. "A" or "10".
func (r Rank) Glyph() string {
	switch r {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Name returns the long display form of the rank, e.g. "Ace" or "Ten".
func (r Rank) Name() string {
	switch r {
	case Ace:
		return "Ace"
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Jack:
		return "Jack"
	case Ten:
		return "Ten"
	case Nine:
		return "Nine"
	case Eight:
		return "Eight"
	case Seven:
		return "Seven"
	case Six:
		return "Six"
	case Five:
		return "Five"
	case Four:
		return "Four"
	case Three:
		return "Three"
	default:
		return "Two"
	}
}

// IsCourt reports whether the rank is a court card (Jack, Queen, or King).
func (r Rank) IsCourt() bool {
	return r == Jack || r == Queen || r == King
}

// GameValue returns the blackjack value of the rank: court cards count 10,
// an Ace counts 1 (soft-ace promotion happens at the hand level), the rest
// count their face value.
func (r Rank) GameValue() int {
	switch {
	case r == Ace:
		return 1
	case r.IsCourt():
		return 10
	default:
		return int(r)
	}
}

// Suit represents a card suit.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists all four suits.
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// Glyph returns the suit symbol, e.g. "♠".
func (s Suit) Glyph() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	default:
		return "♣"
	}
}

// Name returns the suit name, e.g. "Spades".
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	default:
		return "Clubs"
	}
}

// Color represents the display color of a suit.
type Color string

const (
	Black Color = "black"
	Red   Color = "red"
)

// Color returns black for Spades and Clubs, red for Hearts and Diamonds.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Card represents a playing card. Equality of rank and suit is value
// equality (Equals). Which physical card instance it is, relevant when the
// same rank and suit exists once per constituent deck, is tracked
// separately through its identity (ID, SameCard).
type Card struct {
	rank Rank
	suit Suit
	id   CardID
}

// New creates a card with no deck identity, e.g. for tests or display.
func New(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// ID returns the card's deck identity. The zero CardID means the card was
// constructed outside any deck.
func (c Card) ID() CardID { return c.id }

// GameValue returns the blackjack value of the card.
func (c Card) GameValue() int { return c.rank.GameValue() }

// Name returns the long display form, e.g. "Ace of Spades".
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.rank.Name(), c.suit.Name())
}

// String returns the short display form, e.g. "A♠".
func (c Card) String() string {
	return c.rank.Glyph() + c.suit.Glyph()
}

// Glyph returns the Unicode playing-card character for this card,
// e.g. "🂡" for the Ace of Spades.
func (c Card) Glyph() string {
	var base rune
	switch c.suit {
	case Spades:
		base = 0x1F0A0
	case Hearts:
		base = 0x1F0B0
	case Diamonds:
		base = 0x1F0C0
	default:
		base = 0x1F0D0
	}

	// The Unicode block reserves an extra slot for the knight between the
	// jack and the queen.
	var offset rune
	switch c.rank {
	case Ace:
		offset = 1
	case Jack:
		offset = 11
	case Queen:
		offset = 13
	case King:
		offset = 14
	default:
		offset = rune(c.rank)
	}

	return string(base + offset)
}

// Equals reports value equality: same rank and same suit, regardless of
// which deck either card came from.
func (c Card) Equals(other Card) bool {
	return c.rank == other.rank && c.suit == other.suit
}

// SameCard reports identity equality: both cards are the same physical
// instance from the same deck. Cards without a deck identity are never the
// same instance.
func (c Card) SameCard(other Card) bool {
	return !c.id.IsZero() && c.id == other.id
}

// FromString parses a short card form such as "A♠", "10h", or "KD" into a
// card without deck identity.
func FromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %q", s)
	}

	// The suit may be a multi-byte symbol, so split on the rank prefix.
	var rank Rank
	rest := ""
	switch {
	case len(s) >= 2 && s[:2] == "10":
		rank, rest = Ten, s[2:]
	default:
		switch s[:1] {
		case "A":
			rank = Ace
		case "K":
			rank = King
		case "Q":
			rank = Queen
		case "J":
			rank = Jack
		case "9":
			rank = Nine
		case "8":
			rank = Eight
		case "7":
			rank = Seven
		case "6":
			rank = Six
		case "5":
			rank = Five
		case "4":
			rank = Four
		case "3":
			rank = Three
		case "2":
			rank = Two
		default:
			return Card{}, fmt.Errorf("invalid card rank: %q", s[:1])
		}
		rest = s[1:]
	}

	var suit Suit
	switch rest {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %q", rest)
	}

	return New(rank, suit), nil
}
