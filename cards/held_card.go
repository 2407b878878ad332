package cards

type CardVisibility string

const (
	FaceDown      CardVisibility = "down"  // Nobody can see
	FaceUpToOwner CardVisibility = "owner" // Only the owner can see
	FaceUpToAll   CardVisibility = "all"   // Everyone can see
)

// HeldCard represents a dealt card with visibility information, such as the
// dealer's face-up card or a hole card.
type HeldCard struct {
	Card
	Visibility CardVisibility
}

// NewHeldCard creates a new held card with the specified visibility.
func NewHeldCard(card Card, visibility CardVisibility) HeldCard {
	return HeldCard{
		Card:       card,
		Visibility: visibility,
	}
}

// SetVisibility sets the visibility of the card.
func (c *HeldCard) SetVisibility(visibility CardVisibility) {
	c.Visibility = visibility
}

// Reveal turns the card face up for everyone.
func (c *HeldCard) Reveal() {
	c.SetVisibility(FaceUpToAll)
}

// Hide sets the card face down.
func (c *HeldCard) Hide() {
	c.SetVisibility(FaceDown)
}

// IsFaceUp reports whether everyone can see the card.
func (c HeldCard) IsFaceUp() bool {
	return c.Visibility == FaceUpToAll
}
