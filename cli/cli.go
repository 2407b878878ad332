// Package cli runs an interactive blackjack round in the terminal. It is a
// presentation layer: it reads cards and hands through their public
// accessors and mutates nothing except through the documented operations.
package cli

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/currency"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/domain/events"
)

// Config holds the table options, parsed once at startup.
type Config struct {
	Decks   int
	Cutoff  int
	Balance int64 // starting balance in cents
	Debug   bool
}

// CLI drives one player through rounds at a single table.
type CLI struct {
	cfg   Config
	log   zerolog.Logger
	store events.EventStore
}

// New creates the interactive table loop.
func New(cfg Config, log zerolog.Logger, store events.EventStore) *CLI {
	return &CLI{cfg: cfg, log: log, store: store}
}

// Run plays rounds until the player quits or the shoe runs out.
func (c *CLI) Run() error {
	pterm.DefaultHeader.Println("Blackjack")
	if c.cfg.Debug {
		pterm.EnableDebugMessages()
	}

	shoe, err := cards.NewShoe(c.cfg.Decks, c.cfg.Cutoff)
	if err != nil {
		return err
	}
	dealer, err := domain.NewDealer(shoe, domain.DefaultDealerConfig())
	if err != nil {
		return err
	}

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultValue("Player").Show("Your name")
	player := domain.NewPlayer(name, currency.Cents(c.cfg.Balance))

	for {
		if err := c.playRound(shoe, dealer, player); err != nil {
			pterm.Error.Println(err.Error())
		}

		pterm.Info.Printfln("Balance: %s, cards left in shoe: %d",
			player.Balance().String(), shoe.CountRemaining())

		if !shoe.HasNext() {
			pterm.Warning.Println("The shoe is exhausted; the table closes.")
			return nil
		}
		again, _ := pterm.DefaultInteractiveConfirm.WithDefaultValue(true).Show("Another round?")
		if !again {
			return nil
		}
	}
}

func (c *CLI) playRound(shoe *cards.Shoe, dealer *domain.Dealer, player *domain.Player) error {
	round, err := domain.NewRound(dealer, player)
	if err != nil {
		return err
	}
	round.RegisterEventHandler(func(event events.Event) {
		if err := c.store.Append(event); err != nil {
			c.log.Warn().Err(err).Msg("event not stored")
		}
	})

	if err := dealer.Start(round); err != nil {
		return err
	}
	defer dealer.Finish()
	if err := round.Begin(); err != nil {
		return err
	}

	wager, err := c.promptWager(player)
	if err != nil {
		return err
	}
	hand, err := player.NewHand(wager)
	if err != nil {
		return err
	}

	// Opening deal: two cards to the player, face-up and hole card to the
	// dealer.
	dealerHand := domain.NewDealerHand()
	for i := 0; i < 2; i++ {
		if err := c.dealTo(round, player.ID, hand, true); err != nil {
			return err
		}
	}
	faceUp, err := dealer.TellFaceUpCard()
	if err != nil {
		return err
	}
	if err := dealerHand.AddCard(faceUp.Card); err != nil {
		return err
	}
	round.NoteCardDealt("dealer", faceUp.Card.String(), true)
	hole, err := dealer.TellHoleCard()
	if err != nil {
		return err
	}
	if err := dealerHand.AddCard(hole.Card); err != nil {
		return err
	}
	round.NoteCardDealt("dealer", "??", false)

	pterm.Info.Printfln("Dealer shows %s", faceUp.Card.String())
	c.showHand("You", hand)

	var insurance *domain.Wager
	if dealer.OffersInsurance(faceUp.Card) {
		insurance, err = c.promptInsurance(wager)
		if err != nil {
			return err
		}
	}

	hands := []*domain.Hand{hand}
	for i := 0; i < len(hands); i++ {
		if err := c.playHand(round, dealer, player, &hands, i); err != nil {
			return err
		}
	}

	c.dealerPlays(round, dealer, dealerHand)

	for _, h := range hands {
		c.settleHand(round, player, h, dealerHand)
	}
	if insurance != nil {
		c.settleInsurance(round, player, insurance, dealerHand)
	}

	if c.cfg.Debug {
		pterm.Debug.Println(litter.Sdump(round.Events))
	}

	return nil
}

// playHand runs the hit/stand/double/split decisions for one hand. Splits
// append the new hand to hands so the outer loop picks it up.
func (c *CLI) playHand(round *domain.Round, dealer *domain.Dealer, player *domain.Player, hands *[]*domain.Hand, idx int) error {
	hand := (*hands)[idx]
	for hand.IsOpenHand() {
		options := []string{"hit", "stand"}
		if hand.Size() == 2 {
			options = append(options, "double down")
		}
		if hand.IsSplittableHand(dealer) {
			options = append(options, "split")
		}

		choice, err := pterm.DefaultInteractiveSelect.WithOptions(options).
			Show(fmt.Sprintf("Hand %d (%d points)", idx+1, hand.CardsValue()))
		if err != nil {
			return err
		}

		switch choice {
		case "stand":
			return nil
		case "hit":
			if err := c.dealTo(round, player.ID, hand, true); err != nil {
				return err
			}
		case "double down":
			doubled, err := hand.DoubleDown()
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			round.NoteWagerDoubledDown(player.ID, hand.Wager().ID(), doubled.ID())
			// One card only after doubling.
			if err := c.dealTo(round, player.ID, hand, true); err != nil {
				return err
			}
			c.showHand("You", hand)
			return nil
		case "split":
			split, err := hand.Split(dealer)
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			if err := player.AddHand(split); err != nil {
				return err
			}
			*hands = append(*hands, split)
			round.NoteHandSplit(player.ID, hand.ID(), split.ID())
			pterm.Info.Println("Hand split; the new hand plays after this one.")
		}
		c.showHand("You", hand)
	}
	return nil
}

// dealerPlays reveals the hole card and draws until the dealer's total
// reaches 17.
func (c *CLI) dealerPlays(round *domain.Round, dealer *domain.Dealer, dealerHand *domain.Hand) {
	c.showHand("Dealer", dealerHand)
	for dealerHand.IsOpenHand() && dealerHand.CardsValue() < 17 {
		held, err := dealer.TellFaceUpCard()
		if err != nil || held == nil {
			return
		}
		if err := dealerHand.AddCard(held.Card); err != nil {
			return
		}
		round.NoteCardDealt("dealer", held.Card.String(), true)
		c.showHand("Dealer", dealerHand)
	}
}

// settleHand decides the outcome of one player hand against the dealer's
// and applies the payout.
func (c *CLI) settleHand(round *domain.Round, player *domain.Player, hand *domain.Hand, dealerHand *domain.Hand) {
	outcome := decideOutcome(hand, dealerHand)

	if err := hand.Wager().Settle(outcome); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	hand.MarkSettled()

	settlement, err := hand.Settlement()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	round.NoteWagerSettled(player.ID, hand.Wager().ID(), settlement)

	if err := player.CollectSettlement(hand); err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	pterm.Success.Printfln("%s → %s", settlement.Outcome.String(), settlement.Amount.String())
}

func (c *CLI) settleInsurance(round *domain.Round, player *domain.Player, insurance *domain.Wager, dealerHand *domain.Hand) {
	outcome := domain.OutcomeInsuranceLost
	if dealerHand.IsNaturalHand() {
		outcome = domain.OutcomeInsuranceWon
	}
	if err := insurance.Settle(outcome); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	settlement, err := insurance.Settlement()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	round.NoteWagerSettled(player.ID, insurance.ID(), settlement)
	if err := player.AddToBalance(settlement.Amount); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Printfln("Insurance: %s → %s", settlement.Outcome.String(), settlement.Amount.String())
}

// decideOutcome applies the table rules: naturals beat everything, busts
// lose, then the scores are compared, a tie standing off.
func decideOutcome(hand, dealerHand *domain.Hand) domain.Outcome {
	switch {
	case hand.IsNaturalHand() && !dealerHand.IsNaturalHand():
		return domain.OutcomeNaturalBlackjack
	case hand.IsBustedHand():
		return domain.OutcomeBust
	case hand.IsWinningHand() && !dealerHand.IsWinningHand():
		return domain.OutcomeBlackjack
	case dealerHand.IsBustedHand():
		return domain.OutcomeBetterScore
	case hand.CardsValue() > dealerHand.CardsValue():
		return domain.OutcomeBetterScore
	case hand.CardsValue() < dealerHand.CardsValue():
		return domain.OutcomeLowerScore
	default:
		return domain.OutcomeStandoff
	}
}

func (c *CLI) dealTo(round *domain.Round, playerID string, hand *domain.Hand, faceUp bool) error {
	held, err := round.Dealer().TellFaceUpCard()
	if err != nil {
		return err
	}
	if held == nil {
		return domain.IllegalStateError{Msg: "dealer is not in a round"}
	}
	if err := hand.AddCard(held.Card); err != nil {
		return err
	}
	round.NoteCardDealt(playerID, held.Card.String(), faceUp)
	return nil
}

func (c *CLI) promptWager(player *domain.Player) (*domain.Wager, error) {
	for {
		raw, err := pterm.DefaultInteractiveTextInput.WithDefaultValue("100").
			Show("Wager (in cents)")
		if err != nil {
			return nil, err
		}
		minor, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			pterm.Error.Println("not a number")
			continue
		}
		wager, err := domain.NewWager(currency.NewAmount(minor, player.Balance().Currency()))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		return wager, nil
	}
}

func (c *CLI) promptInsurance(wager *domain.Wager) (*domain.Wager, error) {
	take, err := pterm.DefaultInteractiveConfirm.Show("Dealer shows an ace. Insurance?")
	if err != nil || !take {
		return nil, nil
	}
	// Insurance costs half the original wager.
	return domain.NewInsuranceWager(wager.Amount().DivInt(2))
}

func (c *CLI) showHand(owner string, hand *domain.Hand) {
	var labels []string
	for _, card := range hand.Cards() {
		labels = append(labels, card.String())
	}
	pterm.Info.Printfln("%s: %v (%d points)", owner, labels, hand.CardsValue())
}
