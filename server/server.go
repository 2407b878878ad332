package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lazharichir/blackjack/cards"
)

// Config holds the card service configuration, parsed once at startup.
type Config struct {
	Port string
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server is the card-dealing HTTP service: it keeps shoes in memory, deals
// cards over JSON, and streams every dealt card to websocket subscribers.
type Server struct {
	cfg    Config
	log    zerolog.Logger
	router chi.Router
	feed   *Feed

	mu    sync.Mutex
	shoes map[string]*cards.Shoe
}

// NewServer creates a card service.
func NewServer(cfg Config, log zerolog.Logger) *Server {
	s := &Server{
		cfg:   cfg,
		log:   log,
		feed:  NewFeed(log),
		shoes: make(map[string]*cards.Shoe),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/shoes", s.handleCreateShoe)
	r.Get("/shoes/{shoeID}", s.handleGetShoe)
	r.Post("/shoes/{shoeID}/deal", s.handleDeal)
	r.Get("/shoes/{shoeID}/feed", s.handleFeed)
	s.router = r

	return s
}

// Router exposes the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler { return s.router }

// Start blocks serving HTTP on the configured port.
func (s *Server) Start() error {
	s.log.Info().Str("port", s.cfg.Port).Msg("card service listening")
	if err := http.ListenAndServe(":"+s.cfg.Port, s.router); err != nil {
		return errors.Wrap(err, "card service stopped")
	}
	return nil
}

// CreateShoeRequest is the body of POST /shoes.
type CreateShoeRequest struct {
	Decks  int `json:"decks"`
	Cutoff int `json:"cutoff"`
}

// ShoeResponse describes a shoe in API responses.
type ShoeResponse struct {
	ShoeID    string `json:"shoeID"`
	Decks     int    `json:"decks"`
	Cutoff    int    `json:"cutoff"`
	Remaining int    `json:"remaining"`
}

func (s *Server) handleCreateShoe(w http.ResponseWriter, r *http.Request) {
	var req CreateShoeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid request body"))
		return
	}

	shoe, err := cards.NewShoe(req.Decks, req.Cutoff)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	s.mu.Lock()
	s.shoes[shoe.ID().String()] = shoe
	s.mu.Unlock()

	s.log.Info().
		Str("shoe", shoe.ID().String()).
		Int("decks", req.Decks).
		Int("cutoff", req.Cutoff).
		Msg("shoe created")

	writeJSON(w, http.StatusCreated, shoeResponse(shoe))
}

func (s *Server) handleGetShoe(w http.ResponseWriter, r *http.Request) {
	shoe, ok := s.lookupShoe(chi.URLParam(r, "shoeID"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("shoe not found"))
		return
	}
	writeJSON(w, http.StatusOK, shoeResponse(shoe))
}

func (s *Server) handleDeal(w http.ResponseWriter, r *http.Request) {
	shoeID := chi.URLParam(r, "shoeID")
	shoe, ok := s.lookupShoe(shoeID)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("shoe not found"))
		return
	}

	s.mu.Lock()
	card, err := shoe.NextCard()
	s.mu.Unlock()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	dealt := NewDealtCard(card, shoe.ID())

	payload, err := json.Marshal(dealt)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.Wrap(err, "encoding dealt card"))
		return
	}
	s.feed.Broadcast(shoeID, payload)

	s.log.Debug().
		Str("shoe", shoeID).
		Str("card", card.String()).
		Msg("card dealt")

	writeJSON(w, http.StatusOK, dealt)
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	shoeID := chi.URLParam(r, "shoeID")
	if _, ok := s.lookupShoe(shoeID); !ok {
		writeError(w, http.StatusNotFound, errors.New("shoe not found"))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	s.feed.Subscribe(shoeID, conn)
}

func (s *Server) lookupShoe(id string) (*cards.Shoe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shoe, ok := s.shoes[id]
	return shoe, ok
}

func shoeResponse(shoe *cards.Shoe) ShoeResponse {
	return ShoeResponse{
		ShoeID:    shoe.ID().String(),
		Decks:     shoe.DeckCount(),
		Cutoff:    shoe.Cutoff(),
		Remaining: shoe.CountRemaining(),
	}
}

// DealtCard is the wire form of a dealt card.
type DealtCard struct {
	Name   string `json:"name"`
	Rank   string `json:"rank"`
	Suit   string `json:"suit"`
	ShoeID string `json:"shoeID"`
	DeckID string `json:"deckID"`
	Glyph  string `json:"glyph"`
}

// NewDealtCard builds the wire form of a card dealt from the given shoe.
func NewDealtCard(card cards.Card, shoeID uuid.UUID) DealtCard {
	return DealtCard{
		Name:   card.Name(),
		Rank:   card.Rank().Glyph(),
		Suit:   card.Suit().Glyph(),
		ShoeID: shoeID.String(),
		DeckID: card.ID().DeckID().String(),
		Glyph:  card.Glyph(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor maps domain failures onto HTTP statuses.
func statusFor(err error) int {
	var sizeErr cards.InvalidSizeError
	var argErr cards.InvalidArgumentError
	switch {
	case errors.Is(err, cards.ErrShoeExhausted):
		return http.StatusConflict
	case errors.As(err, &sizeErr), errors.As(err, &argErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
