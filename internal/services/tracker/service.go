package tracker

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/skullking/internal/common/clock"
	"github.com/KirkDiggler/skullking/internal/common/uuid"
	"github.com/KirkDiggler/skullking/internal/models"
	"github.com/KirkDiggler/skullking/internal/normalize"
	sessionRepo "github.com/KirkDiggler/skullking/internal/repositories/session"
	"github.com/KirkDiggler/skullking/internal/scoring"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	uuidGen     uuid.UUID
	clock       clock.Clock

	// mu serializes operations; the engine has one logical writer but the
	// consumer may call from concurrent requests
	mu    sync.Mutex
	state *models.Session
}

// New creates a tracker service, loading and repairing any persisted session.
// A corrupt or absent blob never fails construction; it normalizes to the
// nearest valid state.
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &service{
		sessionRepo: cfg.SessionRepo,
		uuidGen:     cfg.UUIDGenerator,
		clock:       cfg.Clock,
	}

	var raw []byte
	out, err := cfg.SessionRepo.Load(ctx, &sessionRepo.LoadInput{})
	switch {
	case err == nil:
		raw = out.Raw
	case errors.Is(err, sessionRepo.ErrSessionNotFound):
		// first use, start fresh
	default:
		log.Warn().Err(err).Msg("session load failed, starting fresh")
	}

	s.state = normalize.Session(raw, cfg.UUIDGenerator)

	return s, nil
}

// AddPlayer registers a player during setup. Empty names and case-insensitive
// duplicates are silent no-ops.
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(input.Name)
	if s.state.Mode != models.ModeSetup || name == "" {
		return &AddPlayerOutput{}, nil
	}

	for _, p := range s.state.Players {
		if strings.EqualFold(p.Name, name) {
			return &AddPlayerOutput{}, nil
		}
	}

	player := &models.Player{
		ID:   s.uuidGen.NewUUID(),
		Name: name,
	}
	s.state.Players = append(s.state.Players, player)
	s.state.EnsureEntry(player.ID)

	s.persist(ctx)

	return &AddPlayerOutput{
		Player: copyPlayer(player),
		Added:  true,
	}, nil
}

// RemovePlayer removes a player and their current entry during setup
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Mode != models.ModeSetup {
		return &RemovePlayerOutput{}, nil
	}

	idx := s.playerIndex(input.PlayerID)
	if idx < 0 {
		return &RemovePlayerOutput{}, nil
	}

	s.state.Players = append(s.state.Players[:idx], s.state.Players[idx+1:]...)
	delete(s.state.Current, input.PlayerID)

	s.persist(ctx)

	return &RemovePlayerOutput{Removed: true}, nil
}

// ReorderPlayer swaps adjacent seating positions during setup
func (s *service) ReorderPlayer(ctx context.Context, input *ReorderPlayerInput) (*ReorderPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Mode != models.ModeSetup {
		return &ReorderPlayerOutput{}, nil
	}

	i := input.Index
	j := i + input.Delta
	n := len(s.state.Players)
	if i < 0 || i >= n || j < 0 || j >= n {
		return &ReorderPlayerOutput{}, nil
	}

	s.state.Players[i], s.state.Players[j] = s.state.Players[j], s.state.Players[i]

	s.persist(ctx)

	return &ReorderPlayerOutput{Moved: true}, nil
}

// StartGame freezes the roster, clears prior progress, and enters round 1
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Players) == 0 {
		return nil, ErrNoPlayers
	}

	for _, p := range s.state.Players {
		p.Total = 0
	}
	s.state.History = []*models.RoundRecord{}
	s.state.Round = 1
	s.resetEntries()
	s.state.Mode = models.ModeActive

	s.persist(ctx)

	return &StartGameOutput{Round: s.state.Round}, nil
}

// EditEntry coerces and stores one raw field edit for a player's current
// round. Unknown players and fields are silent no-ops.
func (s *service) EditEntry(ctx context.Context, input *EditEntryInput) (*EditEntryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Mode != models.ModeActive || s.playerIndex(input.PlayerID) < 0 {
		return &EditEntryOutput{}, nil
	}

	entry := s.state.EnsureEntry(input.PlayerID)

	switch input.Field {
	case FieldBid:
		entry.Bid = clamp(safeInt(input.Value), 0, s.state.Round)
	case FieldWon:
		entry.Won = clamp(safeInt(input.Value), 0, s.state.Round)
	case FieldPirates:
		n := safeInt(input.Value)
		if n < 0 {
			n = 0
		}
		entry.Pirates = n
	case FieldMermaid:
		b, err := strconv.ParseBool(strings.TrimSpace(input.Value))
		entry.Mermaid = err == nil && b
	default:
		return &EditEntryOutput{}, nil
	}

	s.persist(ctx)

	return &EditEntryOutput{
		Entry:   copyEntry(entry),
		Updated: true,
	}, nil
}

// CloseRound freezes the current inputs into a ledger record, applies the
// point deltas to running totals, and advances to the next round
func (s *service) CloseRound(ctx context.Context, input *CloseRoundInput) (*CloseRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Mode != models.ModeActive || len(s.state.Players) == 0 {
		return &CloseRoundOutput{}, nil
	}

	round := s.state.Round
	rec := &models.RoundRecord{
		Round:      round,
		Entries:    make(map[string]*models.RoundResult, len(s.state.Players)),
		Totals:     make(map[string]int, len(s.state.Players)),
		RecordedAt: s.clock.Now(),
	}

	for _, p := range s.state.Players {
		entry := s.state.EnsureEntry(p.ID)

		bid := clamp(entry.Bid, 0, round)
		won := clamp(entry.Won, 0, round)
		pirates := entry.Pirates
		if pirates < 0 {
			pirates = 0
		}

		pts := scoring.PointsFor(round, bid, won, pirates, entry.Mermaid)
		p.Total += pts

		rec.Entries[p.ID] = &models.RoundResult{
			Bid:     bid,
			Won:     won,
			Pirates: pirates,
			Mermaid: entry.Mermaid,
			Pts:     pts,
		}
		rec.Totals[p.ID] = p.Total
	}

	s.state.History = append(s.state.History, rec)
	s.state.Round++
	s.resetEntries()

	s.persist(ctx)

	return &CloseRoundOutput{
		Record:    rec,
		NextRound: s.state.Round,
		Closed:    true,
	}, nil
}

// ResetToSetup discards the session and returns to an empty setup screen
func (s *service) ResetToSetup(ctx context.Context, input *ResetToSetupInput) (*ResetToSetupOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.NewSession()

	s.persist(ctx)

	return &ResetToSetupOutput{}, nil
}

// GetSession returns a render-ready snapshot; live round points are
// recomputed from the raw inputs on every call
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	turn := s.state.TurnIndex()
	views := make([]*PlayerView, 0, len(s.state.Players))

	for idx, p := range s.state.Players {
		entry := s.state.EnsureEntry(p.ID)
		views = append(views, &PlayerView{
			Player:      copyPlayer(p),
			Entry:       copyEntry(entry),
			RoundPoints: scoring.PointsFor(s.state.Round, entry.Bid, entry.Won, entry.Pirates, entry.Mermaid),
			OnTurn:      idx == turn,
		})
	}

	return &GetSessionOutput{
		Mode:      s.state.Mode,
		Round:     s.state.Round,
		TurnIndex: turn,
		Players:   views,
	}, nil
}

// GetStandings ranks players by total descending, ties kept in seating order
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ranked := make([]*models.Player, len(s.state.Players))
	for i, p := range s.state.Players {
		ranked[i] = copyPlayer(p)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	standings := make([]*models.Standing, len(ranked))
	for i, p := range ranked {
		standings[i] = &models.Standing{
			Rank:   i + 1,
			Player: p,
		}
	}

	return &GetStandingsOutput{Standings: standings}, nil
}

// GetHistory returns the ledger of completed rounds in order
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// records are immutable once appended; only the slice is copied
	records := make([]*models.RoundRecord, len(s.state.History))
	copy(records, s.state.History)

	return &GetHistoryOutput{Records: records}, nil
}

// persist writes the whole session through the repository. Failures are
// logged and absorbed; in-memory state stays authoritative for the session.
func (s *service) persist(ctx context.Context) {
	s.state.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.Save(ctx, &sessionRepo.SaveInput{Session: s.state}); err != nil {
		log.Warn().Err(err).Msg("failed to persist session")
	}
}

// resetEntries gives every player a fresh all-defaults current entry
func (s *service) resetEntries() {
	s.state.Current = make(map[string]*models.RoundEntry, len(s.state.Players))
	for _, p := range s.state.Players {
		s.state.EnsureEntry(p.ID)
	}
}

func (s *service) playerIndex(playerID string) int {
	for i, p := range s.state.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

func copyPlayer(p *models.Player) *models.Player {
	c := *p
	return &c
}

func copyEntry(e *models.RoundEntry) *models.RoundEntry {
	c := *e
	return &c
}

// safeInt parses a raw numeric string, treating anything unparseable as 0
func safeInt(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
