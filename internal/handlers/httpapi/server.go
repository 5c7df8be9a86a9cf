// Package httpapi exposes the tracker over a small REST surface. It is the
// presentation consumer boundary: it forwards raw field edits and renders
// engine snapshots, nothing more.
package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/skullking/internal/services/tracker"
)

// Server wraps the gin engine and the tracker service
type Server struct {
	engine         *gin.Engine
	trackerService tracker.Service
}

// Config holds the configuration for the HTTP server
type Config struct {
	// Tracker service
	TrackerService tracker.Service
}

// New creates a new HTTP API server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", c.Writer.Status()).
			Dur("dur", time.Since(start)).
			Msg("http")
	})

	s := &Server{
		engine:         engine,
		trackerService: cfg.TrackerService,
	}
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})

	api := s.engine.Group("/api")

	api.GET("/session", s.getSession)
	api.GET("/standings", s.getStandings)
	api.GET("/history", s.getHistory)

	api.POST("/players", s.addPlayer)
	api.DELETE("/players/:id", s.removePlayer)
	api.POST("/players/:index/move", s.reorderPlayer)

	api.POST("/game/start", s.startGame)
	api.POST("/game/entry", s.editEntry)
	api.POST("/game/round/close", s.closeRound)
	api.POST("/game/reset", s.reset)
}

// Run starts the server on the given address
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the underlying handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

type playerView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Total       int    `json:"total"`
	Bid         int    `json:"bid"`
	Won         int    `json:"won"`
	Pirates     int    `json:"pirates"`
	Mermaid     bool   `json:"mermaid"`
	RoundPoints int    `json:"roundPoints"`
	OnTurn      bool   `json:"onTurn"`
}

func (s *Server) getSession(c *gin.Context) {
	out, err := s.trackerService.GetSession(c.Request.Context(), &tracker.GetSessionInput{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	players := make([]playerView, 0, len(out.Players))
	for _, pv := range out.Players {
		players = append(players, playerView{
			ID:          pv.Player.ID,
			Name:        pv.Player.Name,
			Total:       pv.Player.Total,
			Bid:         pv.Entry.Bid,
			Won:         pv.Entry.Won,
			Pirates:     pv.Entry.Pirates,
			Mermaid:     pv.Entry.Mermaid,
			RoundPoints: pv.RoundPoints,
			OnTurn:      pv.OnTurn,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":      out.Mode,
		"round":     out.Round,
		"turnIndex": out.TurnIndex,
		"players":   players,
	})
}

func (s *Server) getStandings(c *gin.Context) {
	out, err := s.trackerService.GetStandings(c.Request.Context(), &tracker.GetStandingsInput{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"standings": out.Standings})
}

type historyCell struct {
	Pts   string `json:"pts"`
	Total string `json:"total"`
}

type historyRow struct {
	Round int `json:"round"`

	// Cells maps player id to formatted pts/total; missing or malformed
	// ledger data renders as the placeholder instead of failing
	Cells map[string]historyCell `json:"cells"`
}

const placeholder = "—"

func (s *Server) getHistory(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := s.trackerService.GetSession(ctx, &tracker.GetSessionInput{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	history, err := s.trackerService.GetHistory(ctx, &tracker.GetHistoryInput{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := make([]historyRow, 0, len(history.Records))
	for _, rec := range history.Records {
		row := historyRow{
			Round: rec.Round,
			Cells: make(map[string]historyCell, len(session.Players)),
		}
		for _, pv := range session.Players {
			cell := historyCell{Pts: placeholder, Total: placeholder}
			if res, ok := rec.Entries[pv.Player.ID]; ok {
				if total, ok := rec.Totals[pv.Player.ID]; ok {
					cell = historyCell{
						Pts:   formatSigned(res.Pts),
						Total: formatSigned(total),
					}
				}
			}
			row.Cells[pv.Player.ID] = cell
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

type addPlayerRequest struct {
	Name string `json:"name"`
}

func (s *Server) addPlayer(c *gin.Context) {
	var req addPlayerRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	out, err := s.trackerService.AddPlayer(c.Request.Context(), &tracker.AddPlayerInput{Name: req.Name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": out.Added, "player": out.Player})
}

func (s *Server) removePlayer(c *gin.Context) {
	out, err := s.trackerService.RemovePlayer(c.Request.Context(), &tracker.RemovePlayerInput{
		PlayerID: c.Param("id"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": out.Removed})
}

type reorderRequest struct {
	Delta int `json:"delta"`
}

func (s *Server) reorderPlayer(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_index"})
		return
	}

	var req reorderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	out, err := s.trackerService.ReorderPlayer(c.Request.Context(), &tracker.ReorderPlayerInput{
		Index: index,
		Delta: req.Delta,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"moved": out.Moved})
}

func (s *Server) startGame(c *gin.Context) {
	out, err := s.trackerService.StartGame(c.Request.Context(), &tracker.StartGameInput{})
	if err != nil {
		if errors.Is(err, tracker.ErrNoPlayers) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"round": out.Round})
}

type editEntryRequest struct {
	PlayerID string `json:"playerId"`
	Field    string `json:"field"`
	Value    string `json:"value"`
}

func (s *Server) editEntry(c *gin.Context) {
	var req editEntryRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	out, err := s.trackerService.EditEntry(c.Request.Context(), &tracker.EditEntryInput{
		PlayerID: req.PlayerID,
		Field:    tracker.EntryField(req.Field),
		Value:    req.Value,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": out.Updated, "entry": out.Entry})
}

func (s *Server) closeRound(c *gin.Context) {
	out, err := s.trackerService.CloseRound(c.Request.Context(), &tracker.CloseRoundInput{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"closed":    out.Closed,
		"nextRound": out.NextRound,
		"record":    out.Record,
	})
}

func (s *Server) reset(c *gin.Context) {
	if _, err := s.trackerService.ResetToSetup(c.Request.Context(), &tracker.ResetToSetupInput{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func formatSigned(n int) string {
	if n >= 0 {
		return fmt.Sprintf("+%d", n)
	}
	return strconv.Itoa(n)
}
