// Package server wires the scoring service (domain stack §4.11): a gin
// engine exposing POST /shanten and POST /score, each request stamped with
// a google/uuid correlation id carried into its log line and, when a store
// is configured, its persisted record.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mahjong/internal/applog"
	"mahjong/internal/meld"
	"mahjong/internal/score"
	"mahjong/internal/shanten"
	"mahjong/internal/store"
	"mahjong/internal/tiles"
	"mahjong/internal/yaku"
)

// Server bundles the gin engine with the optional persistence sink.
type Server struct {
	engine *gin.Engine
	store  *store.Store
}

// New builds the engine and registers its routes. store may be nil: every
// handler treats persistence as best-effort.
func New(st *store.Store) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(correlationID())

	s := &Server{engine: engine, store: st}
	engine.POST("/shanten", s.handleShanten)
	engine.POST("/score", s.handleScore)
	return s
}

// Run blocks serving on addr (e.g. ":8080").
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func correlationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	if v, ok := c.Get("requestID"); ok {
		return v.(string)
	}
	return ""
}

type shantenRequest struct {
	Hand        string   `json:"hand" binding:"required"`
	Declared    []string `json:"declared"`
	Visible     string   `json:"visible"`
}

type ukiereEntry struct {
	Tile string `json:"tile"`
	Live int    `json:"live"`
}

type shantenResponse struct {
	Shanten int           `json:"shanten"`
	Ukiere  []ukiereEntry `json:"ukiere,omitempty"`
}

func (s *Server) handleShanten(c *gin.Context) {
	rid := requestID(c)
	var req shantenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "requestId": rid})
		return
	}

	free, err := tiles.ParseMultiset(req.Hand)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "requestId": rid})
		return
	}
	declared, err := parseDeclared(req.Declared)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "requestId": rid})
		return
	}

	value, err := shanten.Shanten(free, declared)
	if err != nil {
		applog.Warn("shanten request %s failed: %v", rid, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "requestId": rid})
		return
	}

	resp := shantenResponse{Shanten: int(value)}
	if value > -1 {
		visible, verr := tiles.ParseMultiset(req.Visible)
		if verr == nil {
			if uk, uerr := shanten.Ukiere(free, declared, visible); uerr == nil {
				for _, u := range uk {
					resp.Ukiere = append(resp.Ukiere, ukiereEntry{Tile: u.ID.String(), Live: int(u.LiveCount)})
				}
			}
		}
	}

	applog.Info("shanten request %s: hand=%s shanten=%d", rid, req.Hand, value)
	c.JSON(http.StatusOK, resp)
}

type scoreRequest struct {
	Hand         string   `json:"hand" binding:"required"`
	Declared     []string `json:"declared"`
	WinningTile  string   `json:"winningTile" binding:"required"`
	Closed       bool     `json:"closed"`
	Riichi       string   `json:"riichi"` // "", "declared", "double"
	Ippatsu      bool     `json:"ippatsu"`
	RoundWind    string   `json:"roundWind"`
	SeatWind     string   `json:"seatWind"`
	Honba        int      `json:"honba"`
	RiichiSticks int      `json:"riichiSticks"`
	Dora         []string `json:"dora"`
	Source       string   `json:"source"` // "discard", "selfDraw", "afterKan", "robbingKan"
	IsLast       bool     `json:"isLast"`
}

type scoreResponse struct {
	Han     int      `json:"han"`
	Fu      int      `json:"fu"`
	Yaku    []string `json:"yaku"`
	Yakuman []string `json:"yakuman"`
	Points  points   `json:"points"`
}

type points struct {
	Base               int `json:"base"`
	RonPayment         int `json:"ronPayment,omitempty"`
	TsumoFromDealer    int `json:"tsumoFromDealer,omitempty"`
	TsumoFromNonDealer int `json:"tsumoFromNonDealer,omitempty"`
	Total              int `json:"total"`
}

func (s *Server) handleScore(c *gin.Context) {
	rid := requestID(c)
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "requestId": rid})
		return
	}

	free, err := tiles.ParseMultiset(req.Hand)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "requestId": rid})
		return
	}
	declared, err := parseDeclared(req.Declared)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "requestId": rid})
		return
	}
	winningTile, _, err := tiles.Parse(req.WinningTile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "requestId": rid})
		return
	}
	if err := free.Add(winningTile, false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "requestId": rid})
		return
	}

	dora := make([]tiles.ID, 0, len(req.Dora))
	for _, d := range req.Dora {
		id, _, derr := tiles.Parse(d)
		if derr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": derr.Error(), "requestId": rid})
			return
		}
		dora = append(dora, id)
	}

	hand := yaku.HandInfo{
		Closed:       req.Closed,
		Riichi:       parseRiichi(req.Riichi),
		Ippatsu:      req.Ippatsu,
		RoundWind:    parseWind(req.RoundWind),
		SeatWind:     parseWind(req.SeatWind),
		Honba:        req.Honba,
		RiichiSticks: req.RiichiSticks,
		Dora:         dora,
	}
	win := yaku.WinInfo{Source: parseSource(req.Source), IsLast: req.IsLast}

	result, err := score.Score(score.Request{
		Free: free, Declared: declared, WinningTile: winningTile, Hand: hand, Win: win,
	})
	if err != nil {
		applog.Warn("score request %s failed: %v", rid, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "requestId": rid})
		return
	}

	if s.store != nil {
		s.store.RecordAsync(rid, req.Hand, req.WinningTile, result)
	}

	names := make([]string, 0, len(result.Yaku))
	for _, y := range result.Yaku {
		names = append(names, y.Name)
	}
	yakumanNames := make([]string, 0, len(result.Yakuman))
	for _, y := range result.Yakuman {
		yakumanNames = append(yakumanNames, y.Name)
	}

	applog.Info("score request %s: hand=%s han=%d fu=%d", rid, req.Hand, result.Han, result.Fu)
	c.JSON(http.StatusOK, scoreResponse{
		Han: result.Han, Fu: result.Fu, Yaku: names, Yakuman: yakumanNames,
		Points: points{
			Base: result.Points.Base, RonPayment: result.Points.RonPayment,
			TsumoFromDealer: result.Points.TsumoFromDealer, TsumoFromNonDealer: result.Points.TsumoFromNonDealer,
			Total: result.Points.Total,
		},
	})
}

func parseDeclared(groups []string) ([]meld.Meld, error) {
	out := make([]meld.Meld, 0, len(groups))
	for _, g := range groups {
		c, err := tiles.ParseMultiset(g)
		if err != nil {
			return nil, err
		}
		m, err := meld.New(c.AllIDs(), false)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func parseWind(s string) tiles.Wind {
	switch s {
	case "south":
		return tiles.WindSouth
	case "west":
		return tiles.WindWest
	case "north":
		return tiles.WindNorth
	default:
		return tiles.WindEast
	}
}

func parseRiichi(s string) yaku.RiichiState {
	switch s {
	case "declared":
		return yaku.RiichiDeclared
	case "double":
		return yaku.RiichiDouble
	default:
		return yaku.RiichiNone
	}
}

func parseSource(s string) yaku.SourceKind {
	switch s {
	case "selfDraw":
		return yaku.SourceSelfDraw
	case "afterKan":
		return yaku.SourceAfterKan
	case "robbingKan":
		return yaku.SourceRobbingKan
	default:
		return yaku.SourceDiscard
	}
}
