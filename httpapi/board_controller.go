// Package httpapi exposes the board engine's four operations over
// HTTP using a controller-per-resource, JSON request/response idiom.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/memoryscramble/board-engine/board"
)

// BoardController exposes look, flip, map, and watch as HTTP handlers
// over a single Board.
type BoardController struct {
	board        *board.Board
	watchTimeout time.Duration
	flipTimeout  time.Duration
}

// NewBoardController wires a Board into HTTP handlers. Suspended
// requests (flip waiting on a controller, watch waiting on a change)
// are bounded by the given timeouts so a stalled client can't pin a
// server goroutine forever.
func NewBoardController(b *board.Board, watchTimeout, flipTimeout time.Duration) *BoardController {
	return &BoardController{board: b, watchTimeout: watchTimeout, flipTimeout: flipTimeout}
}

// RegisterPublic registers every board route as public: the engine
// treats the player header as an unverified identity, so there is no
// authenticated tier to separate these into.
func (bc *BoardController) RegisterPublic(route *gin.RouterGroup) {
	grp := route.Group("/board")
	{
		grp.GET("/look", bc.look)
		grp.POST("/flip", bc.flip)
		grp.POST("/map", bc.mapValues)
		grp.GET("/watch", bc.watch)
	}
}

// RegisterProtected registers nothing; see RegisterPublic.
func (bc *BoardController) RegisterProtected(_ *gin.RouterGroup) {}

func (bc *BoardController) look(c *gin.Context) {
	player, ok := RequirePlayerID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, BoardStateResponse{State: bc.board.Look(player)})
}

func (bc *BoardController) flip(c *gin.Context) {
	player, ok := RequirePlayerID(c)
	if !ok {
		return
	}
	var req FlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), bc.flipTimeout)
	defer cancel()

	state, err := bc.board.Flip(ctx, player, req.Row, req.Col)
	if err != nil {
		writeFlipError(c, err)
		return
	}
	c.JSON(http.StatusOK, BoardStateResponse{State: state})
}

func (bc *BoardController) mapValues(c *gin.Context) {
	player, ok := RequirePlayerID(c)
	if !ok {
		return
	}
	var req MapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	transform, err := lookupTransform(req.Transform)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := bc.board.Map(c.Request.Context(), player, transform)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, BoardStateResponse{State: state})
}

func (bc *BoardController) watch(c *gin.Context) {
	player, ok := RequirePlayerID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), bc.watchTimeout)
	defer cancel()

	state, err := bc.board.Watch(ctx, player)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, BoardStateResponse{State: state})
}

func writeFlipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, board.ErrNoCard):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, board.ErrControlled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, board.ErrOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.Status(http.StatusRequestTimeout)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
