package gameapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameController exposes the session manager's operations.
type GameController struct {
	gameSessionManager i.GameSessionManager
}

// NewGameController initializes a GameController.
func NewGameController(gsm i.GameSessionManager) (*GameController, error) {
	if gsm == nil {
		return nil, errors.New("game session manager is nil")
	}
	return &GameController{gameSessionManager: gsm}, nil
}

// Register registers the game routes.
func (gc *GameController) Register(route *gin.RouterGroup) {
	games := route.Group("/games")
	{
		games.POST("", gc.create)
		games.GET("/:ID", gc.get)
		games.POST("/:ID/intents", gc.intent)
		games.POST("/:ID/solve", gc.solve)
		games.DELETE("/:ID", gc.end)
	}
}

// create starts a new session. The body is optional.
func (gc *GameController) create(ctx *gin.Context) {
	var request NewGameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := gc.gameSessionManager.NewSession(request.Height, request.Width, request.Breadcrumbs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, fromSnapshot(snap))
}

func (gc *GameController) get(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	snap, err := gc.gameSessionManager.Snapshot(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fromSnapshot(snap))
}

// intent applies one user action. A move into a wall answers 409 with the
// unchanged game.
func (gc *GameController) intent(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request IntentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	intent := game.ParseIntent(request.Intent)
	if intent == game.IntentNone || intent == game.Quit {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unsupported intent " + request.Intent})
		return
	}

	snap, err := gc.gameSessionManager.Apply(id, intent)
	switch {
	case errors.Is(err, game.ErrNoPassage):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error(), "game": fromSnapshot(snap)})
	case err != nil:
		respondError(ctx, err)
	default:
		ctx.JSON(http.StatusOK, fromSnapshot(snap))
	}
}

func (gc *GameController) solve(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	steps, snap, err := gc.gameSessionManager.Solve(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SolveResponse{Steps: fromSteps(steps), Game: fromSnapshot(snap)})
}

func (gc *GameController) end(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := gc.gameSessionManager.End(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return uuid.Nil, false
	}
	return id, true
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
	case errors.Is(err, maze.ErrInvalidDimensions):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
