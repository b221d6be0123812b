// Package gameapi exposes game sessions over HTTP.
package gameapi

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/solver"
	"github.com/google/uuid"
)

// NewGameRequest represents a request to start a game. Omitted dimensions
// use the server defaults; an explicit zero is rejected.
type NewGameRequest struct {
	Height      *int `json:"height" binding:"omitempty,min=1,max=1024"`
	Width       *int `json:"width" binding:"omitempty,min=1,max=1024"`
	Breadcrumbs bool `json:"breadcrumbs"`
}

// IntentRequest carries one user action such as "up" or "auto".
type IntentRequest struct {
	Intent string `json:"intent" binding:"required"`
}

// CoordinateResponse is a cell position, x the column and y the row.
type CoordinateResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameResponse is the observable state of a game session.
type GameResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Height             int                  `json:"height"`
	Width              int                  `json:"width"`
	Player             CoordinateResponse   `json:"player"`
	Exit               CoordinateResponse   `json:"exit"`
	Won                bool                 `json:"won"`
	Version            int64                `json:"version"`
	BreadcrumbsVisible bool                 `json:"breadcrumbs_visible"`
	Breadcrumbs        []CoordinateResponse `json:"breadcrumbs,omitempty"`
	Board              string               `json:"board"`
}

// StepResponse is one solver move, kind "forward" or "backtrack".
type StepResponse struct {
	Kind string             `json:"kind"`
	To   CoordinateResponse `json:"to"`
}

// SolveResponse lists the solver's moves and the game state after them.
type SolveResponse struct {
	Steps []StepResponse `json:"steps"`
	Game  GameResponse   `json:"game"`
}

func fromCoordinate(c maze.Coordinate) CoordinateResponse {
	return CoordinateResponse{X: c.X, Y: c.Y}
}

func fromSnapshot(s i.GameSnapshot) GameResponse {
	res := GameResponse{
		ID:                 s.ID,
		Height:             s.Height,
		Width:              s.Width,
		Player:             fromCoordinate(s.Player),
		Exit:               fromCoordinate(s.End),
		Won:                s.Won,
		Version:            s.Version,
		BreadcrumbsVisible: s.BreadcrumbsVisible,
		Board:              s.Board,
	}
	for _, c := range s.Breadcrumbs {
		res.Breadcrumbs = append(res.Breadcrumbs, fromCoordinate(c))
	}
	return res
}

func fromSteps(steps []solver.Step) []StepResponse {
	res := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		res = append(res, StepResponse{Kind: s.Kind.String(), To: fromCoordinate(s.To)})
	}
	return res
}
