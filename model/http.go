package model

import (
	"github.com/cristijiru/mozart/note"
	"github.com/cristijiru/mozart/score"
)

type CreateScoreRequest struct {
	Title string `json:"title"`
}

type ScoreResponse struct {
	Id    string       `json:"id"`
	Score *score.Score `json:"score"`
}

type MelodyRequest struct {
	Melody string `json:"melody"`
}

type MelodyResponse struct {
	Notes []note.Note `json:"notes"`
}

type TransposeRequest struct {
	// exactly one of Semitones or Degrees is set
	Semitones *int `json:"semitones,omitempty"`
	Degrees   *int `json:"degrees,omitempty"`
	// optional key change for degree transposition, e.g. "G major"
	TargetScale string `json:"target_scale,omitempty"`
}

type DetectResponse struct {
	Root      string `json:"root"`
	ScaleType string `json:"scale_type"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
