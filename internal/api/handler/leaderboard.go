package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ajmarsh/context-collapse-server/internal/api/request"
	"github.com/ajmarsh/context-collapse-server/internal/api/response"
	"github.com/ajmarsh/context-collapse-server/internal/model"
	"github.com/ajmarsh/context-collapse-server/internal/services/scores"
)

// LeaderboardHandler handles leaderboard query and score submission
type LeaderboardHandler struct {
	scoresService *scores.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(scoresService *scores.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		scoresService: scoresService,
	}
}

// Get handles GET /leaderboard?page=N
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			WriteError(w, NewInvalidRequestError("page must be a positive integer"))
			return
		}
		page = parsed
	}

	board := response.Leaderboard{}
	for _, difficulty := range model.Difficulties {
		rows, err := h.scoresService.Leaderboard(r.Context(), difficulty, page)
		if err != nil {
			WriteError(w, NewStoreError())
			return
		}
		switch difficulty {
		case model.DifficultyEasy:
			board.Easy = response.ScoresFromModels(rows)
		case model.DifficultyNormal:
			board.Normal = response.ScoresFromModels(rows)
		case model.DifficultyHard:
			board.Hard = response.ScoresFromModels(rows)
		}
	}

	response.JSON(w, http.StatusOK, board)
}

// Submit handles POST /leaderboard
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Score == nil {
		WriteError(w, model.ErrMissingField)
		return
	}

	record, err := h.scoresService.Submit(r.Context(), scores.Submission{
		Name:         req.Name,
		Score:        *req.Score,
		Difficulty:   req.Difficulty,
		ScoreToken:   model.ScoreToken(req.ScoreToken),
		SessionToken: model.SessionToken(req.Token),
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreFromModel(record))
}
