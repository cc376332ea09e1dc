package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/IlikeChooros/go-dynsolve/pkg/games/shutthebox"
)

// Request bodies above this size are rejected
const maxBodyBytes = 1 << 12

type FindBestActionRequest struct {
	DiceValue *uint8 `json:"dice_value" validate:"required,min=2,max=12"`
	TilesOpen []bool `json:"tiles_open" validate:"required,len=9"`
}

// Action is null when the state has no legal move
type FindBestActionResponse struct {
	Action []int `json:"action"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (req FindBestActionRequest) state() shutthebox.State {
	s := shutthebox.State{DiceValue: *req.DiceValue}
	copy(s.TilesOpen[:], req.TilesOpen)
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFindBestAction(w http.ResponseWriter, r *http.Request) {
	req, err := decodeFindBestAction(w, r)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := s.finder.FindBestAction(r.Context(), req.state())
	if err != nil {
		s.logger.Error("find best action failed",
			"error", err,
			"request_id", RequestID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	resp := FindBestActionResponse{}
	if result.Found {
		resp.Action = make([]int, 0, len(result.Action))
		for _, v := range result.Action.Values() {
			resp.Action = append(resp.Action, int(v))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST carries a JSON body. GET accepts the same body, or the query
// parameters dice_value and tiles (a 9 character 0/1 string).
func decodeFindBestAction(w http.ResponseWriter, r *http.Request) (FindBestActionRequest, error) {
	var req FindBestActionRequest
	if r.Method == http.MethodGet && r.URL.Query().Has("dice_value") {
		q := r.URL.Query()
		dice, err := strconv.ParseUint(q.Get("dice_value"), 10, 8)
		if err != nil {
			return req, err
		}
		d := uint8(dice)
		req.DiceValue = &d

		if tiles := q.Get("tiles"); tiles != "" {
			open, err := shutthebox.ParseTiles(tiles)
			if err != nil {
				return req, err
			}
			req.TilesOpen = open[:]
		}
		return req, nil
	}

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	return req, err
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
