// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle.
// Exposes, under /daily:
//   - GET  /daily/state       → today's progress for the caller
//   - POST /daily/guess       → submit a guess for today's puzzle
//   - POST /daily/reset       → discard today's progress (manual reset)
//   - GET  /daily/artwork     → proxied target artwork (placeholder on miss)
//   - GET  /daily/leaderboard → today's winners, fewest attempts first
//
// Session state is durable per (owner, date); the same owner reloading the
// page sees the same attempts. The target itself is a pure function of the
// date key, so no coordination is needed.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/imgdle/go-server/internal/artwork"
	"github.com/imgdle/go-server/internal/daily"
	"github.com/imgdle/go-server/internal/dataset"
	"github.com/imgdle/go-server/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv     *Server
	results *daily.Results
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{srv: s, results: daily.NewResults(s.db)}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/state", dd.handleState)
		r.Post("/guess", dd.handleGuess)
		r.Post("/reset", dd.handleReset)
		r.Get("/artwork", dd.handleArtwork)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// today returns the current date key and its target record.
func (d *dailyServer) today() (string, *dataset.Record) {
	key := daily.DateKey(time.Now())
	return key, d.srv.game.TargetFor(key)
}

// loadSession fetches and reconciles the caller's session for today.
func (d *dailyServer) loadSession(r *http.Request, w http.ResponseWriter) (owner, date string, target *dataset.Record, sess *game.Session, err error) {
	owner = d.srv.ownerID(w, r)
	date, target = d.today()
	stored, err := d.srv.store.Get(r.Context(), owner, date)
	if err != nil {
		return "", "", nil, nil, err
	}
	sess = d.srv.game.SessionFor(stored, target)
	return owner, date, target, sess, nil
}

// -----------------------------------------------------------------------------
// /daily/state

// outcomeRes is end-of-round messaging; Answer is revealed only once done.
type outcomeRes struct {
	Won    bool   `json:"won"`
	Answer string `json:"answer,omitempty"`
}

// stateRes is the full visible round state.
type stateRes struct {
	Date      string         `json:"date"`
	State     string         `json:"state"` // in_progress | done
	Attempts  []game.Attempt `json:"attempts"`
	MaxTries  int            `json:"maxTries"`
	PixelSize int            `json:"pixelSize"`
	HasImage  bool           `json:"hasImage"`
	Outcome   *outcomeRes    `json:"outcome,omitempty"`
}

func (d *dailyServer) stateFor(date string, target *dataset.Record, sess *game.Session) stateRes {
	res := stateRes{
		Date:      date,
		State:     sess.State(),
		Attempts:  sess.Attempts,
		MaxTries:  d.srv.game.MaxTries(),
		PixelSize: artwork.PixelSize(len(sess.Attempts)),
		HasImage:  target.Image != "",
	}
	if res.Attempts == nil {
		res.Attempts = []game.Attempt{}
	}
	if sess.Done {
		res.Outcome = &outcomeRes{Won: sess.Won(), Answer: target.Name}
	}
	return res
}

// handleState returns the caller's progress for today's puzzle.
func (d *dailyServer) handleState(w http.ResponseWriter, r *http.Request) {
	_, date, target, sess, err := d.loadSession(r, w)
	if err != nil {
		log.Error().Err(err).Msg("load session")
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(d.stateFor(date, target, sess))
}

// -----------------------------------------------------------------------------
// /daily/guess

// guessReq is the request payload for /daily/guess.
type guessReq struct {
	Text string `json:"text"`
}

// guessRes returns the scored attempt plus the refreshed round state.
type guessRes struct {
	Attempt *game.Attempt `json:"attempt"`
	stateRes
}

// handleGuess resolves and scores a guess, persists the session, and — when
// the round finishes — records the result and bumps account stats.
// Rejections never mutate state: blank input is a silent no-op, an
// unresolvable name returns a hint, a finished round returns a conflict.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	var p guessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	owner, date, target, sess, err := d.loadSession(r, w)
	if err != nil {
		log.Error().Err(err).Msg("load session")
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
		return
	}

	att, err := d.srv.game.Submit(sess, target, p.Text)
	switch {
	case errors.Is(err, game.ErrEmptyGuess):
		w.WriteHeader(http.StatusNoContent)
		return
	case errors.Is(err, game.ErrUnknownName):
		http.Error(w, `{"error":"unknown_name","hint":"That name is not in the dataset. Pick one from the list."}`, http.StatusUnprocessableEntity)
		return
	case errors.Is(err, game.ErrFinished):
		http.Error(w, `{"error":"finished"}`, http.StatusConflict)
		return
	case err != nil:
		http.Error(w, `{"error":"submit_failed"}`, http.StatusInternalServerError)
		return
	}

	if err := d.srv.store.Put(r.Context(), owner, date, sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Persist the finished round (best effort, non-fatal if it fails).
	if sess.Done {
		if err := d.results.Insert(r.Context(), daily.Result{
			Owner: owner, Date: date, Attempts: len(sess.Attempts), Won: sess.Won(),
		}); err != nil {
			log.Warn().Err(err).Msg("insert daily result")
		}
		if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
			if err := d.srv.bumpStats(me.ID, sess.Won()); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
			}
		}
	}

	_ = json.NewEncoder(w).Encode(guessRes{Attempt: att, stateRes: d.stateFor(date, target, sess)})
}

// -----------------------------------------------------------------------------
// /daily/reset

// handleReset discards today's progress for the caller. The next state read
// starts an empty round for the same target.
func (d *dailyServer) handleReset(w http.ResponseWriter, r *http.Request) {
	owner := d.srv.ownerID(w, r)
	date, _ := d.today()
	if err := d.srv.store.Delete(r.Context(), owner, date); err != nil {
		log.Error().Err(err).Msg("delete session")
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// -----------------------------------------------------------------------------
// /daily/artwork

// handleArtwork proxies the target's artwork. Any failure degrades to 204
// and the client renders its placeholder; gameplay is never affected.
func (d *dailyServer) handleArtwork(w http.ResponseWriter, r *http.Request) {
	_, target := d.today()
	img, err := d.srv.art.Fetch(r.Context(), target.Image)
	if err != nil {
		log.Warn().Err(err).Msg("artwork unavailable")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	ct := img.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Cache-Control", "private, max-age=300")
	_, _ = w.Write(img.Data)
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns winners for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _ = d.today()
	}
	rows, err := d.results.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []daily.LBRow{}
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
