package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/neontetris/internal/common"
	"github.com/dmitrijs2005/neontetris/internal/server/models"
)

type loadResponse struct {
	OK   bool            `json:"ok"`
	Save json.RawMessage `json:"save"`
}

type leaderboardResponse struct {
	OK  bool                      `json:"ok"`
	Top []models.LeaderboardEntry `json:"top"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	fields, err := s.decodeObject(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.svc.Users.Register(r.Context(), stringField(fields, "username"), stringField(fields, "password")); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	fields, err := s.decodeObject(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.svc.Users.Login(r.Context(), stringField(fields, "username"), stringField(fields, "password")); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *HTTPServer) handleSave(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.svc.Games.Save(r.Context(), body); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *HTTPServer) handleLoad(w http.ResponseWriter, r *http.Request) {
	save, err := s.svc.Games.Load(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loadResponse{OK: true, Save: save})
}

func (s *HTTPServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	top, err := s.svc.Leaderboard.Top(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if top == nil {
		top = []models.LeaderboardEntry{}
	}

	writeJSON(w, http.StatusOK, leaderboardResponse{OK: true, Top: top})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Store.PingContext(r.Context()); err != nil {
		s.writeError(w, r, common.WrapError(common.KindStoreUnavailable, common.ErrorStoreUnavailable.Message, err))
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
