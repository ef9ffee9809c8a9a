package handlers

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// playRequest is an incoming WebSocket message on /play/ws. The only action
// is "play".
type playRequest struct {
	Action string `json:"action"`
}

// playResponse is the resolved round sent back to the client.
type playResponse struct {
	Type       string `json:"type"`
	PlayerCard string `json:"player_card,omitempty"`
	DealerCard string `json:"dealer_card,omitempty"`
	Result     string `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PlayWSHandler upgrades the connection and serves an interactive round loop:
// each {"action":"play"} message deals, records and answers with the outcome.
func (s *Server) PlayWSHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentUser(r)
	if err != nil {
		http.Error(w, "authentication required", http.StatusForbidden)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // tighten for production
	})
	if err != nil {
		s.log.WithError(err).Warn("websocket accept")
		return
	}
	defer c.Close(websocket.StatusInternalError, "handler exit")

	s.log.WithField("player", user.Username).Info("play session opened")

	ctx := r.Context()
	for {
		var req playRequest
		if err := wsjson.Read(ctx, c, &req); err != nil {
			s.log.WithField("player", user.Username).Info("play session closed")
			return
		}

		if req.Action != "play" {
			resp := playResponse{Type: "error", Error: "unknown action"}
			if err := wsjson.Write(ctx, c, resp); err != nil {
				return
			}
			continue
		}

		round, err := s.playRound(ctx, user)
		if err != nil {
			s.log.WithError(err).Error("play round over ws")
			c.Close(websocket.StatusInternalError, "failed to record round")
			return
		}

		resp := playResponse{
			Type:       "round",
			PlayerCard: round.PlayerCard,
			DealerCard: round.DealerCard,
			Result:     round.Result.String(),
		}
		if err := wsjson.Write(ctx, c, resp); err != nil {
			return
		}
	}
}
