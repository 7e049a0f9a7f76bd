package ws

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/solomonk/bunker/internal/protocol"
	"github.com/solomonk/bunker/internal/registry"
	"github.com/solomonk/bunker/internal/services/game"
)

// writeTimeout bounds how long one slow peer can block a send
const writeTimeout = 3 * time.Second

// Config holds configuration for the websocket handler
type Config struct {
	GameService game.Service
	Registry    registry.Registry
}

// Handler upgrades connections and feeds decoded client messages into the
// game service
type Handler struct {
	service  game.Service
	registry registry.Registry
}

// New creates a new websocket handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil || cfg.GameService == nil || cfg.Registry == nil {
		return nil, game.ErrNilConfig
	}

	return &Handler{
		service:  cfg.GameService,
		registry: cfg.Registry,
	}, nil
}

// HandleGame serves one player connection for its whole lifetime
func (h *Handler) HandleGame(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}

	wc := &wsConn{conn: conn}
	connID := h.registry.Register(wc)

	defer func() {
		_, err := h.service.Disconnect(context.Background(), &game.DisconnectInput{ConnectionID: connID})
		if err != nil {
			log.Printf("ws: disconnect %s: %v", connID, err)
		}
		conn.Close(websocket.StatusNormalClosure, "bye")
	}()

	for {
		_, data, err := conn.Read(r.Context())
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				log.Printf("ws: read %s: %v", connID, err)
			}
			return
		}

		msg, err := protocol.DecodeMessage(data)
		if err != nil {
			h.replyError(wc, err)
			continue
		}

		if err := h.dispatch(r.Context(), connID, msg); err != nil {
			// errors go back to the requester only; broadcasts stay clean
			h.replyError(wc, err)
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, connID string, msg protocol.Message) error {
	switch m := msg.(type) {
	case *protocol.CreateSession:
		_, err := h.service.CreateSession(ctx, &game.CreateSessionInput{ConnectionID: connID, Settings: m.Settings})
		return err
	case *protocol.JoinSession:
		_, err := h.service.JoinSession(ctx, &game.JoinSessionInput{ConnectionID: connID, SessionID: m.SessionID, Name: m.Name})
		return err
	case *protocol.StartSession:
		_, err := h.service.StartSession(ctx, &game.StartSessionInput{ConnectionID: connID, SessionID: m.SessionID})
		return err
	case *protocol.RevealCharacteristic:
		_, err := h.service.RevealCharacteristic(ctx, &game.RevealCharacteristicInput{ConnectionID: connID, SessionID: m.SessionID, CardID: m.CardID})
		return err
	case *protocol.Vote:
		_, err := h.service.CastVote(ctx, &game.CastVoteInput{ConnectionID: connID, SessionID: m.SessionID, TargetPlayerID: m.TargetPlayerID})
		return err
	case *protocol.UseAction:
		_, err := h.service.UseAction(ctx, &game.UseActionInput{ConnectionID: connID, SessionID: m.SessionID, CardID: m.CardID, TargetPlayerID: m.TargetPlayerID})
		return err
	case *protocol.LeaveSession:
		_, err := h.service.LeaveSession(ctx, &game.LeaveSessionInput{ConnectionID: connID, SessionID: m.SessionID})
		return err
	case *protocol.KickPlayer:
		_, err := h.service.KickPlayer(ctx, &game.KickPlayerInput{ConnectionID: connID, SessionID: m.SessionID, TargetPlayerID: m.TargetPlayerID})
		return err
	case *protocol.SelectOrderNumber:
		_, err := h.service.SelectOrderNumber(ctx, &game.SelectOrderNumberInput{ConnectionID: connID, SessionID: m.SessionID, Number: m.Number})
		return err
	default:
		return protocol.ErrUnknownType
	}
}

func (h *Handler) replyError(wc *wsConn, cause error) {
	data, err := protocol.EncodeResponse(&protocol.Error{Message: cause.Error()})
	if err != nil {
		log.Printf("ws: encode error reply: %v", err)
		return
	}

	if err := wc.Send(data); err != nil {
		log.Printf("ws: send error reply: %v", err)
	}
}

// wsConn adapts a websocket connection to the registry's Conn
type wsConn struct {
	conn *websocket.Conn
}

// Send writes one text frame, bounded by the write timeout
func (c *wsConn) Send(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return c.conn.Write(ctx, websocket.MessageText, data)
}

// Close tears the connection down
func (c *wsConn) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "")
}
