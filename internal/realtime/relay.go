package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// Relay routes classroom events between connected clients. Every handler
// fails closed: a frame that cannot be validated or authorized is dropped
// and logged, never answered with an error frame.
type Relay struct {
	hub    *Hub
	store  Store
	logger logger.ILogger
}

func NewRelay(hub *Hub, store Store, log logger.ILogger) *Relay {
	r := &Relay{
		hub:    hub,
		store:  store,
		logger: log,
	}
	hub.SetRoomLeaveHandler(r.announceLeave)
	return r
}

// HandleMessage dispatches one inbound frame to its event handler.
func (r *Relay) HandleMessage(c *Client, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		r.logger.Warn("Relay", "Malformed frame", map[string]interface{}{
			"user_id": c.Identity.UserId,
		})
		return
	}

	switch env.Event {
	case EventJoinClassroom:
		r.handleJoin(c, env.Data)
	case EventLeaveClassroom:
		r.handleLeave(c, env.Data)
	case EventSendMessage:
		r.handleChat(c, env.Data)
	case EventWebRTCOffer, EventWebRTCAnswer, EventWebRTCICE:
		r.handleSignal(c, env.Event, env.Data)
	default:
		r.logger.Warn("Relay", "Unknown event", map[string]interface{}{
			"event":   env.Event,
			"user_id": c.Identity.UserId,
		})
	}
}

// resolveSession loads the session and checks the caller may enter it.
// Teachers may enter any classroom, students only their own class.
func (r *Relay) resolveSession(ctx context.Context, identity *entity.Identity, rawId string) (*entity.ClassSession, bool) {
	sessionId, err := uuid.Parse(rawId)
	if err != nil {
		return nil, false
	}

	session, err := r.store.FindSessionById(ctx, sessionId)
	if err != nil || session == nil {
		return nil, false
	}
	if !session.IsActive {
		return nil, false
	}
	if !identity.IsTeacher() && identity.ClassName != session.ClassName {
		return nil, false
	}
	return session, true
}

func (r *Relay) handleJoin(c *Client, data json.RawMessage) {
	var payload joinPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}

	session, ok := r.resolveSession(context.Background(), c.Identity, payload.SessionId)
	if !ok {
		r.logger.Warn("Relay", "Join rejected", map[string]interface{}{
			"user_id":    c.Identity.UserId,
			"session_id": payload.SessionId,
		})
		return
	}

	roomId := session.RoomId()
	r.hub.JoinRoom(c, roomId)

	r.announce(roomId, fmt.Sprintf("%s has joined the classroom", c.Identity.Username), c.Identity.Username)
}

func (r *Relay) handleLeave(c *Client, data json.RawMessage) {
	var payload joinPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}
	sessionId, err := uuid.Parse(payload.SessionId)
	if err != nil {
		return
	}

	roomId := (&entity.ClassSession{Id: sessionId}).RoomId()
	if !r.hub.LeaveRoom(c, roomId) {
		return
	}
	r.announceLeave(roomId, c.Identity)
}

func (r *Relay) handleChat(c *Client, data json.RawMessage) {
	var payload chatPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.Message == "" {
		return
	}

	session, ok := r.resolveSession(context.Background(), c.Identity, payload.SessionId)
	if !ok {
		return
	}

	roomId := session.RoomId()
	if !r.hub.InRoom(c, roomId) {
		return
	}

	message := &entity.Message{
		SenderId:  c.Identity.UserId,
		ClassName: session.ClassName,
		Subject:   session.Subject,
		Content:   payload.Message,
		Timestamp: time.Now(),
	}

	// Persist before broadcast. A message nobody can scroll back to was
	// never sent.
	if err := r.store.SaveMessage(context.Background(), message); err != nil {
		r.logger.Error("Relay", "Message persist failed", map[string]interface{}{
			"error":   err.Error(),
			"user_id": c.Identity.UserId,
		})
		return
	}

	frame, err := encodeEnvelope(EventMessage, chatBody{
		Username:  c.Identity.Username,
		Message:   payload.Message,
		Timestamp: message.Timestamp.Format("15:04"),
		Role:      string(c.Identity.Role),
	})
	if err != nil {
		return
	}

	// The sender receives their own message back.
	r.hub.BroadcastRoom(roomId, frame, nil)
}

// handleSignal relays WebRTC negotiation payloads verbatim to everyone in
// the room except the sender. The payload field is opaque; only the
// session id and the event's own key are inspected.
func (r *Relay) handleSignal(c *Client, event string, data json.RawMessage) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return
	}

	var rawId string
	if err := json.Unmarshal(fields["session_id"], &rawId); err != nil {
		return
	}
	sessionId, err := uuid.Parse(rawId)
	if err != nil {
		return
	}
	roomId := (&entity.ClassSession{Id: sessionId}).RoomId()
	if !r.hub.InRoom(c, roomId) {
		return
	}

	key := signalKeys[event]
	payload, ok := fields[key]
	if !ok {
		return
	}

	frame, err := encodeEnvelope(event, map[string]interface{}{
		key:      payload,
		"sender": c.Identity.Username,
	})
	if err != nil {
		return
	}

	r.hub.BroadcastRoom(roomId, frame, c)
}

func (r *Relay) announce(roomId, text, username string) {
	frame, err := encodeEnvelope(EventStatus, statusBody{Msg: text, User: username})
	if err != nil {
		return
	}
	r.hub.BroadcastRoom(roomId, frame, nil)
}

func (r *Relay) announceLeave(roomId string, identity *entity.Identity) {
	r.announce(roomId, fmt.Sprintf("%s has left the classroom", identity.Username), identity.Username)
}
