package realtime

import "encoding/json"

// Event names carried on the wire, client to server.
const (
	EventJoinClassroom  = "join_classroom"
	EventLeaveClassroom = "leave_classroom"
	EventSendMessage    = "send_message"
	EventWebRTCOffer    = "webrtc_offer"
	EventWebRTCAnswer   = "webrtc_answer"
	EventWebRTCICE      = "webrtc_ice_candidate"
)

// Event names carried on the wire, server to client.
const (
	EventStatus       = "status"
	EventMessage      = "message"
	EventNotification = "notification"
)

// signalKeys maps a signaling event to the payload field it carries. The
// same event name goes back out, the field re-keyed next to the sender.
var signalKeys = map[string]string{
	EventWebRTCOffer:  "offer",
	EventWebRTCAnswer: "answer",
	EventWebRTCICE:    "candidate",
}

// Envelope is the frame format for every WebSocket message in both
// directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func encodeEnvelope(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}

type joinPayload struct {
	SessionId string `json:"session_id"`
}

type chatPayload struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message"`
}

type statusBody struct {
	Msg  string `json:"msg"`
	User string `json:"user"`
}

type chatBody struct {
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Role      string `json:"role"`
}
