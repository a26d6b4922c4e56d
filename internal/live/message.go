package live

import (
	"encoding/json"

	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/projectile"
)

// Message types exchanged over the socket.
const (
	TypeLaunch     = "launch"
	TypeQuery      = "query"
	TypeTrajectory = "trajectory"
	TypePoint      = "point"
	TypeError      = "error"
)

// Request is a client message.
//
// Launch fields left out keep the session's previous value, so a client can
// send {"type":"launch","launch":{"deg":60}} to change only the angle.
type Request struct {
	Type   string            `json:"type"`
	Launch json.RawMessage   `json:"launch,omitempty"`
	Points int               `json:"points,omitempty"`
	Query  *projectile.Query `json:"query,omitempty"`
}

// Response is a server message.
type Response struct {
	Type    string            `json:"type"`
	Session string            `json:"session,omitempty"`
	Report  *export.Report    `json:"report,omitempty"`
	Point   *projectile.Point `json:"point,omitempty"`
	Miss    bool              `json:"miss,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func errorResponse(msg string) Response {
	return Response{Type: TypeError, Error: msg}
}
