package live

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/parabola/internal/config"
	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/projectile"
)

// MaxPoints bounds the samples a client may request per launch.
const MaxPoints = 5000

// session is the state owned by one connection.
type session struct {
	id        string
	launch    config.LaunchConfig
	tr        projectile.Trajectory
	points    int
	tolerance float64
}

func newSession(cfg config.Config) *session {
	s := &session{
		id:        uuid.NewString(),
		launch:    cfg.Launch.Sanitize(),
		points:    cfg.Sampling.Points,
		tolerance: cfg.Query.Tolerance,
	}
	s.tr = projectile.Compute(s.launch.Launch())
	return s
}

// handle answers one request. It never fails: problems are reported to the
// client as error responses.
func (s *session) handle(req Request) Response {
	switch req.Type {
	case TypeLaunch:
		return s.handleLaunch(req)
	case TypeQuery:
		return s.handleQuery(req)
	case "":
		return errorResponse("missing message type")
	default:
		return errorResponse(fmt.Sprintf("unknown message type %q", req.Type))
	}
}

// handleLaunch recomputes the session's trajectory. A launch whose results
// cannot be sent is refused and the previous launch is kept.
func (s *session) handleLaunch(req Request) Response {
	l := s.launch.Launch()
	if len(req.Launch) > 0 {
		if err := json.Unmarshal(req.Launch, &l); err != nil {
			return errorResponse("invalid launch: " + err.Error())
		}
	}
	launch := config.FromLaunch(l).Sanitize()
	tr := projectile.Compute(launch.Launch())

	n := s.points
	if req.Points > 0 {
		n = min(req.Points, MaxPoints)
	}
	report := export.NewReport(tr, n)
	if err := report.Validate(); err != nil {
		return errorResponse("invalid launch: " + err.Error())
	}

	s.launch, s.tr = launch, tr
	return Response{Type: TypeTrajectory, Session: s.id, Report: &report}
}

func (s *session) handleQuery(req Request) Response {
	if req.Query == nil || req.Query.Empty() {
		return Response{Type: TypePoint, Session: s.id, Miss: true}
	}
	p, ok := projectile.Resolve(s.tr, *req.Query, s.tolerance)
	if !ok {
		return Response{Type: TypePoint, Session: s.id, Miss: true}
	}
	if !finite(p.X, p.Y, p.T) {
		return errorResponse("query result out of range")
	}
	return Response{Type: TypePoint, Session: s.id, Point: &p}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
