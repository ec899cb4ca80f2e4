package response

import (
	"repair_tracker/internal/usecase/session"
	"repair_tracker/pkg"
)

// SessionResponse is returned by every web endpoint: the session state after
// the action, plus the error when the action failed.
type SessionResponse struct {
	Error *pkg.HTTPError `json:"error,omitempty"`
	State session.State  `json:"state"`
}

func FromState(st session.State) SessionResponse {
	return SessionResponse{State: st}
}

func FromStateWithError(st session.State, appErr *pkg.AppError) SessionResponse {
	httpErr := appErr.ToHTTPError()
	return SessionResponse{Error: &httpErr, State: st}
}
