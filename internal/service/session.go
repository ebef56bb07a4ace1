package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/pkg/api"
)

// StartSession creates an empty ledger and returns the token that grants
// access to it.
func (s *LedgerService) StartSession(ctx context.Context, req *connect.Request[api.StartSessionRequest]) (*connect.Response[api.StartSessionResponse], error) {
	session := &models.Session{ExpiresAt: time.Now().Add(s.jwt.TokenDuration())}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, toConnectError("StartSession", err)
	}

	token, err := s.jwt.Generate(session)
	if err != nil {
		return nil, toConnectError("StartSession", err)
	}

	s.recorder.SessionStarted()
	slog.Info("Session started", "session_id", session.ID, "expires_at", session.ExpiresAt)

	return connect.NewResponse(&api.StartSessionResponse{
		SessionID: session.ID,
		Token:     token,
		ExpiresAt: session.ExpiresAt.Unix(),
	}), nil
}

// EndSession discards the caller's ledger. The token stops working for
// everything but StartSession.
func (s *LedgerService) EndSession(ctx context.Context, req *connect.Request[api.EndSessionRequest]) (*connect.Response[api.EndSessionResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteSession(ctx, sid); err != nil {
		return nil, toConnectError("EndSession", err)
	}
	s.locks.Delete(sid)

	s.recorder.SessionEnded()
	slog.Info("Session ended", "session_id", sid)

	return connect.NewResponse(&api.EndSessionResponse{}), nil
}

// SweepExpiredSessions deletes sessions whose token lifetime ended before
// now, along with their per-session locks, and returns how many went.
func (s *LedgerService) SweepExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	ids, err := s.store.DeleteExpiredSessions(ctx, now)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.locks.Delete(id)
		s.recorder.SessionEnded()
	}
	if len(ids) > 0 {
		slog.Info("Expired sessions deleted", "count", len(ids))
	}
	return len(ids), nil
}
