package services

import (
	"context"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/viewer"
)

// ViewerFetcher backs the viewer state machine with the durable stores. It is
// what an in-process viewer (big-screen display, tests) seeds and re-fetches
// through.
type ViewerFetcher struct {
	sessions *SessionService
	content  *ContentService
}

func NewViewerFetcher(sessions *SessionService, content *ContentService) *ViewerFetcher {
	return &ViewerFetcher{sessions: sessions, content: content}
}

func (f *ViewerFetcher) SessionSnapshot(ctx context.Context, sessionID uint) (*viewer.SessionSnapshot, error) {
	session, err := f.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return &viewer.SessionSnapshot{
		PresentationID:     session.PresentationID,
		PollID:             session.PollID,
		BankID:             session.BankID,
		SlideIndex:         session.SlideIndex,
		TimeoutMinutes:     session.TimeoutMinutes,
		LeaderboardVisible: session.LeaderboardVisible,
	}, nil
}

func (f *ViewerFetcher) SlideURLs(ctx context.Context, presentationID uint) ([]string, error) {
	return f.content.SlideURLs(presentationID)
}
