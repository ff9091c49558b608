package service

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"docforensics/internal/annotation"
	"docforensics/internal/domain"
	"docforensics/internal/logging"
)

// ViewerService owns the in-memory document viewer sessions. Sessions hold
// annotations only; they are discarded when closed and never persisted.
type ViewerService interface {
	Open() (string, *annotation.Viewer, error)
	Get(id string) (*annotation.Viewer, error)
	Close(id string) error
	Count() int
}

type viewerService struct {
	mu          sync.RWMutex
	sessions    map[string]*annotation.Viewer
	maxSessions int
	log         *slog.Logger
}

// NewViewerService creates a ViewerService. maxSessions <= 0 means unlimited.
func NewViewerService(maxSessions int) ViewerService {
	return &viewerService{
		sessions:    make(map[string]*annotation.Viewer),
		maxSessions: maxSessions,
		log:         logging.New("service.viewer"),
	}
}

func (s *viewerService) Open() (string, *annotation.Viewer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return "", nil, domain.ErrSessionLimitReached
	}
	id := uuid.NewString()
	v := annotation.NewViewer()
	s.sessions[id] = v
	s.log.Debug("viewer session opened", "session_id", id, "open_sessions", len(s.sessions))
	return id, v, nil
}

func (s *viewerService) Get(id string) (*annotation.Viewer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return v, nil
}

func (s *viewerService) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	s.log.Debug("viewer session closed", "session_id", id, "open_sessions", len(s.sessions))
	return nil
}

func (s *viewerService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
