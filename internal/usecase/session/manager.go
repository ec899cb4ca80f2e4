package session

import (
	"sync"
	"time"

	"repair_tracker/internal/usecase"
	"repair_tracker/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager owns the workspaces of every live browser session. Each workspace
// gets its own caches and forms; nothing is shared between sessions.
type Manager struct {
	auth         interfaces.IAuthenticator
	orders       interfaces.IOrderStore
	appointments interfaces.IAppointmentStore
	logger       *zap.Logger
	now          func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	ws       *Workspace
	lastSeen time.Time
}

func NewManager(auth interfaces.IAuthenticator, orders interfaces.IOrderStore, appointments interfaces.IAppointmentStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		auth:         auth,
		orders:       orders,
		appointments: appointments,
		logger:       logger,
		now:          time.Now,
		sessions:     make(map[string]*entry),
	}
}

// Create starts a new session on the home screen.
func (m *Manager) Create() *Workspace {
	id := uuid.NewString()
	ws := NewWorkspace(id,
		m.auth,
		usecase.NewOrderSyncUseCase(m.orders, m.logger),
		usecase.NewAppointmentSyncUseCase(m.appointments, m.logger),
		usecase.NewStatusLookupUseCase(m.orders, m.logger),
		m.logger,
	)

	m.mu.Lock()
	m.sessions[id] = &entry{ws: ws, lastSeen: m.now()}
	m.mu.Unlock()
	return ws
}

// Get returns the workspace for id and marks it as recently used.
func (m *Manager) Get(id string) (*Workspace, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = m.now()
	return e.ws, true
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		e.ws.Logout()
	}
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// PurgeIdle drops sessions unused for longer than maxIdle and returns how
// many were removed.
func (m *Manager) PurgeIdle(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)
	var stale []*Workspace

	m.mu.Lock()
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, e.ws)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, ws := range stale {
		ws.Logout()
	}
	if len(stale) > 0 {
		m.logger.Info("[session][purge] idle sessions removed", zap.Int("count", len(stale)))
	}
	return len(stale)
}
