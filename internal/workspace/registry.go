package workspace

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/buff-dashboard-api/infrastructure/integrator/buff/buffclient"
	"github.com/vfg2006/buff-dashboard-api/internal/notify"
	"github.com/vfg2006/buff-dashboard-api/internal/session"
	"github.com/vfg2006/buff-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/buff-dashboard-api/internal/usecases/grouping"
	"github.com/vfg2006/buff-dashboard-api/pkg/metrics"
)

// Workspace reúne o estado de um usuário. Nada é compartilhado entre usuários.
type Workspace struct {
	Session *session.Session
	Groups  *grouping.Store
	Guard   *connecting.Guard
	Inbox   *notify.Inbox
}

type Registry struct {
	client  buffclient.Client
	metrics *metrics.Metrics

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

func NewRegistry(client buffclient.Client, m *metrics.Metrics) *Registry {
	return &Registry{
		client:     client,
		metrics:    m,
		workspaces: make(map[string]*Workspace),
	}
}

// Get devolve o workspace do usuário da sessão, criando na primeira chamada
func (r *Registry) Get(sess *session.Session) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ws, ok := r.workspaces[sess.UserID]; ok {
		return ws
	}

	owner := &session.Session{UserID: sess.UserID, Email: sess.Email, Name: sess.Name}
	inbox := notify.NewInbox(notify.DefaultCapacity)

	ws := &Workspace{
		Session: owner,
		Groups:  grouping.NewStore(r.client, owner, inbox, grouping.WithMetrics(r.metrics)),
		Guard:   connecting.NewGuard(r.client, connecting.WithMetrics(r.metrics)),
		Inbox:   inbox,
	}
	r.workspaces[sess.UserID] = ws

	logrus.WithField("user_id", sess.UserID).Debug("workspace: criado")

	return ws
}

// All devolve os workspaces ordenados pelo id do usuário
func (r *Registry) All() []*Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Workspace, 0, len(r.workspaces))
	for _, ws := range r.workspaces {
		out = append(out, ws)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Session.UserID < out[j].Session.UserID
	})

	return out
}

func (r *Registry) Remove(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workspaces, userID)
}
