package connecting

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/vfg2006/buff-dashboard-api/infrastructure/integrator/buff/buffclient"
	"github.com/vfg2006/buff-dashboard-api/internal/domain"
	"github.com/vfg2006/buff-dashboard-api/internal/notify"
	"github.com/vfg2006/buff-dashboard-api/internal/session"
	"github.com/vfg2006/buff-dashboard-api/pkg/log"
	"github.com/vfg2006/buff-dashboard-api/pkg/metrics"
)

type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusChecking        Status = "checking"
	StatusReady           Status = "ready"
	StatusFailed          Status = "failed"
)

// Decision é o que a tela protegida deve exibir
type Decision string

const (
	ShowLoading       Decision = "loading"
	ShowSignIn        Decision = "sign_in"
	ShowConnectPrompt Decision = "connect_prompt"
	ShowContent       Decision = "content"
	ShowError         Decision = "error"
)

type GuardState struct {
	Status         Status                    `json:"state"`
	UserID         string                    `json:"-"`
	Loading        bool                      `json:"loading"`
	HasConnections bool                      `json:"hasConnections"`
	Profiles       []domain.AmazonAdsProfile `json:"profiles"`
	Error          string                    `json:"error,omitempty"`
}

// Decide mapeia o estado para a tela a ser exibida
func (s GuardState) Decide() Decision {
	switch {
	case s.Loading:
		return ShowLoading
	case s.Status == StatusUnauthenticated:
		return ShowSignIn
	case s.Status == StatusFailed:
		return ShowError
	case s.Status == StatusReady && s.HasConnections:
		return ShowContent
	case s.Status == StatusReady:
		return ShowConnectPrompt
	default:
		return ShowLoading
	}
}

// Guard decide se o usuário tem ao menos uma conexão ativa com o Amazon Ads.
//
// Toda busca é marcada com (identidade, geração); uma resposta cuja marca não
// é mais a atual é descartada.
type Guard struct {
	client  buffclient.Client
	metrics *metrics.Metrics

	mu         sync.Mutex
	state      GuardState
	identity   string
	generation uint64
}

type Option func(*Guard)

func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Guard) {
		g.metrics = m
	}
}

func NewGuard(client buffclient.Client, opts ...Option) *Guard {
	guard := &Guard{
		client: client,
		state:  unauthenticated(false),
	}

	for _, opt := range opts {
		opt(guard)
	}

	return guard
}

func (g *Guard) State() GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.clone()
}

func (g *Guard) Decide() Decision {
	return g.State().Decide()
}

// Sync reavalia o estado a partir do estado de autenticação. Com usuário
// presente busca o status da conexão e só publica o resultado se a busca
// ainda for a mais recente.
func (g *Guard) Sync(ctx context.Context, auth session.AuthState) GuardState {
	if auth.Loading || !auth.SignedIn() {
		g.mu.Lock()
		g.generation++
		g.identity = ""
		g.state = unauthenticated(auth.Loading)
		g.mu.Unlock()
		return g.State()
	}

	userID := auth.UserID()

	g.mu.Lock()
	g.generation++
	generation := g.generation
	previous := g.state
	g.identity = userID
	g.state = GuardState{
		Status:   StatusChecking,
		UserID:   userID,
		Loading:  true,
		Profiles: []domain.AmazonAdsProfile{},
	}
	g.mu.Unlock()

	status, err := g.client.GetAmazonConnectionStatus(ctx, userID)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.generation != generation || g.identity != userID {
		g.metrics.RecordStaleResponse("connecting")
		log.ForContext(ctx).WithFields(log.Fields{
			"user_id": userID,
		}).Debug("connecting: resposta de status desatualizada descartada")
		return g.state.clone()
	}

	if err != nil && (ctx.Err() != nil || errors.Is(err, context.Canceled)) {
		// cancelado: volta ao último estado conhecido deste usuário
		if previous.UserID == userID {
			g.state = previous
		} else {
			g.state.Loading = false
		}
		return g.state.clone()
	}

	if err != nil {
		log.ForContext(ctx).WithError(err).Error("connecting: erro ao buscar status da conexão")
		g.state = GuardState{
			Status:   StatusFailed,
			UserID:   userID,
			Profiles: []domain.AmazonAdsProfile{},
			Error:    notify.ErrorMessage(err),
		}
		return g.state.clone()
	}

	active := ActiveProfiles(status.Profiles)
	g.state = GuardState{
		Status:         StatusReady,
		UserID:         userID,
		HasConnections: len(active) > 0,
		Profiles:       active,
	}

	return g.state.clone()
}

// ActiveProfiles filtra os perfis ativos e ordena pelo nome da conta sem
// diferenciar maiúsculas, desempatando pelo profile id
func ActiveProfiles(profiles []domain.AmazonAdsProfile) []domain.AmazonAdsProfile {
	active := make([]domain.AmazonAdsProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.IsActive {
			active = append(active, p)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		a, b := strings.ToLower(active[i].AccountName), strings.ToLower(active[j].AccountName)
		if a != b {
			return a < b
		}
		return active[i].ProfileID < active[j].ProfileID
	})

	return active
}

func unauthenticated(loading bool) GuardState {
	return GuardState{
		Status:   StatusUnauthenticated,
		Loading:  loading,
		Profiles: []domain.AmazonAdsProfile{},
	}
}

func (s GuardState) clone() GuardState {
	profiles := make([]domain.AmazonAdsProfile, len(s.Profiles))
	copy(profiles, s.Profiles)
	s.Profiles = profiles
	return s
}
