package grouping

import (
	"context"
	"errors"
	"sync"

	"github.com/vfg2006/buff-dashboard-api/infrastructure/integrator/buff/buffclient"
	"github.com/vfg2006/buff-dashboard-api/internal/domain"
	"github.com/vfg2006/buff-dashboard-api/internal/notify"
	"github.com/vfg2006/buff-dashboard-api/internal/session"
	"github.com/vfg2006/buff-dashboard-api/pkg/log"
	"github.com/vfg2006/buff-dashboard-api/pkg/metrics"
)

var (
	ErrNoSession       = errors.New("no signed-in user")
	ErrGroupIDRequired = errors.New("campaign group id is required")
	ErrEmptyPatch      = errors.New("nothing to update")
	ErrNoCampaigns     = errors.New("at least one campaign id is required")
)

const (
	msgCreated  = "Campaign group created successfully"
	msgUpdated  = "Campaign group updated successfully"
	msgDeleted  = "Campaign group deleted successfully"
	msgAssigned = "Campaigns assigned successfully"
	msgRemoved  = "Campaigns removed successfully"
)

// Snapshot é uma cópia imutável do estado do Store
type Snapshot struct {
	Items                    []domain.CampaignGroup `json:"items"`
	UnassignedCampaignsCount int                    `json:"unassignedCampaignsCount"`
	Loading                  bool                   `json:"loading"`
	Error                    string                 `json:"error,omitempty"`
}

// Store é o dono exclusivo da coleção de grupos de campanha de um usuário.
//
// Cada FetchAll e cada mutação bem sucedida avançam version; o resultado de um
// FetchAll só é aplicado se version não mudou desde o seu início.
type Store struct {
	client   buffclient.Client
	session  *session.Session
	notifier notify.Notifier
	metrics  *metrics.Metrics

	mu         sync.Mutex
	items      []domain.CampaignGroup
	unassigned int
	inFlight   int
	err        string
	version    uint64
	profileID  string
	fetched    bool
}

type Option func(*Store)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func NewStore(client buffclient.Client, sess *session.Session, notifier notify.Notifier, opts ...Option) *Store {
	if notifier == nil {
		notifier = notify.Discard
	}

	store := &Store{
		client:   client,
		session:  sess,
		notifier: notifier,
		items:    []domain.CampaignGroup{},
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CampaignGroup, len(s.items))
	copy(items, s.items)

	return Snapshot{
		Items:                    items,
		UnassignedCampaignsCount: s.unassigned,
		Loading:                  s.inFlight > 0,
		Error:                    s.err,
	}
}

// ProfileID devolve o perfil do último FetchAll e se já houve algum
func (s *Store) ProfileID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileID, s.fetched
}

func (s *Store) FetchAll(ctx context.Context, profileID string) error {
	userID, err := s.userID()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.version++
	version := s.version
	s.profileID = profileID
	s.fetched = true
	s.mu.Unlock()

	s.begin()
	defer s.end()

	list, err := s.client.ListCampaignGroups(ctx, userID, profileID)

	if isCanceled(ctx, err) {
		return err
	}

	s.mu.Lock()
	if s.version != version {
		s.mu.Unlock()
		s.metrics.RecordStaleResponse("grouping")
		log.ForContext(ctx).WithFields(log.Fields{
			"user_id": userID,
		}).Debug("grouping: resposta de FetchAll desatualizada descartada")
		return nil
	}

	if err != nil {
		s.err = notify.ErrorMessage(err)
		s.mu.Unlock()
		s.notifier.Error(notify.ErrorMessage(err))
		log.ForContext(ctx).WithError(err).Error("grouping: erro ao buscar grupos de campanha")
		return err
	}

	s.items = list.Groups
	if s.items == nil {
		s.items = []domain.CampaignGroup{}
	}
	s.unassigned = list.UnassignedCampaignsCount
	s.err = ""
	s.mu.Unlock()

	return nil
}

// Create devolve nil quando a criação falha, sem alterar a coleção
func (s *Store) Create(ctx context.Context, form domain.CampaignGroupForm) (*domain.CampaignGroup, error) {
	userID, err := s.userID()
	if err != nil {
		return nil, err
	}

	s.begin()
	defer s.end()

	group, err := s.client.CreateCampaignGroup(ctx, userID, form)
	if isCanceled(ctx, err) {
		return nil, err
	}
	if err != nil {
		s.fail(ctx, err)
		return nil, err
	}

	s.mu.Lock()
	s.version++
	s.items = append(s.items, *group)
	s.mu.Unlock()

	s.notifier.Success(msgCreated)
	return group, nil
}

func (s *Store) Update(ctx context.Context, id string, patch domain.CampaignGroupPatch) (*domain.CampaignGroup, error) {
	userID, err := s.userID()
	if err != nil {
		return nil, err
	}

	if id == "" {
		return nil, ErrGroupIDRequired
	}
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	s.begin()
	defer s.end()

	group, err := s.client.UpdateCampaignGroup(ctx, userID, id, patch)
	if isCanceled(ctx, err) {
		return nil, err
	}
	if err != nil {
		s.fail(ctx, err)
		return nil, err
	}

	s.mu.Lock()
	s.version++
	for i := range s.items {
		if s.items[i].ID == id {
			items := make([]domain.CampaignGroup, len(s.items))
			copy(items, s.items)
			items[i] = *group
			s.items = items
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success(msgUpdated)
	return group, nil
}

// Delete remove o grupo localmente e reconcilia com um FetchAll completo
func (s *Store) Delete(ctx context.Context, id string) error {
	userID, err := s.userID()
	if err != nil {
		return err
	}
	if id == "" {
		return ErrGroupIDRequired
	}

	s.begin()
	defer s.end()

	err = s.client.DeleteCampaignGroup(ctx, userID, id)
	if isCanceled(ctx, err) {
		return err
	}
	if err != nil {
		s.fail(ctx, err)
		return err
	}

	s.mu.Lock()
	s.version++
	items := make([]domain.CampaignGroup, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	s.items = items
	s.mu.Unlock()

	s.notifier.Success(msgDeleted)
	s.reconcile(ctx)
	return nil
}

func (s *Store) AssignCampaigns(ctx context.Context, groupID string, campaignIDs []string) error {
	return s.changeMembership(ctx, groupID, campaignIDs, s.client.AssignCampaigns, msgAssigned)
}

func (s *Store) RemoveCampaigns(ctx context.Context, groupID string, campaignIDs []string) error {
	return s.changeMembership(ctx, groupID, campaignIDs, s.client.RemoveCampaigns, msgRemoved)
}

type membershipCall func(ctx context.Context, userID, groupID string, campaignIDs []string) error

// changeMembership nunca altera a coleção localmente; o estado vem sempre do FetchAll
func (s *Store) changeMembership(ctx context.Context, groupID string, campaignIDs []string, call membershipCall, successMessage string) error {
	userID, err := s.userID()
	if err != nil {
		return err
	}
	if groupID == "" {
		return ErrGroupIDRequired
	}
	if len(campaignIDs) == 0 {
		return ErrNoCampaigns
	}

	s.begin()
	defer s.end()

	err = call(ctx, userID, groupID, campaignIDs)
	if isCanceled(ctx, err) {
		return err
	}

	s.mu.Lock()
	s.version++
	s.mu.Unlock()

	// a reconciliação acontece mesmo na falha; o erro é registrado depois para não ser apagado
	s.reconcile(ctx)

	if err != nil {
		s.fail(ctx, err)
		return err
	}

	s.notifier.Success(successMessage)
	return nil
}

// reconcile refaz o FetchAll do último perfil. A falha fica registrada em Error.
func (s *Store) reconcile(ctx context.Context) {
	s.mu.Lock()
	profileID := s.profileID
	s.mu.Unlock()

	if err := s.FetchAll(ctx, profileID); err != nil {
		log.ForContext(ctx).WithError(err).Warn("grouping: falha na reconciliação após mutação")
	}
}

func (s *Store) fail(ctx context.Context, err error) {
	message := notify.ErrorMessage(err)

	s.mu.Lock()
	s.err = message
	s.mu.Unlock()

	s.notifier.Error(message)
	log.ForContext(ctx).WithError(err).Error("grouping: operação falhou")
}

func (s *Store) begin() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func (s *Store) end() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}

func (s *Store) userID() (string, error) {
	if s.session.IsZero() {
		return "", ErrNoSession
	}
	return s.session.UserID, nil
}

// isCanceled indica uma falha causada pelo cancelamento do próprio chamador
func isCanceled(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}
