package grouping

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/buff-dashboard-api/infrastructure/integrator/buff/buffclient"
	"github.com/vfg2006/buff-dashboard-api/infrastructure/integrator/buff/mocks"
	"github.com/vfg2006/buff-dashboard-api/internal/domain"
	"github.com/vfg2006/buff-dashboard-api/internal/notify"
	"github.com/vfg2006/buff-dashboard-api/internal/session"
	"go.uber.org/mock/gomock"
)

var testSession = &session.Session{UserID: "user_1"}

func groupList(unassigned int, ids ...string) *domain.CampaignGroupList {
	groups := make([]domain.CampaignGroup, 0, len(ids))
	for _, id := range ids {
		groups = append(groups, domain.CampaignGroup{ID: id, Name: "Grupo " + id, Campaigns: []string{}})
	}
	return &domain.CampaignGroupList{Groups: groups, UnassignedCampaignsCount: unassigned}
}

func itemIDs(items []domain.CampaignGroup) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func newStore(t *testing.T) (*Store, *mocks.MockClient, *notify.Inbox) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	inbox := notify.NewInbox(20)

	return NewStore(client, testSession, inbox), client, inbox
}

// seed carrega g1 e g2 no Store
func seed(t *testing.T, store *Store, client *mocks.MockClient) {
	t.Helper()

	client.EXPECT().ListCampaignGroups(gomock.Any(), "user_1", "p1").Return(groupList(3, "g1", "g2"), nil)
	require.NoError(t, store.FetchAll(context.Background(), "p1"))
}

func TestStore_FetchAll(t *testing.T) {
	t.Run("substitui a coleção inteira", func(t *testing.T) {
		store, client, _ := newStore(t)
		seed(t, store, client)

		snapshot := store.Snapshot()
		assert.Equal(t, []string{"g1", "g2"}, itemIDs(snapshot.Items))
		assert.Equal(t, 3, snapshot.UnassignedCampaignsCount)
		assert.False(t, snapshot.Loading)
		assert.Empty(t, snapshot.Error)

		profileID, fetched := store.ProfileID()
		assert.Equal(t, "p1", profileID)
		assert.True(t, fetched)
	})

	t.Run("falha mantém os itens anteriores e registra o erro", func(t *testing.T) {
		store, client, inbox := newStore(t)
		seed(t, store, client)

		client.EXPECT().ListCampaignGroups(gomock.Any(), "user_1", "p1").
			Return(nil, &buffclient.RequestError{Operation: "fetch campaign groups", StatusCode: 503, Status: "503 Service Unavailable", Body: "maintenance"})

		err := store.FetchAll(context.Background(), "p1")
		require.Error(t, err)

		snapshot := store.Snapshot()
		assert.Equal(t, []string{"g1", "g2"}, itemIDs(snapshot.Items))
		assert.Contains(t, snapshot.Error, "maintenance")

		notifications := inbox.Drain()
		require.Len(t, notifications, 1)
		assert.Equal(t, notify.KindError, notifications[0].Kind)
	})

	t.Run("sem sessão não chama a API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewStore(mocks.NewMockClient(ctrl), nil, nil)

		assert.ErrorIs(t, store.FetchAll(context.Background(), "p1"), ErrNoSession)
	})
}

func TestStore_Create(t *testing.T) {
	form := domain.CampaignGroupForm{Name: "Marca", TargetAcos: 30, PresetGoal: domain.PresetGoalProfit}

	t.Run("anexa o item devolvido pelo servidor", func(t *testing.T) {
		store, client, inbox := newStore(t)
		seed(t, store, client)

		created := &domain.CampaignGroup{ID: "g3", Name: "Marca", CreatedAt: "2025-03-01T10:00:00Z", UpdatedAt: "2025-03-01T10:00:00Z"}
		client.EXPECT().CreateCampaignGroup(gomock.Any(), "user_1", form).Return(created, nil)

		group, err := store.Create(context.Background(), form)
		require.NoError(t, err)
		assert.Equal(t, created, group)

		snapshot := store.Snapshot()
		assert.Equal(t, []string{"g1", "g2", "g3"}, itemIDs(snapshot.Items))
		assert.Equal(t, "2025-03-01T10:00:00Z", snapshot.Items[2].UpdatedAt)

		notifications := inbox.Drain()
		require.Len(t, notifications, 1)
		assert.Equal(t, notify.KindSuccess, notifications[0].Kind)
	})

	t.Run("500 com duplicate name não altera os itens", func(t *testing.T) {
		store, client, inbox := newStore(t)
		seed(t, store, client)

		client.EXPECT().CreateCampaignGroup(gomock.Any(), "user_1", form).
			Return(nil, &buffclient.RequestError{
				Operation:  "create campaign group",
				StatusCode: http.StatusInternalServerError,
				Status:     "500 Internal Server Error",
				Body:       "duplicate name",
			})

		group, err := store.Create(context.Background(), form)
		require.Error(t, err)
		assert.Nil(t, group)

		snapshot := store.Snapshot()
		assert.Equal(t, []string{"g1", "g2"}, itemIDs(snapshot.Items))
		assert.Contains(t, snapshot.Error, "duplicate name")

		notifications := inbox.Drain()
		require.Len(t, notifications, 1)
		assert.Equal(t, notify.KindError, notifications[0].Kind)
		assert.Contains(t, notifications[0].Message, "duplicate name")
	})
}

func TestStore_Update(t *testing.T) {
	name := "Novo nome"
	patch := domain.CampaignGroupPatch{Name: &name}

	t.Run("substitui o item no lugar", func(t *testing.T) {
		store, client, _ := newStore(t)
		seed(t, store, client)

		client.EXPECT().UpdateCampaignGroup(gomock.Any(), "user_1", "g1", patch).
			Return(&domain.CampaignGroup{ID: "g1", Name: name, UpdatedAt: "2025-03-02T00:00:00Z"}, nil)

		_, err := store.Update(context.Background(), "g1", patch)
		require.NoError(t, err)

		snapshot := store.Snapshot()
		assert.Equal(t, []string{"g1", "g2"}, itemIDs(snapshot.Items))
		assert.Equal(t, name, snapshot.Items[0].Name)
		assert.Equal(t, "2025-03-02T00:00:00Z", snapshot.Items[0].UpdatedAt)
	})

	t.Run("falha não altera os itens", func(t *testing.T) {
		store, client, _ := newStore(t)
		seed(t, store, client)

		client.EXPECT().UpdateCampaignGroup(gomock.Any(), "user_1", "g1", patch).Return(nil, errors.New("boom"))

		group, err := store.Update(context.Background(), "g1", patch)
		require.Error(t, err)
		assert.Nil(t, group)
		assert.Equal(t, "Grupo g1", store.Snapshot().Items[0].Name)
	})

	t.Run("patch vazio é rejeitado sem chamar a API", func(t *testing.T) {
		store, _, _ := newStore(t)

		_, err := store.Update(context.Background(), "g1", domain.CampaignGroupPatch{})
		assert.ErrorIs(t, err, ErrEmptyPatch)
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("remove e reconcilia", func(t *testing.T) {
		store, client, _ := newStore(t)
		seed(t, store, client)

		gomock.InOrder(
			client.EXPECT().DeleteCampaignGroup(gomock.Any(), "user_1", "g1").Return(nil),
			client.EXPECT().ListCampaignGroups(gomock.Any(), "user_1", "p1").Return(groupList(5, "g2"), nil),
		)

		require.NoError(t, store.Delete(context.Background(), "g1"))

		snapshot := store.Snapshot()
		assert.Equal(t, []string{"g2"}, itemIDs(snapshot.Items))
		assert.Equal(t, 5, snapshot.UnassignedCampaignsCount)
	})

	t.Run("FetchAll antigo que termina depois do delete é descartado", func(t *testing.T) {
		store, client, _ := newStore(t)
		seed(t, store, client)

		started := make(chan struct{})
		release := make(chan struct{})

		// FetchAll iniciado antes do delete, ainda com g1
		client.EXPECT().ListCampaignGroups(gomock.Any(), "user_1", "p1").
			DoAndReturn(func(ctx context.Context, userID, profileID string) (*domain.CampaignGroupList, error) {
				close(started)
				<-release
				return groupList(3, "g1", "g2"), nil
			})
		client.EXPECT().DeleteCampaignGroup(gomock.Any(), "user_1", "g1").Return(nil)
		// reconciliação
		client.EXPECT().ListCampaignGroups(gomock.Any(), "user_1", "p1").Return(groupList(4, "g2"), nil)

		done := make(chan error, 1)
		go func() {
			done <- store.FetchAll(context.Background(), "p1")
		}()
		<-started

		require.NoError(t, store.Delete(context.Background(), "g1"))
		assert.Equal(t, []string{"g2"}, itemIDs(store.Snapshot().Items))
		assert.True(t, store.Snapshot().Loading)

		close(release)
		require.NoError(t, <-done)

		snapshot := store.Snapshot()
		assert.Equal(t, []string{"g2"}, itemIDs(snapshot.Items))
		assert.Equal(t, 4, snapshot.UnassignedCampaignsCount)
		assert.False(t, snapshot.Loading)
	})

	t.Run("falha não altera os itens", func(t *testing.T) {
		store, client, inbox := newStore(t)
		seed(t, store, client)

		client.EXPECT().DeleteCampaignGroup(gomock.Any(), "user_1", "g1").
			Return(&buffclient.RequestError{Operation: "delete campaign group", StatusCode: 404, Status: "404 Not Found"})

		require.Error(t, store.Delete(context.Background(), "g1"))
		assert.Equal(t, []string{"g1", "g2"}, itemIDs(store.Snapshot().Items))
		assert.Len(t, inbox.Drain(), 1)
	})
}

func TestStore_Membership(t *testing.T) {
	tests := []struct {
		name  string
		setup func(client *mocks.MockClient) *gomock.Call
		call  func(store *Store) error
	}{
		{
			name: "assign reconcilia com FetchAll",
			setup: func(client *mocks.MockClient) *gomock.Call {
				return client.EXPECT().AssignCampaigns(gomock.Any(), "user_1", "g1", []string{"c1", "c2"}).Return(nil)
			},
			call: func(store *Store) error {
				return store.AssignCampaigns(context.Background(), "g1", []string{"c1", "c2"})
			},
		},
		{
			name: "remove reconcilia com FetchAll",
			setup: func(client *mocks.MockClient) *gomock.Call {
				return client.EXPECT().RemoveCampaigns(gomock.Any(), "user_1", "g1", []string{"c1"}).Return(nil)
			},
			call: func(store *Store) error {
				return store.RemoveCampaigns(context.Background(), "g1", []string{"c1"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, client, inbox := newStore(t)
			seed(t, store, client)

			reconciled := groupList(1, "g1", "g2")
			reconciled.Groups[0].Campaigns = []string{"c9"}

			gomock.InOrder(
				tt.setup(client),
				client.EXPECT().ListCampaignGroups(gomock.Any(), "user_1", "p1").Return(reconciled, nil),
			)

			require.NoError(t, tt.call(store))

			snapshot := store.Snapshot()
			assert.Equal(t, 1, snapshot.UnassignedCampaignsCount)
			assert.Equal(t, []string{"c9"}, snapshot.Items[0].Campaigns)

			notifications := inbox.Drain()
			require.Len(t, notifications, 1)
			assert.Equal(t, notify.KindSuccess, notifications[0].Kind)
		})
	}

	t.Run("falha também reconcilia e mantém o erro", func(t *testing.T) {
		store, client, inbox := newStore(t)
		seed(t, store, client)

		gomock.InOrder(
			client.EXPECT().AssignCampaigns(gomock.Any(), "user_1", "g1", []string{"c1"}).Return(&buffclient.RequestError{
				Operation:  "assign campaigns",
				StatusCode: http.StatusConflict,
				Status:     "409 Conflict",
				Body:       "campaign already grouped",
			}),
			client.EXPECT().ListCampaignGroups(gomock.Any(), "user_1", "p1").Return(groupList(2, "g1", "g2"), nil),
		)

		err := store.AssignCampaigns(context.Background(), "g1", []string{"c1"})
		require.ErrorIs(t, err, buffclient.ErrRequestFailed)

		snapshot := store.Snapshot()
		assert.Equal(t, 2, snapshot.UnassignedCampaignsCount)
		assert.Equal(t, "failed to assign campaigns (409 Conflict): campaign already grouped", snapshot.Error)
		assert.False(t, snapshot.Loading)

		notifications := inbox.Drain()
		require.Len(t, notifications, 1)
		assert.Equal(t, notify.KindError, notifications[0].Kind)
	})

	t.Run("lista vazia é rejeitada", func(t *testing.T) {
		store, _, _ := newStore(t)
		assert.ErrorIs(t, store.AssignCampaigns(context.Background(), "g1", nil), ErrNoCampaigns)
	})
}

func TestStore_Cancelamento(t *testing.T) {
	store, client, inbox := newStore(t)
	seed(t, store, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client.EXPECT().CreateCampaignGroup(gomock.Any(), "user_1", gomock.Any()).
		Return(nil, &buffclient.NetworkError{Operation: "create campaign group", Err: context.Canceled})
	client.EXPECT().ListCampaignGroups(gomock.Any(), "user_1", "p1").
		Return(nil, &buffclient.NetworkError{Operation: "fetch campaign groups", Err: context.Canceled})

	_, err := store.Create(ctx, domain.CampaignGroupForm{Name: "Marca"})
	assert.ErrorIs(t, err, context.Canceled)

	err = store.FetchAll(ctx, "p1")
	assert.ErrorIs(t, err, context.Canceled)

	snapshot := store.Snapshot()
	assert.Equal(t, []string{"g1", "g2"}, itemIDs(snapshot.Items))
	assert.Empty(t, snapshot.Error)
	assert.False(t, snapshot.Loading)
	assert.Empty(t, inbox.Drain())
}

func TestStore_LoadingComContagem(t *testing.T) {
	store, client, _ := newStore(t)
	seed(t, store, client)

	started := make(chan struct{})
	release := make(chan struct{})

	client.EXPECT().UpdateCampaignGroup(gomock.Any(), "user_1", "g1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID, groupID string, patch domain.CampaignGroupPatch) (*domain.CampaignGroup, error) {
			close(started)
			<-release
			return &domain.CampaignGroup{ID: "g1", Name: "lento"}, nil
		})
	client.EXPECT().CreateCampaignGroup(gomock.Any(), "user_1", gomock.Any()).
		Return(&domain.CampaignGroup{ID: "g3"}, nil)

	name := "lento"
	done := make(chan error, 1)
	go func() {
		_, err := store.Update(context.Background(), "g1", domain.CampaignGroupPatch{Name: &name})
		done <- err
	}()
	<-started

	_, err := store.Create(context.Background(), domain.CampaignGroupForm{Name: "rápido"})
	require.NoError(t, err)

	// a chamada mais rápida terminou, mas o update ainda está em andamento
	assert.True(t, store.Snapshot().Loading)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, store.Snapshot().Loading)
}
