package buffclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/buff-dashboard-api/internal/config"
	"github.com/vfg2006/buff-dashboard-api/internal/domain"
	"github.com/vfg2006/buff-dashboard-api/pkg/filters"
	"github.com/vfg2006/buff-dashboard-api/pkg/metrics"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Buff.APIURL = server.URL + "/"
	cfg.Buff.Timeout = 5 * time.Second

	return NewClient(cfg, WithMetrics(metrics.New(prometheus.NewRegistry())))
}

func TestListCampaignGroups(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/campaign-groups", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "p1", r.URL.Query().Get("profile_id"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Content-Type"))

		_, _ = io.WriteString(w, `{
			"groups": [{"id": "g1", "name": "Marca", "target_acos": 25, "preset_goal": "balanced", "bid_ceiling": 2.5, "campaigns": ["c1"], "created_at": "2025-01-01T00:00:00Z", "updated_at": "2025-01-02T00:00:00Z"},
			           {"id": "g2", "name": "Genéricas", "target_acos": 40, "preset_goal": "growth"}],
			"unassigned_campaigns_count": 7
		}`)
	})

	list, err := client.ListCampaignGroups(context.Background(), "u1", "p1")
	require.NoError(t, err)

	require.Len(t, list.Groups, 2)
	assert.Equal(t, 7, list.UnassignedCampaignsCount)
	assert.Equal(t, "g1", list.Groups[0].ID)
	assert.Equal(t, domain.PresetGoalBalanced, list.Groups[0].PresetGoal)
	require.NotNil(t, list.Groups[0].BidCeiling)
	assert.Equal(t, 2.5, *list.Groups[0].BidCeiling)
	assert.Nil(t, list.Groups[0].BidFloor)
	assert.Equal(t, []string{"c1"}, list.Groups[0].Campaigns)
	assert.Equal(t, "2025-01-02T00:00:00Z", list.Groups[0].UpdatedAt)
	assert.Equal(t, []string{}, list.Groups[1].Campaigns)
}

func TestCreateCampaignGroup(t *testing.T) {
	t.Run("envia o corpo em snake_case", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/campaign-groups", r.URL.Path)
			assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"name":"Marca","target_acos":30,"preset_goal":"profit","profile_id":"p1"}`, string(body))

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"g9","name":"Marca","target_acos":30,"preset_goal":"profit","campaigns":[],"created_at":"2025-03-01T10:00:00Z","updated_at":"2025-03-01T10:00:00Z"}`)
		})

		group, err := client.CreateCampaignGroup(context.Background(), "u1", domain.CampaignGroupForm{
			Name:       "Marca",
			TargetAcos: 30,
			PresetGoal: domain.PresetGoalProfit,
			ProfileID:  "p1",
		})
		require.NoError(t, err)
		assert.Equal(t, "g9", group.ID)
		assert.Equal(t, "2025-03-01T10:00:00Z", group.CreatedAt)
	})

	t.Run("status 500 devolve RequestError com o texto da resposta", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "duplicate name")
		})

		group, err := client.CreateCampaignGroup(context.Background(), "u1", domain.CampaignGroupForm{Name: "Marca"})
		require.Error(t, err)
		assert.Nil(t, group)
		assert.Contains(t, err.Error(), "duplicate name")
		assert.Contains(t, err.Error(), "create campaign group")
		assert.True(t, errors.Is(err, ErrRequestFailed))

		var requestErr *RequestError
		require.True(t, errors.As(err, &requestErr))
		assert.Equal(t, http.StatusInternalServerError, requestErr.StatusCode)
	})
}

func TestUpdateCampaignGroup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/campaign-groups/g1", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Novo nome"}`, string(body))

		_, _ = io.WriteString(w, `{"id":"g1","name":"Novo nome","target_acos":25,"preset_goal":"balanced","updated_at":"2025-03-02T00:00:00Z"}`)
	})

	name := "Novo nome"
	group, err := client.UpdateCampaignGroup(context.Background(), "u1", "g1", domain.CampaignGroupPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Novo nome", group.Name)
	assert.Equal(t, "2025-03-02T00:00:00Z", group.UpdatedAt)
}

func TestDeleteCampaignGroup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/campaign-groups/g1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteCampaignGroup(context.Background(), "u1", "g1"))
}

func TestAssignAndRemoveCampaigns(t *testing.T) {
	t.Run("assign envia campaign_ids no corpo", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/campaign-groups/g1/campaigns", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"campaign_ids":["c1","c2"]}`, string(body))
		})

		assert.NoError(t, client.AssignCampaigns(context.Background(), "u1", "g1", []string{"c1", "c2"}))
	})

	t.Run("remove envia campaign_ids repetidos na query", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/v1/campaign-groups/g1/campaigns", r.URL.Path)
			assert.Equal(t, []string{"c1", "c2"}, r.URL.Query()["campaign_ids"])
			assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
		})

		assert.NoError(t, client.RemoveCampaigns(context.Background(), "u1", "g1", []string{"c1", "c2"}))
	})
}

func TestGetBidOptimizerData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/api/v1/bid-optimizer", r.URL.Path)
		assert.Equal(t, "p1", query.Get("profile_id"))
		assert.Equal(t, "2025-01-01", query.Get("start_date"))
		assert.Equal(t, "2025-01-31", query.Get("end_date"))
		assert.JSONEq(t, `{"adType":["SP"]}`, query.Get("filters"))

		_, _ = io.WriteString(w, `{
			"summary": {
				"current": {"spend": "$1,234.50", "acos": "12.5%", "clicks": 300, "roas": "4.2x"},
				"previous": {"spend": 1000, "clicks": 250, "unknown": 1},
				"changes": {"spend": "+23.5%"}
			},
			"daily_performance": [{"date": "2025-01-01", "impressions": 1000, "clicks": 10, "orders": 2, "spend": 12.3, "sales": 40, "acos": 30.75}],
			"campaigns": [{"campaign_id": "c1", "campaign_name": "Marca", "ad_type": "SP", "state": "enabled", "spend": 12.3}]
		}`)
	})

	data, err := client.GetBidOptimizerData(context.Background(), domain.BidOptimizerQuery{
		ProfileID: "p1",
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Filters:   filters.APIFilters{AdType: []string{"SP"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1234.5, data.Summary.Current[domain.MetricSpend])
	assert.Equal(t, 12.5, data.Summary.Current[domain.MetricAcos])
	assert.Equal(t, 4.2, data.Summary.Current[domain.MetricROAS])
	assert.Equal(t, float64(300), data.Summary.Current[domain.MetricClicks])
	assert.Len(t, data.Summary.Previous, 2)
	assert.Equal(t, "+23.5%", data.Summary.Changes[domain.MetricSpend])
	require.Len(t, data.DailyPerformance, 1)
	assert.Equal(t, 1000, data.DailyPerformance[0].Impressions)
	require.Len(t, data.Campaigns, 1)
	assert.Equal(t, "Marca", data.Campaigns[0].CampaignName)
}

func TestGetBidOptimizerData_SemFiltros(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.URL.Query()["filters"]
		assert.False(t, ok)
		_, _ = io.WriteString(w, `{"summary":{"current":{},"previous":{},"changes":{}},"daily_performance":[],"campaigns":[]}`)
	})

	_, err := client.GetBidOptimizerData(context.Background(), domain.BidOptimizerQuery{ProfileID: "p1"})
	assert.NoError(t, err)
}

func TestGetAmazonConnectionStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/connections/amazon-ads/status", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("user_id"))

		_, _ = io.WriteString(w, `{"connected": true, "profiles": [{"id": "1", "profile_id": "p1", "account_name": "Loja", "country_code": "US", "currency_code": "USD", "marketplace_id": "ATVPDKIKX0DER", "is_active": true}]}`)
	})

	status, err := client.GetAmazonConnectionStatus(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, status.Connected)
	require.Len(t, status.Profiles, 1)
	assert.Equal(t, "p1", status.Profiles[0].ProfileID)
	assert.Equal(t, "Loja", status.Profiles[0].AccountName)
	assert.Equal(t, "ATVPDKIKX0DER", status.Profiles[0].MarketplaceID)
	assert.True(t, status.Profiles[0].IsActive)
}

func TestCancelamento(t *testing.T) {
	t.Run("contexto já cancelado não dispara requisição", func(t *testing.T) {
		called := false
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.ListCampaignGroups(ctx, "u1", "")
		require.Error(t, err)
		assert.False(t, called)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.True(t, errors.Is(err, ErrNetworkFailure))
	})

	t.Run("cancelamento durante a requisição", func(t *testing.T) {
		release := make(chan struct{})
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-release:
			}
		})
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := client.DeleteCampaignGroup(ctx, "u1", "g1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNetworkFailure))
	})
}
