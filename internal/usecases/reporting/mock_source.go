package reporting

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/vfg2006/buff-dashboard-api/internal/domain"
	"github.com/vfg2006/buff-dashboard-api/pkg/filters"
	"github.com/vfg2006/buff-dashboard-api/pkg/utils"
)

var mockCampaigns = []domain.CampaignPerformance{
	{CampaignID: "cmp-001", CampaignName: "Brand - Exact", AdType: "SP", State: "enabled"},
	{CampaignID: "cmp-002", CampaignName: "Brand - Broad", AdType: "SP", State: "enabled"},
	{CampaignID: "cmp-003", CampaignName: "Competitors - Auto", AdType: "SP", State: "paused"},
	{CampaignID: "cmp-004", CampaignName: "Headline - Best Sellers", AdType: "SB", State: "enabled"},
	{CampaignID: "cmp-005", CampaignName: "Display - Retargeting", AdType: "SD", State: "enabled"},
	{CampaignID: "cmp-006", CampaignName: "Generic - Phrase", AdType: "SP", State: "archived"},
}

// MockSource gera dados determinísticos a partir do perfil e do período
type MockSource struct{}

func NewMockSource() *MockSource {
	return &MockSource{}
}

func (m *MockSource) GetBidOptimizerData(ctx context.Context, query domain.BidOptimizerQuery) (*domain.BidOptimizerData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := seedFor(query.ProfileID)
	days := int(query.EndDate.Sub(query.StartDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	daily := make([]domain.DailyPerformance, 0, days)
	var current totals
	for i := 0; i < days; i++ {
		day := dailyFor(seed, utils.FormatDate(query.StartDate.AddDate(0, 0, i)), i, 1)
		daily = append(daily, day)
		current.add(day)
	}

	var previous totals
	for i := 0; i < days; i++ {
		previous.add(dailyFor(seed, "", i+days, 0.9))
	}

	campaigns := make([]domain.CampaignPerformance, 0, len(mockCampaigns))
	for i, c := range mockCampaigns {
		c = campaignFor(c, seed, i, days)
		if matches(query.Filters, c) {
			campaigns = append(campaigns, c)
		}
	}

	return &domain.BidOptimizerData{
		Summary: domain.MetricSummary{
			Current:  current.values(),
			Previous: previous.values(),
		},
		DailyPerformance: daily,
		Campaigns:        campaigns,
	}, nil
}

type totals struct {
	impressions, clicks, orders float64
	spend, sales                float64
}

func (t *totals) add(d domain.DailyPerformance) {
	t.impressions += float64(d.Impressions)
	t.clicks += float64(d.Clicks)
	t.orders += float64(d.Orders)
	t.spend += d.Spend
	t.sales += d.Sales
}

func (t totals) values() domain.MetricValues {
	units := math.Round(t.orders * 1.2)
	return Derive(t.impressions, t.clicks, t.orders, units, t.spend, t.sales)
}

func seedFor(profileID string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(profileID))
	return h.Sum32()
}

func wave(seed uint32, i int, spread int) int {
	return int((seed>>(uint(i)%16) + uint32(i)*2654435761) % uint32(spread))
}

func dailyFor(seed uint32, date string, i int, factor float64) domain.DailyPerformance {
	impressions := int(float64(8000+wave(seed, i, 4000)) * factor)
	clicks := impressions / (30 + wave(seed, i+1, 20))
	orders := clicks / (8 + wave(seed, i+2, 6))
	spend := utils.RoundWithTwoDecimalPlace(float64(clicks) * (0.6 + float64(wave(seed, i+3, 90))/100))
	sales := utils.RoundWithTwoDecimalPlace(float64(orders) * (18 + float64(wave(seed, i+4, 1500))/100))

	acos := 0.0
	if sales > 0 {
		acos = utils.RoundWithTwoDecimalPlace(spend / sales * 100)
	}

	return domain.DailyPerformance{
		Date:        date,
		Impressions: impressions,
		Clicks:      clicks,
		Orders:      orders,
		Spend:       spend,
		Sales:       sales,
		Acos:        acos,
	}
}

func campaignFor(c domain.CampaignPerformance, seed uint32, i, days int) domain.CampaignPerformance {
	day := dailyFor(seed, "", i*7, 0.35)
	c.Impressions = day.Impressions * days
	c.Clicks = day.Clicks * days
	c.Orders = day.Orders * days
	c.Spend = utils.RoundWithTwoDecimalPlace(day.Spend * float64(days))
	c.Sales = utils.RoundWithTwoDecimalPlace(day.Sales * float64(days))
	c.Acos = day.Acos
	return c
}

func matches(f filters.APIFilters, c domain.CampaignPerformance) bool {
	return filters.MatchAny(f.AdType, c.AdType) &&
		filters.MatchAny(f.State, c.State) &&
		f.CampaignName.Match(c.CampaignName) &&
		f.Impressions.Match(float64(c.Impressions)) &&
		f.Clicks.Match(float64(c.Clicks)) &&
		f.Spend.Match(c.Spend) &&
		f.Sales.Match(c.Sales) &&
		f.Acos.Match(c.Acos)
}
