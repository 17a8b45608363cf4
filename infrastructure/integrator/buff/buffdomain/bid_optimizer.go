package buffdomain

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/vfg2006/buff-dashboard-api/internal/domain"
)

// MetricMap aceita tanto números quanto valores já formatados ("$1,234.50", "12.5%")
type MetricMap map[string]any

type Summary struct {
	Current  MetricMap         `json:"current"`
	Previous MetricMap         `json:"previous"`
	Changes  map[string]string `json:"changes"`
}

type DailyPerformance struct {
	Date        string  `json:"date"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Orders      int     `json:"orders"`
	Spend       float64 `json:"spend"`
	Sales       float64 `json:"sales"`
	Acos        float64 `json:"acos"`
}

type Campaign struct {
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	AdType       string  `json:"ad_type"`
	State        string  `json:"state"`
	Impressions  int     `json:"impressions"`
	Clicks       int     `json:"clicks"`
	Orders       int     `json:"orders"`
	Spend        float64 `json:"spend"`
	Sales        float64 `json:"sales"`
	Acos         float64 `json:"acos"`
}

type BidOptimizerResponse struct {
	Summary          Summary            `json:"summary"`
	DailyPerformance []DailyPerformance `json:"daily_performance"`
	Campaigns        []Campaign         `json:"campaigns"`
}

func (m MetricMap) ToDomain() domain.MetricValues {
	values := make(domain.MetricValues, len(m))

	for key, raw := range m {
		metric := domain.MetricKey(key)
		if !metric.IsValid() {
			continue
		}

		value, err := ParseMetricValue(raw)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"metric": key,
				"value":  raw,
			}).Warn("buff: valor de métrica inválido, ignorando")
			continue
		}

		values[metric] = value
	}

	return values
}

// ParseMetricValue converte um valor numérico ou formatado em float64
func ParseMetricValue(raw any) (float64, error) {
	if s, ok := raw.(string); ok {
		raw = strings.NewReplacer("$", "", "%", "", ",", "", "x", "", " ", "").Replace(s)
	}
	return cast.ToFloat64E(raw)
}

func (r BidOptimizerResponse) ToDomain() *domain.BidOptimizerData {
	changes := make(map[domain.MetricKey]string, len(r.Summary.Changes))
	for key, change := range r.Summary.Changes {
		if metric := domain.MetricKey(key); metric.IsValid() {
			changes[metric] = change
		}
	}

	daily := make([]domain.DailyPerformance, 0, len(r.DailyPerformance))
	for _, d := range r.DailyPerformance {
		daily = append(daily, domain.DailyPerformance(d))
	}

	campaigns := make([]domain.CampaignPerformance, 0, len(r.Campaigns))
	for _, c := range r.Campaigns {
		campaigns = append(campaigns, domain.CampaignPerformance(c))
	}

	return &domain.BidOptimizerData{
		Summary: domain.MetricSummary{
			Current:  r.Summary.Current.ToDomain(),
			Previous: r.Summary.Previous.ToDomain(),
			Changes:  changes,
		},
		DailyPerformance: daily,
		Campaigns:        campaigns,
	}
}
