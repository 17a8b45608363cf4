package domain

import (
	"time"

	"github.com/vfg2006/buff-dashboard-api/pkg/filters"
)

type MetricKey string

const (
	MetricImpressions MetricKey = "impressions"
	MetricClicks      MetricKey = "clicks"
	MetricOrders      MetricKey = "orders"
	MetricUnits       MetricKey = "units"
	MetricSpend       MetricKey = "spend"
	MetricSales       MetricKey = "sales"
	MetricAcos        MetricKey = "acos"
	MetricCTR         MetricKey = "ctr"
	MetricCVR         MetricKey = "cvr"
	MetricCPC         MetricKey = "cpc"
	MetricROAS        MetricKey = "roas"
	MetricRPC         MetricKey = "rpc"
)

// MetricKeys lista as métricas na ordem em que aparecem nos cards do dashboard
var MetricKeys = []MetricKey{
	MetricImpressions,
	MetricClicks,
	MetricOrders,
	MetricUnits,
	MetricSpend,
	MetricSales,
	MetricAcos,
	MetricCTR,
	MetricCVR,
	MetricCPC,
	MetricROAS,
	MetricRPC,
}

func (k MetricKey) IsValid() bool {
	for _, key := range MetricKeys {
		if key == k {
			return true
		}
	}
	return false
}

type MetricValues map[MetricKey]float64

type MetricSummary struct {
	Current  MetricValues         `json:"current"`
	Previous MetricValues         `json:"previous"`
	Changes  map[MetricKey]string `json:"changes"`
	// Formatted traz os valores atuais prontos para os cards
	Formatted map[MetricKey]string `json:"formatted,omitempty"`
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

type CampaignPerformance struct {
	CampaignID   string  `json:"campaignId"`
	CampaignName string  `json:"campaignName"`
	AdType       string  `json:"adType"`
	State        string  `json:"state"`
	Impressions  int     `json:"impressions"`
	Clicks       int     `json:"clicks"`
	Orders       int     `json:"orders"`
	Spend        float64 `json:"spend"`
	Sales        float64 `json:"sales"`
	Acos         float64 `json:"acos"`
}

type BidOptimizerData struct {
	Summary          MetricSummary         `json:"summary"`
	DailyPerformance []DailyPerformance    `json:"dailyPerformance"`
	Campaigns        []CampaignPerformance `json:"campaigns"`
}

type BidOptimizerQuery struct {
	ProfileID string
	StartDate time.Time
	EndDate   time.Time
	Filters   filters.APIFilters
}
