package reporting

import (
	"fmt"
	"math"

	"github.com/vfg2006/buff-dashboard-api/internal/domain"
	"github.com/vfg2006/buff-dashboard-api/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ComputeChanges gera a variação percentual com sinal de cada métrica atual.
// Sem valor anterior a variação é "0.0%".
func ComputeChanges(current, previous domain.MetricValues) map[domain.MetricKey]string {
	changes := make(map[domain.MetricKey]string, len(current))

	for _, key := range domain.MetricKeys {
		value, ok := current[key]
		if !ok {
			continue
		}
		changes[key] = formatChange(value, previous[key])
	}

	return changes
}

func formatChange(current, previous float64) string {
	change := utils.PercentChange(current, previous)
	if change == 0 {
		return "0.0%"
	}

	return fmt.Sprintf("%+.1f%%", change)
}

// FormatMetric formata o valor como é exibido nos cards
func FormatMetric(key domain.MetricKey, value float64) string {
	switch key {
	case domain.MetricSpend, domain.MetricSales, domain.MetricCPC, domain.MetricRPC:
		if value < 0 {
			return printer.Sprintf("-$%.2f", -utils.RoundWithTwoDecimalPlace(value))
		}
		return printer.Sprintf("$%.2f", utils.RoundWithTwoDecimalPlace(value))
	case domain.MetricAcos, domain.MetricCTR, domain.MetricCVR:
		return printer.Sprintf("%.2f%%", value)
	case domain.MetricROAS:
		return printer.Sprintf("%.2fx", value)
	default:
		return printer.Sprintf("%d", int64(math.Round(value)))
	}
}

func FormatValues(values domain.MetricValues) map[domain.MetricKey]string {
	formatted := make(map[domain.MetricKey]string, len(values))
	for key, value := range values {
		formatted[key] = FormatMetric(key, value)
	}
	return formatted
}

// Derive calcula as métricas derivadas a partir dos totais
func Derive(impressions, clicks, orders, units, spend, sales float64) domain.MetricValues {
	values := domain.MetricValues{
		domain.MetricImpressions: impressions,
		domain.MetricClicks:      clicks,
		domain.MetricOrders:      orders,
		domain.MetricUnits:       units,
		domain.MetricSpend:       utils.RoundWithTwoDecimalPlace(spend),
		domain.MetricSales:       utils.RoundWithTwoDecimalPlace(sales),
	}

	values[domain.MetricAcos] = ratio(spend*100, sales)
	values[domain.MetricCTR] = ratio(clicks*100, impressions)
	values[domain.MetricCVR] = ratio(orders*100, clicks)
	values[domain.MetricCPC] = ratio(spend, clicks)
	values[domain.MetricROAS] = ratio(sales, spend)
	values[domain.MetricRPC] = ratio(sales, clicks)

	return values
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(a / b)
}
