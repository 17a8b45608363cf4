// Package filters converte as condições de filtro montadas na tabela do dashboard
// no formato de query esperado pela API do Buff.
package filters

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Column string

const (
	ColumnAdType       Column = "adType"
	ColumnState        Column = "state"
	ColumnCampaignName Column = "campaignName"
	ColumnImpressions  Column = "impressions"
	ColumnClicks       Column = "clicks"
	ColumnSpend        Column = "spend"
	ColumnSales        Column = "sales"
	ColumnAcos         Column = "acos"
)

type Operator string

const (
	OperatorIn          Operator = "in"
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "notEquals"
	OperatorContains    Operator = "contains"
	OperatorGreaterThan Operator = "greaterThan"
	OperatorLessThan    Operator = "lessThan"
	OperatorBetween     Operator = "between"
)

// Value é um valor selecionado na UI. EndValue só é usado pelo operador between.
type Value struct {
	Value    any `json:"value"`
	EndValue any `json:"endValue,omitempty"`
}

type Condition struct {
	Column   Column   `json:"column"`
	Operator Operator `json:"operator"`
	Values   []Value  `json:"values"`
}

type TextFilter struct {
	Operator Operator `json:"operator"`
	Value    string   `json:"value"`
}

type NumericFilter struct {
	Operator Operator `json:"operator"`
	Value    float64  `json:"value"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
}

// APIFilters é o formato aceito no parâmetro filters do endpoint do bid optimizer
type APIFilters struct {
	AdType       []string       `json:"adType,omitempty"`
	State        []string       `json:"state,omitempty"`
	CampaignName *TextFilter    `json:"campaignName,omitempty"`
	Impressions  *NumericFilter `json:"impressions,omitempty"`
	Clicks       *NumericFilter `json:"clicks,omitempty"`
	Spend        *NumericFilter `json:"spend,omitempty"`
	Sales        *NumericFilter `json:"sales,omitempty"`
	Acos         *NumericFilter `json:"acos,omitempty"`
}

func (f APIFilters) IsEmpty() bool {
	return len(f.AdType) == 0 && len(f.State) == 0 && f.CampaignName == nil &&
		f.Impressions == nil && f.Clicks == nil && f.Spend == nil && f.Sales == nil && f.Acos == nil
}

// Encode serializa os filtros para o parâmetro de query. Filtros vazios geram string vazia.
func (f APIFilters) Encode() (string, error) {
	if f.IsEmpty() {
		return "", nil
	}

	data, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("filters: erro ao serializar filtros: %w", err)
	}

	return string(data), nil
}

// ConvertToAPI converte as condições na ordem recebida. Colunas sem valores não
// são emitidas e colunas desconhecidas são ignoradas. Quando a mesma coluna
// aparece mais de uma vez, a última condição prevalece.
func ConvertToAPI(conditions []Condition) APIFilters {
	var out APIFilters

	for _, condition := range conditions {
		if len(condition.Values) == 0 {
			continue
		}

		switch condition.Column {
		case ColumnAdType:
			out.AdType = categoricalValues(condition.Values)
		case ColumnState:
			out.State = categoricalValues(condition.Values)
		case ColumnCampaignName:
			// Apenas o primeiro valor é considerado para o nome da campanha
			out.CampaignName = &TextFilter{
				Operator: condition.Operator,
				Value:    cast.ToString(condition.Values[0].Value),
			}
		case ColumnImpressions:
			out.Impressions = numericFilter(condition)
		case ColumnClicks:
			out.Clicks = numericFilter(condition)
		case ColumnSpend:
			out.Spend = numericFilter(condition)
		case ColumnSales:
			out.Sales = numericFilter(condition)
		case ColumnAcos:
			out.Acos = numericFilter(condition)
		default:
			logrus.WithField("column", condition.Column).Debug("filters: coluna desconhecida ignorada")
		}
	}

	return out
}

// ParseConditions decodifica a lista de condições enviada pela UI
func ParseConditions(raw string) ([]Condition, error) {
	if raw == "" {
		return nil, nil
	}

	var conditions []Condition
	if err := json.Unmarshal([]byte(raw), &conditions); err != nil {
		return nil, fmt.Errorf("filters: condições inválidas: %w", err)
	}

	return conditions, nil
}

func categoricalValues(values []Value) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v.Value == nil {
			continue
		}
		out = append(out, cast.ToString(v.Value))
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

func numericFilter(condition Condition) *NumericFilter {
	first := condition.Values[0]

	value, err := cast.ToFloat64E(first.Value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"column": condition.Column,
			"value":  first.Value,
		}).Warn("filters: valor numérico inválido, coluna ignorada")
		return nil
	}

	filter := &NumericFilter{
		Operator: condition.Operator,
		Value:    value,
	}

	if condition.Operator == OperatorBetween {
		filter.Min = &value

		if first.EndValue != nil {
			end, err := cast.ToFloat64E(first.EndValue)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"column":    condition.Column,
					"end_value": first.EndValue,
				}).Warn("filters: valor final inválido no intervalo")
			} else {
				filter.Max = &end
			}
		}
	}

	return filter
}
