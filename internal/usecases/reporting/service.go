package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/buff-dashboard-api/internal/domain"
	"github.com/vfg2006/buff-dashboard-api/pkg/filters"
	"github.com/vfg2006/buff-dashboard-api/pkg/log"
	"github.com/vfg2006/buff-dashboard-api/pkg/utils"
)

var (
	ErrProfileRequired  = errors.New("profile_id is required")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start_date must not be after end_date")
)

// Source entrega os dados do bid optimizer. Implementada pelo cliente do Buff e pelo MockSource.
type Source interface {
	GetBidOptimizerData(ctx context.Context, query domain.BidOptimizerQuery) (*domain.BidOptimizerData, error)
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Report valida o período, converte os filtros e busca os dados. Quando a
// origem não devolve as variações elas são calculadas a partir do resumo.
func (s *Service) Report(ctx context.Context, profileID, startDate, endDate string, conditions []filters.Condition) (*domain.BidOptimizerData, error) {
	if profileID == "" {
		return nil, ErrProfileRequired
	}

	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	query := domain.BidOptimizerQuery{
		ProfileID: profileID,
		StartDate: start,
		EndDate:   end,
		Filters:   filters.ConvertToAPI(conditions),
	}

	data, err := s.source.GetBidOptimizerData(ctx, query)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: erro ao buscar dados do bid optimizer")
		return nil, err
	}

	if len(data.Summary.Changes) == 0 {
		data.Summary.Changes = ComputeChanges(data.Summary.Current, data.Summary.Previous)
	}
	data.Summary.Formatted = FormatValues(data.Summary.Current)

	return data, nil
}

// parseRange usa os últimos 30 dias quando as datas não são informadas
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, startDate)
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, endDate)
	}

	if end.IsZero() {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		end = &today
	}
	if start.IsZero() {
		from := end.AddDate(0, 0, -29)
		start = &from
	}

	if start.After(*end) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	return *start, *end, nil
}
