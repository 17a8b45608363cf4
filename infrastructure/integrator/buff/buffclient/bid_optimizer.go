package buffclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/vfg2006/buff-dashboard-api/infrastructure/integrator/buff/buffdomain"
	"github.com/vfg2006/buff-dashboard-api/internal/domain"
	"github.com/vfg2006/buff-dashboard-api/pkg/utils"
)

func (c *BuffClient) GetBidOptimizerData(ctx context.Context, query domain.BidOptimizerQuery) (*domain.BidOptimizerData, error) {
	params := url.Values{}
	params.Set("profile_id", query.ProfileID)
	params.Set("start_date", utils.FormatDate(query.StartDate))
	params.Set("end_date", utils.FormatDate(query.EndDate))

	encoded, err := query.Filters.Encode()
	if err != nil {
		return nil, errors.Wrap(err, "fetch bid optimizer data: erro ao serializar filtros")
	}
	if encoded != "" {
		params.Set("filters", encoded)
	}

	var response buffdomain.BidOptimizerResponse
	if err := c.do(ctx, "fetch bid optimizer data", http.MethodGet, c.endpoint("/bid-optimizer", params), nil, &response); err != nil {
		return nil, err
	}

	return response.ToDomain(), nil
}
