package buffclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/buff-dashboard-api/infrastructure/integrator/buff/buffdomain"
	"github.com/vfg2006/buff-dashboard-api/internal/domain"
)

func (c *BuffClient) GetAmazonConnectionStatus(ctx context.Context, userID string) (*domain.ConnectionStatus, error) {
	var response buffdomain.ConnectionStatus
	if err := c.do(ctx, "fetch connection status", http.MethodGet, c.endpoint("/connections/amazon-ads/status", userQuery(userID)), nil, &response); err != nil {
		return nil, err
	}

	return response.ToDomain(), nil
}
