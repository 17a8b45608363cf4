package buffclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vfg2006/buff-dashboard-api/infrastructure/integrator/buff/buffdomain"
	"github.com/vfg2006/buff-dashboard-api/internal/domain"
)

func campaignGroupPath(groupID string) string {
	return "/campaign-groups/" + url.PathEscape(groupID)
}

func userQuery(userID string) url.Values {
	query := url.Values{}
	query.Set("user_id", userID)
	return query
}

func (c *BuffClient) ListCampaignGroups(ctx context.Context, userID, profileID string) (*domain.CampaignGroupList, error) {
	query := userQuery(userID)
	if profileID != "" {
		query.Set("profile_id", profileID)
	}

	var response buffdomain.CampaignGroupList
	if err := c.do(ctx, "fetch campaign groups", http.MethodGet, c.endpoint("/campaign-groups", query), nil, &response); err != nil {
		return nil, err
	}

	return response.ToDomain(), nil
}

func (c *BuffClient) CreateCampaignGroup(ctx context.Context, userID string, form domain.CampaignGroupForm) (*domain.CampaignGroup, error) {
	var response buffdomain.CampaignGroup
	body := buffdomain.FromCampaignGroupForm(form)

	if err := c.do(ctx, "create campaign group", http.MethodPost, c.endpoint("/campaign-groups", userQuery(userID)), body, &response); err != nil {
		return nil, err
	}

	group := response.ToDomain()
	return &group, nil
}

func (c *BuffClient) UpdateCampaignGroup(ctx context.Context, userID, groupID string, patch domain.CampaignGroupPatch) (*domain.CampaignGroup, error) {
	var response buffdomain.CampaignGroup
	body := buffdomain.FromCampaignGroupPatch(patch)

	if err := c.do(ctx, "update campaign group", http.MethodPut, c.endpoint(campaignGroupPath(groupID), userQuery(userID)), body, &response); err != nil {
		return nil, err
	}

	group := response.ToDomain()
	return &group, nil
}

func (c *BuffClient) DeleteCampaignGroup(ctx context.Context, userID, groupID string) error {
	return c.do(ctx, "delete campaign group", http.MethodDelete, c.endpoint(campaignGroupPath(groupID), userQuery(userID)), nil, nil)
}

func (c *BuffClient) AssignCampaigns(ctx context.Context, userID, groupID string, campaignIDs []string) error {
	body := buffdomain.AssignCampaignsRequest{CampaignIDs: campaignIDs}
	if body.CampaignIDs == nil {
		body.CampaignIDs = []string{}
	}

	return c.do(ctx, "assign campaigns", http.MethodPost, c.endpoint(campaignGroupPath(groupID)+"/campaigns", userQuery(userID)), body, nil)
}

// RemoveCampaigns envia os ids como parâmetros repetidos: campaign_ids=a&campaign_ids=b
func (c *BuffClient) RemoveCampaigns(ctx context.Context, userID, groupID string, campaignIDs []string) error {
	query := userQuery(userID)
	for _, id := range campaignIDs {
		query.Add("campaign_ids", id)
	}

	return c.do(ctx, "remove campaigns", http.MethodDelete, c.endpoint(campaignGroupPath(groupID)+"/campaigns", query), nil, nil)
}
