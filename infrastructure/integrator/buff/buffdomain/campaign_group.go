package buffdomain

import "github.com/vfg2006/buff-dashboard-api/internal/domain"

type CampaignGroup struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	TargetAcos float64  `json:"target_acos"`
	PresetGoal string   `json:"preset_goal"`
	BidCeiling *float64 `json:"bid_ceiling"`
	BidFloor   *float64 `json:"bid_floor"`
	Campaigns  []string `json:"campaigns"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type CampaignGroupList struct {
	Groups                   []CampaignGroup `json:"groups"`
	UnassignedCampaignsCount int             `json:"unassigned_campaigns_count"`
}

type CampaignGroupForm struct {
	Name       string   `json:"name"`
	TargetAcos float64  `json:"target_acos"`
	PresetGoal string   `json:"preset_goal"`
	BidCeiling *float64 `json:"bid_ceiling,omitempty"`
	BidFloor   *float64 `json:"bid_floor,omitempty"`
	ProfileID  string   `json:"profile_id,omitempty"`
	Campaigns  []string `json:"campaigns,omitempty"`
}

type CampaignGroupPatch struct {
	Name       *string  `json:"name,omitempty"`
	TargetAcos *float64 `json:"target_acos,omitempty"`
	PresetGoal *string  `json:"preset_goal,omitempty"`
	BidCeiling *float64 `json:"bid_ceiling,omitempty"`
	BidFloor   *float64 `json:"bid_floor,omitempty"`
}

type AssignCampaignsRequest struct {
	CampaignIDs []string `json:"campaign_ids"`
}

func (g CampaignGroup) ToDomain() domain.CampaignGroup {
	campaigns := g.Campaigns
	if campaigns == nil {
		campaigns = []string{}
	}

	return domain.CampaignGroup{
		ID:         g.ID,
		Name:       g.Name,
		TargetAcos: g.TargetAcos,
		PresetGoal: domain.PresetGoal(g.PresetGoal),
		BidCeiling: g.BidCeiling,
		BidFloor:   g.BidFloor,
		Campaigns:  campaigns,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

func (l CampaignGroupList) ToDomain() *domain.CampaignGroupList {
	groups := make([]domain.CampaignGroup, 0, len(l.Groups))
	for _, g := range l.Groups {
		groups = append(groups, g.ToDomain())
	}

	return &domain.CampaignGroupList{
		Groups:                   groups,
		UnassignedCampaignsCount: l.UnassignedCampaignsCount,
	}
}

func FromCampaignGroupForm(form domain.CampaignGroupForm) CampaignGroupForm {
	return CampaignGroupForm{
		Name:       form.Name,
		TargetAcos: form.TargetAcos,
		PresetGoal: string(form.PresetGoal),
		BidCeiling: form.BidCeiling,
		BidFloor:   form.BidFloor,
		ProfileID:  form.ProfileID,
		Campaigns:  form.Campaigns,
	}
}

func FromCampaignGroupPatch(patch domain.CampaignGroupPatch) CampaignGroupPatch {
	out := CampaignGroupPatch{
		Name:       patch.Name,
		TargetAcos: patch.TargetAcos,
		BidCeiling: patch.BidCeiling,
		BidFloor:   patch.BidFloor,
	}

	if patch.PresetGoal != nil {
		goal := string(*patch.PresetGoal)
		out.PresetGoal = &goal
	}

	return out
}
