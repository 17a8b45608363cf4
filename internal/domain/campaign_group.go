package domain

type PresetGoal string

const (
	PresetGoalProfit   PresetGoal = "profit"
	PresetGoalBalanced PresetGoal = "balanced"
	PresetGoalGrowth   PresetGoal = "growth"
	PresetGoalCustom   PresetGoal = "custom"
)

var presetGoals = map[PresetGoal]struct{}{
	PresetGoalProfit:   {},
	PresetGoalBalanced: {},
	PresetGoalGrowth:   {},
	PresetGoalCustom:   {},
}

func (g PresetGoal) IsValid() bool {
	_, ok := presetGoals[g]
	return ok
}

// CampaignGroup é a representação do grupo como o backend a devolve. CreatedAt e
// UpdatedAt são atribuídos pelo servidor e nunca são alterados localmente.
type CampaignGroup struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	TargetAcos float64    `json:"targetAcos"`
	PresetGoal PresetGoal `json:"presetGoal"`
	BidCeiling *float64   `json:"bidCeiling,omitempty"`
	BidFloor   *float64   `json:"bidFloor,omitempty"`
	Campaigns  []string   `json:"campaigns"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
}

// HasCampaign informa se a campanha pertence ao grupo
func (g *CampaignGroup) HasCampaign(campaignID string) bool {
	for _, id := range g.Campaigns {
		if id == campaignID {
			return true
		}
	}
	return false
}

type CampaignGroupForm struct {
	Name       string     `json:"name"`
	TargetAcos float64    `json:"targetAcos"`
	PresetGoal PresetGoal `json:"presetGoal"`
	BidCeiling *float64   `json:"bidCeiling,omitempty"`
	BidFloor   *float64   `json:"bidFloor,omitempty"`
	ProfileID  string     `json:"profileId,omitempty"`
	Campaigns  []string   `json:"campaigns,omitempty"`
}

// CampaignGroupPatch carrega apenas os campos que devem ser alterados
type CampaignGroupPatch struct {
	Name       *string     `json:"name,omitempty"`
	TargetAcos *float64    `json:"targetAcos,omitempty"`
	PresetGoal *PresetGoal `json:"presetGoal,omitempty"`
	BidCeiling *float64    `json:"bidCeiling,omitempty"`
	BidFloor   *float64    `json:"bidFloor,omitempty"`
}

func (p CampaignGroupPatch) IsEmpty() bool {
	return p.Name == nil && p.TargetAcos == nil && p.PresetGoal == nil && p.BidCeiling == nil && p.BidFloor == nil
}

type CampaignGroupList struct {
	Groups                   []CampaignGroup `json:"groups"`
	UnassignedCampaignsCount int             `json:"unassignedCampaignsCount"`
}
