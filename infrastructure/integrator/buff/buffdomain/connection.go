package buffdomain

import "github.com/vfg2006/buff-dashboard-api/internal/domain"

type Profile struct {
	ID            string `json:"id"`
	ProfileID     string `json:"profile_id"`
	AccountName   string `json:"account_name"`
	AccountType   string `json:"account_type"`
	CountryCode   string `json:"country_code"`
	CurrencyCode  string `json:"currency_code"`
	MarketplaceID string `json:"marketplace_id"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type ConnectionStatus struct {
	Connected bool      `json:"connected"`
	Profiles  []Profile `json:"profiles"`
}

func (p Profile) ToDomain() domain.AmazonAdsProfile {
	return domain.AmazonAdsProfile{
		ID:            p.ID,
		ProfileID:     p.ProfileID,
		AccountName:   p.AccountName,
		AccountType:   p.AccountType,
		CountryCode:   p.CountryCode,
		CurrencyCode:  p.CurrencyCode,
		MarketplaceID: p.MarketplaceID,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (s ConnectionStatus) ToDomain() *domain.ConnectionStatus {
	profiles := make([]domain.AmazonAdsProfile, 0, len(s.Profiles))
	for _, p := range s.Profiles {
		profiles = append(profiles, p.ToDomain())
	}

	return &domain.ConnectionStatus{
		Connected: s.Connected,
		Profiles:  profiles,
	}
}
