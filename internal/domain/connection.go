package domain

type AmazonAdsProfile struct {
	ID            string `json:"id"`
	ProfileID     string `json:"profileId"`
	AccountName   string `json:"accountName"`
	AccountType   string `json:"accountType"`
	CountryCode   string `json:"countryCode"`
	CurrencyCode  string `json:"currencyCode"`
	MarketplaceID string `json:"marketplaceId"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type ConnectionStatus struct {
	Connected bool               `json:"connected"`
	Profiles  []AmazonAdsProfile `json:"profiles"`
}
