package utils

import "time"

// DateLayout é o formato de data trocado com a API do Buff e com o dashboard
const DateLayout = "2006-01-02"

// ParseDate devolve a data zero quando dateStr é vazio
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return &time.Time{}, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}
