package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultIDSize é suficiente para ids de vida curta, como notificações
const DefaultIDSize = 12

// GenerateID gera um id alfanumérico; size menor que 1 usa DefaultIDSize
func GenerateID(size int) (string, error) {
	if size < 1 {
		size = DefaultIDSize
	}
	return gonanoid.Generate(characters, size)
}
