package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera ids curtos para linhas importadas pelos scripts de migração.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateToken gera tokens de requisição usados para descartar análises obsoletas.
func GenerateToken() (string, error) {
	return gonanoid.Generate(characters, 16)
}
