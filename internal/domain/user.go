package domain

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// User é o usuário autenticado devolvido por /api/user.
type User struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Avatar *string `json:"avatar,omitempty"`
}

// Claims é o conteúdo do cookie de sessão emitido após a sondagem na API Laravel.
type Claims struct {
	UserID    int     `json:"user_id"`
	UserName  string  `json:"user_name"`
	UserEmail string  `json:"user_email"`
	Avatar    *string `json:"avatar,omitempty"`
	// SessionHash amarra o token aos cookies Laravel que originaram a sondagem
	SessionHash string `json:"sid"`
	jwt.RegisteredClaims
}

// ViewerKey identifica o perfil dono dos favoritos e do estado de navegação.
func (c *Claims) ViewerKey() string {
	if c == nil {
		return ""
	}
	return strconv.Itoa(c.UserID)
}

// User reconstrói o usuário a partir das claims.
func (c *Claims) User() *User {
	if c == nil {
		return nil
	}
	return &User{ID: c.UserID, Name: c.UserName, Email: c.UserEmail, Avatar: c.Avatar}
}
