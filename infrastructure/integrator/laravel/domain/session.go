package domain

import (
	"fmt"
	"net/http"
)

// Session carrega as credenciais do navegador repassadas para a API Laravel.
type Session struct {
	Cookies   []*http.Cookie
	XSRFToken string
	// BearerToken é usado pelos jobs internos, que não têm cookie de navegador
	BearerToken string
}

// IsZero indica que nenhuma credencial foi informada.
func (s Session) IsZero() bool {
	return len(s.Cookies) == 0 && s.XSRFToken == "" && s.BearerToken == ""
}

// WithCookies devolve uma cópia da sessão acrescida dos cookies informados.
func (s Session) WithCookies(cookies []*http.Cookie) Session {
	merged := make([]*http.Cookie, 0, len(s.Cookies)+len(cookies))
	index := make(map[string]int)
	for _, c := range append(append([]*http.Cookie{}, s.Cookies...), cookies...) {
		if i, ok := index[c.Name]; ok {
			merged[i] = c
			continue
		}
		index[c.Name] = len(merged)
		merged = append(merged, c)
	}
	s.Cookies = merged
	return s
}

// APIError é uma resposta não 2xx da API Laravel.
type APIError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api laravel %s respondeu com status %d", e.Endpoint, e.Status)
}

func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == 419
}

func (e *APIError) NotFound() bool {
	return e.Status == http.StatusNotFound
}
