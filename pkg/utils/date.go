package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos enviados pela API Laravel (Carbon serializado, datetime do MySQL e data pura)
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp aceita os formatos de data da API; vazio devolve nil sem erro.
func ParseTimestamp(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("formato de data não reconhecido: %q", value)
}
