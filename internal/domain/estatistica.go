package domain

import "fmt"

type EstatisticaItem struct {
	Day   string `json:"day"`
	Date  string `json:"date"`
	Value int    `json:"value"`
}

type Estatisticas struct {
	SevenDays   []EstatisticaItem `json:"7days"`
	FifteenDays []EstatisticaItem `json:"15days"`
	ThirtyDays  []EstatisticaItem `json:"30days"`
}

// Period é a janela selecionada no gráfico de espionagem.
type Period string

const (
	Period7Days  Period = "7dias"
	Period15Days Period = "15dias"
	Period30Days Period = "30dias"
)

// ParsePeriod aceita tanto "7dias" quanto "7days"; vazio vira 7 dias.
func ParsePeriod(raw string) (Period, error) {
	switch raw {
	case "", "7dias", "7days":
		return Period7Days, nil
	case "15dias", "15days":
		return Period15Days, nil
	case "30dias", "30days":
		return Period30Days, nil
	}
	return "", fmt.Errorf("invalid period %q", raw)
}

// Series devolve a série do período.
func (e Estatisticas) Series(p Period) []EstatisticaItem {
	switch p {
	case Period15Days:
		return e.FifteenDays
	case Period30Days:
		return e.ThirtyDays
	default:
		return e.SevenDays
	}
}
