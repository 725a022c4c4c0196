package domain

// CreativeStatus identifica o estágio de vida de um criativo.
type CreativeStatus string

const (
	StatusTestingCreative     CreativeStatus = "testing_creative"
	StatusSuperScaled         CreativeStatus = "super_scaled"
	StatusScaling             CreativeStatus = "scaling"
	StatusStartingToStandOut  CreativeStatus = "starting_to_stand_out"
	StatusNewlyAdded          CreativeStatus = "newly_added"
	StatusStagnant            CreativeStatus = "stagnant_creative"
	StatusScalingHorizontally CreativeStatus = "scaling_horizontally"
	StatusLosingPerformance   CreativeStatus = "losing_performance"
)

const (
	ColorYellow = "yellow"
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorPurple = "purple"
	ColorGray   = "gray"
	ColorCyan   = "cyan"
	ColorRed    = "red"
)

// StatusInfo é o descritor exibido no badge. Derivado, nunca persistido.
type StatusInfo struct {
	Status CreativeStatus `json:"status"`
	Label  string         `json:"label"`
	Rotulo string         `json:"rotulo"`
	Color  string         `json:"color"`
	Hot    bool           `json:"hot"`
}

// CreativePerformance é a linha da tabela de criativos do dashboard.
type CreativePerformance struct {
	Name       string     `json:"name"`
	Value      int        `json:"value"`
	Status     StatusInfo `json:"status"`
	CreativeID *int       `json:"creative_id"`
	URL        string     `json:"url,omitempty"`
	Image      string     `json:"image,omitempty"`
	Platform   string     `json:"platform,omitempty"`
	Language   string     `json:"language,omitempty"`
}
