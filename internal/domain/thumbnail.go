package domain

type ThumbnailSource string

const (
	ThumbnailExisting    ThumbnailSource = "existing"
	ThumbnailDrive       ThumbnailSource = "drive"
	ThumbnailFrame       ThumbnailSource = "frame"
	ThumbnailCache       ThumbnailSource = "cache"
	ThumbnailPlaceholder ThumbnailSource = "placeholder"
)

type Thumbnail struct {
	URL    string          `json:"url"`
	Source ThumbnailSource `json:"source"`
}
