package domain

import "time"

// Activity categories.
const (
	CategoryRelaxation       = "RELAXATION"
	CategoryPhysicalHealth   = "PHYSICAL_HEALTH"
	CategoryProductivity     = "PRODUCTIVITY"
	CategorySelfEsteem       = "SELF_ESTEEM"
	CategorySocialConnection = "SOCIAL_CONNECTION"
)

// Difficulty levels.
const (
	DifficultyBeginner     = "BEGINNER"
	DifficultyIntermediate = "INTERMEDIATE"
	DifficultyAdvanced     = "ADVANCED"
	DifficultyExpert       = "EXPERT"
)

// Catalog row states. Deleted rows stay in storage and are filtered from listings.
const (
	ActivityStatusActive  = "ACTIVE"
	ActivityStatusDeleted = "DELETED"
)

// Activity is one entry of the wellness activity catalog. The catalog is
// read-only from the public API and fed by seed tooling.
type Activity struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Duration        int       `json:"duration"`
	DifficultyLevel string    `json:"difficulty_level"`
	Content         string    `json:"content"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (a *Activity) IsDeleted() bool {
	return a != nil && a.Status == ActivityStatusDeleted
}
