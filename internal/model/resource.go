package model

// ResourceType is the format of a library resource
type ResourceType string

const (
	ResourceArticle  ResourceType = "article"
	ResourceVideo    ResourceType = "video"
	ResourceExercise ResourceType = "exercise"
	ResourceGuide    ResourceType = "guide"
)

// ResourceCategory is the topic of a library resource
type ResourceCategory string

const (
	CategoryStudy          ResourceCategory = "study"
	CategoryStress         ResourceCategory = "stress"
	CategoryMindfulness    ResourceCategory = "mindfulness"
	CategoryTimeManagement ResourceCategory = "time-management"
	CategorySelfCare       ResourceCategory = "self-care"
)

// Resource is an entry in the resource library
type Resource struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        ResourceType     `json:"type"`
	Category    ResourceCategory `json:"category"`
	Duration    string           `json:"duration"`
	Rating      float64          `json:"rating"`
	Downloads   int              `json:"downloads"`
	Author      string           `json:"author"`
	Tags        []string         `json:"tags"`
	Premium     bool             `json:"premium,omitempty"`
}
