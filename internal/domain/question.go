package domain

// Category is one of the enumerated health topics a question belongs to.
type Category string

const (
	CategoryMetabolic        Category = "metabolic"
	CategoryCardiovascular   Category = "cardiovascular"
	CategoryRespiratory      Category = "respiratory"
	CategoryCancerPrevention Category = "cancer-prevention"
	CategoryBoneJoint        Category = "bone-joint"
	CategoryMentalHealth     Category = "mental-health"
	CategoryImmunity         Category = "immunity"
	CategorySkin             Category = "skin"
	CategoryDigestive        Category = "digestive"
	CategoryFitness          Category = "fitness"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryMetabolic,
		CategoryCardiovascular,
		CategoryRespiratory,
		CategoryCancerPrevention,
		CategoryBoneJoint,
		CategoryMentalHealth,
		CategoryImmunity,
		CategorySkin,
		CategoryDigestive,
		CategoryFitness,
	}
}

// Title returns a human readable name for the category.
func (c Category) Title() string {
	switch c {
	case CategoryMetabolic:
		return "Metabolic"
	case CategoryCardiovascular:
		return "Cardiovascular"
	case CategoryRespiratory:
		return "Respiratory"
	case CategoryCancerPrevention:
		return "Cancer Prevention"
	case CategoryBoneJoint:
		return "Bone & Joint"
	case CategoryMentalHealth:
		return "Mental Health"
	case CategoryImmunity:
		return "Immunity"
	case CategorySkin:
		return "Skin"
	case CategoryDigestive:
		return "Digestive"
	case CategoryFitness:
		return "Fitness"
	default:
		return string(c)
	}
}

// IsValid reports whether the category is one of the enumerated topics.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Question represents one multiple-choice quiz item in the bank.
type Question struct {
	ID           string   `json:"id"`
	Category     Category `json:"category"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// Validate validates the question against the bank invariants.
func (q *Question) Validate() error {
	if q.ID == "" {
		return NewInvalidInputError("question id is required")
	}
	if !q.Category.IsValid() {
		return NewInvalidCategoryError(string(q.Category))
	}
	if q.Prompt == "" {
		return NewInvalidInputError("question prompt is required")
	}
	if len(q.Options) < 2 {
		return NewInvalidInputError("question must have at least two options")
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if opt == "" {
			return NewInvalidInputError("question options must not be empty")
		}
		if _, dup := seen[opt]; dup {
			return NewInvalidInputError("question options must not contain duplicates")
		}
		seen[opt] = struct{}{}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return NewInvalidInputError("correct index is out of bounds")
	}
	return nil
}

// QuestionRepository defines the interface for question bank sources.
// The bank is loaded once and never mutated afterwards, so implementations
// are safe for concurrent read-only access.
type QuestionRepository interface {
	// GetAll returns the full ordered question bank.
	GetAll() ([]Question, error)

	// GetByCategory returns the bank entries belonging to one category.
	GetByCategory(category Category) ([]Question, error)
}
