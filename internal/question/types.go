package question

// OptionCount is the number of answer choices every question carries.
const OptionCount = 4

// Spec defines the question set schema loaded from JSON or YAML.
type Spec struct {
	Version   int        `json:"version" yaml:"version" validate:"required,eq=1"`
	Questions []Question `json:"questions" yaml:"questions" validate:"required,min=1,dive"`
}

// Question is a single multiple-choice prompt.
type Question struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt       string   `json:"question" yaml:"question" validate:"required"`
	Options      []string `json:"options" yaml:"options" validate:"len=4,unique,dive,required"`
	CorrectIndex int      `json:"correct_option" yaml:"correct_option" validate:"min=0,max=3"`
	Points       int      `json:"points" yaml:"points" validate:"min=0"`
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// Clone returns a copy that shares no slices with q.
func (q Question) Clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}

// MaxScore sums the points of every question.
func MaxScore(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += q.Points
	}
	return total
}
