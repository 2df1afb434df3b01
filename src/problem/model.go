package problem

// Difficulty is the display label of a problem's difficulty.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "Easy"
	DifficultyMedium  Difficulty = "Medium"
	DifficultyHard    Difficulty = "Hard"
	DifficultyUnknown Difficulty = "Unknown"
)

// DifficultyFromCode maps the numeric code sent by the problem service.
func DifficultyFromCode(code int) Difficulty {
	switch code {
	case 1:
		return DifficultyEasy
	case 2:
		return DifficultyMedium
	case 3:
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

// Problem is the statement currently shown in the workspace. It is replaced
// wholesale on every fetch. Description is kept as the service sent it,
// markup included.
type Problem struct {
	Title       string     `json:"title"`
	Difficulty  Difficulty `json:"difficulty"`
	Description string     `json:"description"`
	Constraints []string   `json:"constraints"`
	Examples    []Example  `json:"examples"`
}

// Example is one worked input/output pair. ImageURL is empty when the
// service returned no image for its position.
type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Clone returns a deep copy so callers never share slices with the store.
func (p Problem) Clone() Problem {
	out := p
	if p.Constraints != nil {
		out.Constraints = append([]string(nil), p.Constraints...)
	}
	if p.Examples != nil {
		out.Examples = append([]Example(nil), p.Examples...)
	}
	return out
}

// PairImages attaches imageURLs[i] to examples[i] for every index both
// sequences share. Empty URLs are skipped.
func PairImages(examples []Example, imageURLs []string) []Example {
	out := append([]Example(nil), examples...)
	for i := range out {
		if i >= len(imageURLs) {
			break
		}
		if imageURLs[i] != "" {
			out[i].ImageURL = imageURLs[i]
		}
	}
	return out
}

// DefaultAnalysis is shown in the feedback view before any submission.
const DefaultAnalysis = "Submit your approach to get a response."

// FeedbackResult is the scoring service's verdict on a submission.
type FeedbackResult struct {
	Analysis    string   `json:"analysis"`
	Suggestions []string `json:"suggestions"`
	Score       int      `json:"score"`
}

// DefaultFeedback is the "not yet submitted" result.
func DefaultFeedback() FeedbackResult {
	return FeedbackResult{
		Analysis:    DefaultAnalysis,
		Suggestions: []string{},
		Score:       0,
	}
}

// Submitted reports whether r came from the scoring service.
func (r FeedbackResult) Submitted() bool { return r.Score != 0 }

// ProblemData is the subset of a Problem sent along with a submission.
type ProblemData struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Constraints []string  `json:"constraints"`
	Examples    []Example `json:"examples"`
}

// FeedbackRequest is the body posted to the feedback endpoint.
type FeedbackRequest struct {
	ProblemData    ProblemData `json:"problem_data"`
	UserSubmission string      `json:"user_submission"`
}

// NewFeedbackRequest assembles a request from the displayed problem and the
// editor contents.
func NewFeedbackRequest(p Problem, submission string) FeedbackRequest {
	constraints := make([]string, len(p.Constraints))
	copy(constraints, p.Constraints)
	examples := make([]Example, len(p.Examples))
	copy(examples, p.Examples)
	return FeedbackRequest{
		ProblemData: ProblemData{
			Title:       p.Title,
			Description: p.Description,
			Constraints: constraints,
			Examples:    examples,
		},
		UserSubmission: submission,
	}
}
