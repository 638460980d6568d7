package entity

// SearchSource tags which knowledge table a result came from.
type SearchSource string

const (
	SourceFAQ      SearchSource = "FAQ"
	SourceText     SearchSource = "TEXT"
	SourceTraining SearchSource = "TRAINING"
)

// SearchResult is a ranked hit from the knowledge base. Exactly one of the
// typed references is set for a plain hit; Training plus Text together form
// an enriched composite.
type SearchResult struct {
	Source   SearchSource
	Id       int64
	Title    string
	Content  string
	Score    float64
	Faq      *Faq
	Text     *CourseText
	Training *Training
}

// SearchFilters narrows a multi-source search. A nil price bound is
// unbounded on that side; an empty Source searches everything.
type SearchFilters struct {
	Source     SearchSource
	MinPrice   *int
	MaxPrice   *int
	ActiveOnly bool
	Category   string
}

// QueryType is the coarse classification of an informational question.
type QueryType string

const (
	QueryTypeTrainer  QueryType = "TRAINER"
	QueryTypeGraduate QueryType = "GRADUATE"
	QueryTypeBootcamp QueryType = "BOOTCAMP"
	QueryTypePrice    QueryType = "PRICE"
	QueryTypeSchedule QueryType = "SCHEDULE"
	QueryTypeTraining QueryType = "TRAINING"
)

// Intent is the classified purpose of a single user message.
type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentContact  Intent = "contact"
	IntentConsult  Intent = "consult"
	IntentQuery    Intent = "query"
	IntentTrainer  Intent = "trainer"
	IntentUnclear  Intent = "unclear"
)

// IntentFromString coerces any label outside the fixed set to unclear.
func IntentFromString(s string) Intent {
	switch Intent(s) {
	case IntentGreeting, IntentContact, IntentConsult, IntentQuery, IntentTrainer, IntentUnclear:
		return Intent(s)
	default:
		return IntentUnclear
	}
}

// RecommendationProfile holds the five consultation answers collected during
// the consult flow, read back out of the session before scoring.
type RecommendationProfile struct {
	Experience string
	Interest   string
	Goal       string
	Time       string
	Budget     string
}
