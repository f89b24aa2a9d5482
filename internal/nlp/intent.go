package nlp

// IntentType is the classified purpose of one user message.
type IntentType string

const (
	IntentInventory      IntentType = "inventory"
	IntentPrice          IntentType = "price"
	IntentSpecs          IntentType = "specs"
	IntentRecommendation IntentType = "recommendation"
	IntentGreeting       IntentType = "greeting"
	IntentUnknown        IntentType = "unknown"
)

// Intent is the result of processing one user message: the winning intent
// tag, the recognized entities in vocabulary scan order, and a heuristic
// confidence in [0.1, 0.9].
type Intent struct {
	Type       IntentType `json:"type"`
	Entities   []string   `json:"entities"`
	Confidence float64    `json:"confidence"`
}
