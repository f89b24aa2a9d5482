package chat

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"makers-assistant/internal/catalog"
	"makers-assistant/internal/common/logger"
	"makers-assistant/internal/nlp"
	"makers-assistant/pkg/registry"
)

// Engine answers free-text questions about the catalog. Every path ends in
// a well-formed Response; nonsense degrades to the unknown-intent fallback.
type Engine struct {
	catalog    catalog.Provider
	classifier *nlp.Classifier
	vocab      *registry.VocabularyRegistry
	pick       func(n int) int
	logger     logger.Logger
}

// NewEngine builds an Engine with a time-seeded random source for the
// rotating lead lines.
func NewEngine(provider catalog.Provider, classifier *nlp.Classifier, vocab *registry.VocabularyRegistry, log logger.Logger) *Engine {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewEngineWithRandom(provider, classifier, vocab, rng.Intn, log)
}

// NewEngineWithRandom injects the random index picker so tests can pin the
// chosen lead line.
func NewEngineWithRandom(provider catalog.Provider, classifier *nlp.Classifier, vocab *registry.VocabularyRegistry, pick func(n int) int, log logger.Logger) *Engine {
	return &Engine{
		catalog:    provider,
		classifier: classifier,
		vocab:      vocab,
		pick:       pick,
		logger:     log.WithFields(map[string]interface{}{"component": "chat-engine"}),
	}
}

// Classify exposes the query-understanding half of the pipeline.
func (e *Engine) Classify(message string) nlp.Intent {
	return e.classifier.Classify(message)
}

// Answer classifies the message and dispatches to the builder for the
// winning intent.
func (e *Engine) Answer(message string) (Response, nlp.Intent) {
	intent := e.classifier.Classify(message)

	e.logger.Info("answering message", map[string]interface{}{
		"intent":     string(intent.Type),
		"entities":   intent.Entities,
		"confidence": intent.Confidence,
	})

	var resp Response
	switch intent.Type {
	case nlp.IntentGreeting:
		resp = e.buildGreetingResponse()
	case nlp.IntentInventory:
		resp = e.buildInventoryResponse(intent.Entities)
	case nlp.IntentPrice:
		resp = e.buildPriceResponse(intent.Entities)
	case nlp.IntentSpecs:
		resp = e.buildSpecsResponse(intent.Entities)
	case nlp.IntentRecommendation:
		resp = e.buildRecommendationResponse()
	default:
		resp = e.buildUnknownResponse()
	}

	return resp, intent
}

// pickLine selects one of the rotating lead lines.
func (e *Engine) pickLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[e.pick(len(lines))]
}

// dedupeByID removes duplicate products keeping the first occurrence.
func dedupeByID(products []catalog.Product) []catalog.Product {
	seen := make(map[string]bool, len(products))
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

// formatPrice renders a price with thousands separators, e.g. 1299 -> "1,299".
func formatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// formatRating renders a rating without trailing zeros, e.g. 4.5 -> "4.5", 4 -> "4".
func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}
