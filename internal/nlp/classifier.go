package nlp

import (
	"strings"

	"makers-assistant/internal/common/logger"
	"makers-assistant/pkg/registry"
)

// Classifier turns a raw user message into an Intent using fixed keyword
// sets and entity vocabularies. It holds no mutable state and is safe for
// concurrent use.
type Classifier struct {
	vocab   *registry.VocabularyRegistry
	matcher Matcher
	logger  logger.Logger
}

func NewClassifier(vocab *registry.VocabularyRegistry, matcher Matcher, log logger.Logger) *Classifier {
	return &Classifier{
		vocab:   vocab,
		matcher: matcher,
		logger:  log.WithFields(map[string]interface{}{"component": "classifier"}),
	}
}

// Normalize lowercases the raw message. This is the only preprocessing
// applied before classification and extraction.
func Normalize(message string) string {
	return strings.ToLower(message)
}

// Classify runs the full pipeline: normalize, detect the intent, extract
// entities and compute the confidence score.
func (c *Classifier) Classify(message string) Intent {
	normalized := Normalize(message)

	intentType := c.detectIntent(normalized)
	entities := c.extractEntities(normalized)
	confidence := c.calculateConfidence(normalized, intentType)

	c.logger.Debug("message classified", map[string]interface{}{
		"intent":      string(intentType),
		"entityCount": len(entities),
		"confidence":  confidence,
	})

	return Intent{
		Type:       intentType,
		Entities:   entities,
		Confidence: confidence,
	}
}

// orderedKeywordSets returns the keyword sets in the fixed enumeration
// order used to break ties: the first set reaching the best score wins,
// because only a strictly greater score replaces the current winner.
func (c *Classifier) orderedKeywordSets() []struct {
	intent   IntentType
	keywords []string
} {
	return []struct {
		intent   IntentType
		keywords []string
	}{
		{IntentInventory, c.vocab.Keywords.Inventory},
		{IntentPrice, c.vocab.Keywords.Price},
		{IntentSpecs, c.vocab.Keywords.Specs},
		{IntentRecommendation, c.vocab.Keywords.Recommendation},
		{IntentGreeting, c.vocab.Keywords.Greeting},
	}
}

func (c *Classifier) detectIntent(message string) IntentType {
	maxScore := 0
	detected := IntentUnknown

	for _, set := range c.orderedKeywordSets() {
		score := c.countMatches(message, set.keywords)
		if score > maxScore {
			maxScore = score
			detected = set.intent
		}
	}

	return detected
}

// extractEntities scans the three vocabularies in fixed order: brands,
// then product terms, then category terms. Each entry is emitted at most
// once, in vocabulary order, regardless of word order in the message.
func (c *Classifier) extractEntities(message string) []string {
	found := []string{}

	for _, brand := range c.vocab.Entities.Brands {
		if c.matcher.Matches(message, brand) {
			found = append(found, brand)
		}
	}
	for _, product := range c.vocab.Entities.Products {
		if c.matcher.Matches(message, product) {
			found = append(found, product)
		}
	}
	for _, category := range c.vocab.Entities.Categories {
		if c.matcher.Matches(message, category) {
			found = append(found, category)
		}
	}

	return found
}

// calculateConfidence recounts the winning set's keyword matches and maps
// them into [0.3, 0.9]; unknown is pinned at 0.1.
func (c *Classifier) calculateConfidence(message string, intentType IntentType) float64 {
	if intentType == IntentUnknown {
		return 0.1
	}

	var keywords []string
	for _, set := range c.orderedKeywordSets() {
		if set.intent == intentType {
			keywords = set.keywords
			break
		}
	}

	matches := c.countMatches(message, keywords)

	confidence := 0.3 + float64(matches)*0.2
	if confidence > 0.9 {
		confidence = 0.9
	}
	return confidence
}

func (c *Classifier) countMatches(message string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if c.matcher.Matches(message, keyword) {
			count++
		}
	}
	return count
}
