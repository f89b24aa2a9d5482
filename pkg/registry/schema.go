package registry

// VocabularyRegistry holds the fixed keyword sets and entity vocabularies
// driving intent classification and entity extraction. It is constructed
// once at startup and never mutated afterwards.
type VocabularyRegistry struct {
	Version  string             `json:"version"`
	Keywords KeywordSets        `json:"keywords"`
	Entities EntityVocabularies `json:"entities"`
}

// KeywordSets lists the keywords of each intent. Field order here is the
// fixed enumeration order used to break classification ties.
type KeywordSets struct {
	Inventory      []string `json:"inventory"`
	Price          []string `json:"price"`
	Specs          []string `json:"specs"`
	Recommendation []string `json:"recommendation"`
	Greeting       []string `json:"greeting"`
}

// EntityVocabularies lists the three entity families scanned in fixed
// order: brands, then product terms, then category terms.
type EntityVocabularies struct {
	Brands     []string `json:"brands"`
	Products   []string `json:"products"`
	Categories []string `json:"categories"`
}
