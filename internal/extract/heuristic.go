package extract

import (
	"context"
	"strings"
	"unicode"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

// HeuristicTagger is the offline fallback when no NER inference service is
// configured. It scans capitalized spans, classifying against a place
// gazetteer and a list of organization markers. Accuracy is deliberately
// modest; the extractor contract accepts false positives.
type HeuristicTagger struct{}

var _ ports.EntityTagger = HeuristicTagger{}

var placeGazetteer = map[string]struct{}{
	"Taiwan": {}, "China": {}, "USA": {}, "India": {}, "Germany": {},
	"UK": {}, "Australia": {}, "Japan": {}, "Vietnam": {}, "Mexico": {},
	"South Korea": {}, "Netherlands": {}, "United States": {}, "Taipei": {},
	"Shanghai": {}, "Shenzhen": {}, "Berlin": {}, "London": {}, "Texas": {},
	"California": {}, "Singapore": {}, "Malaysia": {}, "Thailand": {},
}

var orgMarkers = map[string]struct{}{
	"Inc": {}, "Corp": {}, "Corporation": {}, "Ltd": {}, "LLC": {},
	"Co": {}, "Company": {}, "Group": {}, "Holdings": {}, "Industries": {},
	"Technologies": {}, "Electronics": {}, "Semiconductor": {},
	"Manufacturing": {}, "Motors": {}, "Logistics": {},
}

var spanStopwords = map[string]struct{}{
	"The": {}, "A": {}, "An": {}, "In": {}, "On": {}, "At": {}, "By": {},
	"It": {}, "This": {}, "That": {}, "But": {}, "And": {}, "As": {},
	"However": {}, "Meanwhile": {}, "According": {}, "After": {},
	"Monday": {}, "Tuesday": {}, "Wednesday": {}, "Thursday": {},
	"Friday": {}, "Saturday": {}, "Sunday": {},
}

// Tag never fails; it returns capitalized spans classified as ORG or GPE in
// order of appearance and silently skips ambiguous spans.
func (HeuristicTagger) Tag(_ context.Context, text string) ([]domain.Entity, error) {
	var entities []domain.Entity
	for _, span := range capitalizedSpans(text) {
		if label, ok := classifySpan(span); ok {
			entities = append(entities, domain.Entity{Text: span, Label: label})
		}
	}
	return entities, nil
}

func classifySpan(span string) (string, bool) {
	if _, ok := placeGazetteer[span]; ok {
		return domain.LabelPlace, true
	}

	words := strings.Fields(span)
	for _, w := range words {
		if _, ok := orgMarkers[strings.TrimRight(w, ".,")]; ok {
			return domain.LabelOrg, true
		}
	}

	// Multi-word capitalized spans and acronyms read as organization names.
	if len(words) >= 2 {
		return domain.LabelOrg, true
	}
	if len(span) >= 3 && span == strings.ToUpper(span) {
		return domain.LabelOrg, true
	}

	return "", false
}

// capitalizedSpans groups consecutive capitalized tokens, dropping leading
// stopwords so sentence starts do not pollute the spans.
func capitalizedSpans(text string) []string {
	var spans []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			spans = append(spans, strings.Join(current, " "))
			current = nil
		}
	}

	for _, token := range strings.Fields(text) {
		word := strings.Trim(token, ".,;:!?\"'()[]")
		if word == "" || !startsUpper(word) {
			flush()
			continue
		}
		if _, stop := spanStopwords[word]; stop && len(current) == 0 {
			continue
		}
		current = append(current, word)
		// Sentence-final token ends the span.
		if strings.ContainsAny(token, ".!?") && !strings.HasSuffix(word, ".") {
			flush()
		}
	}
	flush()

	return spans
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}
