package usecase

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/analytics/repository"
)

var tokenPattern = regexp.MustCompile(`[a-z]{3,}`)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {}, "you": {}, "all": {}, "any": {},
	"can": {}, "had": {}, "her": {}, "was": {}, "one": {}, "our": {}, "out": {}, "has": {}, "him": {},
	"his": {}, "how": {}, "its": {}, "let": {}, "she": {}, "too": {}, "use": {}, "who": {}, "that": {},
	"with": {}, "have": {}, "this": {}, "will": {}, "your": {}, "from": {}, "they": {}, "been": {},
	"were": {}, "what": {}, "when": {}, "which": {}, "their": {}, "there": {}, "would": {}, "about": {},
	"into": {}, "just": {},
}

func (uc *implUseCase) KeywordFrequency(ctx context.Context, input analytics.KeywordFrequencyInput) ([]analytics.KeywordCount, error) {
	if err := validateFilter(input.Filter); err != nil {
		return nil, err
	}
	limit, err := resolveLimit(input.Limit, analytics.DefaultKeywordLimit, analytics.MaxKeywordLimit)
	if err != nil {
		return nil, err
	}

	texts, err := uc.repo.ListCombinedTexts(ctx, repository.ListCombinedTextsOptions{
		Filter: input.Filter.DateRange(),
		Limit:  analytics.MaxKeywordDocuments,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.KeywordFrequency: %v", err)
		return nil, queryFailed(err)
	}
	return countKeywords(texts, limit), nil
}

// countKeywords tallies lowercase alphabetic tokens of 3+ letters that are not
// stop words, and returns the top limit by count. Ties keep first-seen order.
func countKeywords(texts []string, limit int) []analytics.KeywordCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, text := range texts {
		for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
			if _, stop := stopWords[tok]; stop {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	result := make([]analytics.KeywordCount, 0, len(order))
	for _, w := range order {
		result = append(result, analytics.KeywordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}
