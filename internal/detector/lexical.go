// Package detector implements the rule-based scam scoring: lexical scoring of
// a transcript and suspicion scoring of acoustic features. All rules are
// deterministic constants; nothing here is learned.
package detector

import (
	"regexp"
	"strings"

	"scamshield-go/internal/lexicon"
	"scamshield-go/internal/types"
)

const (
	keywordPoints   = 10
	patternPoints   = 15
	urgencyPoints   = 20
	financialPoints = 25

	urgencyMinHits   = 2
	financialMinHits = 3
)

type compiledPattern struct {
	raw string
	re  *regexp.Regexp
}

// Lexical scores transcripts against a fixed vocabulary. Immutable after
// construction; safe for concurrent use.
type Lexical struct {
	lex      *lexicon.Lexicon
	patterns []compiledPattern
}

// NewLexical compiles the lexicon's patterns once. An invalid pattern is an
// operator error in the catalogue, surfaced at startup rather than per request.
func NewLexical(lex *lexicon.Lexicon) (*Lexical, error) {
	d := &Lexical{lex: lex}
	for _, p := range lex.Patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, err
		}
		d.patterns = append(d.patterns, compiledPattern{raw: p, re: re})
	}
	return d, nil
}

// Analyze scores one transcript. An empty transcript means no engine could
// produce text, which is "unknown" rather than "minimal": there was nothing to
// clear the caller on.
func (d *Lexical) Analyze(text string) types.TextAnalysisResult {
	if text == "" {
		return types.TextAnalysisResult{
			ScamScore:  0,
			Indicators: []string{},
			RiskLevel:  types.RiskUnknown,
		}
	}

	lower := strings.ToLower(text)
	score := 0
	indicators := []string{}

	// Substring match, each distinct keyword counts at most once.
	for _, kw := range d.lex.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			score += keywordPoints
			indicators = append(indicators, "Scam keyword detected: '"+kw+"'")
		}
	}

	// Each pattern counts once no matter how many spans it matches.
	for _, p := range d.patterns {
		if p.re.MatchString(text) {
			score += patternPoints
			indicators = append(indicators, "Suspicious pattern detected: "+p.raw)
		}
	}

	if countDistinct(lower, d.lex.UrgencyWords) >= urgencyMinHits {
		score += urgencyPoints
		indicators = append(indicators, "High urgency language detected")
	}
	if countDistinct(lower, d.lex.FinancialWords) >= financialMinHits {
		score += financialPoints
		indicators = append(indicators, "Multiple financial requests detected")
	}

	return types.TextAnalysisResult{
		ScamScore:       clampScore(score),
		Indicators:      indicators,
		RiskLevel:       textRiskLevel(clampScore(score)),
		TranscribedText: text,
	}
}

func countDistinct(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

func textRiskLevel(score int) string {
	switch {
	case score >= 50:
		return types.RiskHigh
	case score >= 25:
		return types.RiskMedium
	case score > 0:
		return types.RiskLow
	default:
		return types.RiskMinimal
	}
}

func clampScore(s int) int {
	if s > 100 {
		return 100
	}
	if s < 0 {
		return 0
	}
	return s
}
