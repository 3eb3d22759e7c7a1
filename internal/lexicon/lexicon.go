// Package lexicon holds the scam vocabulary the lexical detector scores
// against. The built-in tables are the default; an XLSX catalogue maintained
// by the fraud team can override them at startup via LEXICON_PATH.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Lexicon is immutable after construction and safe for concurrent readers.
type Lexicon struct {
	Keywords       []string
	Patterns       []string
	UrgencyWords   []string
	FinancialWords []string
}

var defaultKeywords = []string{
	"urgent", "act now", "limited time", "congratulations", "winner", "free money",
	"tax refund", "irs", "government", "lawsuit", "arrest warrant", "police",
	"microsoft tech support", "virus detected", "computer infected", "suspicious activity",
	"verify account", "confirm identity", "social security", "credit card",
	"bank account", "wire transfer", "bitcoin", "cryptocurrency", "investment opportunity",
	"guaranteed returns", "risk-free", "make money fast", "work from home",
	"lonely", "romance", "love you", "meet you", "military deployed",
	"inheritance", "million dollars", "beneficiary", "lawyer", "diplomat",
	"customs", "airport", "detained", "fee required", "processing fee",
}

// Pattern strings are surfaced verbatim in indicators, so they stay in the
// catalogue rather than as precompiled regexps.
var defaultPatterns = []string{
	`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`, // phone number
	`\b\d{3}[-.\s]?\d{2}[-.\s]?\d{4}\b`, // SSN
	`\$[\d,]+\.?\d*`,                    // money amount
	`\bact\s+within\s+\d+\s+hours?\b`,
	`\bcall\s+back\s+immediately\b`,
	`\bverify\s+your\s+account\b`,
}

var defaultUrgencyWords = []string{"urgent", "immediate", "now", "quickly", "hurry", "deadline"}

var defaultFinancialWords = []string{"money", "payment", "fee", "cost", "price", "pay", "send", "transfer"}

// Default returns the built-in vocabulary.
func Default() *Lexicon {
	return &Lexicon{
		Keywords:       defaultKeywords,
		Patterns:       defaultPatterns,
		UrgencyWords:   defaultUrgencyWords,
		FinancialWords: defaultFinancialWords,
	}
}

// LoadXLSX reads a catalogue spreadsheet. The first sheet is scanned and
// columns are matched by header heuristics (keyword / pattern / urgency /
// financial). A column that is missing from the sheet keeps its built-in
// table, so the fraud team can override keywords alone.
func LoadXLSX(path string) (*Lexicon, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalogue has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("catalogue has no data rows")
	}

	header := rows[0]
	kwIdx, patIdx, urgIdx, finIdx := -1, -1, -1, -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "keyword"):
			if kwIdx == -1 {
				kwIdx = i
			}
		case strings.Contains(l, "pattern") || strings.Contains(l, "regex"):
			if patIdx == -1 {
				patIdx = i
			}
		case strings.Contains(l, "urgen"):
			if urgIdx == -1 {
				urgIdx = i
			}
		case strings.Contains(l, "financ"):
			if finIdx == -1 {
				finIdx = i
			}
		}
	}
	if kwIdx == -1 && patIdx == -1 && urgIdx == -1 && finIdx == -1 {
		return nil, fmt.Errorf("no recognized columns in header %v", header)
	}

	lex := Default()
	column := func(idx int) []string {
		if idx < 0 {
			return nil
		}
		var out []string
		for i, r := range rows {
			if i == 0 || idx >= len(r) {
				continue
			}
			v := strings.ToLower(strings.TrimSpace(r[idx]))
			if v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	if vals := column(kwIdx); len(vals) > 0 {
		lex.Keywords = vals
	}
	if patIdx >= 0 {
		// patterns keep their case, regex classes are case-sensitive text
		var out []string
		for i, r := range rows {
			if i == 0 || patIdx >= len(r) {
				continue
			}
			if v := strings.TrimSpace(r[patIdx]); v != "" {
				out = append(out, v)
			}
		}
		if len(out) > 0 {
			lex.Patterns = out
		}
	}
	if vals := column(urgIdx); len(vals) > 0 {
		lex.UrgencyWords = vals
	}
	if vals := column(finIdx); len(vals) > 0 {
		lex.FinancialWords = vals
	}
	return lex, nil
}
