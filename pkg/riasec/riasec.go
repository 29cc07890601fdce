package riasec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Category is one of the six RIASEC interest codes.
type Category string

const (
	Realistic     Category = "R"
	Investigative Category = "I"
	Artistic      Category = "A"
	Social        Category = "S"
	Enterprising  Category = "E"
	Conventional  Category = "C"
)

const (
	// QuestionCount is the fixed size of the questionnaire.
	QuestionCount = 50
	MinAnswer     = 1
	MaxAnswer     = 5

	topN = 3
)

// Order is the fixed enumeration order. Ties in the ranking resolve to
// whichever category appears first here.
var Order = []Category{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

// Part 1 (Q1-24): four contiguous interest items per category.
var baseItems = map[Category][]int{
	Realistic:     {0, 1, 2, 3},
	Investigative: {4, 5, 6, 7},
	Artistic:      {8, 9, 10, 11},
	Social:        {12, 13, 14, 15},
	Enterprising:  {16, 17, 18, 19},
	Conventional:  {20, 21, 22, 23},
}

// Parts 2-4: three skill/value items added per category. Items 40, 42, 43
// and 45-49 are not scored.
var augmentItems = map[Category][]int{
	Realistic:     {24, 28, 29},
	Investigative: {25, 30, 31},
	Artistic:      {32, 33, 41},
	Social:        {27, 34, 35},
	Enterprising:  {26, 36, 37},
	Conventional:  {38, 39, 44},
}

// Scores holds the summed total per category. Calculate always fills all six.
type Scores map[Category]int

// Result is the scored profile of one answer set.
type Result struct {
	Scores Scores     `json:"riasec_scores"`
	Top3   []Category `json:"top_3_types"`
	Top1   Category   `json:"top_1_type"`
}

// Rule names the precondition an answer set failed.
type Rule string

const (
	RuleLength Rule = "length"
	RuleRange  Rule = "range"
)

// ValidationError reports an answer set that cannot be scored.
type ValidationError struct {
	Rule  Rule
	Index int // offending position for RuleRange
	Value int // offending length or answer value
}

func (e *ValidationError) Error() string {
	if e.Rule == RuleLength {
		return fmt.Sprintf("riasec: expected %d answers, got %d", QuestionCount, e.Value)
	}
	return fmt.Sprintf("riasec: answer %d at index %d is outside [%d,%d]", e.Value, e.Index, MinAnswer, MaxAnswer)
}

// Validate checks the length first, then every value.
func Validate(answers []int) error {
	if len(answers) != QuestionCount {
		return &ValidationError{Rule: RuleLength, Value: len(answers)}
	}
	for i, v := range answers {
		if v < MinAnswer || v > MaxAnswer {
			return &ValidationError{Rule: RuleRange, Index: i, Value: v}
		}
	}
	return nil
}

// Calculate scores a 50-item answer set.
func Calculate(answers []int) (*Result, error) {
	if err := Validate(answers); err != nil {
		return nil, err
	}

	scores := make(Scores, len(Order))
	for _, c := range Order {
		total := 0
		for _, idx := range baseItems[c] {
			total += answers[idx]
		}
		for _, idx := range augmentItems[c] {
			total += answers[idx]
		}
		scores[c] = total
	}

	top := Rank(scores)
	return &Result{
		Scores: scores,
		Top3:   top,
		Top1:   top[0],
	}, nil
}

// Rank returns the three highest categories, stable over Order.
func Rank(scores Scores) []Category {
	ranked := make([]Category, len(Order))
	copy(ranked, Order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked[:topN]
}

// MarshalJSON writes the six totals in R,I,A,S,E,C order instead of the
// alphabetical key order encoding/json uses for maps.
func (s Scores) MarshalJSON() ([]byte, error) {
	return s.appendJSON(nil), nil
}

// JSONWith is MarshalJSON with one extra string member written after the
// scores, e.g. {"R":21,...,"C":21,"riasec_type":"R-I-A"}.
func (s Scores) JSONWith(key, value string) []byte {
	return s.appendJSON(func(buf *bytes.Buffer) {
		k, _ := json.Marshal(key)
		v, _ := json.Marshal(value)
		buf.WriteByte(',')
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	})
}

func (s Scores) appendJSON(tail func(*bytes.Buffer)) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(string(c)))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(s[c]))
	}
	if tail != nil {
		tail(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// Join renders categories with sep, e.g. "R,I,A".
func Join(cats []Category, sep string) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, sep)
}
