package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
)

// OptionMatcher matches free user input against option lists with fuzzy matching support.
type OptionMatcher struct {
	threshold float64 // Similarity threshold (0.0 - 1.0)
}

// NewOptionMatcher creates a new OptionMatcher.
func NewOptionMatcher() *OptionMatcher {
	return &OptionMatcher{
		threshold: 0.8, // 80% similarity required
	}
}

// Matches checks if the user's input matches the label.
func (m *OptionMatcher) Matches(input, label string) bool {
	user := normalize(input)
	want := normalize(label)

	if user == want {
		return true
	}

	return similarity(user, want) >= m.threshold
}

// Match returns the option whose value or label in either language is closest to
// input. Exact matches win over fuzzy ones.
func (m *OptionMatcher) Match(input string, options []entities.Option) (entities.Option, bool) {
	user := normalize(input)
	if user == "" {
		return entities.Option{}, false
	}

	var (
		best      entities.Option
		bestScore float64
	)
	for _, o := range options {
		for _, candidate := range []string{o.Value, o.Label.FR, o.Label.AR} {
			c := normalize(candidate)
			if c == "" {
				continue
			}
			if c == user {
				return o, true
			}
			if s := similarity(user, c); s > bestScore {
				best, bestScore = o, s
			}
		}
	}

	if bestScore >= m.threshold {
		return best, true
	}
	return entities.Option{}, false
}

// MatchTarget returns the target whose id or name is closest to input.
func (m *OptionMatcher) MatchTarget(input string, targets []*entities.Target) (*entities.Target, bool) {
	options := make([]entities.Option, 0, len(targets))
	for _, t := range targets {
		options = append(options, entities.Option{Value: t.ID, Label: t.Name})
	}

	o, ok := m.Match(input, options)
	if !ok {
		return nil, false
	}
	for _, t := range targets {
		if t.ID == o.Value {
			return t, true
		}
	}
	return nil, false
}

// arabicLetters folds Arabic letter variants typed interchangeably and drops the
// tatweel. Hamza and madda on alef are combining marks once decomposed, so
// foldAccents has already removed them.
var arabicLetters = strings.NewReplacer("\u0640", "", "ة", "ه", "ى", "ي")

// normalize lowercases s, folds Latin accents, Arabic harakat and letter
// variants, and collapses whitespace.
func normalize(s string) string {
	s = arabicLetters.Replace(foldAccents(strings.ToLower(s)))
	return strings.Join(strings.Fields(s), " ")
}

// foldAccents strips combining marks, so "fièvre" compares equal to "fievre"
// and "الصَّدر" to "الصدر".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// similarity is 1 minus the edit distance relative to the longer string.
func similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(editDistance(a, b))/float64(longest)
}

// editDistance counts the rune insertions, deletions and substitutions turning
// a into b. It keeps a single row sized after the shorter string.
func editDistance(a, b string) int {
	long, short := []rune(a), []rune(b)
	if len(long) < len(short) {
		long, short = short, long
	}

	row := make([]int, len(short)+1)
	for j := range row {
		row[j] = j
	}

	for i, lr := range long {
		diag := row[0]
		row[0] = i + 1
		for j, sr := range short {
			above := row[j+1]
			if lr == sr {
				row[j+1] = diag
			} else {
				row[j+1] = 1 + min(diag, above, row[j])
			}
			diag = above
		}
	}

	return row[len(short)]
}
