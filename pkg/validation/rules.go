package validation

// Violation is a single failed rule on a field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule checks one property of T. Check returns true when the value is acceptable.
type Rule[T any] struct {
	Field   string
	Check   func(T) bool
	Message string
}

// RuleSet is an ordered rule table. Every field is checked independently and
// violations accumulate across fields, but once a field fails a rule the
// remaining rules for that same field are skipped. List the presence rule of
// a field before its format rules.
type RuleSet[T any] []Rule[T]

// Validate runs the table against in. A nil result means in is valid.
func (rs RuleSet[T]) Validate(in T) []Violation {
	var out []Violation
	failed := make(map[string]bool, len(rs))
	for _, r := range rs {
		if failed[r.Field] {
			continue
		}
		if !r.Check(in) {
			failed[r.Field] = true
			out = append(out, Violation{Field: r.Field, Message: r.Message})
		}
	}
	return out
}
