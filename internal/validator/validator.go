// Package validator implements the syntax-only email validation that backs
// the HTTP API. The check is intentionally a single regular expression; the
// quality score is a constant proxy for a richer scoring model that does not
// exist yet. DNS, MX and SMTP verification are out of scope.
package validator

import "regexp"

// syntaxPattern accepts local-part@domain where neither side contains
// whitespace or additional "@" characters and the domain has at least one dot.
var syntaxPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validQualityScore is the constant score assigned to any syntactically valid
// address. It stands in for a future model combining deliverability signals.
const validQualityScore = 0.8

// Request is the body of a single-validation call.
type Request struct {
	Email string `json:"email"`
}

// SyntaxCheck reports the outcome of the syntax test.
type SyntaxCheck struct {
	Valid bool `json:"valid"`
}

// Checks groups the individual checks run against an address. Only syntax
// exists today; the struct leaves room for disposable/MX checks later.
type Checks struct {
	Syntax SyntaxCheck `json:"syntax"`
}

// Result is the outcome of validating one email address.
// Invariant: Valid, QualityScore == 0.8 and Checks.Syntax.Valid all agree.
type Result struct {
	Email        string  `json:"email"`
	Valid        bool    `json:"valid"`
	QualityScore float64 `json:"quality_score"`
	Checks       Checks  `json:"checks"`
}

// BatchResult aggregates per-address results in input order.
type BatchResult struct {
	Results          []Result `json:"results"`
	Total            int      `json:"total"`
	ValidCount       int      `json:"valid_count"`
	ProcessingTimeMS int      `json:"processing_time_ms"`
}

// Validate runs the syntax test against a single address. It is pure and
// stateless; the regexp is evaluated once and every derived field is computed
// from that single boolean.
func Validate(email string) Result {
	valid := syntaxPattern.MatchString(email)

	score := 0.0
	if valid {
		score = validQualityScore
	}

	return Result{
		Email:        email,
		Valid:        valid,
		QualityScore: score,
		Checks:       Checks{Syntax: SyntaxCheck{Valid: valid}},
	}
}

// ValidateBatch validates each address independently, preserving input order.
// An unparseable entry is marked invalid, never rejected; a batch therefore
// always succeeds. ProcessingTimeMS is a placeholder — timing is not measured.
func ValidateBatch(emails []string) BatchResult {
	results := make([]Result, 0, len(emails))
	validCount := 0

	for _, email := range emails {
		r := Validate(email)
		if r.Valid {
			validCount++
		}
		results = append(results, r)
	}

	return BatchResult{
		Results:    results,
		Total:      len(results),
		ValidCount: validCount,
	}
}
