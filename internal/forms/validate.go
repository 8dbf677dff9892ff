package forms

import (
	"fmt"
	"regexp"
	"time"
)

// Issue is one validation failure, keyed to the offending field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	frnPattern  = regexp.MustCompile(`^[0-9]{6,7}$`)
	ninoPattern = regexp.MustCompile(`^[A-CEGHJ-PR-TW-Z]{2}[0-9]{6}[A-D]$`)
)

// ValidateStep checks a submission against one step of a form. The step
// index is zero-based. Fields whose dependency is not met are skipped
// entirely, including their required check.
func ValidateStep(form Form, step int, sub Submission) ([]Issue, error) {
	if step < 0 || step >= len(form.Steps) {
		return nil, fmt.Errorf("forms: %s has no step %d", form.Kind, step)
	}

	var issues []Issue
	for _, field := range form.Steps[step].Fields {
		if field.DependsOn != "" && sub[field.DependsOn] != field.DependsVal {
			continue
		}

		val := sub[field.Key]
		if val == "" {
			if field.Required {
				issues = append(issues, Issue{Field: field.Key, Message: "required"})
			}
			continue
		}

		switch field.Kind {
		case FieldDate:
			if _, err := time.Parse("2006-01-02", val); err != nil {
				issues = append(issues, Issue{Field: field.Key, Message: "must be a date in YYYY-MM-DD format"})
			}
		case FieldSelect:
			if !contains(field.Options, val) {
				issues = append(issues, Issue{Field: field.Key, Message: "not one of the permitted options"})
			}
		case FieldBool:
			if val != "true" && val != "false" {
				issues = append(issues, Issue{Field: field.Key, Message: "must be true or false"})
			}
		case FieldFRN:
			if !frnPattern.MatchString(val) {
				issues = append(issues, Issue{Field: field.Key, Message: "must be a 6 or 7 digit firm reference number"})
			}
		case FieldNINO:
			if !ninoPattern.MatchString(val) {
				issues = append(issues, Issue{Field: field.Key, Message: "must be a valid National Insurance number"})
			}
		}
	}
	return issues, nil
}

func contains(opts []string, val string) bool {
	for _, o := range opts {
		if o == val {
			return true
		}
	}
	return false
}
