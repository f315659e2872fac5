package question

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Issue captures a validation problem in a question set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question set validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

var (
	validatorOnce sync.Once
	specValidate  *validator.Validate
	specTrans     ut.Translator
)

// specValidator returns the shared validator with English messages keyed by
// the yaml field names.
func specValidator() (*validator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		specTrans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, specTrans)
		specValidate = v
	})
	return specValidate, specTrans
}

// NormalizeSpec trims whitespace and validates a question set.
func NormalizeSpec(spec Spec) (Spec, error) {
	questions := make([]Question, len(spec.Questions))
	for i, q := range spec.Questions {
		q.ID = strings.TrimSpace(q.ID)
		q.Prompt = strings.TrimSpace(q.Prompt)
		q.Options = normalizeStringSlice(q.Options)
		questions[i] = q
	}
	if spec.Questions != nil {
		spec.Questions = questions
	}

	collector := &issueCollector{}
	v, trans := specValidator()
	if err := v.Struct(spec); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Spec{}, fmt.Errorf("validate question set: %w", err)
		}
		for _, fe := range fieldErrs {
			collector.add(strings.TrimPrefix(fe.Namespace(), "Spec."), fe.Translate(trans))
		}
	}

	seenIDs := map[string]int{}
	for i, q := range spec.Questions {
		if q.ID == "" {
			continue
		}
		if first, exists := seenIDs[q.ID]; exists {
			collector.add(fmt.Sprintf("questions[%d].id", i), fmt.Sprintf("duplicate id %q (first used by questions[%d])", q.ID, first))
			continue
		}
		seenIDs[q.ID] = i
	}

	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}
