package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pawlog/pawlog/internal/models"
)

// Validate is the shared validator instance used for struct validation
var Validate = validator.New()

func init() {
	// Registration only fails on a nil function or empty tag, which can
	// only happen through a programming error.
	if err := Validate.RegisterValidation("activity_type", validateActivityType); err != nil {
		panic(fmt.Sprintf("failed to register activity_type validator: %v", err))
	}
}

// validateActivityType validates that a string is a valid ActivityType enum value
func validateActivityType(fl validator.FieldLevel) bool {
	return models.ValidActivityType(models.ActivityType(fl.Field().String()))
}

// SanitizeText trims surrounding whitespace and drops control characters,
// keeping newlines and tabs so multi-line notes survive.
func SanitizeText(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, strings.TrimSpace(text))
}

// ValidateActivityType validates an ActivityType string value
func ValidateActivityType(value string) error {
	if models.ValidActivityType(models.ActivityType(value)) {
		return nil
	}
	return fmt.Errorf("invalid activity type: %s (must be 'walk', 'meal', or 'medication')", value)
}
