package logkick

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validateConfig checks the accumulated builder options before composition.
func validateConfig(cfg *builderConfig) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid logger configuration: %w", err)
	}
	return nil
}
