package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// enumRules lists the custom tags that restrict a string field to fixed values
var enumRules = map[string][]string{
	"environment": {"development", "staging", "production"},
	"loglevel":    {"debug", "info", "warn", "error"},
}

// Validator checks a Config against its struct tags, the enum rules and the floor ordering
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the enum rules registered
func NewValidator() *Validator {
	v := validator.New()
	for tag, allowed := range enumRules {
		allowed := allowed
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(allowed, fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("config: register %s rule: %v", tag, err))
		}
	}
	return &Validator{validate: v}
}

// Validate validates cfg with a fresh Validator
func Validate(cfg *Config) error {
	return NewValidator().Validate(cfg)
}

// Validate reports every failed field at once, then the tournament floor ordering
func (v *Validator) Validate(cfg *Config) error {
	if err := v.validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		problems := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			problems = append(problems, describe(fe))
		}
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	sim := cfg.Simulation
	if sim.TournamentBalance() < sim.SaltMineAmount {
		return fmt.Errorf("tournament balance %.2f cannot be below salt_mine_amount %.2f",
			sim.TournamentBalance(), sim.SaltMineAmount)
	}
	return nil
}

// describe renders one field failure, naming the allowed values for enum tags
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if allowed, ok := enumRules[fe.Tag()]; ok {
		return fmt.Sprintf("%s is %q, want one of %s", field, fe.Value(), strings.Join(allowed, ", "))
	}
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s must be %s %s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", field, fe.Tag())
	}
}
