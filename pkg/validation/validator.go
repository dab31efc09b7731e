package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	initOnce sync.Once
	engine   *validator.Validate
)

// Init configures the global validator used by Gin's binding.
// - Registers the "cpf" tag.
// - Registers alias tags for common validations.
// Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
		}
		if err := v.RegisterValidation("cpf", validateCPF); err != nil {
			panic(fmt.Sprintf("validation: register cpf tag: %v", err))
		}
		v.RegisterAlias("notblank", "required")
		engine = v
	})
}

// Engine returns the shared validator, initializing it on first use.
func Engine() *validator.Validate {
	Init()
	return engine
}

// NotBlank reports whether s has at least one non-whitespace character.
func NotBlank(s string) bool {
	return Engine().Var(strings.TrimSpace(s), "notblank") == nil
}

// IsEmail reports whether s is a well-formed address whose domain has a dot.
func IsEmail(s string) bool {
	if Engine().Var(s, "email") != nil {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at >= 0 && strings.Contains(s[at+1:], ".")
}

// IsCPF reports whether s passes the "cpf" tag.
func IsCPF(s string) bool {
	return Engine().Var(s, "cpf") == nil
}
