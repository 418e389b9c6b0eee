package validation

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"unicode"

	"walletboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// rules are the custom tags request DTOs use next to the built-in ones.
var rules = map[string]validator.Func{
	"theme_color":    themeColor,
	"nickname":       nickname,
	"wallet_address": walletAddress,
}

// Shared returns the process-wide validator. validator.Validate caches struct
// metadata, so one instance is reused for every request.
var Shared = sync.OnceValue(New)

// New builds a validator with the custom rules registered. Field errors are
// reported under their JSON names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: register %s: %v", tag, err))
		}
	}

	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// themeColor accepts the theme choices case-insensitively.
func themeColor(fl validator.FieldLevel) bool {
	color := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	return slices.Contains(models.ThemeChoices, color)
}

// nickname allows blank, which resets to the username.
func nickname(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if len(value) > models.MaxNicknameLength {
		return false
	}
	return !strings.ContainsFunc(value, unicode.IsControl)
}

func walletAddress(fl validator.FieldLevel) bool {
	return models.IsValidWalletAddress(models.NormalizeWalletAddress(fl.Field().String()))
}
