package utils

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/go-playground/validator/v10"
)

var jordanMobile = regexp.MustCompile(`^(07[789]\d{7}|(\+?962)?7[789]\d{7})$`)

// NormalizePhone drops every whitespace rune from a phone number.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, phone)
}

func IsJordanianMobile(phone string) bool {
	return jordanMobile.MatchString(NormalizePhone(phone))
}

// NewValidator returns a validator that reports json field names and knows the
// storefront tags: notblank, jo_phone, area and slot.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "jo_phone", func(fl validator.FieldLevel) bool {
		return IsJordanianMobile(fl.Field().String())
	})
	mustRegister(v, "area", func(fl validator.FieldLevel) bool {
		return models.Area(fl.Field().String()).Valid()
	})
	mustRegister(v, "slot", func(fl validator.FieldLevel) bool {
		return models.Slot(fl.Field().String()).Valid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
