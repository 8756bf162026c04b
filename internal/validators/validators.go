package validators

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
)

var (
	once     sync.Once
	validate *validator.Validate

	brandColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}){1,2}$`)
)

// Engine returns the shared validator, with field names taken from json
// tags and the custom rules registered.
func Engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = validate.RegisterValidation("brandcolor", func(fl validator.FieldLevel) bool {
			return brandColorRe.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("trimmedmin", func(fl validator.FieldLevel) bool {
			return len([]rune(strings.TrimSpace(fl.Field().String()))) >= paramInt(fl.Param())
		})
	})
	return validate
}

// Struct validates s and converts failures into field errors. Messages
// come from the message tag when present, otherwise from the rule.
func Struct(s any) *httperr.ValidationError {
	err := Engine().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return httperr.NewFieldError("", "invalid_request", "Dados inválidos.")
	}

	out := &httperr.ValidationError{}
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		out.Add(field, codeFor(fe), messageFor(s, fe))
	}
	return out
}

func codeFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + "_required"
	default:
		return "invalid_" + fe.Field()
	}
}

func messageFor(s any, fe validator.FieldError) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if sf, ok := t.FieldByName(fe.StructField()); ok {
		if msg := sf.Tag.Get("message"); msg != "" {
			return msg
		}
	}

	switch fe.Tag() {
	case "required":
		return "Campo obrigatório."
	case "min", "trimmedmin":
		return "Deve ter pelo menos " + fe.Param() + " caracteres."
	case "max":
		return "Deve ter no máximo " + fe.Param() + " caracteres."
	case "email":
		return "Por favor, insira um email válido."
	case "url":
		return "Por favor, insira um link válido."
	case "brandcolor":
		return "Por favor, insira uma cor hexadecimal válida (ex: #F59E0B)."
	case "datetime":
		return "Formato inválido."
	default:
		return "Valor inválido."
	}
}

func paramInt(p string) int {
	n, _ := strconv.Atoi(p)
	return n
}
