// Package bind fills handler inputs from the URL query and validates structs
// with go-playground/validator, reporting the first failure as InvalidArgument
package bind

import (
	stderrs "errors"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	perr "tzconv/internal/platform/errors"
	"tzconv/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel for custom rules
type FieldLevel = validator.FieldLevel

// Validator pairs a validator with its english translator
type Validator struct {
	v  *validator.Validate
	tr ut.Translator
}

// message overrides for built-in and custom tags; {0} is the field, {1} the param
var messages = map[string]string{
	"max":         "{0} must be at most {1}",
	"listen_addr": "{0} must be a listen address like :4000 or 127.0.0.1:4000",
}

var shared = sync.OnceValue(func() *Validator {
	loc := en.New()
	tr, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = en_translations.RegisterDefaultTranslations(v, tr)
	_ = v.RegisterValidation("listen_addr", isListenAddr)

	for tag, text := range messages {
		_ = v.RegisterTranslation(tag, tr,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(tag, fe.Field(), fe.Param())
				return msg
			},
		)
	}
	return &Validator{v: v, tr: tr}
})

// Default returns the process-wide Validator
func Default() *Validator { return shared() }

// Struct runs the raw validator over s
func (x *Validator) Struct(s any) error { return x.v.Struct(s) }

// RegisterValidation adds or replaces the rule for tag
func RegisterValidation(tag string, fn func(FieldLevel) bool) error {
	return Default().v.RegisterValidation(tag, fn)
}

// jsonName names fields by their json tag so messages match the wire
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// listen_addr accepts host:port or :port; port 0 asks the kernel for a free one
func isListenAddr(fl validator.FieldLevel) bool {
	_, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(port)
	return err == nil && n >= 0 && n <= 65535
}

// Validate checks v; the first failing field becomes the error's field
func Validate(v any) error {
	err := Default().Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if stderrs.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator misuse")
		return perr.Internalf("validation error")
	}
	field, msg := FirstProblem(err)
	return perr.WithField(perr.InvalidArgf("%s", msg), field)
}

// FirstProblem returns the field and translated message of the first failure
// in err; other errors give no field and their own text
func FirstProblem(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if stderrs.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Default().tr)
	}
	return "", err.Error()
}

// ParseQuery fills the string and *string fields of T tagged `query:"name"`
// and validates the result. Repeated parameters keep the first value; absent
// ones leave the field untouched
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return dst, perr.Internalf("query target must be a struct, got %s", rv.Kind())
	}

	q := r.URL.Query()
	for _, f := range reflect.VisibleFields(rv.Type()) {
		name := f.Tag.Get("query")
		if f.Anonymous || name == "" || name == "-" || !q.Has(name) {
			continue
		}
		val := q.Get(name)
		fv := rv.FieldByIndex(f.Index)
		switch {
		case fv.Kind() == reflect.String:
			fv.SetString(val)
		case fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() == reflect.String:
			fv.Set(reflect.ValueOf(&val))
		default:
			return dst, perr.Internalf("query field %s must be a string", f.Name)
		}
	}
	return dst, Validate(dst)
}
