// Package schema validates JSON request bodies against a per-entity field
// table and converts them into typed values ready for the record store.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kisan/middleware"
	"kisan/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Kind int

const (
	String Kind = iota
	Text
	Decimal
	Date
	ForeignKey
	Choice
)

const (
	msgRequired  = "This field is required."
	msgNull      = "This field may not be null."
	msgBlank     = "This field may not be blank."
	msgString    = "Not a valid string."
	msgNumber    = "A valid number is required."
	msgDate      = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgNotObject = "Invalid data. Expected a dictionary, but got %s."
)

// Decimal fields mirror the decimal(10,2) columns.
const (
	decimalMaxDigits = 10
	decimalPlaces    = 2
)

// ErrMalformed is returned for bodies that are not valid JSON.
var ErrMalformed = errors.New("malformed JSON body")

var validate = validator.New()

// Field describes one writable wire field. Read-only and unknown fields are
// not listed and are dropped from input.
type Field struct {
	Name     string // wire name
	Column   string // database column
	Kind     Kind
	Required bool
	Rules    string // validator tags applied to String, Text and Choice values
}

type Schema struct {
	Entity string // used for the Locals key, e.g. "validatedFarmer"
	Fields []Field
}

// Values holds decoded input keyed by wire name.
type Values map[string]any

// Errors maps a wire field name to its error messages.
type Errors map[string][]string

func (e Errors) Add(field, msg string) { e[field] = append(e[field], msg) }

// LocalKey is the fiber Locals key the validated Values are stored under.
func (s Schema) LocalKey() string { return "validated" + s.Entity }

// Validate returns a handler that decodes the body, rejects it with a
// per-field error object on failure and stores Values under LocalKey
// otherwise. PATCH requests are validated as partial updates.
func (s Schema) Validate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		values, errs, err := s.Decode(c.Body(), c.Method() == fiber.MethodPatch)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals(s.LocalKey(), values)
		return c.Next()
	}
}

// Decode validates body. When partial is false every required field must be
// present; when true only the fields present are checked.
func (s Schema) Decode(body []byte, partial bool) (Values, Errors, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, ErrMalformed
	}
	if dec.More() {
		return nil, nil, ErrMalformed
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, Errors{"non_field_errors": {fmt.Sprintf(msgNotObject, jsonType(raw))}}, nil
	}

	values := Values{}
	errs := Errors{}
	for _, f := range s.Fields {
		v, present := obj[f.Name]
		if !present {
			if !partial && f.Required {
				errs.Add(f.Name, msgRequired)
			}
			continue
		}
		if v == nil {
			errs.Add(f.Name, msgNull)
			continue
		}
		out, msg := f.decode(v)
		if msg != "" {
			errs.Add(f.Name, msg)
			continue
		}
		values[f.Name] = out
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return values, nil, nil
}

// Columns maps the decoded values onto database columns.
func (s Schema) Columns(v Values) map[string]any {
	cols := make(map[string]any, len(v))
	for _, f := range s.Fields {
		if val, ok := v[f.Name]; ok {
			cols[f.Column] = val
		}
	}
	return cols
}

func (f Field) decode(v any) (any, string) {
	switch f.Kind {
	case String, Text:
		s, ok := v.(string)
		if !ok {
			return nil, msgString
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, msgBlank
		}
		if msg := f.checkRules(s); msg != "" {
			return nil, msg
		}
		return s, ""

	case Choice:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(v))
		}
		if msg := f.checkRules(s); msg != "" {
			return nil, msg
		}
		return s, ""

	case Decimal:
		return f.decodeDecimal(v)

	case Date:
		s, ok := v.(string)
		if !ok {
			return nil, msgDate
		}
		d, err := models.ParseDate(strings.TrimSpace(s))
		if err != nil {
			return nil, msgDate
		}
		return d, ""

	case ForeignKey:
		return decodePK(v)
	}
	return nil, fmt.Sprintf("unsupported field kind %d", f.Kind)
}

func (f Field) checkRules(s string) string {
	if f.Rules == "" {
		return ""
	}
	err := validate.Var(s, f.Rules)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid value."
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", s)
	case "numeric":
		return "Enter a valid number."
	default:
		return "Invalid value."
	}
}

func (f Field) decodeDecimal(v any) (any, string) {
	var str string
	switch t := v.(type) {
	case json.Number:
		str = t.String()
	case string:
		str = strings.TrimSpace(t)
	default:
		return nil, msgNumber
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return nil, msgNumber
	}

	coef := strings.TrimLeft(d.Coefficient().String(), "-")
	exp := int(d.Exponent())
	var digits, decimals int
	if exp >= 0 {
		digits = len(coef) + exp
	} else {
		decimals = -exp
		digits = max(len(coef), decimals)
	}
	if coef == "0" {
		// "0.00" carries no significant digits
		digits = decimals
	}
	whole := digits - decimals

	switch {
	case digits > decimalMaxDigits:
		return nil, fmt.Sprintf("Ensure that there are no more than %d digits in total.", decimalMaxDigits)
	case decimals > decimalPlaces:
		return nil, fmt.Sprintf("Ensure that there are no more than %d decimal places.", decimalPlaces)
	case whole > decimalMaxDigits-decimalPlaces:
		return nil, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", decimalMaxDigits-decimalPlaces)
	}
	return d, ""
}

func decodePK(v any) (any, string) {
	var str string
	switch t := v.(type) {
	case json.Number:
		str = t.String()
	case string:
		str = strings.TrimSpace(t)
	default:
		return nil, fmt.Sprintf("Incorrect type. Expected pk value, received %s.", jsonType(v))
	}
	n, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return nil, fmt.Sprintf("Incorrect type. Expected pk value, received %s.", jsonType(v))
	}
	if n <= 0 {
		return nil, fmt.Sprintf("Invalid pk %q - object does not exist.", str)
	}
	return uint(n), ""
}

func jsonType(v any) string {
	switch t := v.(type) {
	case nil:
		return "NoneType"
	case string:
		return "str"
	case bool:
		return "bool"
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return "int"
		}
		return "float"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Decimal(name string) decimal.Decimal {
	d, _ := v[name].(decimal.Decimal)
	return d
}

func (v Values) Date(name string) datatypes.Date {
	d, _ := v[name].(datatypes.Date)
	return d
}

func (v Values) ID(name string) uint {
	id, _ := v[name].(uint)
	return id
}
