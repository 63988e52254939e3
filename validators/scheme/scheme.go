package schemeValidator

import (
	"kisan/validators/schema"

	"github.com/gofiber/fiber/v2"
)

// Schema lists the writable Scheme fields. end_date is not compared with start_date.
var Schema = schema.Schema{
	Entity: "Scheme",
	Fields: []schema.Field{
		{Name: "name", Column: "name", Kind: schema.String, Required: true, Rules: "max=100"},
		{Name: "description", Column: "description", Kind: schema.Text, Required: true},
		{Name: "eligibility", Column: "eligibility", Kind: schema.Text, Required: true},
		{Name: "start_date", Column: "start_date", Kind: schema.Date, Required: true},
		{Name: "end_date", Column: "end_date", Kind: schema.Date, Required: true},
	},
}

func Scheme() fiber.Handler {
	return Schema.Validate()
}
