package farmerValidator

import (
	"kisan/validators/schema"

	"github.com/gofiber/fiber/v2"
)

// Schema lists the writable Farmer fields. date_registered and lands are read-only.
var Schema = schema.Schema{
	Entity: "Farmer",
	Fields: []schema.Field{
		{Name: "name", Column: "name", Kind: schema.String, Required: true, Rules: "max=100"},
		{Name: "village", Column: "village", Kind: schema.String, Required: true, Rules: "max=100"},
		{Name: "phone", Column: "phone", Kind: schema.String, Required: true, Rules: "max=15"},
		{Name: "land_area", Column: "land_area", Kind: schema.Decimal, Required: true},
	},
}

// Farmer validates create, replace (PUT) and partial (PATCH) farmer bodies.
func Farmer() fiber.Handler {
	return Schema.Validate()
}
