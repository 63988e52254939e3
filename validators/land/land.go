package landValidator

import (
	"kisan/validators/schema"

	"github.com/gofiber/fiber/v2"
)

var Schema = schema.Schema{
	Entity: "Land",
	Fields: []schema.Field{
		{Name: "farmer", Column: "farmer_id", Kind: schema.ForeignKey, Required: true},
		{Name: "location", Column: "location", Kind: schema.String, Required: true, Rules: "max=200"},
		{Name: "area", Column: "area", Kind: schema.Decimal, Required: true},
		{Name: "soil_type", Column: "soil_type", Kind: schema.String, Required: true, Rules: "max=50"},
	},
}

func Land() fiber.Handler {
	return Schema.Validate()
}
