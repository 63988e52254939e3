package featureValidator

import (
	"kisan/validators/schema"

	"github.com/gofiber/fiber/v2"
)

var Schema = schema.Schema{
	Entity: "Feature",
	Fields: []schema.Field{
		{Name: "title", Column: "title", Kind: schema.String, Required: true, Rules: "max=100"},
		{Name: "description", Column: "description", Kind: schema.Text, Required: true},
		{Name: "icon_name", Column: "icon_name", Kind: schema.String, Required: true, Rules: "max=50"},
		{Name: "icon_color", Column: "icon_color", Kind: schema.String, Required: true, Rules: "max=20"},
	},
}

func Feature() fiber.Handler {
	return Schema.Validate()
}
