package applicationValidator

import (
	"kisan/validators/schema"

	"github.com/gofiber/fiber/v2"
)

// Schema lists the writable SchemeApplication fields. Any status may replace
// any other; application_date, farmer_name and scheme_name are read-only.
// An absent status keeps the stored one; new applications start as pending.
var Schema = schema.Schema{
	Entity: "Application",
	Fields: []schema.Field{
		{Name: "farmer", Column: "farmer_id", Kind: schema.ForeignKey, Required: true},
		{Name: "scheme", Column: "scheme_id", Kind: schema.ForeignKey, Required: true},
		{Name: "status", Column: "status", Kind: schema.Choice, Rules: "oneof=pending approved rejected"},
	},
}

func Application() fiber.Handler {
	return Schema.Validate()
}
