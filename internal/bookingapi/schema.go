package bookingapi

import (
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// bookingListSchema describes the GET /api/search_booking response body.
const bookingListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "airlines", "plane_id", "departing_at", "arriving_at"],
		"properties": {
			"id": {"type": ["string", "integer"]},
			"airlines": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"}
				}
			},
			"plane_id": {"type": ["string", "integer"]},
			"departing_at": {"type": "string"},
			"arriving_at": {"type": "string"}
		}
	}
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(bookingListSchema))
})
