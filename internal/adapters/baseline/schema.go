package baseline

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed baseline.schema.json
var schemaJSON string

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
})

// validate checks a document against the baseline schema.
func validate(doc gojsonschema.JSONLoader) error {
	schema, err := loadSchema()
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreSchemaInvalid.Error())
	}

	result, err := schema.Validate(doc)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreSchemaInvalid.Error())
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return zerr.With(domain.ErrStoreSchemaInvalid, "problems", strings.Join(problems, "; "))
}
