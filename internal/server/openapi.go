package server

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-faster/errors"
)

//go:embed openapi.yaml
var openAPISpec []byte

// LoadOpenAPI parses and validates the embedded route description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, errors.Wrap(err, "load openapi document")
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, errors.Wrap(err, "validate openapi document")
	}
	return doc, nil
}

func marshalOpenAPI(doc *openapi3.T) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal openapi document")
	}
	return data, nil
}
