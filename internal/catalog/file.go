package catalog

import (
	"encoding/json"
	"os"

	apperrors "makers-assistant/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

// LoadFile reads and validates the catalog data file. When schemaPath is
// non-empty the raw document is checked against the JSON schema before the
// inventory is unmarshalled, so a malformed data file fails at startup
// instead of surfacing mid-conversation.
func LoadFile(dataPath, schemaPath string) (*Inventory, error) {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeCatalogFileNotFound, "read catalog data file", err).
			WithMetadata("path", dataPath)
	}

	if schemaPath != "" {
		if err := validateAgainstSchema(data, schemaPath); err != nil {
			return nil, err
		}
	}

	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeCatalogParseFailed, "parse catalog data file", err).
			WithMetadata("path", dataPath)
	}

	return &inv, nil
}

func validateAgainstSchema(data []byte, schemaPath string) error {
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeCatalogValidationFailed, "read catalog schema", err).
			WithMetadata("path", schemaPath)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeCatalogValidationFailed, "validate catalog data file", err)
	}

	if !result.Valid() {
		se := apperrors.New(apperrors.ErrCodeCatalogValidationFailed, "catalog data file does not match schema")
		for i, desc := range result.Errors() {
			se.WithMetadata(desc.Field(), desc.Description())
			if i >= 9 {
				break
			}
		}
		return se
	}

	return nil
}
