// pkg/catalogfile/catalogfile.go
package catalogfile

import "encoding/json"

// ParseCatalog decodes a strategy catalog document. Schema validation is the
// caller's concern; this only enforces the Go shape.
func ParseCatalog(data []byte) (*StrategyCatalog, error) {
	var cat StrategyCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}
