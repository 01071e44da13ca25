package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// JSONArray encodes a string slice for an array-valued column. A nil
// slice is stored as "[]", never NULL, so readers always decode an array.
func JSONArray(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}
