package handlers

// bodyField tracks presence and truthiness of one whitelisted request
// body field. A field is present when the client supplied a non-null
// value, and truthy when that value is also non-zero/non-empty.
type bodyField struct {
	name    string
	present bool
	truthy  bool
}

func stringField(name string, value *string) bodyField {
	return bodyField{
		name:    name,
		present: value != nil,
		truthy:  value != nil && *value != "",
	}
}

func intField(name string, value *int) bodyField {
	return bodyField{
		name:    name,
		present: value != nil,
		truthy:  value != nil && *value != 0,
	}
}

// firstMissing reports the first absent field in declaration order.
func firstMissing(fields ...bodyField) (string, bool) {
	for _, field := range fields {
		if !field.present {
			return field.name, true
		}
	}
	return "", false
}

// countTruthy counts the fields carrying a truthy value. Empty strings
// and zero numbers do not count, matching the contract's update
// validation.
func countTruthy(fields ...bodyField) int {
	count := 0
	for _, field := range fields {
		if field.truthy {
			count++
		}
	}
	return count
}
