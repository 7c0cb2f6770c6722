// Package validate holds request input schemas. Validation runs before any
// side effect; stage strings are checked for presence only and stored
// verbatim, never normalized.
package validate

import "fmt"

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// CreateLead validates input for lead capture.
func CreateLead(name, email, stage string) error {
	if name == "" || email == "" || stage == "" {
		return fmt.Errorf("name, email, and stage are required")
	}
	return nil
}

// Opportunity validates create/update input. Pointer fields distinguish
// absent values from legitimate zeroes.
func Opportunity(leadID *int64, leadName string, amount *float64, stage string, probability *int) error {
	if leadID == nil || leadName == "" || amount == nil || stage == "" || probability == nil {
		return fmt.Errorf("missing required opportunity fields")
	}
	if *probability < 0 || *probability > 100 {
		return fmt.Errorf("probability must be between 0 and 100")
	}
	return nil
}

// BlogPost validates create/update input; featuredImage, tags and
// categories stay optional.
func BlogPost(title, content string) error {
	if title == "" || content == "" {
		return fmt.Errorf("title and content are required")
	}
	return nil
}

// HistoryItem validates input for the generation log.
func HistoryItem(itemType, topic, content string) error {
	if itemType == "" || topic == "" || content == "" {
		return fmt.Errorf("type, topic, and content are required")
	}
	return nil
}
