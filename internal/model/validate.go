package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const profileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["experience_level", "job_role", "interests", "learning_style", "time_commitment", "goals"],
  "properties": {
    "experience_level": {"type": "string", "minLength": 1, "maxLength": 100},
    "job_role": {"type": "string", "minLength": 1, "maxLength": 200},
    "interests": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1, "maxLength": 200}
    },
    "learning_style": {"type": "string", "minLength": 1, "maxLength": 100},
    "time_commitment": {"type": "string", "minLength": 1, "maxLength": 100},
    "goals": {"type": "string", "minLength": 1, "maxLength": 2000},
    "current_skills": {"type": "string", "maxLength": 2000},
    "preferred_technologies": {"type": "string", "maxLength": 2000}
  }
}`

// ValidateProfile checks the submitted profile against the JSON schema.
func ValidateProfile(p *UserProfile) error {
	schemaLoader := gojsonschema.NewStringLoader(profileSchema)
	docLoader := gojsonschema.NewGoLoader(p)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("profile validation failed: %s", msgs)
}
