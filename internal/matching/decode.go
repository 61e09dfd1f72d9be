package matching

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/remote-pathfinder/internal/schemas"
	"github.com/jonathan/remote-pathfinder/internal/types"
)

// DecodeMatches parses normalized model output into exactly types.MatchCount records.
// Loose mode only checks that the text is an array of the right length whose
// elements decode into JobMatch. Strict mode additionally enforces the JSON
// Schema and the per-field value constraints.
func DecodeMatches(raw string, strict bool) ([]types.JobMatch, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, &OutputShapeError{Message: "Invalid response format from AI", Cause: err}
	}
	if len(items) != types.MatchCount {
		return nil, &OutputShapeError{
			Message: fmt.Sprintf("Invalid response format from AI: expected %d job matches, got %d", types.MatchCount, len(items)),
		}
	}

	if strict {
		if err := schemas.ValidateMatches([]byte(raw)); err != nil {
			return nil, &OutputShapeError{Message: "Invalid response format from AI", Cause: err}
		}
	}

	matches := make([]types.JobMatch, 0, len(items))
	for i, item := range items {
		var m types.JobMatch
		if err := json.Unmarshal(item, &m); err != nil {
			return nil, &OutputShapeError{Message: fmt.Sprintf("Invalid response format from AI: job %d", i), Cause: err}
		}
		if strict {
			if err := checkValues(&m); err != nil {
				return nil, &OutputShapeError{Message: fmt.Sprintf("Invalid response format from AI: job %d", i), Cause: err}
			}
		}
		matches = append(matches, m)
	}

	return matches, nil
}

// checkValues rejects blank strings, which the schema's minLength lets through.
func checkValues(m *types.JobMatch) error {
	if err := m.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			failed := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				failed = append(failed, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
			return errors.New(strings.Join(failed, ", "))
		}
		return err
	}
	fields := []struct{ name, value string }{
		{"title", m.Title},
		{"reasoning", m.Reasoning},
		{"salary", m.Salary},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is blank", f.name)
		}
	}
	return nil
}
