// Package types provides type definitions for the request and response payloads of the pathfinder service.
package types

import (
	"github.com/go-playground/validator/v10"
)

// MatchCount is the number of job matches a successful generation must contain.
const MatchCount = 3

// UserProfile is the short background a user submits for analysis.
// Fields are free text and are interpolated into the prompt verbatim.
type UserProfile struct {
	CurrentRole string `json:"currentRole" validate:"required"`
	Skills      string `json:"skills" validate:"required"`
	Interests   string `json:"interests" validate:"required"`
	IncomeGoal  string `json:"incomeGoal" validate:"required"`
}

// JobMatch is one generated candidate role.
type JobMatch struct {
	Title     string `json:"title" validate:"required"`
	Match     int    `json:"match" validate:"min=0,max=100"`
	Reasoning string `json:"reasoning" validate:"required"`
	Salary    string `json:"salary" validate:"required"`
}

// GenerateResponse is the success body of the generate endpoint.
type GenerateResponse struct {
	Jobs []JobMatch `json:"jobs"`
}

// ErrorResponse is the failure body of every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Validate checks that every profile field is present.
func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate checks the value constraints of a single match.
func (m *JobMatch) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}
