// Package schemas embeds the JSON Schema documents that describe model output.
package schemas

import _ "embed"

// JobMatches is the schema of the raw job-match array returned by the model.
//
//go:embed job_matches.schema.json
var JobMatches string
