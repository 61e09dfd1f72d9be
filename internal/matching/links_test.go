package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Customer Success Manager", "customer-success-manager"},
		{"  Data Analyst  ", "data-analyst"},
		{"UX/UI Designer", "uxui-designer"},
		{"Sales Development Rep (SDR)", "sales-development-rep-sdr"},
		{"Front-End  -  Developer", "front-end-developer"},
		{"Operations & Logistics Coordinator", "operations-logistics-coordinator"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.title))
		})
	}
}

func TestJobBoardURL(t *testing.T) {
	assert.Equal(t, "https://jobgether.com/remote-jobs/technical-support-specialist", JobBoardURL("Technical Support Specialist"))
}
