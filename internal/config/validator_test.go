package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownTemplates = []string{"component", "starter"}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig(), knownTemplates))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(c *Config)
		wantFields []string
	}{
		{
			name:       "unknown template",
			mutate:     func(c *Config) { c.Template = "nope" },
			wantFields: []string{"template"},
		},
		{
			name:   "empty template is allowed",
			mutate: func(c *Config) { c.Template = "" },
		},
		{
			name: "blank commands",
			mutate: func(c *Config) {
				c.Commands.Build = "  "
				c.Commands.Serve = ""
			},
			wantFields: []string{"commands.build", "commands.serve"},
		},
		{
			name:       "bad constraint",
			mutate:     func(c *Config) { c.Requirements = map[string]string{"node": "newest"} },
			wantFields: []string{"requirements.node"},
		},
		{
			name: "errors sorted by field",
			mutate: func(c *Config) {
				c.Template = "nope"
				c.Commands.Install = ""
				c.Requirements = map[string]string{"npm": "???"}
			},
			wantFields: []string{"commands.install", "requirements.npm", "template"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg, knownTemplates)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			fields := make([]string, 0, len(verrs))
			for _, v := range verrs {
				fields = append(fields, v.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}
