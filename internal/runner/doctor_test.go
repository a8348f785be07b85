package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticProbe(versions map[string]string) VersionProbe {
	return func(_ context.Context, tool string) (string, error) {
		v, ok := versions[tool]
		if !ok {
			return "", errors.New(tool + " not found on PATH")
		}
		return v, nil
	}
}

func TestParseToolVersion(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "v20.11.1\n", want: "20.11.1"},
		{raw: "10.2.4", want: "10.2.4"},
		{raw: "git version 2.43.0", want: "2.43.0"},
		{raw: "18", want: "18.0.0"},
		{raw: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := ParseToolVersion(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestDoctor_Check(t *testing.T) {
	d := NewDoctor(map[string]string{
		"node": ">= 18.0.0",
		"npm":  ">= 9.0.0",
		"pnpm": ">= 8.0.0",
	}, staticProbe(map[string]string{
		"node": "v20.11.1",
		"npm":  "8.19.4",
	}))

	results := d.Check(context.Background())
	require.Len(t, results, 3)

	assert.Equal(t, "node", results[0].Tool)
	assert.True(t, results[0].OK())
	assert.Equal(t, "20.11.1", results[0].Version)

	assert.Equal(t, "npm", results[1].Tool)
	assert.False(t, results[1].OK())
	assert.Equal(t, "8.19.4", results[1].Version)

	assert.Equal(t, "pnpm", results[2].Tool)
	assert.False(t, results[2].OK())
	assert.Contains(t, results[2].Err.Error(), "not found")
}

func TestDoctor_InvalidConstraint(t *testing.T) {
	d := NewDoctor(map[string]string{"node": "not a constraint"}, staticProbe(map[string]string{"node": "20.0.0"}))

	results := d.Check(context.Background())
	require.Len(t, results, 1)
	assert.ErrorContains(t, results[0].Err, "invalid constraint")
}

func TestDoctor_Report(t *testing.T) {
	d := NewDoctor(nil, nil)

	t.Run("all satisfied", func(t *testing.T) {
		var buf bytes.Buffer
		err := d.Report(&buf, []CheckResult{{Tool: "node", Version: "20.0.0", Constraint: ">= 18.0.0"}})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "✔")
		assert.Contains(t, buf.String(), "node 20.0.0 (>= 18.0.0)")
	})

	t.Run("one failing", func(t *testing.T) {
		var buf bytes.Buffer
		err := d.Report(&buf, []CheckResult{
			{Tool: "node", Version: "20.0.0", Constraint: ">= 18.0.0"},
			{Tool: "npm", Constraint: ">= 9.0.0", Err: errors.New("npm not found on PATH")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 requirements not met")
		assert.Contains(t, buf.String(), "✘")
		assert.Contains(t, buf.String(), "npm: npm not found on PATH")
	})
}
