package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/errors"
)

// scriptedPrompter answers questions from a fixed script and records the
// keys it was asked.
type scriptedPrompter struct {
	answers map[string]string
	asked   []string
	failOn  string
}

func (s *scriptedPrompter) Ask(_ context.Context, q Question) (string, error) {
	s.asked = append(s.asked, q.Key)
	if q.Key == s.failOn {
		return "", fmt.Errorf("%s: %w", q.Key, oerrors.ErrAborted)
	}
	return s.answers[q.Key], nil
}

func TestFlow_Run(t *testing.T) {
	tests := []struct {
		name       string
		askName    bool
		answers    map[string]string
		wantAsked  []string
		wantResult Answers
	}{
		{
			name:    "install declined stops the flow",
			askName: true,
			answers: map[string]string{
				KeyComponentName: "foo-bar",
				KeyInstall:       "n",
			},
			wantAsked:  []string{KeyComponentName, KeyInstall},
			wantResult: Answers{ComponentName: "foo-bar", Install: "n"},
		},
		{
			name:    "build declined skips serve",
			askName: true,
			answers: map[string]string{
				KeyComponentName: "foo-bar",
				KeyInstall:       "yes",
				KeyBuild:         "No",
			},
			wantAsked:  []string{KeyComponentName, KeyInstall, KeyBuild},
			wantResult: Answers{ComponentName: "foo-bar", Install: "yes", Build: "no"},
		},
		{
			name:    "all affirmative",
			askName: true,
			answers: map[string]string{
				KeyComponentName: "foo-bar",
				KeyInstall:       "Y",
				KeyBuild:         "y",
				KeyServe:         "YES",
			},
			wantAsked:  []string{KeyComponentName, KeyInstall, KeyBuild, KeyServe},
			wantResult: Answers{ComponentName: "foo-bar", Install: "y", Build: "y", Serve: "yes"},
		},
		{
			name:    "component name not asked",
			askName: false,
			answers: map[string]string{
				KeyInstall: "n",
			},
			wantAsked:  []string{KeyInstall},
			wantResult: Answers{Install: "n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedPrompter{answers: tt.answers}

			got, err := NewFlow(p, tt.askName).Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantAsked, p.asked)
			assert.Equal(t, tt.wantResult, got)
		})
	}
}

func TestFlow_AbortPropagates(t *testing.T) {
	p := &scriptedPrompter{
		answers: map[string]string{KeyComponentName: "foo-bar", KeyInstall: "y"},
		failOn:  KeyBuild,
	}

	got, err := NewFlow(p, true).Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrAborted))
	assert.Equal(t, Answers{}, got, "no partial answers on abort")
}

func TestAnswers_Gates(t *testing.T) {
	a := Answers{Install: "y", Build: "n"}
	assert.True(t, a.WantsInstall())
	assert.False(t, a.WantsBuild())
	assert.False(t, a.WantsServe())
}
