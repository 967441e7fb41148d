package contract

import (
	"testing"
	"time"

	"github.com/repograde/repograde/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{
			name:      "plain repo URL",
			input:     "https://github.com/acme/widget",
			wantOwner: "acme",
			wantName:  "widget",
		},
		{
			name:      "trailing slash",
			input:     "https://github.com/acme/widget/",
			wantOwner: "acme",
			wantName:  "widget",
		},
		{
			name:      "dot git suffix",
			input:     "https://github.com/acme/widget.git",
			wantOwner: "acme",
			wantName:  "widget",
		},
		{
			name:      "dots and dashes in name",
			input:     "https://github.com/acme-org/my.widget-v2",
			wantOwner: "acme-org",
			wantName:  "my.widget-v2",
		},
		{
			name:    "http scheme rejected",
			input:   "http://github.com/acme/widget",
			wantErr: true,
		},
		{
			name:    "other host rejected",
			input:   "https://gitlab.com/acme/widget",
			wantErr: true,
		},
		{
			name:    "missing repo segment",
			input:   "https://github.com/acme",
			wantErr: true,
		},
		{
			name:    "extra path segments",
			input:   "https://github.com/acme/widget/tree/main",
			wantErr: true,
		},
		{
			name:    "owner with leading dash",
			input:   "https://github.com/-acme/widget",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bare words",
			input:   "acme/widget",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := ParseRepoURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRepoURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		RepoURLStr:   "https://github.com/acme/widget",
		Output:       "text",
		Color:        "yes",
		StoreBackend: "memory",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput(), true))

	assert.Equal(t, "https://github.com/acme/widget", cfg.RepoURL)
	assert.Equal(t, "acme", cfg.Owner)
	assert.Equal(t, "widget", cfg.Name)
	assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, DefaultFetchWorkers, cfg.FetchWorkers)
	assert.Equal(t, DefaultRetryLimit, cfg.RetryLimit)
	assert.Equal(t, DefaultListLimit, cfg.ListLimit)
	assert.Equal(t, schema.MemoryBackend, cfg.StoreBackend)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidateRejectsBadOutput(t *testing.T) {
	input := validInput()
	input.Output = "xml"
	err := ProcessAndValidate(&Config{}, input, true)
	assert.ErrorContains(t, err, "invalid output mode")
}

func TestProcessAndValidateRejectsBadBackend(t *testing.T) {
	input := validInput()
	input.StoreBackend = "redis"
	err := ProcessAndValidate(&Config{}, input, true)
	assert.ErrorContains(t, err, "invalid store backend")
}

func TestProcessAndValidateRejectsBadTimeout(t *testing.T) {
	input := validInput()
	input.FetchTimeout = "soon"
	err := ProcessAndValidate(&Config{}, input, true)
	assert.ErrorContains(t, err, "invalid fetch timeout")

	input.FetchTimeout = "-5s"
	err = ProcessAndValidate(&Config{}, input, true)
	assert.ErrorContains(t, err, "must be positive")
}

func TestProcessAndValidateParsesTimeout(t *testing.T) {
	input := validInput()
	input.FetchTimeout = "90s"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input, true))
	assert.Equal(t, 90*time.Second, cfg.FetchTimeout)
}

func TestProcessAndValidateSkipsRepoWhenNotRequired(t *testing.T) {
	input := validInput()
	input.RepoURLStr = ""
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input, false))
	assert.Empty(t, cfg.RepoURL)
}

func TestProcessAndValidateCapsListLimit(t *testing.T) {
	input := validInput()
	input.Limit = MaxListLimit + 500
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input, true))
	assert.Equal(t, MaxListLimit, cfg.ListLimit)
}
