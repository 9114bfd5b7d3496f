package hookctl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/hooks/pkg/errors"
	"github.com/arthur-debert/hooks/pkg/testutil"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes hookctl with args against an empty config home
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testutil.NewTestEnvironment(t)
	return execute(t, args...)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestDescribeGolden(t *testing.T) {
	out, err := run(t, "describe", "greeting.salutation", "--format", "yaml")

	require.NoError(t, err)
	golden(t).Assert(t, "describe_salutation", []byte(out))
}

func TestGreetGolden(t *testing.T) {
	out, err := run(t, "greet", "ada lovelace", "--format", "json")

	require.NoError(t, err)
	golden(t).Assert(t, "greet_json", []byte(out))
}

func TestInvokeGolden(t *testing.T) {
	out, err := run(t, "invoke", "greeting.decorate", "Hi there", "-f", "yaml")

	require.NoError(t, err)
	golden(t).Assert(t, "invoke_decorate", []byte(out))
}

func TestListCmd(t *testing.T) {
	out, err := run(t, "list")

	require.NoError(t, err)
	for _, name := range []string{
		"greeting.announce",
		"greeting.check",
		"greeting.decorate",
		"greeting.salutation",
		"greeting.validate",
	} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "(string) -> (string, error)")
}

func TestInvokeTry(t *testing.T) {
	out, err := run(t, "invoke", "--try", "greeting.check", "Ada", "--format", "json")

	require.NoError(t, err)
	assert.JSONEq(t, `{"hook":"greeting.check","signature":"(string) -> (string, error)","results":["Ada"]}`, out)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"unknown hook", []string{"invoke", "nope", "x"}, errors.ErrHookNotFound},
		{"shape mismatch", []string{"invoke", "--try", "greeting.decorate", "x"}, errors.ErrHookNotFound},
		{"rejected name", []string{"greet", "r2d2"}, errors.ErrInvalidInput},
		{"describe unknown", []string{"describe", "nope"}, errors.ErrHookNotFound},
		{"missing config", []string{"--config", filepath.Join(os.TempDir(), "hooks-missing.toml"), "list"}, errors.ErrConfigLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)

			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestGreetUsesConfiguredName(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("HOOKS_GREETING_NAME", "grace")

	out, err := execute(t, "greet", "--format", "yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "Good day, Grace.")
}

func TestVersionCmd(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("HOOKS_OUTPUT_FORMAT", "xml")

	out, err := execute(t, "version")

	require.NoError(t, err, "version does not load the configuration")
	assert.Contains(t, out, "hookctl version dev")
}

func TestNoCommand(t *testing.T) {
	_, err := run(t)
	assert.EqualError(t, err, MsgErrNoCommand)
}

func TestExecuteRendersErrorGolden(t *testing.T) {
	testutil.NewTestEnvironment(t)
	var stdout, stderr bytes.Buffer

	code := Execute([]string{"invoke", "greeting.check", "Ada", "-f", "json"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	golden(t).Assert(t, "invoke_mismatch_json", stderr.Bytes())
}

func TestExecuteErrorOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "table renderer",
			args: []string{"invoke", "nope", "x"},
			want: "Error: [HOOK_NOT_FOUND] no matching hooks found for nope\n",
		},
		{
			name: "before a renderer exists",
			args: []string{"--config", filepath.Join(os.TempDir(), "hooks-missing.toml"), "list"},
			want: "Error: [CONFIG_LOAD]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.NewTestEnvironment(t)
			var stdout, stderr bytes.Buffer

			code := Execute(tt.args, &stdout, &stderr)

			assert.Equal(t, 1, code)
			assert.True(t, strings.HasPrefix(stderr.String(), tt.want), "got %q", stderr.String())
		})
	}
}

func TestExecuteSuccess(t *testing.T) {
	testutil.NewTestEnvironment(t)
	var stdout, stderr bytes.Buffer

	code := Execute([]string{"greet", "ada", "-f", "yaml"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "Good day, Ada.")
}
