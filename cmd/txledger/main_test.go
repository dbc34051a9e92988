package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "events.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunTestdata(t *testing.T) {
	want, err := os.ReadFile("testdata/output.csv")
	require.NoError(t, err)

	stdout, stderr, err := execute(t, "testdata/input.csv")
	require.NoError(t, err)

	assert.Equal(t, string(want), stdout)
	assert.Contains(t, stderr, "replay finished")
}

func TestRunScenarios(t *testing.T) {
	header := "type,client,tx,amount\n"

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "reused deposit tx",
			input: "deposit,1,1,1.0\ndeposit,1,1,2.0\n",
			want:  "1,3.0000,0.0000,3.0000,false\n",
		},
		{
			name:  "withdrawal over available",
			input: "deposit,1,1,3.0\nwithdrawal,1,2,1.0\nwithdrawal,1,3,3.0\n",
			want:  "1,2.0000,0.0000,2.0000,false\n",
		},
		{
			name:  "dispute unknown tx",
			input: "deposit,1,1,3.0\ndispute,1,1,\ndispute,1,2,\n",
			want:  "1,0.0000,3.0000,3.0000,false\n",
		},
		{
			name:  "resolve non held tx",
			input: "deposit,1,1,3.0\ndispute,1,1,\nresolve,1,1,\nresolve,1,2,\n",
			want:  "1,3.0000,0.0000,3.0000,false\n",
		},
		{
			name:  "sub precision withdrawal over available",
			input: "deposit,1,1,1.00005\nwithdrawal,1,2,1.00006\n",
			want:  "1,1.0001,0.0000,1.0001,false\n",
		},
		{
			name:  "sub precision amounts accumulate exactly",
			input: "deposit,1,1,0.00005\ndeposit,1,2,0.00005\ndeposit,1,3,0.00005\n",
			want:  "1,0.0002,0.0000,0.0002,false\n",
		},
		{
			name:  "chargeback locks",
			input: "deposit,1,1,3.0\ndispute,1,1,\nchargeback,1,1,\n",
			want:  "1,0.0000,0.0000,0.0000,true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, header+tt.input)

			stdout, _, err := execute(t, path)
			require.NoError(t, err)
			assert.Equal(t, "client,available,held,total,locked\n"+tt.want, stdout)
		})
	}
}

func TestRunFlags(t *testing.T) {
	path := writeInput(t, "type;client;tx;amount\ndeposit;1;1;1.005\n")
	metricsPath := filepath.Join(t.TempDir(), "txledger.prom")

	stdout, stderr, err := execute(t,
		"--delimiter", ";",
		"--precision", "2",
		"--log-format", "json",
		"--log-level", "debug",
		"--metrics-textfile", metricsPath,
		path,
	)
	require.NoError(t, err)

	assert.Equal(t, "client;available;held;total;locked\n1;1.01;0.00;1.01;false\n", stdout)
	assert.True(t, strings.HasPrefix(stderr, "{"), "expected json logs, got %q", stderr)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `txledger_events_processed_total{outcome="applied",type="deposit"} 1`)
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		wantErr string
	}{
		{
			name:    "missing argument",
			args:    func(t *testing.T) []string { return []string{} },
			wantErr: "accepts 1 arg",
		},
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{filepath.Join(t.TempDir(), "nope.csv")}
			},
			wantErr: "no such file",
		},
		{
			name: "malformed row",
			args: func(t *testing.T) []string {
				return []string{writeInput(t, "type,client,tx,amount\ndeposit,1,1,1\nbogus,1,2,1\n")}
			},
			wantErr: "line 3",
		},
		{
			name: "invalid precision",
			args: func(t *testing.T) []string {
				return []string{"--precision=-2", writeInput(t, "type,client,tx,amount\n")}
			},
			wantErr: "AMOUNT_PRECISION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args(t)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.NotContains(t, stdout, "client,available")
		})
	}
}
