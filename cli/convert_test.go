// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/logistics/logistic"
)

func TestConvert_LogitInput(t *testing.T) {
	out, _, err := run(t, "--logit", "convert", "--", "-1.3862943611198906", "0")
	require.NoError(t, err)

	assert.Equal(t, "Logistic{Float64}(-1.38629) ≈ 0.2\nLogistic{Float64}(0) ≈ 0.5\n", out)
}

func TestConvert_ShortestDigits(t *testing.T) {
	out, _, err := run(t, "--digits", "-1", "convert", "0.2")
	require.NoError(t, err)

	assert.Equal(t, "Logistic{Float64}(-1.3862943611198906) ≈ 0.2\n", out)
}

func TestConvert_JSON(t *testing.T) {
	out, _, err := run(t, "--format", "json", "convert", "0.2", "0")
	require.NoError(t, err)

	var resp struct {
		Status string   `json:"status"`
		Data   []Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 2)

	assert.Equal(t, "0.2", resp.Data[0].Name)
	logit, err := strconv.ParseFloat(resp.Data[0].Logit, 64)
	require.NoError(t, err)
	assert.InDelta(t, -1.3862943611198906, logit, 1e-15)

	assert.Equal(t, Result{Name: "0", Logit: "-Inf", Probability: "0", LogProbability: "-Inf"}, resp.Data[1])
}

func TestConvert_OutOfRange(t *testing.T) {
	_, _, err := run(t, "convert", "0.5", "1.5")
	require.Error(t, err)

	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, logistic.ErrDomain)
	assert.Contains(t, err.Error(), `"1.5"`)
}

func TestConvert_NotANumber(t *testing.T) {
	_, _, err := run(t, "convert", "abc")
	require.Error(t, err)

	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestConvert_NoArgs(t *testing.T) {
	_, _, err := run(t, "convert")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestSigmoidCommand(t *testing.T) {
	out, _, err := run(t, "sigmoid", "--", "-Inf", "0", "0.39", "800")
	require.NoError(t, err)

	assert.Equal(t, "0\n0.5\n0.596283\n1\n", out)
}

func TestSigmoidCommand_Float32(t *testing.T) {
	out, _, err := run(t, "--precision", "32", "--digits", "-1", "sigmoid", "0")
	require.NoError(t, err)
	assert.Equal(t, "0.5\n", out)
}

func TestLogitCommand(t *testing.T) {
	out, _, err := run(t, "logit", "0", "0.2", "0.5", "1", "1.5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, []string{"-Inf", "-1.38629", "0", "+Inf", "NaN"}, lines)
}

func TestLogitCommand_JSON(t *testing.T) {
	out, _, err := run(t, "--format", "json", "logit", "0.5")
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"ok","data":[{"input":"0.5","output":"0"}]}`, out)
}
