// SPDX-License-Identifier: MIT

package cli

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Golden files live in testdata/golden; regenerate with
//
//	go test ./cli -run TestGolden -update
func TestGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"calc_add", []string{"calc", "add", "0.5", "0.2"}},
		{"calc_extreme_logit", []string{"--logit", "calc", "add", "--", "-6931.471805599453", "-6931.84908885367"}},
		{"convert_multi", []string{"convert", "0", "0.2", "0.5", "1"}},
		{"convert_float32", []string{"--precision", "32", "convert", "0.2"}},
		{"batch_cases", []string{"batch", filepath.Join("testdata", "cases.yaml")}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}
