package sl_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pereval-api/internal/lib/sl"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	attr := sl.Err(errors.New("something went wrong"))

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("something went wrong"), attr.Value)
}

func TestErr_NilError(t *testing.T) {
	attr := sl.Err(nil)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "<nil>", attr.Value.String())
}

func TestNew_ByEnv(t *testing.T) {
	tests := []struct {
		env       string
		wantJSON  bool
		wantDebug bool
	}{
		{env: sl.EnvLocal, wantJSON: false, wantDebug: true},
		{env: sl.EnvDev, wantJSON: true, wantDebug: true},
		{env: sl.EnvProd, wantJSON: true, wantDebug: false},
		{env: "staging", wantJSON: true, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := sl.New(tt.env, &buf)

			log.Debug("debug line")
			assert.Equal(t, tt.wantDebug, strings.Contains(buf.String(), "debug line"))

			buf.Reset()
			log.Info("info line", slog.String("op", "test"))
			line := strings.TrimSpace(buf.String())
			require.NotEmpty(t, line)

			var decoded map[string]any
			isJSON := json.Unmarshal([]byte(line), &decoded) == nil
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}
