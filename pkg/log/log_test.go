package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldsAreMerged(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetJSON(true)

	Info("hello", Fields{"seed": 12345}, Err(errors.New("boom")))

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, "hello", out["msg"])
	require.Equal(t, float64(12345), out["seed"])
	require.Equal(t, "boom", out["1.error"])
	require.Equal(t, "*errors.errorString", out["1.type"])
}

func TestDebugIsSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetDebug(false)

	Debug("invisible", Fields{"k": "v"})
	require.Zero(t, buf.Len())

	SetDebug(true)
	defer SetDebug(false)
	Debug("visible")
	require.NotZero(t, buf.Len())
}
