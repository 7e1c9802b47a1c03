package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_Ordering(t *testing.T) {
	assert.Less(t, SeverityInfo, SeverityWarning)
	assert.Less(t, SeverityWarning, SeverityError)
	assert.Less(t, SeverityError, SeverityFatal)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "INFO", SeverityInfo.String())
	assert.Equal(t, "WARNING", SeverityWarning.String())
	assert.Equal(t, "ERROR", SeverityError.String())
	assert.Equal(t, "FATAL", SeverityFatal.String())
	assert.Equal(t, "Severity(9)", Severity(9).String())
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity("fatal")
	require.NoError(t, err)
	assert.Equal(t, SeverityFatal, s)

	_, err = ParseSeverity("catastrophic")
	require.Error(t, err)
}

func TestProblem_JSON(t *testing.T) {
	p := Problem{Severity: SeverityFatal, Message: "boom."}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"severity":"FATAL","message":"boom."}`, string(data))

	var decoded Problem
	require.NoError(t, json.Unmarshal([]byte(`{"severity":"WARNING","message":"m","remediation":"r"}`), &decoded))
	assert.Equal(t, Problem{Severity: SeverityWarning, Message: "m", Remediation: "r"}, decoded)

	err = json.Unmarshal([]byte(`{"severity":"NOPE"}`), &decoded)
	require.Error(t, err)
}

func TestProblem_String(t *testing.T) {
	assert.Equal(t, "[FATAL] boom.", Problem{Severity: SeverityFatal, Message: "boom."}.String())
	assert.Equal(t, "[ERROR] boom. (fix it)",
		Problem{Severity: SeverityError, Message: "boom.", Remediation: "fix it"}.String())
}

func TestEnvironment_Property(t *testing.T) {
	env := Environment{
		Name: "app",
		PropertySources: []PropertySource{
			{Name: "app-dev.yml", Source: map[string]any{"foo": "dev"}},
			{Name: "app.yml", Source: map[string]any{"foo": "base", "bar": "baz"}},
		},
	}

	v, ok := env.Property("foo")
	require.True(t, ok)
	assert.Equal(t, "dev", v)

	v, ok = env.Property("bar")
	require.True(t, ok)
	assert.Equal(t, "baz", v)

	_, ok = env.Property("missing")
	assert.False(t, ok)
}
