package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitResponseRequest_Answers(t *testing.T) {
	var req SubmitResponseRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"formId": "f",
		"responses": {"a": "teks", "b": 5, "c": 2.5, "d": true, "e": null, "f": 1e21}
	}`), &req))

	answers, invalid := req.Answers()
	assert.Empty(t, invalid)
	assert.Equal(t, map[string]string{
		"a": "teks",
		"b": "5",
		"c": "2.5",
		"d": "true",
		"e": "",
		"f": "1000000000000000000000",
	}, answers)
}

func TestSubmitResponseRequest_AnswersRejectsNested(t *testing.T) {
	var req SubmitResponseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"formId":"f","responses":{"ok":"x","obj":{"k":1},"arr":[1]}}`), &req))

	answers, invalid := req.Answers()
	assert.Equal(t, map[string]string{"ok": "x"}, answers)
	assert.Contains(t, invalid, "responses.obj")
	assert.Contains(t, invalid, "responses.arr")
	assert.Len(t, invalid, 2)
}
