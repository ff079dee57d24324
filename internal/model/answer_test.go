package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValueUnmarshal(t *testing.T) {
	var m AnswerMap
	payload := `{"r1":"yes","r2":"no","q9":4}`
	require.NoError(t, json.Unmarshal([]byte(payload), &m))

	assert.Equal(t, ChoiceAnswer("yes"), m["r1"])
	assert.Equal(t, ChoiceAnswer("no"), m["r2"])
	assert.Equal(t, RatingAnswer(4), m["q9"])
}

func TestAnswerValueUnmarshalRejectsOtherShapes(t *testing.T) {
	var a AnswerValue
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{"v":1}`), &a))
	assert.Error(t, json.Unmarshal([]byte(`true`), &a))
}

func TestAnswerValueMarshalStaysBare(t *testing.T) {
	// On the wire answers stay a bare string or number, never an object.
	out, err := json.Marshal(AnswerMap{"r1": ChoiceAnswer("yes")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"r1":"yes"}`, string(out))

	out, err = json.Marshal(AnswerMap{"q9": RatingAnswer(5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"q9":5}`, string(out))
}

func TestAnswerValueRoundTrip(t *testing.T) {
	original := AnswerMap{
		"r1": ChoiceAnswer("sometimes"),
		"q2": RatingAnswer(1),
	}
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded AnswerMap
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
