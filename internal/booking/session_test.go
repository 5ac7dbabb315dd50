package booking

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepTextRoundTrip(t *testing.T) {
	for step, name := range stepNames {
		text, err := step.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))

		var parsed Step
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, step, parsed)
	}

	var s Step
	assert.Error(t, s.UnmarshalText([]byte("bogus")))
}

func TestSessionJSONUsesStepNames(t *testing.T) {
	data, err := json.Marshal(&Session{Step: StepEmail, Name: "Al"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"step":"email"`)

	var sess Session
	require.NoError(t, json.Unmarshal(data, &sess))
	assert.Equal(t, StepEmail, sess.Step)
	assert.Equal(t, "Al", sess.Name)
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	sess, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, sess)

	require.NoError(t, store.Put(ctx, "s1", &Session{Step: StepName}))

	sess, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, StepName, sess.Step)

	// Mutating the returned copy must not affect the stored session.
	sess.Name = "intruder"
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, again.Name)

	require.NoError(t, store.Delete(ctx, "s1"))
	sess, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, sess)
}
