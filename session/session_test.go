package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvcat/session"
)

const progJSON = `{
	"name": "p", "n": 1,
	"instruction_list": [
		{"type": "ADD", "text": "add a,c1,c2", "destin": "a", "constant": "1"}
	]
}`

const procJSON = `{
	"name": "proc", "dispatch": 1, "retire": 1,
	"latencies": {"ADD": 1},
	"ports": {"P0": ["ADD"]}
}`

func TestSession_StaticRequiresBothLoaded(t *testing.T) {
	s := session.New()
	_, err := s.Static()
	assert.ErrorIs(t, err, session.ErrNoProgram)

	require.NoError(t, s.LoadProgramJSON([]byte(progJSON)))
	_, err = s.Static()
	assert.ErrorIs(t, err, session.ErrNoProcessor)

	require.NoError(t, s.LoadProcessorJSON([]byte(procJSON)))
	report, err := s.Static()
	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestSession_RunProducesResult(t *testing.T) {
	s := session.New()
	require.NoError(t, s.LoadProgramJSON([]byte(progJSON)))
	require.NoError(t, s.LoadProcessorJSON([]byte(procJSON)))

	result, err := s.Run(5, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Instructions)
}
