package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rvcat/instruction"
)

func TestStride_IsMemory(t *testing.T) {
	assert.False(t, instruction.Stride{}.IsMemory())
	assert.True(t, instruction.Stride{Base: 0, Stride: 8, Count: 4}.IsMemory())
}

func TestInstruction_Sources(t *testing.T) {
	in := instruction.Instruction{Source1: "a", Source3: "c"}
	assert.Equal(t, [3]string{"a", "", "c"}, in.Sources())
}

func TestMemKind_String(t *testing.T) {
	assert.Equal(t, "none", instruction.MemNone.String())
	assert.Equal(t, "load", instruction.MemLoad.String())
	assert.Equal(t, "store", instruction.MemStore.String())
}
