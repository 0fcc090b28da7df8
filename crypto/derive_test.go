package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAuthority_Deterministic(t *testing.T) {
	programID, _, err := GenerateKeyPair()
	require.NoError(t, err)

	id1, bump1, err := DeriveAuthority(programID, []byte("escrow"))
	require.NoError(t, err)
	id2, bump2, err := DeriveAuthority(programID, []byte("escrow"))
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Equal(t, bump1, bump2)
	assert.False(t, id1.IsZero())
}

func TestDeriveAuthority_SeedsMatter(t *testing.T) {
	programID, _, err := GenerateKeyPair()
	require.NoError(t, err)

	id1, _, err := DeriveAuthority(programID, []byte("escrow"))
	require.NoError(t, err)
	id2, _, err := DeriveAuthority(programID, []byte("escrow"), []byte("aux"))
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func TestDeriveAuthority_ProgramMatters(t *testing.T) {
	programA, _, err := GenerateKeyPair()
	require.NoError(t, err)
	programB, _, err := GenerateKeyPair()
	require.NoError(t, err)

	idA, _, err := DeriveAuthority(programA, []byte("escrow"))
	require.NoError(t, err)
	idB, _, err := DeriveAuthority(programB, []byte("escrow"))
	require.NoError(t, err)

	assert.NotEqual(t, idA, idB)
}

func TestAuthorityProof_Valid(t *testing.T) {
	programID, _, err := GenerateKeyPair()
	require.NoError(t, err)

	proof, err := MintAuthorityProof(programID, []byte("escrow"), []byte("record"))
	require.NoError(t, err)

	assert.True(t, proof.Valid(programID))

	derived, bump, err := DeriveAuthority(programID, []byte("escrow"), []byte("record"))
	require.NoError(t, err)
	assert.Equal(t, derived, proof.Authority())
	assert.Equal(t, bump, proof.Bump())
}

func TestAuthorityProof_WrongProgram(t *testing.T) {
	programA, _, err := GenerateKeyPair()
	require.NoError(t, err)
	programB, _, err := GenerateKeyPair()
	require.NoError(t, err)

	proof, err := MintAuthorityProof(programA, []byte("escrow"))
	require.NoError(t, err)

	assert.False(t, proof.Valid(programB))
}
