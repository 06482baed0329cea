package util_test

import (
	"testing"

	"github.com/cyltest/api/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestCreateAndCompareArgon2Hash(t *testing.T) {
	hash, err := util.CreateArgon2Hash("s3cret")
	require.NoError(t, err, "create hash")
	require.True(t, util.IsArgon2Hash(hash), "encoded form is recognizable")

	ok, err := util.ComparePasswordAndHash("s3cret", hash)
	require.NoError(t, err, "compare")
	require.True(t, ok, "matching password verifies")

	ok, err = util.ComparePasswordAndHash("wrong", hash)
	require.NoError(t, err, "compare mismatch")
	require.False(t, ok, "wrong password fails")
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := util.CreateArgon2Hash("same")
	require.NoError(t, err)
	h2, err := util.CreateArgon2Hash("same")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2, "fresh salt per hash")
}

func TestCompareRejectsMalformedHash(t *testing.T) {
	_, err := util.ComparePasswordAndHash("x", "not-a-hash")
	require.Error(t, err)
	require.False(t, util.IsArgon2Hash("not-a-hash"))
}
