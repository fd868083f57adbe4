package kernel_test

import (
	"testing"

	"pedido/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.False(t, id.IsZero())
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid_string", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid_string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong_length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("nil_uuid_is_rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.Error(t, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	copyOfFirst := first

	assert.True(t, first.IsEqual(copyOfFirst))
	assert.False(t, first.IsEqual(second))
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed_uuid_is_valid", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.UUID

		require.Error(t, id.Validate())
		assert.True(t, id.IsZero())
	})
}
