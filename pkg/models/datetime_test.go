package models

import (
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdetools/sqlgen/pkg/literal"
)

func TestDateTime_cbor_roundtrip(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		dt   DateTime
	}{
		{
			name: "current time",
			// .UTC() strips the monotonic clock reading.
			dt: DateTime{Time: time.Now().UTC()},
		},
		{
			name: "specific time",
			dt:   DateTime{Time: time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC)},
		},
		{
			name: "before epoch",
			dt:   DateTime{Time: time.Date(1960, 1, 2, 3, 4, 5, 6000, time.UTC)},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			data, err := tc.dt.MarshalCBOR()
			require.NoError(t, err)

			t.Run("UnmarshalCBOR", func(t *testing.T) {
				var dt DateTime
				require.NoError(t, dt.UnmarshalCBOR(data))
				assert.True(t, tc.dt.Equal(dt.Time), "got %v", dt)
			})

			t.Run("cbor.Marshal", func(t *testing.T) {
				cborData, marshalErr := cbor.Marshal(tc.dt)
				require.NoError(t, marshalErr)
				assert.Equal(t, data, cborData)
			})

			t.Run("EncMode.Marshal", func(t *testing.T) {
				encoded, marshalErr := EncMode().Marshal(tc.dt)
				require.NoError(t, marshalErr)
				assert.Equal(t, data, encoded)
			})

			t.Run("DecMode.Unmarshal to any", func(t *testing.T) {
				var v any
				require.NoError(t, DecMode().Unmarshal(data, &v))
				dt, ok := v.(DateTime)
				require.True(t, ok, "got %T", v)
				assert.True(t, tc.dt.Equal(dt.Time))
			})
		})
	}
}

func TestDateTime_zero(t *testing.T) {
	t.Parallel()

	data, err := DateTime{}.MarshalCBOR()
	require.NoError(t, err)

	dt := DateTime{Time: time.Now()}
	require.NoError(t, dt.UnmarshalCBOR(data))
	assert.True(t, dt.IsZero())
	assert.Equal(t, "NULL", dt.SQLLiteral())
}

func TestDateTime_SQLLiteral(t *testing.T) {
	t.Parallel()

	dt := DateTime{Time: time.Date(2024, 10, 30, 12, 5, 0, 0, time.UTC)}
	assert.Equal(t, "2024-10-30 12:05:00", dt.String())
	assert.Equal(t, `"2024-10-30 12:05:00"`, literal.Serialize(dt))

	withMicros := DateTime{Time: time.Date(2024, 10, 30, 12, 5, 0, 123456789, time.UTC)}
	assert.Equal(t, `"2024-10-30 12:05:00.123456"`, withMicros.SQLLiteral())
}

func TestDateTime_unexpectedTag(t *testing.T) {
	t.Parallel()

	data, err := cbor.Marshal(cbor.Tag{Number: 99, Content: []int64{1, 2}})
	require.NoError(t, err)

	var dt DateTime
	assert.ErrorContains(t, dt.UnmarshalCBOR(data), "unexpected tag number: got 99, want 12")
}
