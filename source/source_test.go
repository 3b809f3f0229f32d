package source_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit"
	"github.com/dmitrymomot/recordkit/source"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("decodes an array of objects", func(t *testing.T) {
		t.Parallel()

		records, err := source.Decode(strings.NewReader(`[
			{"email": "a@example.com", "age": 30},
			{"email": "b@example.com", "age": 31.5}
		]`))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "a@example.com", records[0]["email"])
	})

	t.Run("numbers keep integer and float identity", func(t *testing.T) {
		t.Parallel()

		records, err := source.Decode(strings.NewReader(`[{"count": 7, "ratio": 0.5}]`))
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, json.Number("7"), records[0]["count"])
		assert.Equal(t, recordkit.KindInt, recordkit.KindOf(records[0]["count"]))
		assert.Equal(t, recordkit.KindFloat, recordkit.KindOf(records[0]["ratio"]))
	})

	t.Run("empty array yields empty batch", func(t *testing.T) {
		t.Parallel()

		records, err := source.Decode(strings.NewReader(`[]`))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("top-level object is not an array", func(t *testing.T) {
		t.Parallel()

		_, err := source.Decode(strings.NewReader(`{"email": "a@example.com"}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrNotArray)
		assert.ErrorIs(t, err, source.ErrInvalidSource)
	})

	t.Run("non-object element rejected with its index", func(t *testing.T) {
		t.Parallel()

		_, err := source.Decode(strings.NewReader(`[{"ok": true}, "rogue"]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrNotObject)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("malformed JSON wraps the sentinel", func(t *testing.T) {
		t.Parallel()

		_, err := source.Decode(strings.NewReader(`[{"email": `))
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrInvalidSource)
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		t.Parallel()

		_, err := source.Decode(strings.NewReader(`[] {"more": true}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrInvalidSource)
	})
}

func TestDecodeNDJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes one object per line", func(t *testing.T) {
		t.Parallel()

		records, err := source.DecodeNDJSON(strings.NewReader(
			"{\"id\": 1}\n{\"id\": 2}\n{\"id\": 3}\n"))
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, json.Number("2"), records[1]["id"])
	})

	t.Run("empty input yields empty batch", func(t *testing.T) {
		t.Parallel()

		records, err := source.DecodeNDJSON(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("non-object record rejected", func(t *testing.T) {
		t.Parallel()

		_, err := source.DecodeNDJSON(strings.NewReader("{\"id\": 1}\n[1, 2]\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrNotObject)
		assert.Contains(t, err.Error(), "record 2")
	})

	t.Run("malformed line wraps the sentinel", func(t *testing.T) {
		t.Parallel()

		_, err := source.DecodeNDJSON(strings.NewReader("{\"id\": }\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrInvalidSource)
	})
}

func TestRecords(t *testing.T) {
	t.Parallel()

	t.Run("record slice passes through", func(t *testing.T) {
		t.Parallel()

		in := []recordkit.Record{{"a": 1}}
		out, err := source.Records(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("map slice converts", func(t *testing.T) {
		t.Parallel()

		out, err := source.Records([]map[string]any{{"a": 1}, {"b": 2}})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, recordkit.Record{"a": 1}, out[0])
	})

	t.Run("any slice of objects converts", func(t *testing.T) {
		t.Parallel()

		out, err := source.Records([]any{
			map[string]any{"a": 1},
			recordkit.Record{"b": 2},
		})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, recordkit.Record{"b": 2}, out[1])
	})

	t.Run("any slice with a non-object element", func(t *testing.T) {
		t.Parallel()

		_, err := source.Records([]any{map[string]any{"a": 1}, 42})
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrNotObject)
	})

	t.Run("typed non-object slice rejected element-wise", func(t *testing.T) {
		t.Parallel()

		_, err := source.Records([]int{1, 2, 3})
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrNotObject)
	})

	t.Run("non-sequence input rejected", func(t *testing.T) {
		t.Parallel()

		for _, input := range []any{
			map[string]any{"a": 1},
			"a string is not a sequence",
			42,
			nil,
		} {
			_, err := source.Records(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, source.ErrNotArray)
		}
	})
}
