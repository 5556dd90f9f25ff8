package tar

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTripS7(t *testing.T) {
	files := map[string][]byte{
		"a.json5": []byte("{ a: 1 }"),
		"b.csv":   []byte("id,name\n1,Ann\n"),
	}

	var buf bytes.Buffer
	require.NoError(t, Pack(&buf, files))

	got, err := Unpack(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(files))
	for name, want := range files {
		assert.Equal(t, want, got[name], "entry %q", name)
	}
}

func TestUnpackEmptyArchive(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Pack(&buf, nil))

	got, err := Unpack(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}
