package main

import (
	"errors"
	"os"
	"testing"

	"github.com/QuangTung97/smemlayout"
	"github.com/QuangTung97/smemlayout/allocator"
	smerrors "github.com/QuangTung97/smemlayout/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
pools:
  - name: tmem
    unitBits: 32
    chunks:
      - {name: d, count: 256, dtype: fp32, alignment: 2}
      - {name: a, count: 256, dtype: e4m3, alignment: 4}
      - {name: out, size: 1024, alignment: 2, aliasFirst: true}
`)

	confs, err := parseConfig(data)
	require.Nil(t, err)

	assert.Equal(t, []smemlayout.PoolConfig{
		{
			Name: "tmem",
			Chunks: []smemlayout.ChunkSpec{
				{Name: "d", ChunkConfig: allocator.Append(256, 2)},
				{Name: "a", ChunkConfig: allocator.Append(64, 4)},
				{Name: "out", ChunkConfig: allocator.AliasFirst(1024, 2)},
			},
		},
	}, confs)
}

func TestParseConfig_DefaultUnitBits(t *testing.T) {
	data := []byte(`
pools:
  - name: smem
    chunks:
      - {name: rowMax, count: 128, dtype: fp32, alignment: 16}
`)

	confs, err := parseConfig(data)
	require.Nil(t, err)
	require.Equal(t, 1, len(confs))
	assert.Equal(t, allocator.Append(512, 16), confs[0].Chunks[0].ChunkConfig)
}

func TestParseConfig_Invalid(t *testing.T) {
	table := []struct {
		name     string
		data     string
		expected error
		path     []string
	}{
		{
			name:     "empty",
			data:     ``,
			expected: smerrors.ErrInvalidData,
		},
		{
			name:     "unknown-field",
			data:     "pools:\n  - name: smem\n    colour: red\n",
			expected: smerrors.ErrInvalidData,
		},
		{
			name:     "size-and-count",
			data:     "pools:\n  - name: smem\n    chunks:\n      - {name: x, size: 1, count: 1, dtype: fp32, alignment: 1}\n",
			expected: smerrors.ErrInvalidData,
			path:     []string{"smem", "x"},
		},
		{
			name:     "missing-size",
			data:     "pools:\n  - name: smem\n    chunks:\n      - {alignment: 1}\n",
			expected: smerrors.ErrInvalidData,
			path:     []string{"smem", "0"},
		},
		{
			name:     "unknown-dtype",
			data:     "pools:\n  - name: smem\n    chunks:\n      - {name: x, count: 1, dtype: fp8, alignment: 1}\n",
			expected: smerrors.ErrInvalidData,
			path:     []string{"smem", "x"},
		},
		{
			name:     "dtype-with-size",
			data:     "pools:\n  - name: smem\n    chunks:\n      - {name: x, size: 1, dtype: fp32, alignment: 1}\n",
			expected: smerrors.ErrInvalidData,
			path:     []string{"smem", "x"},
		},
		{
			name:     "negative-count",
			data:     "pools:\n  - name: smem\n    chunks:\n      - {name: x, count: -1, dtype: fp32, alignment: 1}\n",
			expected: smerrors.ErrInvalidData,
			path:     []string{"smem", "x"},
		},
		{
			name:     "count-overflows",
			data:     "pools:\n  - name: smem\n    chunks:\n      - {name: x, count: 9223372036854775807, dtype: fp32, alignment: 1}\n",
			expected: smerrors.ErrOverflow,
			path:     []string{"smem", "x"},
		},
		{
			name:     "negative-unit-bits",
			data:     "pools:\n  - name: tmem\n    unitBits: -8\n",
			expected: smerrors.ErrInvalidData,
			path:     []string{"tmem"},
		},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			confs, err := parseConfig([]byte(e.data))
			assert.Nil(t, confs)
			assert.True(t, errors.Is(err, e.expected), err)

			var smErr *smerrors.Error
			require.True(t, errors.As(err, &smErr))
			assert.Equal(t, e.path, smErr.Path)
		})
	}
}

func TestParseConfig_WideCount(t *testing.T) {
	data := []byte(`
pools:
  - name: smem
    chunks:
      - {name: big, count: 576460752303423488, dtype: fp32, alignment: 1}
`)

	confs, err := parseConfig(data)
	require.Nil(t, err)
	assert.Equal(t, allocator.Append(1<<61, 1), confs[0].Chunks[0].ChunkConfig)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := loadConfigFile("testdata/missing.yaml")
	assert.True(t, errors.Is(err, smerrors.ErrInvalidData))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
