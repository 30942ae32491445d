package main

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/QuangTung97/smemlayout"
	"github.com/QuangTung97/smemlayout/allocator"
	"github.com/QuangTung97/smemlayout/errors"
	"gopkg.in/yaml.v3"
)

const defaultUnitBits = 8

type fileConfig struct {
	Pools []filePool `yaml:"pools"`
}

type filePool struct {
	Name     string      `yaml:"name"`
	UnitBits int         `yaml:"unitBits"`
	Chunks   []fileChunk `yaml:"chunks"`
}

type fileChunk struct {
	Name       string `yaml:"name"`
	Size       *int   `yaml:"size"`
	Count      *int   `yaml:"count"`
	Dtype      string `yaml:"dtype"`
	Alignment  int    `yaml:"alignment"`
	AliasFirst bool   `yaml:"aliasFirst"`
}

func loadConfigFile(path string) ([]smemlayout.PoolConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Value(path).
			Cause(err).
			Detail("failed to read %s", path).
			Build()
	}
	return parseConfig(data)
}

func parseConfig(data []byte) ([]smemlayout.PoolConfig, error) {
	var conf fileConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "failed to parse pool description")
	}

	if len(conf.Pools) == 0 {
		return nil, errors.InvalidData(nil, "no pools declared")
	}

	result := make([]smemlayout.PoolConfig, 0, len(conf.Pools))
	for i, p := range conf.Pools {
		pool, err := p.toPoolConfig(i)
		if err != nil {
			return nil, err
		}
		result = append(result, pool)
	}
	return result, nil
}

func (p filePool) toPoolConfig(index int) (smemlayout.PoolConfig, error) {
	poolName := p.Name
	if poolName == "" {
		poolName = strconv.Itoa(index)
	}

	unitBits := p.UnitBits
	if unitBits == 0 {
		unitBits = defaultUnitBits
	}
	if unitBits < 0 {
		return smemlayout.PoolConfig{}, errors.InvalidData([]string{poolName},
			fmt.Sprintf("unitBits %d must be positive", unitBits))
	}

	chunks := make([]smemlayout.ChunkSpec, 0, len(p.Chunks))
	for i, c := range p.Chunks {
		chunkName := c.Name
		if chunkName == "" {
			chunkName = strconv.Itoa(i)
		}

		size, err := c.units(unitBits)
		if err != nil {
			return smemlayout.PoolConfig{}, errors.WithPrefix(err, poolName, chunkName)
		}

		conf := allocator.Append(size, c.Alignment)
		if c.AliasFirst {
			conf = allocator.AliasFirst(size, c.Alignment)
		}
		chunks = append(chunks, smemlayout.ChunkSpec{Name: c.Name, ChunkConfig: conf})
	}

	return smemlayout.PoolConfig{Name: p.Name, Chunks: chunks}, nil
}

// units returns the chunk size in pool units, from either size or count and dtype
func (c fileChunk) units(unitBits int) (int, error) {
	switch {
	case c.Size != nil && c.Count != nil:
		return 0, errors.InvalidData(nil, "size and count are mutually exclusive")
	case c.Size != nil:
		if c.Dtype != "" {
			return 0, errors.InvalidData(nil, "dtype requires count instead of size")
		}
		return *c.Size, nil
	case c.Count != nil:
		if *c.Count < 0 {
			return 0, errors.InvalidData(nil, fmt.Sprintf("count %d is negative", *c.Count))
		}
		dt, err := smemlayout.ParseDtype(c.Dtype)
		if err != nil {
			return 0, err
		}
		return smemlayout.UnitsFor(*c.Count, dt, unitBits)
	default:
		return 0, errors.InvalidData(nil, "one of size or count is required")
	}
}
