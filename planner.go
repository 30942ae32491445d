package smemlayout

import (
	"strconv"

	"github.com/QuangTung97/smemlayout/allocator"
	"github.com/QuangTung97/smemlayout/errors"
)

// ChunkSpec is a named chunk of a pool
type ChunkSpec struct {
	Name string
	allocator.ChunkConfig
}

// PoolConfig ...
type PoolConfig struct {
	Name   string
	Chunks []ChunkSpec
}

// Pool is the plan of one physical pool, queried by chunk name
type Pool struct {
	name  string
	plan  *allocator.ChunkPlan
	names []string
	index map[string]int
}

// Planner owns the independent pools of one configuration
type Planner struct {
	pools  []*Pool
	byName map[string]*Pool
}

func emptyNameError(path ...string) error {
	return errors.New(errors.PhaseConfig, errors.KindEmptyName).
		Path(path...).
		Detail("name must not be empty").
		Build()
}

// NewPool ...
func NewPool(conf PoolConfig) (*Pool, error) {
	if conf.Name == "" {
		return nil, emptyNameError()
	}

	chunks := make([]allocator.ChunkConfig, 0, len(conf.Chunks))
	names := make([]string, 0, len(conf.Chunks))
	index := make(map[string]int, len(conf.Chunks))

	for i, c := range conf.Chunks {
		if c.Name == "" {
			return nil, errors.WithPrefix(emptyNameError(strconv.Itoa(i)), conf.Name)
		}
		if _, existed := index[c.Name]; existed {
			return nil, errors.DuplicateName([]string{conf.Name}, c.Name)
		}
		index[c.Name] = i
		names = append(names, c.Name)
		chunks = append(chunks, c.ChunkConfig)
	}

	plan, err := allocator.NewChunkPlan(chunks)
	if err != nil {
		return nil, errors.WithPrefix(renameChunkError(err, names), conf.Name)
	}

	return &Pool{
		name:  conf.Name,
		plan:  plan,
		names: names,
		index: index,
	}, nil
}

// renameChunkError replaces the chunk index in a plan error's path with the
// chunk name.
func renameChunkError(err error, names []string) error {
	e, ok := err.(*errors.Error)
	if !ok || len(e.Path) != 1 {
		return err
	}
	i, convErr := strconv.Atoi(e.Path[0])
	if convErr != nil || i < 0 || i >= len(names) {
		return err
	}
	cp := *e
	cp.Path = []string{names[i]}
	return &cp
}

// Name ...
func (p *Pool) Name() string {
	return p.name
}

// Plan returns the underlying chunk plan
func (p *Pool) Plan() *allocator.ChunkPlan {
	return p.plan
}

// TotalSize ...
func (p *Pool) TotalSize() int {
	return p.plan.TotalSize()
}

// Names returns chunk names in declaration order
func (p *Pool) Names() []string {
	return append([]string(nil), p.names...)
}

// Index returns the position of the named chunk
func (p *Pool) Index(name string) (int, error) {
	i, ok := p.index[name]
	if !ok {
		return 0, errors.UnknownName([]string{p.name}, name)
	}
	return i, nil
}

// Offset returns the start of the named chunk
func (p *Pool) Offset(name string) (int, error) {
	i, err := p.Index(name)
	if err != nil {
		return 0, err
	}
	return p.plan.MustOffset(i), nil
}

// MustOffset is like Offset but panics on an unknown name
func (p *Pool) MustOffset(name string) int {
	offset, err := p.Offset(name)
	if err != nil {
		panic(err)
	}
	return offset
}

// NewPlanner builds every pool. Pool names must be unique.
func NewPlanner(confs ...PoolConfig) (*Planner, error) {
	result := &Planner{
		pools:  make([]*Pool, 0, len(confs)),
		byName: make(map[string]*Pool, len(confs)),
	}

	for _, conf := range confs {
		if _, existed := result.byName[conf.Name]; existed {
			return nil, errors.DuplicateName(nil, conf.Name)
		}
		pool, err := NewPool(conf)
		if err != nil {
			return nil, err
		}
		result.pools = append(result.pools, pool)
		result.byName[conf.Name] = pool
	}

	return result, nil
}

// Pools returns the pools in declaration order
func (p *Planner) Pools() []*Pool {
	return append([]*Pool(nil), p.pools...)
}

// Pool ...
func (p *Planner) Pool(name string) (*Pool, error) {
	pool, ok := p.byName[name]
	if !ok {
		return nil, errors.UnknownName(nil, name)
	}
	return pool, nil
}

// Offset returns the start of a chunk inside the named pool
func (p *Planner) Offset(pool string, chunk string) (int, error) {
	pl, err := p.Pool(pool)
	if err != nil {
		return 0, err
	}
	return pl.Offset(chunk)
}

// TotalSize returns the capacity the named pool needs
func (p *Planner) TotalSize(pool string) (int, error) {
	pl, err := p.Pool(pool)
	if err != nil {
		return 0, err
	}
	return pl.TotalSize(), nil
}
