// Package pool recycles the token buffers passed between the expansion and
// assignment stages of the parser.
package pool

import "sync"

// Pool is a type-safe wrapper around sync.Pool with an optional reset hook.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// NewPool creates a pool using factory to build new objects.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool whose objects are reset before reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns obj to the pool. Nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// TokenPool pools string slices. Slices grown past maxCap are dropped on
// Put so one huge response file does not pin memory.
type TokenPool struct {
	*Pool[[]string]
	maxCap int
}

// NewTokenPool creates a token pool whose slices start at defaultCap.
func NewTokenPool(defaultCap, maxCap int) *TokenPool {
	return &TokenPool{
		Pool: NewPoolWithReset(
			func() *[]string {
				tokens := make([]string, 0, defaultCap)
				return &tokens
			},
			func(tokens *[]string) {
				clear(*tokens)
				*tokens = (*tokens)[:0]
			},
		),
		maxCap: maxCap,
	}
}

// Put returns tokens to the pool unless it outgrew the limit.
func (tp *TokenPool) Put(tokens *[]string) {
	if tokens == nil || (tp.maxCap > 0 && cap(*tokens) > tp.maxCap) {
		return
	}
	tp.Pool.Put(tokens)
}

// Tokens is the process-wide token pool used by the parser.
var Tokens = NewTokenPool(32, 4096)

// GetTokens retrieves an empty token slice from the global pool.
func GetTokens() *[]string {
	return Tokens.Get()
}

// PutTokens returns a token slice to the global pool.
func PutTokens(tokens *[]string) {
	Tokens.Put(tokens)
}
