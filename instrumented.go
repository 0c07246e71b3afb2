package dictionary

import (
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// Instrumented records the operations of another Dictionary into Metrics
// and a debug logger. Either may be omitted.
type Instrumented[K, V any] struct {
	d       Dictionary[K, V]
	metrics *Metrics
	log     zerolog.Logger
}

var _ Dictionary[int, int] = (*Instrumented[int, int])(nil)

// NewInstrumented wraps d. A nil metrics disables counting.
func NewInstrumented[K, V any](d Dictionary[K, V], backing string, metrics *Metrics, log zerolog.Logger) *Instrumented[K, V] {
	return &Instrumented[K, V]{
		d:       d,
		metrics: metrics,
		log:     log.With().Str("backing", backing).Logger(),
	}
}

// Unwrap returns the wrapped dictionary.
func (i *Instrumented[K, V]) Unwrap() Dictionary[K, V] { return i.d }

func (i *Instrumented[K, V]) Len() int      { return i.d.Len() }
func (i *Instrumented[K, V]) IsEmpty() bool { return i.d.IsEmpty() }

func (i *Instrumented[K, V]) Get(key K) (V, error) {
	v, err := i.d.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		i.miss("get", key)
	}
	return v, err
}

func (i *Instrumented[K, V]) Contains(key K) bool {
	return i.d.Contains(key)
}

func (i *Instrumented[K, V]) Put(key K, value V) {
	before := i.d.Len()
	i.d.Put(key, value)
	inserted := i.d.Len() > before

	if i.metrics != nil {
		if inserted {
			i.metrics.IncInsert()
		} else {
			i.metrics.IncOverwrite()
		}
		i.metrics.SetLen(i.d.Len())
	}
	i.log.Debug().Interface("key", key).Bool("inserted", inserted).Int("len", i.d.Len()).Msg("put")
}

func (i *Instrumented[K, V]) Remove(key K) error {
	if err := i.d.Remove(key); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			i.miss("remove", key)
		}
		return err
	}
	if i.metrics != nil {
		i.metrics.IncRemove()
		i.metrics.SetLen(i.d.Len())
	}
	i.log.Debug().Interface("key", key).Int("len", i.d.Len()).Msg("remove")
	return nil
}

func (i *Instrumented[K, V]) Clear() {
	dropped := i.d.Len()
	i.d.Clear()
	if i.metrics != nil {
		i.metrics.IncClear()
		i.metrics.SetLen(0)
	}
	i.log.Debug().Int("dropped", dropped).Msg("clear")
}

func (i *Instrumented[K, V]) Iterator() Iterator[K, V] {
	return &instrumentedIterator[K, V]{Iterator: i.d.Iterator(), owner: i}
}

func (i *Instrumented[K, V]) Ascend(visit func(key K, value V) bool) error {
	return ascend(i.Iterator(), visit)
}

func (i *Instrumented[K, V]) miss(op string, key K) {
	if i.metrics != nil {
		i.metrics.IncMiss(op)
	}
	i.log.Debug().Str("op", op).Interface("key", key).Msg("key not found")
}

type instrumentedIterator[K, V any] struct {
	Iterator[K, V]
	owner  *Instrumented[K, V]
	failed bool
}

func (it *instrumentedIterator[K, V]) Next() (Entry[K, V], error) {
	e, err := it.Iterator.Next()
	if errors.Is(err, ErrConcurrentModification) && !it.failed {
		it.failed = true
		if it.owner.metrics != nil {
			it.owner.metrics.IncIteratorFailure()
		}
		it.owner.log.Warn().Msg("iteration aborted by concurrent modification")
	}
	return e, err
}
