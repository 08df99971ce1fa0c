package listview

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// PageSize is fixed across every view in the app.
const PageSize = 10

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Modal names the sub-state a view's modal is in; every modal returns to
// ModalNone on close whether the action succeeded or was cancelled.
type Modal string

const (
	ModalNone             Modal = ""
	ModalCreating         Modal = "creating"
	ModalEditing          Modal = "editing"
	ModalConfirmingDelete Modal = "confirming-delete"
)

type SortOrder int

const (
	SortNone SortOrder = iota
	SortAscending
	SortDescending
)

type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Predicate reports whether an item matches one filter field's term. Terms
// are matched as a conjunction: an item survives only if every predicate with
// a non-empty term matches.
type Predicate[T any] func(item T, term string) bool

type LessFunc[T any] func(a, b T) bool

// Controller owns the fetch/filter/sort/paginate state one view used to
// hand-roll. Concrete views supply only a fetch function, named predicates
// and at most one sortable column.
type Controller[T any] struct {
	mu     sync.Mutex
	fetch  FetchFunc[T]
	logger *zap.Logger

	predicates map[string]Predicate[T]
	terms      map[string]string

	less         LessFunc[T]
	twoStateSort bool
	order        SortOrder

	all        []T
	filtered   []T
	page       int
	state      State
	generation uint64
	lastErr    error
}

func NewController[T any](fetch FetchFunc[T], logger *zap.Logger) *Controller[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller[T]{
		fetch:      fetch,
		logger:     logger,
		predicates: map[string]Predicate[T]{},
		terms:      map[string]string{},
		page:       1,
		state:      StateLoading,
	}
}

func (c *Controller[T]) AddFilter(name string, pred Predicate[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.predicates[name] = pred
}

// SetSort installs the view's single sortable column. Two-state views toggle
// descending/ascending and start descending; three-state views cycle
// none/ascending/descending and start unsorted.
func (c *Controller[T]) SetSort(less LessFunc[T], twoState bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.less = less
	c.twoStateSort = twoState
	if twoState {
		c.order = SortDescending
	} else {
		c.order = SortNone
	}
}

// Load performs a full round-trip fetch. Every successful mutation goes back
// through here rather than patching the local copy. A response that comes back
// after Close or a newer Load is dropped on the floor.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateLoading
	c.generation++
	gen := c.generation
	fetch := c.fetch
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		c.logger.Debug("discarding stale fetch response", zap.Uint64("generation", gen))
		return nil
	}
	c.state = StateReady
	if err != nil {
		c.lastErr = err
		c.logger.Warn("list fetch failed", zap.Error(err))
		return err
	}
	c.lastErr = nil
	c.all = items
	c.applyLocked()
	return nil
}

// Close invalidates any in-flight fetch so a late response cannot touch a
// discarded view's state.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// SetFilter updates one filter field's term. Any change resets the page to 1.
func (c *Controller[T]) SetFilter(name, term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.terms[name] == term {
		return
	}
	c.terms[name] = term
	c.page = 1
	c.applyLocked()
}

func (c *Controller[T]) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.terms) == 0 {
		return
	}
	c.terms = map[string]string{}
	c.page = 1
	c.applyLocked()
}

func (c *Controller[T]) FilterTerm(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.terms[name]
}

// CycleSort advances the sort state and returns the new order.
func (c *Controller[T]) CycleSort() SortOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.less == nil {
		return SortNone
	}
	if c.twoStateSort {
		if c.order == SortDescending {
			c.order = SortAscending
		} else {
			c.order = SortDescending
		}
	} else {
		switch c.order {
		case SortNone:
			c.order = SortAscending
		case SortAscending:
			c.order = SortDescending
		default:
			c.order = SortNone
		}
	}
	c.applyLocked()
	return c.order
}

// SetOrder jumps straight to one sort state, for callers that carry the
// desired order in a request instead of clicking through the cycle. Two-state
// views have no unsorted state, so SortNone clamps to the default descending.
func (c *Controller[T]) SetOrder(order SortOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.less == nil {
		return
	}
	if c.twoStateSort && order == SortNone {
		order = SortDescending
	}
	if order == c.order {
		return
	}
	c.order = order
	c.applyLocked()
}

func (c *Controller[T]) Order() SortOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order
}

// Page returns the records on the current page of the filtered, sorted set.
func (c *Controller[T]) Page() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	start := (c.page - 1) * PageSize
	if start >= len(c.filtered) {
		return []T{}
	}
	end := start + PageSize
	if end > len(c.filtered) {
		end = len(c.filtered)
	}
	out := make([]T, end-start)
	copy(out, c.filtered[start:end])
	return out
}

func (c *Controller[T]) PageIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageCount is ceil(filtered/PageSize), never below 1.
func (c *Controller[T]) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageCountLocked()
}

// SetPage clamps into [1, PageCount].
func (c *Controller[T]) SetPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = n
	c.clampPageLocked()
}

func (c *Controller[T]) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.all)
}

func (c *Controller[T]) FilteredCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.filtered)
}

// Filtered returns a copy of the whole filtered, sorted set, which is what
// the export actions consume.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.filtered))
	copy(out, c.filtered)
	return out
}

// Find locates a record in the last-fetched set.
func (c *Controller[T]) Find(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.all {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Controller[T]) applyLocked() {
	c.filtered = c.filtered[:0]
	for _, item := range c.all {
		if c.matchesLocked(item) {
			c.filtered = append(c.filtered, item)
		}
	}

	if c.less != nil && c.order != SortNone {
		less := c.less
		if c.order == SortDescending {
			asc := less
			less = func(a, b T) bool { return asc(b, a) }
		}
		sort.SliceStable(c.filtered, func(i, j int) bool {
			return less(c.filtered[i], c.filtered[j])
		})
	}

	c.clampPageLocked()
}

func (c *Controller[T]) matchesLocked(item T) bool {
	for name, term := range c.terms {
		if term == "" {
			continue
		}
		pred, ok := c.predicates[name]
		if !ok {
			continue
		}
		if !pred(item, term) {
			return false
		}
	}
	return true
}

func (c *Controller[T]) pageCountLocked() int {
	count := (len(c.filtered) + PageSize - 1) / PageSize
	if count < 1 {
		count = 1
	}
	return count
}

func (c *Controller[T]) clampPageLocked() {
	if c.page < 1 {
		c.page = 1
	}
	if max := c.pageCountLocked(); c.page > max {
		c.page = max
	}
}
