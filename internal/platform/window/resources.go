package window

import "sync"

// releaser is a named cleanup step.
type releaser struct {
	name    string
	release func()
}

// resources releases acquired handles in reverse acquisition order, once.
type resources struct {
	stack []releaser
	once  sync.Once
}

func (r *resources) acquired(name string, release func()) {
	r.stack = append(r.stack, releaser{name: name, release: release})
}

// releaseAll runs every release step, last acquired first, and reports the
// names in the order they ran. Later calls do nothing and return nil.
func (r *resources) releaseAll() []string {
	var order []string
	r.once.Do(func() {
		for i := len(r.stack) - 1; i >= 0; i-- {
			r.stack[i].release()
			order = append(order, r.stack[i].name)
		}
		r.stack = nil
	})
	return order
}
