package engine

import (
	"sort"

	"roomkeeper/internal/sim/tasks"
)

// Registry maps creep name to its current task: at most one entry per
// creep. It lives for the life of the process (an empty registry
// after restart simply means every creep re-selects) and is only ever
// touched from the tick goroutine.
type Registry struct {
	tasks map[string]tasks.Task
}

func NewRegistry() *Registry {
	return &Registry{tasks: map[string]tasks.Task{}}
}

func (r *Registry) Lookup(name string) (tasks.Task, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// Assign inserts a task for a vacant entry, replacing any previous
// one.
func (r *Registry) Assign(name string, t tasks.Task) {
	r.tasks[name] = t
}

// Evict removes the creep's current task.
func (r *Registry) Evict(name string) {
	delete(r.tasks, name)
}

func (r *Registry) Len() int { return len(r.tasks) }

// Names returns registered creep names in deterministic order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
