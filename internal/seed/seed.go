// Package seed holds the list a fresh install starts with.
package seed

import "github.com/idilsaglam/todo/internal/model"

var records = []model.Todo{
	{ID: 1, Title: "Learn the keyboard shortcuts", Completed: false},
	{ID: 2, Title: "Add your first todo", Completed: false},
	{ID: 3, Title: "Hold space to mark one done", Completed: false},
	{ID: 4, Title: "Press t to switch themes", Completed: false},
	{ID: 5, Title: "Delete this with d", Completed: true},
	{ID: 6, Title: "Get something done today", Completed: false},
}

// Records returns a fresh copy of the seed list, newest first.
func Records() []model.Todo {
	out := model.Clone(records)
	model.SortNewestFirst(out)
	return out
}
