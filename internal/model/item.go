package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// MaxTitleLen caps a title at input time, in characters.
const MaxTitleLen = 30

// Todo is the domain model for a todo entry.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ValidTitle reports whether title has anything besides whitespace.
func ValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

// CapTitle truncates title to MaxTitleLen runes.
func CapTitle(title string) string {
	if utf8.RuneCountInString(title) <= MaxTitleLen {
		return title
	}
	r := []rune(title)
	return string(r[:MaxTitleLen])
}

// NextID returns max(ids)+1, or 1 for an empty list.
func NextID(todos []Todo) int {
	hi := 0
	for _, t := range todos {
		if t.ID > hi {
			hi = t.ID
		}
	}
	return hi + 1
}

// SortNewestFirst orders todos by id, descending, in place.
func SortNewestFirst(todos []Todo) {
	sort.SliceStable(todos, func(i, j int) bool { return todos[i].ID > todos[j].ID })
}

// Clone returns a copy that shares nothing with todos.
func Clone(todos []Todo) []Todo {
	out := make([]Todo, len(todos))
	copy(out, todos)
	return out
}

// Stats counts completed and pending records.
func Stats(todos []Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Encode serializes the whole list as a JSON array.
func Encode(todos []Todo) (string, error) {
	if todos == nil {
		todos = []Todo{}
	}
	b, err := json.Marshal(todos)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// Decode parses a JSON array of records. A JSON null decodes to an empty list.
func Decode(s string) ([]Todo, error) {
	var todos []Todo
	if err := json.Unmarshal([]byte(s), &todos); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return todos, nil
}
