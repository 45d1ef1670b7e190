package workspace

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAmbiguous is returned when a reference matches more than one entity.
var ErrAmbiguous = errors.New("ambiguous reference")

type ref struct {
	id   string
	name string
}

// resolve maps user input to an ID. Matching order: exact ID, then
// case-insensitive name (must be unique), then ID prefix (must be unique).
func resolve(kind string, notFound error, refs []ref, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s is required", kind)
	}

	for _, r := range refs {
		if r.id == input {
			return r.id, nil
		}
	}

	var byName []string
	for _, r := range refs {
		if strings.EqualFold(r.name, input) {
			byName = append(byName, r.id)
		}
	}
	switch len(byName) {
	case 1:
		return byName[0], nil
	case 0:
	default:
		return "", fmt.Errorf("%w: %s name %q matches %d entries, use the ID", ErrAmbiguous, kind, input, len(byName))
	}

	var byPrefix []string
	for _, r := range refs {
		if strings.HasPrefix(r.id, input) {
			byPrefix = append(byPrefix, r.id)
		}
	}
	switch len(byPrefix) {
	case 0:
		return "", fmt.Errorf("%w: %q", notFound, input)
	case 1:
		return byPrefix[0], nil
	default:
		return "", fmt.Errorf("%w: %s ID prefix %q (%d matches)", ErrAmbiguous, kind, input, len(byPrefix))
	}
}

// ResolveClass finds a class by ID, name or ID prefix.
func (w *Workspace) ResolveClass(input string) (string, error) {
	refs := make([]ref, len(w.classes))
	for i, c := range w.classes {
		refs[i] = ref{c.ID, c.Name}
	}
	return resolve("class", ErrUnknownClass, refs, input)
}

// ResolveTask finds a task of the current class by ID, name or ID prefix.
func (w *Workspace) ResolveTask(input string) (string, error) {
	c, err := w.requireClass()
	if err != nil {
		return "", err
	}
	refs := make([]ref, len(c.Tasks))
	for i, t := range c.Tasks {
		refs[i] = ref{t.ID, t.Name}
	}
	return resolve("task", ErrUnknownTask, refs, input)
}

// ResolveStudent finds a student of the current class by ID, name or ID
// prefix.
func (w *Workspace) ResolveStudent(input string) (string, error) {
	c, err := w.requireClass()
	if err != nil {
		return "", err
	}
	refs := make([]ref, len(c.Students))
	for i, s := range c.Students {
		refs[i] = ref{s.ID, s.Name}
	}
	return resolve("student", ErrUnknownStudent, refs, input)
}
