package fields

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formfields/pkg/dom"
)

// optionList holds the parallel option and label sequences shared by every
// option-based control. options and labels are always the same length; a
// nil label marks an option with no human label.
type optionList struct {
	options []string
	labels  []*string
}

// Options returns the machine values in source order.
func (l *optionList) Options() []string { return l.options }

// Labels returns the human labels, index-aligned with Options. A nil
// entry marks an option with no label.
func (l *optionList) Labels() []*string { return l.labels }

// resolve maps a candidate value to a selection index. Exact option
// matches win; otherwise the first matching label is used, without any
// ambiguity check. Candidates matching neither fail with ErrValueNotFound.
func (l *optionList) resolve(v any) (int, error) {
	candidate, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: got %T", ErrValueNotFound, v)
	}
	for i, option := range l.options {
		if option == candidate {
			return i, nil
		}
	}
	for i, label := range l.labels {
		if label != nil && *label == candidate {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrValueNotFound, candidate)
}

// singleOption is the single-selection cardinality shared by Radio and
// Select: at most one selected index.
type singleOption struct {
	name string
	optionList
	selected *int
}

func (f *singleOption) Name() string { return f.name }

// Value returns the selected option's machine value, or "" when nothing
// is selected.
func (f *singleOption) Value() any {
	if f.selected == nil {
		return ""
	}
	return f.options[*f.selected]
}

// SetValue resolves v against options and labels and selects the result.
func (f *singleOption) SetValue(v any) error {
	idx, err := f.resolve(v)
	if err != nil {
		return err
	}
	f.selected = &idx
	return nil
}

func (f *singleOption) SerializeKey() string { return SerializeKeyData }

func (f *singleOption) Serialize() map[string]any {
	return map[string]any{f.name: f.Value()}
}

// setInitial selects the first value the markup marked as selected, if
// any. Initial values come from the option list itself, so resolution
// cannot fail.
func (f *singleOption) setInitial(initial []string) {
	if len(initial) == 0 {
		return
	}
	_ = f.SetValue(initial[0])
}

// multiOption is the multi-selection cardinality shared by Checkbox and
// MultiSelect: an ordered set of selected indices.
type multiOption struct {
	name string
	optionList
	selected []int
}

func (f *multiOption) Name() string { return f.name }

// Value returns the machine values of the current selection, ordered by
// option index.
func (f *multiOption) Value() any {
	values := make([]string, 0, len(f.selected))
	for _, idx := range f.selected {
		values = append(values, f.options[idx])
	}
	return values
}

// SetValue replaces the whole selection. A non-list candidate is treated
// as a one-element list. Every element must resolve; on failure the
// previous selection is kept.
func (f *multiOption) SetValue(v any) error {
	var candidates []any
	switch value := v.(type) {
	case []any:
		candidates = value
	case []string:
		candidates = make([]any, len(value))
		for i, item := range value {
			candidates[i] = item
		}
	default:
		candidates = []any{v}
	}

	selected := make([]int, 0, len(candidates))
	for _, item := range candidates {
		idx, err := f.resolve(item)
		if err != nil {
			return err
		}
		selected = append(selected, idx)
	}
	f.selected = selected
	return nil
}

// Append adds one option to the selection and keeps the indices sorted
// ascending. Appending an already selected option fails with
// ErrDuplicateSelection.
func (f *multiOption) Append(v any) error {
	idx, err := f.resolve(v)
	if err != nil {
		return err
	}
	for _, current := range f.selected {
		if current == idx {
			return fmt.Errorf("%w: %q", ErrDuplicateSelection, f.options[idx])
		}
	}
	f.selected = append(f.selected, idx)
	sort.Ints(f.selected)
	return nil
}

// Remove drops one option from the selection. Removing an option that is
// not currently selected fails with ErrNotSelected.
func (f *multiOption) Remove(v any) error {
	idx, err := f.resolve(v)
	if err != nil {
		return err
	}
	for i, current := range f.selected {
		if current == idx {
			f.selected = append(f.selected[:i], f.selected[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotSelected, f.options[idx])
}

func (f *multiOption) SerializeKey() string { return SerializeKeyData }

func (f *multiOption) Serialize() map[string]any {
	return map[string]any{f.name: f.Value()}
}

func (f *multiOption) setInitial(initial []string) {
	_ = f.SetValue(initial)
}

// flatOptions extracts options from a run of sibling control nodes, the
// shape of radio and checkbox groups. The group's name comes from the
// first sibling. A control's label is the text of the node immediately
// following it, when that node is character data. A control carrying a
// checked attribute, whatever its value, is initially selected.
func flatOptions(group []dom.Node) (name string, list optionList, initial []string) {
	if len(group) > 0 {
		name = attrName(group[0])
	}
	for _, node := range group {
		value, _ := node.Attr("value")
		list.options = append(list.options, value)

		var label *string
		if next := node.NextSibling(); next != nil && next.IsText() {
			text := next.Text()
			label = &text
		}
		list.labels = append(list.labels, label)

		if _, checked := node.Attr("checked"); checked {
			initial = append(initial, value)
		}
	}
	return name, list, initial
}

// nestedOptions extracts options from a container's descendant option
// nodes, the shape of select controls. Labels are each option's full text
// content. An option carrying a selected attribute, whatever its value,
// is initially selected.
func nestedOptions(container dom.Node) (name string, list optionList, initial []string) {
	name = attrName(container)
	for _, node := range container.FindAll("option") {
		value, _ := node.Attr("value")
		list.options = append(list.options, value)

		label := node.Text()
		list.labels = append(list.labels, &label)

		if _, selected := node.Attr("selected"); selected {
			initial = append(initial, value)
		}
	}
	return name, list, initial
}
