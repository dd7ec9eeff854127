package fields

import "github.com/goliatone/go-formfields/pkg/dom"

// Concrete option controls wire an option source (flat siblings or nested
// descendants) to a selection cardinality (single or multi):
//
//	Radio        flat   x single
//	Checkbox     flat   x multi
//	Select       nested x single, defaults to the first option
//	MultiSelect  nested x multi

var (
	_ Field = (*Radio)(nil)
	_ Field = (*Checkbox)(nil)
	_ Field = (*Select)(nil)
	_ Field = (*MultiSelect)(nil)
)

// Radio is a group of sibling inputs of which at most one is selected.
type Radio struct {
	singleOption
}

// NewRadio builds a Radio from the sibling input nodes forming the group.
func NewRadio(group []dom.Node) *Radio {
	name, list, initial := flatOptions(group)
	f := &Radio{singleOption{name: name, optionList: list}}
	f.setInitial(initial)
	return f
}

// Checkbox is a group of sibling inputs of which any number is selected.
type Checkbox struct {
	multiOption
}

// NewCheckbox builds a Checkbox from the sibling input nodes forming the
// group.
func NewCheckbox(group []dom.Node) *Checkbox {
	name, list, initial := flatOptions(group)
	f := &Checkbox{multiOption{name: name, optionList: list}}
	f.setInitial(initial)
	return f
}

// Select is a container of nested options of which at most one is
// selected. When the markup marks nothing as selected, the first option
// in source order is selected, matching browser behaviour.
type Select struct {
	singleOption
}

// NewSelect builds a Select from a parsed select node.
func NewSelect(node dom.Node) *Select {
	name, list, initial := nestedOptions(node)
	f := &Select{singleOption{name: name, optionList: list}}
	f.setInitial(initial)
	if f.selected == nil && len(f.options) > 0 {
		_ = f.SetValue(f.options[0])
	}
	return f
}

// MultiSelect is a container of nested options of which any number is
// selected.
type MultiSelect struct {
	multiOption
}

// NewMultiSelect builds a MultiSelect from a parsed select node.
func NewMultiSelect(node dom.Node) *MultiSelect {
	name, list, initial := nestedOptions(node)
	f := &MultiSelect{multiOption{name: name, optionList: list}}
	f.setInitial(initial)
	return f
}
