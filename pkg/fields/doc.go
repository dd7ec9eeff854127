// Package fields models HTML form controls extracted from a parsed
// document tree. Every control implements the Field contract: a name fixed
// at construction, a mutable value and a single-entry serialized mapping
// for a submission layer to consume.
//
// Scalar controls (TextInput, Textarea, FileInput) hold their value
// directly. Option-based controls (Radio, Checkbox, Select, MultiSelect)
// are composed from two orthogonal strategies: where the options come from
// (a flat run of sibling controls, or option descendants nested in one
// container) and how many may be selected (a single index, or an ordered
// set of indices). Candidate values resolve against option values first
// and option labels second.
package fields
