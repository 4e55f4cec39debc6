package view

import (
	"net/url"
	"strings"
)

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldSelect
)

type Option struct {
	Value string
	Label string
}

type Field struct {
	Name        string
	Label       string
	Placeholder string
	Kind        FieldKind
	Options     []Option
	Default     string
	Required    bool
}

// FormSpec declares one form of a screen.
type FormSpec struct {
	ID          string
	Title       string
	Action      string
	Method      string // "post" unless set
	SubmitLabel string
	ResetHref   string
	ResetLabel  string
	Fields      []Field
}

// FormState maps field name to its current value.
type FormState map[string]string

// With returns a copy of s where only field is replaced.
func (s FormState) With(field, value string) FormState {
	next := make(FormState, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[field] = value
	return next
}

func (s FormState) Get(field string) string {
	return s[field]
}

// Defaults is the state a form starts from and returns to after a successful submit.
func (f FormSpec) Defaults() FormState {
	state := make(FormState, len(f.Fields))
	for _, field := range f.Fields {
		state[field.Name] = field.Default
	}
	return state
}

// StateFrom seeds the defaults with the submitted values of the form's own fields,
// trimmed. Unknown keys are ignored.
func (f FormSpec) StateFrom(values url.Values) FormState {
	state := f.Defaults()
	for _, field := range f.Fields {
		if _, ok := values[field.Name]; ok {
			state = state.With(field.Name, strings.TrimSpace(values.Get(field.Name)))
		}
	}
	return state
}

// WithOptions returns a copy of f whose select field name offers opts.
// Used for selects fed from a reference list.
func (f FormSpec) WithOptions(name string, opts []Option) FormSpec {
	fields := make([]Field, len(f.Fields))
	copy(fields, f.Fields)
	for i := range fields {
		if fields[i].Name == name {
			fields[i].Options = opts
		}
	}
	f.Fields = fields
	return f
}

func (f FormSpec) field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Accepts reports whether value is allowed for field. Select fields only take one
// of their options (or blank); free-text fields take anything.
func (f FormSpec) Accepts(name, value string) bool {
	field, ok := f.field(name)
	if !ok {
		return false
	}
	if field.Kind != FieldSelect || value == "" {
		return true
	}
	for _, opt := range field.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Problems lists the labels of required fields left blank and of selects holding
// a value outside their options, in field order.
func (f FormSpec) Problems(state FormState) []string {
	var labels []string
	for _, field := range f.Fields {
		v := strings.TrimSpace(state[field.Name])
		if (field.Required && v == "") || !f.Accepts(field.Name, v) {
			labels = append(labels, field.Label)
		}
	}
	return labels
}

type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

type FieldView struct {
	Name        string
	Label       string
	Placeholder string
	Select      bool
	Required    bool
	Value       string
	Options     []OptionView
}

type FormView struct {
	ID          string
	Title       string
	Action      string
	Method      string
	SubmitLabel string
	ResetHref   string
	ResetLabel  string
	Fields      []FieldView
}

// Bind renders the form with state.
func (f FormSpec) Bind(state FormState) FormView {
	method := f.Method
	if method == "" {
		method = "post"
	}
	fv := FormView{
		ID:          f.ID,
		Title:       f.Title,
		Action:      f.Action,
		Method:      method,
		SubmitLabel: f.SubmitLabel,
		ResetHref:   f.ResetHref,
		ResetLabel:  f.ResetLabel,
		Fields:      make([]FieldView, 0, len(f.Fields)),
	}
	for _, field := range f.Fields {
		value, ok := state[field.Name]
		if !ok {
			value = field.Default
		}
		view := FieldView{
			Name:        field.Name,
			Label:       field.Label,
			Placeholder: field.Placeholder,
			Select:      field.Kind == FieldSelect,
			Required:    field.Required,
			Value:       value,
		}
		for _, opt := range field.Options {
			view.Options = append(view.Options, OptionView{
				Value:    opt.Value,
				Label:    opt.Label,
				Selected: opt.Value == value,
			})
		}
		fv.Fields = append(fv.Fields, view)
	}
	return fv
}
