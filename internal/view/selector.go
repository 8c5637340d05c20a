package view

// SelectorOptions is the fixed option set of the selector. The empty value
// is shown with SelectorPlaceholder.
var SelectorOptions = []string{"", "Ali", "Umar", "Asad"}

const SelectorPlaceholder = "--Title--"

// Select stores v when it is one of SelectorOptions. Nothing else in the
// table reads the value.
func (s State) Select(v string) (State, bool) {
	for _, o := range SelectorOptions {
		if o == v {
			s.selected = v
			return s, true
		}
	}
	return s, false
}

// NextSelection returns the option after the current one, wrapping around.
func (s State) NextSelection() string {
	for i, o := range SelectorOptions {
		if o == s.selected {
			return SelectorOptions[(i+1)%len(SelectorOptions)]
		}
	}
	return SelectorOptions[0]
}

// SelectorLabel is the display text for an option.
func SelectorLabel(v string) string {
	if v == "" {
		return SelectorPlaceholder
	}
	return v
}
