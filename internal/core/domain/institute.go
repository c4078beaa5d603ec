package domain

// Institute is one line of the institute file.
type Institute struct {
	// Code is the nickname authors use to reference the institute.
	Code string

	// Address is the line text preceding the code. It keeps any
	// whitespace that separated it from the code.
	Address string
}

// InstituteTable maps institute codes to their records.
// A later line with the same code replaces an earlier one.
type InstituteTable map[string]Institute

// Lookup returns the institute for code.
func (t InstituteTable) Lookup(code string) (Institute, bool) {
	inst, ok := t[code]
	return inst, ok
}
