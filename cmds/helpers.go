package cmds

// Var defines a word taking one argument, and name+"." resetting it to zero.
func Var[T any](name string, desc string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}).Desc(desc))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}).Desc("reset "+name))
	return value
}

// Switch defines a word turning the value on, and "!"+name turning it off.
func Switch(name string, desc string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		*value = false
	}).Desc("undo "+name))
	return value
}

// Collect defines a word that may repeat, each occurrence appending its argument.
func Collect[T any](name string, desc string) *[]T {
	values := new([]T)
	Define(name, Func(func(v T) {
		*values = append(*values, v)
	}).Desc(desc))
	return values
}
