package cmds

var defaultExecutor = NewExecutor()

// Define registers a command in the process-wide executor. Packages call it from init or package-level vars.
func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

func Execute(args []string) error {
	return defaultExecutor.Execute(args)
}

func PrintUsage() {
	defaultExecutor.PrintUsage()
}

// Var defines a command setting a value from its argument.
func Var[T any](name string, desc string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))
	return &value
}

// Switch defines name to set the flag and !name to clear it.
func Switch(name string, desc string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))
	return &value
}
