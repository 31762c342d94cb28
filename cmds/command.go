package cmds

import (
	"fmt"
	"reflect"
)

// Command is a word on the command line. Func consumes the following words as its arguments, Subs become visible after it.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	ArgNames    []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Args names the arguments in usage output.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = names
	return c
}

// argNames returns the declared names, or names derived from the parameter types.
func (c *Command) argNames() []string {
	if !c.Func.IsValid() {
		return nil
	}
	fnType := c.Func.Type()
	ret := make([]string, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		if i < len(c.ArgNames) {
			ret = append(ret, c.ArgNames[i])
			continue
		}
		t := fnType.In(i)
		optional := t.Kind() == reflect.Pointer
		if optional {
			t = t.Elem()
		}
		name := t.Name()
		if name == "" {
			name = t.Kind().String()
		}
		if optional {
			ret = append(ret, "["+name+"]")
		} else {
			ret = append(ret, "<"+name+">")
		}
	}
	return ret
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("cmds: %T is not a function", fn))
	}
	fnType := fnValue.Type()
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("cmds: %v must return error", fnType))
		}
	default:
		panic(fmt.Errorf("cmds: %v returns more than one value", fnType))
	}
	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
