package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalExpression evaluates a starlark integer expression, such as
// "0x100 + 4" or "1 << 12".
func evalExpression(expr string) (value uint64, err error) {
	thread := starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value, ok = st_int.Uint64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	return
}
