// Package script evaluates Lua hooks that tune generation.
package script

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// ErrNoCurve is returned when a chunk does not define max_rooms.
var ErrNoCurve = errors.New("script does not define max_rooms(depth)")

// Curve maps a depth to a room target through a Lua function
// max_rooms(depth). Single-goroutine access only.
type Curve struct {
	vm *lua.LState
	fn lua.LValue
}

// LoadCurve compiles src and looks up max_rooms.
func LoadCurve(src string) (*Curve, error) {
	vm := lua.NewState(lua.Options{SkipOpenLibs: true})
	// Base and math are all a curve needs; io and os stay closed.
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := vm.CallByParam(lua.P{
			Fn:      vm.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			vm.Close()
			return nil, fmt.Errorf("open lua %q library: %w", lib.name, err)
		}
	}
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load room curve: %w", err)
	}
	fn := vm.GetGlobal("max_rooms")
	if fn.Type() != lua.LTFunction {
		vm.Close()
		return nil, ErrNoCurve
	}
	return &Curve{vm: vm, fn: fn}, nil
}

// LoadCurveFile reads and compiles a curve script from disk.
func LoadCurveFile(path string) (*Curve, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read room curve %s: %w", path, err)
	}
	return LoadCurve(string(src))
}

// MaxRooms calls max_rooms(depth). The result must be a positive number;
// fractions are truncated.
func (c *Curve) MaxRooms(depth int) (int, error) {
	if err := c.vm.CallByParam(lua.P{
		Fn:      c.fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(depth)); err != nil {
		return 0, fmt.Errorf("max_rooms(%d): %w", depth, err)
	}
	ret := c.vm.Get(-1)
	c.vm.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("max_rooms(%d) returned %s, want number", depth, ret.Type())
	}
	if int(n) < 1 {
		return 0, fmt.Errorf("max_rooms(%d) returned %v, want at least 1", depth, n)
	}
	return int(n), nil
}

// Close releases the Lua state.
func (c *Curve) Close() { c.vm.Close() }
