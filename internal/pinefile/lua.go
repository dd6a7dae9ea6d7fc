package pinefile

import (
	"context"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/pinefile/pine"
)

// luaFile owns the Lua state a loaded pinefile's tasks run on. An LState is
// not goroutine-safe, so every task invocation serializes through mu. The
// state lives as long as any task closure referencing it.
type luaFile struct {
	mu    sync.Mutex
	state *lua.LState
}

// LoadLua evaluates a Lua pinefile and converts its task table into a
// namespace. The table is the chunk's return value, or the global "tasks"
// when the chunk returns nothing:
//
//	return {
//	    build = function(args) ... end,
//	    prebuild = "make clean",
//	    db = {
//	        migrate = function(args) ... end,
//	    },
//	}
//
// Lua functions become tasks receiving args as a table; string values
// become shell command tasks; nested tables become nested namespaces.
func LoadLua(path string) (pine.Namespace, error) {
	L := lua.NewState()

	fn, err := L.LoadFile(path)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		L.Close()
		return nil, fmt.Errorf("evaluate %s: %w", path, err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		tbl, ok = L.GetGlobal("tasks").(*lua.LTable)
		if !ok {
			L.Close()
			return nil, fmt.Errorf("%s: expected the chunk to return a task table or set a global 'tasks' table", path)
		}
	}

	f := &luaFile{state: L}
	ns, err := f.toNamespace(tbl, "")
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ns, nil
}

func (f *luaFile) toNamespace(tbl *lua.LTable, prefix string) (pine.Namespace, error) {
	ns := make(pine.Namespace)
	var convErr error

	tbl.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}
		key, ok := k.(lua.LString)
		if !ok {
			convErr = fmt.Errorf("task key %s%v is not a string", prefix, k)
			return
		}
		at := prefix + string(key)

		switch tv := v.(type) {
		case *lua.LFunction:
			ns[string(key)] = f.taskFunc(tv)
		case lua.LString:
			ns[string(key)] = pine.Shell(string(tv))
		case *lua.LTable:
			nested, err := f.toNamespace(tv, at+":")
			if err != nil {
				convErr = err
				return
			}
			ns[string(key)] = nested
		default:
			convErr = fmt.Errorf("task %q has unsupported type %s", at, v.Type())
		}
	})

	if convErr != nil {
		return nil, convErr
	}
	return ns, nil
}

// taskFunc wraps a Lua function as a task. The argument bag is passed as a
// Lua table; an error raised in Lua becomes the task's error.
func (f *luaFile) taskFunc(fn *lua.LFunction) pine.TaskFunc {
	return func(_ context.Context, args pine.Args) error {
		f.mu.Lock()
		defer f.mu.Unlock()

		if err := f.state.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, f.toLuaTable(args)); err != nil {
			return fmt.Errorf("lua task: %w", err)
		}
		return nil
	}
}

func (f *luaFile) toLuaTable(args pine.Args) *lua.LTable {
	tbl := f.state.NewTable()
	for k, v := range args {
		tbl.RawSetString(k, f.toLuaValue(v))
	}
	return tbl
}

func (f *luaFile) toLuaValue(v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []any:
		tbl := f.state.NewTable()
		for _, item := range val {
			tbl.Append(f.toLuaValue(item))
		}
		return tbl
	case map[string]any:
		tbl := f.state.NewTable()
		for k, item := range val {
			tbl.RawSetString(k, f.toLuaValue(item))
		}
		return tbl
	default:
		return lua.LString(fmt.Sprint(val))
	}
}
