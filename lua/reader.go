package lua

import (
	"fmt"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/samaelod/enigma/types"
)

// ReadLuaConfig runs a Lua key sheet and maps the table it returns onto a
// machine description.
func ReadLuaConfig(path string) (*types.Machine, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, err
	}

	return mapMachine(L)
}

// ReadLuaString is ReadLuaConfig for an in-memory chunk.
func ReadLuaString(src string) (*types.Machine, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return nil, err
	}

	return mapMachine(L)
}

func mapMachine(L *lua.LState) (*types.Machine, error) {
	lv := L.Get(-1)
	table, ok := lv.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("lua key sheet did not return a table")
	}

	var m types.Machine
	if err := gluamapper.Map(table, &m); err != nil {
		return nil, err
	}

	m.Normalize()
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key sheet: %w", err)
	}

	return &m, nil
}
