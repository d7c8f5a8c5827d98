package game

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

const pilotFunctionName = "nextDirection"

// DefaultPilotScript heads for the food along the shortest safe step.
const DefaultPilotScript = `
local moves = {
	{Dx = 1, Dy = 0},
	{Dx = 0, Dy = 1},
	{Dx = -1, Dy = 0},
	{Dx = 0, Dy = -1},
}

local function occupied(view, x, y)
	for _, segment in ipairs(view.body) do
		if segment.x == x and segment.y == y then
			return true
		end
	end
	return false
end

function nextDirection(view)
	local cell = view.cell
	local candidates = {}

	if view.dx == 0 and view.dy == 0 then
		candidates = moves
	else
		table.insert(candidates, {Dx = view.dx / cell, Dy = view.dy / cell, straight = true})
		for _, move in ipairs(moves) do
			if (move.Dx ~= 0 and view.dx == 0) or (move.Dy ~= 0 and view.dy == 0) then
				table.insert(candidates, move)
			end
		end
	end

	local best, bestDistance = nil, nil
	for _, move in ipairs(candidates) do
		local x = view.headX + move.Dx * cell
		local y = view.headY + move.Dy * cell
		local inside = x >= 0 and x < view.width and y >= 0 and y < view.height
		if inside and not occupied(view, x, y) then
			local distance = math.abs(view.foodX - x) + math.abs(view.foodY - y)
			if bestDistance == nil or distance < bestDistance then
				best, bestDistance = move, distance
			end
		end
	end

	if best == nil or best.straight then
		return nil
	end
	return {Dx = best.Dx, Dy = best.Dy}
end
`

// LuaPilot runs a Lua steering script. A Lua state is not safe for concurrent
// use, so every game owns its own pilot.
type LuaPilot struct {
	Name       string
	luaState   *lua.LState
	steeringFn lua.LValue
}

func NewLuaPilot(name, source string) (*LuaPilot, error) {
	luaState := lua.NewState()
	if err := luaState.DoString(source); err != nil {
		luaState.Close()
		return nil, fmt.Errorf("could not parse lua pilot %q: %w", name, err)
	}

	steeringFn := luaState.GetGlobal(pilotFunctionName)
	if steeringFn.Type() != lua.LTFunction {
		luaState.Close()
		return nil, fmt.Errorf("lua pilot %q does not define %s()", name, pilotFunctionName)
	}

	return &LuaPilot{Name: name, luaState: luaState, steeringFn: steeringFn}, nil
}

func NewDefaultLuaPilot() (*LuaPilot, error) {
	return NewLuaPilot("greedy", DefaultPilotScript)
}

func LoadLuaPilot(path string) (*LuaPilot, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lua pilot: %w", err)
	}
	return NewLuaPilot(path, string(source))
}

func (lp *LuaPilot) NextKey(view PilotView) (Key, error) {
	if err := lp.luaState.CallByParam(lua.P{
		Fn:      lp.steeringFn,
		NRet:    1,
		Protect: true,
	}, lp.viewToTable(view)); err != nil {
		return KeyNone, fmt.Errorf("could not execute lua pilot %q: %w", lp.Name, err)
	}

	luaReturn := lp.luaState.Get(-1)
	lp.luaState.Pop(1)

	if luaReturn == lua.LNil {
		return KeyNone, nil
	}

	luaTable, ok := luaReturn.(*lua.LTable)
	if !ok {
		return KeyNone, errors.New("lua pilot returned " + luaReturn.Type().String() + ", expected table or nil")
	}

	return KeyForDirection(convertLuaDirectionTableToGoStruct(luaTable)), nil
}

func (lp *LuaPilot) Close() {
	lp.luaState.Close()
}

func (lp *LuaPilot) viewToTable(view PilotView) *lua.LTable {
	tbl := lp.luaState.NewTable()
	tbl.RawSetString("headX", lua.LNumber(view.Head.X))
	tbl.RawSetString("headY", lua.LNumber(view.Head.Y))
	tbl.RawSetString("foodX", lua.LNumber(view.Food.X))
	tbl.RawSetString("foodY", lua.LNumber(view.Food.Y))
	tbl.RawSetString("dx", lua.LNumber(view.Direction.Dx))
	tbl.RawSetString("dy", lua.LNumber(view.Direction.Dy))
	tbl.RawSetString("cell", lua.LNumber(view.Grid.CellSize))
	tbl.RawSetString("width", lua.LNumber(view.Grid.Width))
	tbl.RawSetString("height", lua.LNumber(view.Grid.Height))

	body := lp.luaState.NewTable()
	for _, segment := range view.Body {
		seg := lp.luaState.NewTable()
		seg.RawSetString("x", lua.LNumber(segment.X))
		seg.RawSetString("y", lua.LNumber(segment.Y))
		body.Append(seg)
	}
	tbl.RawSetString("body", body)

	return tbl
}

func convertLuaDirectionTableToGoStruct(luaTbl *lua.LTable) Direction {
	result := Direction{}
	luaTbl.ForEach(func(key, value lua.LValue) {
		if key.Type() != lua.LTString {
			return
		}

		switch lua.LVAsString(key) {
		case "Dy":
			result.Dy = int(lua.LVAsNumber(value))
		case "Dx":
			result.Dx = int(lua.LVAsNumber(value))
		}
	})
	return result
}
