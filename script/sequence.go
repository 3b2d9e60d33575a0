// Package script drives the aggregator's mock-injection API from Lua,
// for cut-scenes, demos, and deterministic input replays. A sequence
// script defines
//
//	function frame(n)
//	    if n == 0 then press(SUBMIT) end
//	    if n < 10 then axis(MOVE, 1, 0) end
//	    return n >= 10
//	end
//
// and the host calls Step once per frame, after its regular
// Aggregator.Update (or with input locked, the usual cut-scene setup),
// so the injected state is what listeners observe that frame.
// Injection goes through exactly the public mock API, so scripted
// input has the same pressed/tick semantics as a real device
// transition.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/lixenwraith/padkit/input"
	"github.com/lixenwraith/padkit/sample"
	"github.com/lixenwraith/padkit/signal"
)

// Sequence owns a sandboxed Lua state running one input script.
// Not goroutine-safe; confine a Sequence to the host loop's goroutine.
type Sequence struct {
	L     *lua.LState
	fn    lua.LValue
	frame int
	done  bool

	// target is set for the duration of one Step; the press/axis
	// globals inject into it.
	target *input.Aggregator
}

// NewSequence compiles src in a fresh sandboxed state. The script must
// define a global function frame(n); returning true from it ends the
// sequence.
func NewSequence(src string) (*Sequence, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Only side-effect-free libraries; no os, io, or module loading.
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.MathLibName, lua.OpenMath},
		{lua.StringLibName, lua.OpenString},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("script: open %s: %w", lib.name, err)
		}
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	s := &Sequence{L: L}
	L.SetGlobal("press", L.NewFunction(s.luaPress))
	L.SetGlobal("axis", L.NewFunction(s.luaAxis))

	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: %w", err)
	}

	fn := L.GetGlobal("frame")
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("script: no frame(n) function defined")
	}
	s.fn = fn
	return s, nil
}

// Step runs one script frame, injecting mock input into agg. Call it
// after agg.Update for the same frame so the injection overrides the
// polled state. Returns true once the script has finished; further
// calls are no-ops.
func (s *Sequence) Step(agg *input.Aggregator) (bool, error) {
	if s.done {
		return true, nil
	}

	s.target = agg
	defer func() { s.target = nil }()

	if err := s.L.CallByParam(lua.P{
		Fn:      s.fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(s.frame)); err != nil {
		s.done = true
		return true, fmt.Errorf("script: frame %d: %w", s.frame, err)
	}

	ret := s.L.Get(-1)
	s.L.Pop(1)
	s.frame++

	if lua.LVAsBool(ret) {
		s.done = true
	}
	return s.done, nil
}

// Frame returns the next frame number Step will run.
func (s *Sequence) Frame() int {
	return s.frame
}

// Done reports whether the sequence has finished.
func (s *Sequence) Done() bool {
	return s.done
}

// Close releases the Lua state.
func (s *Sequence) Close() {
	s.L.Close()
}

func (s *Sequence) luaPress(L *lua.LState) int {
	id := L.CheckInt(1)
	if s.target != nil {
		s.target.MockPress(signal.ID(id))
	}
	return 0
}

func (s *Sequence) luaAxis(L *lua.LState) int {
	id := L.CheckInt(1)
	x := float64(L.CheckNumber(2))
	y := float64(L.CheckNumber(3))
	if s.target != nil {
		s.target.MockAxis(signal.ID(id), sample.Vec{X: x, Y: y})
	}
	return 0
}
