// Package input reads single-key commands for the first-person walk
// mode. Keys map to engine actions; arrow keys are decoded from their
// escape sequences so they work without pressing Enter.
package input

import (
	"os"

	"golang.org/x/term"
)

// Action is a decoded player command.
type Action int

// Player commands
const (
	ActionNone Action = iota
	ActionMoveForward
	ActionMoveBackward
	ActionTurnLeft
	ActionTurnRight
	ActionOpenDoor
	ActionCloseDoor
	ActionSearch
	ActionAscend
	ActionDescend
	ActionShowMap
	ActionQuit
)

var bindings = map[byte]Action{
	'w': ActionMoveForward,
	's': ActionMoveBackward,
	'a': ActionTurnLeft,
	'd': ActionTurnRight,
	'o': ActionOpenDoor,
	'c': ActionCloseDoor,
	'f': ActionSearch,
	'u': ActionAscend,
	'j': ActionDescend,
	'm': ActionShowMap,
	'q': ActionQuit,
}

// RawMode switches stdin into raw mode and returns a restore function.
func RawMode() (func(), error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { term.Restore(fd, oldState) }, nil
}

func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// ReadAction blocks for one keypress and decodes it. Arrow keys alias
// the WASD movement commands; unknown keys return ActionNone.
func ReadAction() (Action, error) {
	b, err := readByte()
	if err != nil {
		return ActionQuit, err
	}

	if b == 0x1b {
		return readArrow()
	}
	return decodeKey(b), nil
}

// decodeKey maps a single printable key to its action, folding
// uppercase. Ctrl-C quits; anything unbound is ActionNone.
func decodeKey(b byte) Action {
	if b == 3 {
		return ActionQuit
	}
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return bindings[b]
}

// readArrow decodes CSI (ESC [) and SS3 (ESC O) arrow sequences.
func readArrow() (Action, error) {
	b2, err := readByte()
	if err != nil {
		return ActionQuit, err
	}
	if b2 != '[' && b2 != 'O' {
		return ActionNone, nil
	}
	b3, err := readByte()
	if err != nil {
		return ActionQuit, err
	}
	switch b3 {
	case 'A':
		return ActionMoveForward, nil
	case 'B':
		return ActionMoveBackward, nil
	case 'C':
		return ActionTurnRight, nil
	case 'D':
		return ActionTurnLeft, nil
	}
	return ActionNone, nil
}
