package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "treasurehunt/pkg/engine/input"
)

// keyCodes maps Ebiten keys to binding codes
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyDigit1:     "1",
	ebiten.KeyDigit2:     "2",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	select {
	case <-e.done:
		return ebiten.Termination
	default:
	}

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}
	return nil
}

// checkInput returns the intent of the first triggered key this tick
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	now := time.Now().UnixMilli()
	for key, code := range keyCodes {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		}))

		if intent.IsMove() {
			if e.shouldRepeatKey(ebiten.IsKeyPressed(key), code, now) {
				return intent
			}
			continue
		}
		if inpututil.IsKeyJustPressed(key) {
			return intent
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// shouldRepeatKey reports whether a held key triggers now: on first press,
// then every keyRepeatInterval once keyRepeatInitialDelay has passed
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string, now int64) bool {
	state, exists := e.keyRepeatState[code]

	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}
