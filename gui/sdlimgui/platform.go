// This file is part of mpltweaker.
//
// mpltweaker is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mpltweaker is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mpltweaker.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"fmt"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/version"
	"github.com/veandco/go-sdl2/sdl"
)

type platform struct {
	img    *SdlImgui
	window *sdl.Window
	mode   sdl.DisplayMode

	glContext sdl.GLContext

	// mouse button presses that are released in the same frame are held
	// for one frame so that imgui sees them
	buttonsPressed [3]bool
}

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform(img *SdlImgui) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{
		img: img,
	}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// map sdl key codes to imgui codes
	plt.setKeyMapping()

	plt.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, version.Number),
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(float32(plt.mode.W)*0.80), int32(float32(plt.mode.H)*0.80),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetSwapInterval(1)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(1): %v", err)
	}

	return plt, nil
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

func (plt *platform) setKeyMapping() {
	keys := map[int]int{
		imgui.KeyTab:        sdl.SCANCODE_TAB,
		imgui.KeyLeftArrow:  sdl.SCANCODE_LEFT,
		imgui.KeyRightArrow: sdl.SCANCODE_RIGHT,
		imgui.KeyUpArrow:    sdl.SCANCODE_UP,
		imgui.KeyDownArrow:  sdl.SCANCODE_DOWN,
		imgui.KeyPageUp:     sdl.SCANCODE_PAGEUP,
		imgui.KeyPageDown:   sdl.SCANCODE_PAGEDOWN,
		imgui.KeyHome:       sdl.SCANCODE_HOME,
		imgui.KeyEnd:        sdl.SCANCODE_END,
		imgui.KeyInsert:     sdl.SCANCODE_INSERT,
		imgui.KeyDelete:     sdl.SCANCODE_DELETE,
		imgui.KeyBackspace:  sdl.SCANCODE_BACKSPACE,
		imgui.KeySpace:      sdl.SCANCODE_SPACE,
		imgui.KeyEnter:      sdl.SCANCODE_RETURN,
		imgui.KeyEscape:     sdl.SCANCODE_ESCAPE,
		imgui.KeyA:          sdl.SCANCODE_A,
		imgui.KeyC:          sdl.SCANCODE_C,
		imgui.KeyV:          sdl.SCANCODE_V,
		imgui.KeyX:          sdl.SCANCODE_X,
		imgui.KeyY:          sdl.SCANCODE_Y,
		imgui.KeyZ:          sdl.SCANCODE_Z,
	}

	io := imgui.CurrentIO()
	for imguiKey, nativeKey := range keys {
		io.KeyMap(imguiKey, nativeKey)
	}
}

// processEvent forwards the event to imgui. returns false if the event was a
// request to quit.
func (plt *platform) processEvent(ev sdl.Event) bool {
	io := imgui.CurrentIO()

	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return false

	case *sdl.MouseWheelEvent:
		var dx, dy float32
		if ev.X > 0 {
			dx++
		} else if ev.X < 0 {
			dx--
		}
		if ev.Y > 0 {
			dy++
		} else if ev.Y < 0 {
			dy--
		}
		io.AddMouseWheelDelta(dx, dy)

	case *sdl.MouseButtonEvent:
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				plt.buttonsPressed[0] = true
			case sdl.BUTTON_RIGHT:
				plt.buttonsPressed[1] = true
			case sdl.BUTTON_MIDDLE:
				plt.buttonsPressed[2] = true
			}
		}

	case *sdl.TextInputEvent:
		io.AddInputCharacters(string(ev.Text[:clen(ev.Text[:])]))

	case *sdl.KeyboardEvent:
		switch ev.Type {
		case sdl.KEYDOWN:
			io.KeyPress(int(ev.Keysym.Scancode))
		case sdl.KEYUP:
			io.KeyRelease(int(ev.Keysym.Scancode))
		}

		modState := sdl.GetModState()
		io.KeyCtrl(boolToKey(modState&sdl.KMOD_LCTRL != 0, sdl.SCANCODE_LCTRL),
			boolToKey(modState&sdl.KMOD_RCTRL != 0, sdl.SCANCODE_RCTRL))
		io.KeyShift(boolToKey(modState&sdl.KMOD_LSHIFT != 0, sdl.SCANCODE_LSHIFT),
			boolToKey(modState&sdl.KMOD_RSHIFT != 0, sdl.SCANCODE_RSHIFT))
		io.KeyAlt(boolToKey(modState&sdl.KMOD_LALT != 0, sdl.SCANCODE_LALT),
			boolToKey(modState&sdl.KMOD_RALT != 0, sdl.SCANCODE_RALT))
	}

	return true
}

// the key functions of imgui.IO take a native key value or zero
func boolToKey(pressed bool, key int) int {
	if pressed {
		return key
	}
	return 0
}

// length of a NULL terminated byte array
func clen(b []byte) int {
	for i := 0; i < len(b); i++ {
		if b[i] == 0 {
			return i
		}
	}
	return len(b)
}

// displaySize returns the dimension of the display.
func (plt *platform) displaySize() (float32, float32) {
	w, h := plt.window.GetSize()
	return float32(w), float32(h)
}

// framebufferSize returns the dimension of the framebuffer.
func (plt *platform) framebufferSize() (float32, float32) {
	w, h := plt.window.GLGetDrawableSize()
	return float32(w), float32(h)
}

// newFrame marks the begin of a render pass. It forwards all current state to imgui.CurrentIO().
func (plt *platform) newFrame() {
	io := imgui.CurrentIO()

	// display size every frame to accommodate for window resizing
	w, h := plt.displaySize()
	io.SetDisplaySize(imgui.Vec2{X: w, Y: h})

	x, y, state := sdl.GetMouseState()
	io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})

	// a button pressed since the previous frame is always seen as held
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		io.SetMouseButtonDown(i, plt.buttonsPressed[i] || (state&sdl.Button(button)) != 0)
		plt.buttonsPressed[i] = false
	}
}

// postRender performs a buffer swap.
func (plt *platform) postRender() {
	plt.window.GLSwap()
}
