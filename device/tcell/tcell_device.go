package tcell

import (
	"fmt"

	"termui/actor"
	"termui/device"
	"termui/lifecycle"
	"termui/logging"
	"termui/ui"

	"github.com/gdamore/tcell/v2"
)

// Device feeds tcell input to a ui.Manager and paints its tree.
type Device struct {
	screen  tcell.Screen
	manager *ui.Manager
}

var _ device.Device = (*Device)(nil)

const wheelButtons = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// NewDevice initializes screen. With mouseMotion the pointer is tracked
// while no button is held, so hovered widgets are highlighted.
func NewDevice(screen tcell.Screen, manager *ui.Manager, mouseMotion bool) (*Device, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if mouseMotion {
		screen.EnableMouse(tcell.MouseMotionEvents)
	} else {
		screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	}

	return &Device{screen: screen, manager: manager}, nil
}

func (d *Device) Screen() tcell.Screen { return d.screen }

// Run polls the screen and handles every event on a single UI goroutine.
// It returns after Ctrl+C or Esc, or when lc is stopped, with the screen
// finalized.
func (d *Device) Run(lc *lifecycle.Lifecycle) {
	handler := actor.NewActor(func(event tcell.Event) bool {
		if d.HandleEvent(event) {
			lc.Cancel()
			return false
		}
		return true
	})

	lc.Started()
	go func() {
		defer lc.Done()
		for {
			event := d.screen.PollEvent()
			if event == nil {
				return
			}
			handler.Send(event)
		}
	}()

	<-lc.Stopping()
	handler.Stop()
	<-handler.Done()
	d.screen.Fini()
	lc.Stop()
}

// HandleEvent routes one tcell event to the manager, repaints and reports
// whether the user asked to quit.
func (d *Device) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		w, h := ev.Size()
		logging.Debugf("resize: cols=%d lines=%d", w, h)
		d.manager.Resize(ui.Size{Width: w, Height: h})
		d.paint(true)

	case *tcell.EventKey:
		logging.Debugf("key: name=%v rune=%q mod=%v", ev.Name(), ev.Rune(), ev.Modifiers())
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
			return true
		}
		d.handleKey(ev)
		d.paint(false)

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons() &^ wheelButtons
		logging.Debugf("mouse: buttons=%v mods=%v [%d:%d]", ev.Buttons(), ev.Modifiers(), x, y)
		d.manager.HandleMouse(ui.Point{X: x, Y: y}, buttons, ev.Modifiers())
		d.paint(false)

	case nil:

	default:
		logging.Debugf("unhandled tcell event: %T", ev)
	}
	return false
}

// handleKey delivers a key press followed by its release: terminals only
// report presses.
func (d *Device) handleKey(ev *tcell.EventKey) {
	key, ch, mod := ev.Key(), ev.Rune(), ev.Modifiers()
	handled := d.manager.HandleKeyDown(key, ch, mod)
	d.manager.HandleKeyUp(key, ch, mod)
	if handled {
		return
	}
	switch key {
	case tcell.KeyTab:
		d.manager.FocusNext(true)
	case tcell.KeyBacktab:
		d.manager.FocusNext(false)
	}
}

func (d *Device) paint(force bool) {
	if force {
		d.screen.Clear()
	}
	d.manager.Paint(d.screen, force)
	d.screen.Show()
}
