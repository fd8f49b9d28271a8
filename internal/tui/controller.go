package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"timeaftertime/internal/model"
	"timeaftertime/internal/styling"
)

// Controller runs the interactive timesheet table: a single-threaded event
// loop polling the terminal and redrawing the view.
type Controller struct {
	screen *ScreenHandler
	view   *TableView

	scrollOffset int
}

// NewController sets up the terminal screen and the table view for the given
// sheet.
func NewController(sheet *model.Timesheet, stylesheet *styling.Stylesheet) *Controller {
	screen := NewScreenHandler()
	return &Controller{
		screen: screen,
		view:   NewTableView(sheet, stylesheet),
	}
}

// Run displays the table until the user quits. It blocks and finalizes the
// screen on return.
func (c *Controller) Run() {
	defer c.screen.Fini()

	c.view.Draw(c.screen, c.scrollOffset)

	for {
		event := c.screen.PollEvent()

		switch e := event.(type) {
		case *tcell.EventResize:
			c.screen.NeedsSync()

		case *tcell.EventKey:
			switch {
			case e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC:
				return
			case e.Key() == tcell.KeyRune && e.Rune() == 'q':
				return

			case e.Key() == tcell.KeyDown || (e.Key() == tcell.KeyRune && e.Rune() == 'j'):
				c.scrollBy(1)
			case e.Key() == tcell.KeyUp || (e.Key() == tcell.KeyRune && e.Rune() == 'k'):
				c.scrollBy(-1)
			case e.Key() == tcell.KeyPgDn:
				c.scrollBy(c.pageSize())
			case e.Key() == tcell.KeyPgUp:
				c.scrollBy(-c.pageSize())
			case e.Key() == tcell.KeyRune && e.Rune() == 'g':
				c.scrollOffset = 0
			case e.Key() == tcell.KeyRune && e.Rune() == 'G':
				c.scrollBy(c.view.RowCount())
			}

		default:
			log.Trace().Msgf("ignoring event of type %T", event)
		}

		c.view.Draw(c.screen, c.scrollOffset)
	}
}

func (c *Controller) pageSize() int {
	_, h := c.screen.Dimensions()
	if h > 1 {
		return h - 1
	}
	return 1
}

// scrollBy moves the view, clamped so that the last row stays on screen.
func (c *Controller) scrollBy(delta int) {
	max := c.view.RowCount() - c.pageSize()
	if max < 0 {
		max = 0
	}

	c.scrollOffset += delta
	if c.scrollOffset > max {
		c.scrollOffset = max
	}
	if c.scrollOffset < 0 {
		c.scrollOffset = 0
	}
}
