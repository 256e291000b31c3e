package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shaunstanislauslau/hermes/buffer"
	"github.com/shaunstanislauslau/hermes/dataview"
	"github.com/shaunstanislauslau/hermes/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// decoder is one row of the typed-read table.
type decoder struct {
	name string
	read func(v *dataview.View, off uint64, le bool) (string, error)
}

var decoders = []decoder{
	{"int8", func(v *dataview.View, off uint64, _ bool) (string, error) {
		n, err := v.GetInt8(off)
		return fmt.Sprintf("%d", int64(n)), err
	}},
	{"uint8", func(v *dataview.View, off uint64, _ bool) (string, error) {
		n, err := v.GetUint8(off)
		return fmt.Sprintf("%d", uint64(n)), err
	}},
	{"int16", func(v *dataview.View, off uint64, le bool) (string, error) {
		n, err := v.GetInt16(off, le)
		return fmt.Sprintf("%d", int64(n)), err
	}},
	{"uint16", func(v *dataview.View, off uint64, le bool) (string, error) {
		n, err := v.GetUint16(off, le)
		return fmt.Sprintf("%d", uint64(n)), err
	}},
	{"int32", func(v *dataview.View, off uint64, le bool) (string, error) {
		n, err := v.GetInt32(off, le)
		return fmt.Sprintf("%d", int64(n)), err
	}},
	{"uint32", func(v *dataview.View, off uint64, le bool) (string, error) {
		n, err := v.GetUint32(off, le)
		return fmt.Sprintf("%d", uint64(n)), err
	}},
	{"float32", func(v *dataview.View, off uint64, le bool) (string, error) {
		n, err := v.GetFloat32(off, le)
		return fmt.Sprintf("%g", n), err
	}},
	{"float64", func(v *dataview.View, off uint64, le bool) (string, error) {
		n, err := v.GetFloat64(off, le)
		return fmt.Sprintf("%g", n), err
	}},
	{"bigint64", func(v *dataview.View, off uint64, le bool) (string, error) {
		n, err := v.GetBigInt64(off, le)
		return fmt.Sprintf("%d", n), err
	}},
	{"biguint64", func(v *dataview.View, off uint64, le bool) (string, error) {
		n, err := v.GetBigUint64(off, le)
		return fmt.Sprintf("%d", n), err
	}},
}

type inspectModel struct {
	buf      *buffer.ArrayBuffer
	view     *dataview.View
	input    textinput.Model
	filename string
	status   string
	offset   uint64
	columns  int
	le       bool
	noColor  bool
}

func newInspectModel(filename string, cfg config, le bool) (*inspectModel, error) {
	buf, err := buffer.Map(filename)
	if err != nil {
		return nil, err
	}
	view, err := dataview.New(buf, 0, nil)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "offset (decimal or 0x hex)"
	ti.CharLimit = 18
	ti.Width = 24
	ti.Focus()

	return &inspectModel{
		buf:      buf,
		view:     view,
		input:    ti,
		filename: filename,
		columns:  cfg.Columns,
		le:       le || cfg.LittleEndian,
		noColor:  cfg.NoColor,
	}, nil
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.le = !m.le
			return m, nil
		case "ctrl+d":
			// Live demonstration of detachment semantics: the view
			// survives, every typed read below starts failing.
			m.buf.Detach()
			m.status = "buffer detached"
			return m, nil
		case "left":
			if m.offset > 0 {
				m.offset--
			}
			return m, nil
		case "right":
			m.offset++
			return m, nil
		case "up":
			if m.offset >= uint64(m.columns) {
				m.offset -= uint64(m.columns)
			}
			return m, nil
		case "down":
			m.offset += uint64(m.columns)
			return m, nil
		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				return m, nil
			}
			off, err := strconv.ParseUint(strings.TrimPrefix(raw, "0x"), parseBase(raw), 64)
			if err != nil {
				m.status = "bad offset: " + raw
				return m, nil
			}
			m.offset = off
			m.status = ""
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func parseBase(raw string) int {
	if strings.HasPrefix(raw, "0x") {
		return 16
	}
	return 10
}

func (m *inspectModel) style(s lipgloss.Style, text string) string {
	if m.noColor {
		return text
	}
	return s.Render(text)
}

func (m *inspectModel) View() string {
	var b strings.Builder

	length, _ := m.view.ByteLength()
	title := fmt.Sprintf(" %s — %d bytes — %s ", m.filename, length, orderName(m.le))
	b.WriteString(m.style(titleStyle, title))
	b.WriteString("\n\n")

	b.WriteString(m.hexWindow())
	b.WriteString("\n")

	for _, d := range decoders {
		val, err := d.read(m.view, m.offset, m.le)
		if err != nil {
			val = m.style(errorStyle, err.Error())
		} else {
			val = m.style(valueStyle, val)
		}
		fmt.Fprintf(&b, "  %-10s %s\n", d.name, val)
	}

	if data := m.buf.Bytes(); data != nil {
		end := min(m.offset+16, uint64(len(data)))
		if m.offset < end {
			fmt.Fprintf(&b, "  %-10s %v\n", "ascii", transcoder.IsAllASCII(data[m.offset:end]))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.style(errorStyle, m.status) + "\n")
	}

	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(m.style(helpStyle, "arrows: move • enter: jump • tab: endianness • ctrl+d: detach • q: quit"))
	b.WriteString("\n")
	return b.String()
}

// hexWindow renders a few rows of hex around the cursor offset.
func (m *inspectModel) hexWindow() string {
	data := m.buf.Bytes()
	if data == nil {
		return m.style(errorStyle, "  <detached>") + "\n"
	}

	cols := uint64(m.columns)
	row := m.offset / cols
	first := uint64(0)
	if row >= 3 {
		first = row - 3
	}

	var b strings.Builder
	for r := first; r < first+8; r++ {
		start := r * cols
		if start >= uint64(len(data)) {
			break
		}
		end := min(start+cols, uint64(len(data)))
		b.WriteString(m.style(offsetStyle, fmt.Sprintf("  %08x  ", start)))
		for i := start; i < end; i++ {
			cell := fmt.Sprintf("%02x ", data[i])
			if i == m.offset {
				cell = m.style(cursorStyle, fmt.Sprintf("%02x", data[i])) + " "
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func runInteractive(filename, configPath string, le bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	m, err := newInspectModel(filename, cfg, le)
	if err != nil {
		return err
	}
	defer m.buf.Detach()

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
