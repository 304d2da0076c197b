package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FileBrowser lists a directory and previews the wiring document under the
// cursor.
type FileBrowser struct {
	List           list.Model
	CurrentDir     string
	Selected       string
	PreviewContent string
	Height         int
	Width          int
	Err            error
	AllowedTypes   []string
}

type fileItem struct {
	name  string
	path  string
	isDir bool
	info  os.FileInfo
}

func (i fileItem) Title() string {
	if i.isDir {
		return i.name + "/"
	}
	return i.name
}
func (i fileItem) Description() string {
	if i.isDir || i.info == nil {
		return "Directory"
	}
	return fmt.Sprintf("File • %d bytes", i.info.Size())
}
func (i fileItem) FilterValue() string { return i.name }

type browserDelegate struct {
	allowedTypes []string
}

func (d browserDelegate) Height() int                               { return 1 }
func (d browserDelegate) Spacing() int                              { return 0 }
func (d browserDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d browserDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(fileItem)
	if !ok {
		return
	}

	str := i.Title()

	var style lipgloss.Style
	switch {
	case index == m.Index():
		style = styleSelected
		str = "> " + str
	case i.isDir:
		style = lipgloss.NewStyle().Foreground(colorText).Bold(true)
		str = "  " + str
	case hasExtension(i.name, d.allowedTypes):
		style = lipgloss.NewStyle().Foreground(colorPrimary)
		str = "  " + str
	default:
		style = lipgloss.NewStyle().Foreground(colorSubtext).Faint(true)
		str = "  " + str
	}

	fmt.Fprint(w, style.Render(str))
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range exts {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

func NewFileBrowser(allowedTypes []string) FileBrowser {
	cwd, _ := os.Getwd()

	l := list.New([]list.Item{}, browserDelegate{allowedTypes: allowedTypes}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styleTitle

	fb := FileBrowser{
		List:         l,
		CurrentDir:   cwd,
		AllowedTypes: allowedTypes,
	}
	fb.refreshDir()
	return fb
}

func (fb *FileBrowser) refreshDir() {
	entries, err := os.ReadDir(fb.CurrentDir)
	if err != nil {
		fb.Err = err
		return
	}
	fb.Err = nil

	items := []list.Item{}

	if filepath.Dir(fb.CurrentDir) != fb.CurrentDir {
		items = append(items, fileItem{name: "..", path: filepath.Dir(fb.CurrentDir), isDir: true})
	}

	// Dirs first, then files
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}

		info, _ := e.Info()
		items = append(items, fileItem{
			name:  e.Name(),
			path:  filepath.Join(fb.CurrentDir, e.Name()),
			isDir: e.IsDir(),
			info:  info,
		})
	}

	fb.List.SetItems(items)
	fb.updatePreview()
}

func (fb *FileBrowser) HasValidFilesInDir(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if hasExtension(e.Name(), fb.AllowedTypes) {
			return true
		}
	}
	return false
}

func (fb *FileBrowser) SelectedHasValidExtension() bool {
	return fb.Selected != "" && hasExtension(fb.Selected, fb.AllowedTypes)
}

func (fb *FileBrowser) updatePreview() {
	fi, ok := fb.List.SelectedItem().(fileItem)
	if !ok {
		fb.PreviewContent = ""
		return
	}

	if fi.isDir {
		fb.Selected = ""
		fb.PreviewContent = "Directory: " + fi.name
		return
	}

	fb.Selected = fi.path

	if !hasExtension(fi.name, fb.AllowedTypes) {
		fb.PreviewContent = "Not a machine file.\nSupported: " + strings.Join(fb.AllowedTypes, " ")
		return
	}

	content, err := os.ReadFile(fi.path)
	if err != nil {
		fb.PreviewContent = "Error reading file: " + err.Error()
		return
	}

	lines := strings.Split(string(content), "\n")
	maxLines := fb.Height
	if maxLines <= 0 {
		maxLines = 10
	}
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], "... (truncated)")
	}

	fb.PreviewContent = strings.Join(lines, "\n")
}

func (fb FileBrowser) Update(msg tea.Msg) (FileBrowser, tea.Cmd) {
	var cmd tea.Cmd
	fb.List, cmd = fb.List.Update(msg)

	if msg, ok := msg.(tea.KeyMsg); ok && fb.List.FilterState() != list.Filtering {
		switch msg.String() {
		case "enter":
			// files are picked up by the model through Selected
			if fi, ok := fb.List.SelectedItem().(fileItem); ok && fi.isDir {
				fb.CurrentDir = fi.path
				fb.refreshDir()
				fb.List.ResetSelected()
			}
		case "backspace", "left":
			parent := filepath.Dir(fb.CurrentDir)
			if parent != fb.CurrentDir {
				fb.CurrentDir = parent
				fb.refreshDir()
				fb.List.ResetSelected()
			}
		}
	}

	fb.updatePreview()
	return fb, cmd
}

func (fb *FileBrowser) SetSize(width, height int) {
	fb.Width = width
	fb.Height = height
	fb.List.SetSize(width, height)
}

func (fb FileBrowser) View() string {
	if fb.Err != nil {
		return styleError.Render(fb.Err.Error())
	}
	return fb.List.View()
}
