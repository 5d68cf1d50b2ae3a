// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/orderly/avl"
	"github.com/cybrota/orderly/script"
)

// focus targets, cycled with tab
const (
	focusInput = iota
	focusKeys
	focusTree
	focusHelp
	focusCount
)

var traversalOrder = []string{"inorder", "preorder", "postorder"}

// Model represents the explore UI state
type Model struct {
	ready bool

	textInput    textinput.Model
	keysList     list.Model
	treeViewport viewport.Model
	helpViewport viewport.Model

	// Data
	session   *script.Session
	manager   *script.Manager
	helpCache *cache.Cache
	config    *Config

	// State
	focusIndex int
	traversal  string
	lastVerb   string
	status     string
	statusErr  bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// keyItem represents a key in the keys list
type keyItem struct {
	key, value string
}

func (i keyItem) FilterValue() string { return i.key }
func (i keyItem) Title() string       { return i.key }
func (i keyItem) Description() string { return i.value }

// InitialModel creates the initial model
func InitialModel(session *script.Session, manager *script.Manager, hc *cache.Cache, config *Config, styles *Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 42 answer"
	ti.Prompt = "> "
	ti.PromptStyle = styles.InputPrompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	keysList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	keysList.SetShowTitle(false)
	keysList.SetShowHelp(false)
	keysList.SetFilteringEnabled(false)

	helpViewport := viewport.New(0, 0)
	helpViewport.SetContent("Type a verb to see its help...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	model := Model{
		textInput:       ti,
		keysList:        keysList,
		treeViewport:    viewport.New(0, 0),
		helpViewport:    helpViewport,
		session:         session,
		manager:         manager,
		helpCache:       hc,
		config:          config,
		focusIndex:      focusInput,
		traversal:       config.Explore.Traversal,
		styles:          styles,
		glamourRenderer: glamourRenderer,
	}
	model.refreshTree()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focusIndex + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+t":
		m.cycleTraversal()
		return m, nil
	case "ctrl+y":
		rendered := m.session.Tree.String()
		if err := copyToClipboard(rendered); err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
		} else {
			m.setStatus("tree copied to clipboard", false)
		}
		return m, nil
	case "enter":
		if m.focusIndex == focusInput {
			m.execute(m.textInput.Value())
			m.textInput.SetValue("")
			return m, nil
		}
		if m.focusIndex == focusKeys {
			// pull the selected key into the input for editing
			if item, ok := m.keysList.SelectedItem().(keyItem); ok {
				m.textInput.SetValue(fmt.Sprintf("find %q", item.key))
				m.textInput.CursorEnd()
				m.setFocus(focusInput)
			}
			return m, nil
		}
	}

	switch m.focusIndex {
	case focusInput:
		m.textInput, cmd = m.textInput.Update(msg)
		m.updateHelp(verbOf(m.textInput.Value()))
	case focusKeys:
		m.keysList, cmd = m.keysList.Update(msg)
	case focusTree:
		m.treeViewport, cmd = m.treeViewport.Update(msg)
	case focusHelp:
		m.helpViewport, cmd = m.helpViewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(index int) {
	m.focusIndex = index
	if index == focusInput {
		m.textInput.Focus()
	} else {
		m.textInput.Blur()
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// execute runs one script line against the session and refreshes the panes.
func (m *Model) execute(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	out, err := m.manager.Exec(m.session, line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if out == "" {
		out = "ok"
	}
	// keep multi-line results such as print out of the status bar
	if strings.Contains(out, "\n") {
		out = strings.SplitN(out, "\n", 2)[0] + " ..."
	}
	m.setStatus(out, false)
	m.refreshTree()
}

func (m *Model) cycleTraversal() {
	for i, name := range traversalOrder {
		if name == m.traversal {
			m.traversal = traversalOrder[(i+1)%len(traversalOrder)]
			break
		}
	}
	m.refreshTree()
}

// refreshTree re-renders the tree pane and the key listing
func (m *Model) refreshTree() {
	tree := m.session.Tree

	rendered := tree.String()
	if tree.Len() > 0 {
		rendered = fmt.Sprintf("%s\n\n%d keys, height %d", rendered, tree.Len(), tree.Height())
	}
	m.treeViewport.SetContent(rendered)

	items := make([]list.Item, 0, tree.Len())
	for n := range traversal(tree, m.traversal) {
		items = append(items, keyItem{key: n.Key(), value: n.Value()})
	}
	m.keysList.SetItems(items)
}

func traversal(tree *avl.Tree[string, string], order string) iter.Seq[*avl.Node[string, string]] {
	switch order {
	case "preorder":
		return tree.PreOrder()
	case "postorder":
		return tree.PostOrder()
	}
	return tree.InOrder()
}

func verbOf(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// updateHelp shows the help page of verb, rendered once and then cached
func (m *Model) updateHelp(verb string) {
	if verb == "" || verb == m.lastVerb {
		return
	}
	// partial words typed on the way to a verb keep the current page
	if _, known := script.Descriptions[script.Canonical(verb)]; !known {
		return
	}
	m.lastVerb = verb

	page := GetOrFillHelpPage(m.helpCache, verb, func(v string) string {
		md := verbHelpMarkdown(v)
		if m.glamourRenderer == nil {
			return md
		}
		if rendered, err := m.glamourRenderer.Render(md); err == nil {
			return rendered
		}
		return md
	})
	m.helpViewport.SetContent(page)
	m.helpViewport.GotoTop()
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3
	treeHeight := (inputHeight + listHeight) / 2

	m.textInput.Width = leftWidth - 4
	m.keysList.SetSize(leftWidth-2, listHeight-2)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = treeHeight
	m.helpViewport.Width = rightWidth - 2
	m.helpViewport.Height = inputHeight + listHeight - treeHeight - 2
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.box(focusInput, " Command ", leftWidth, inputHeight, m.textInput.View())
	keysBox := m.box(focusKeys, fmt.Sprintf(" Keys (%s) ", m.traversal), leftWidth, listHeight, m.keysList.View())
	treeBox := m.box(focusTree, " Tree ", rightWidth, m.treeViewport.Height+1, m.treeViewport.View())
	helpBox := m.box(focusHelp, " Help ", rightWidth, m.helpViewport.Height+1, m.helpViewport.View())

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, keysBox),
		lipgloss.JoinVertical(lipgloss.Left, treeBox, helpBox),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panes,
		m.renderStatus(),
		m.renderFooter(),
	)
}

func (m Model) box(index int, title string, width, height int, content string) string {
	style := m.styles.BorderBlurred
	if m.focusIndex == index {
		style = m.styles.BorderFocused
		title += "(Active) "
	}
	return style.
		Width(width).
		Height(height).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(width-4).Render(title),
			content,
		))
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.ErrorMessage.Render("  " + m.status)
	}
	return m.styles.SuccessMessage.Render("  " + m.status)
}

// renderFooter renders the key bindings
func (m Model) renderFooter() string {
	bindings := [][2]string{
		{"enter", "run command"},
		{"tab", "switch focus"},
		{"ctrl+t", "traversal order"},
		{"ctrl+y", "copy tree"},
		{"esc", "quit"},
	}

	var helpEntries []string
	for _, b := range bindings {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(b[0]),
				m.styles.HelpDesc.Render(b[1])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runExplore starts the explore UI over session
func runExplore(session *script.Session, config *Config) error {
	InitializeColors()

	model := InitialModel(
		session,
		script.NewManager(),
		NewHelpCache(config.Cache),
		config,
		NewStyles(detectedMode),
	)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stdout),
	)

	_, err := program.Run()
	return err
}
