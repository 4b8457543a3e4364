package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skiffadmin/internal/api"
	"skiffadmin/internal/model"
	"skiffadmin/internal/session"
)

// PreviewState tracks the open preview drawer. The payload is dropped
// wholesale when the drawer closes.
type PreviewState struct {
	origin  model.PreviewOrigin
	loading bool
	data    *model.PreviewData
}

// Model is the root Bubble Tea model.
type Model struct {
	client  *api.Client
	session *session.Store

	width  int
	height int

	keys    KeyMap
	spinner spinner.Model
	gState  GState
	mode    model.Mode

	authLoading bool
	user        *model.User
	login       *LoginModel

	section model.Section
	tab     model.ModerationTab

	queue        model.ReviewQueue
	queueLoaded  bool
	queueLoading bool
	queueSeq     int

	activities      []model.ModerationAction
	activityMeta    model.PaginationMeta
	activityFilters model.ActivityFilters
	activityPage    int
	activitySeq     int
	activityLoading bool
	activityLoaded  bool
	filterForm      *FilterFormModel

	listings        []model.LiveListing
	listingsMeta    model.PaginationMeta
	listingsPage    int
	listingsSeq     int
	listingsLoading bool
	listingsLoaded  bool

	// Note drafts keyed per review item; survive reloads, die with the app.
	reviewNotes   map[string]string
	noteEditor    *NoteEditorModel
	actionLoading map[string]bool

	moderationCursor int
	activityCursor   int
	listingCursor    int

	preview        *PreviewState
	detail         *model.ReviewDetail
	activityDetail *model.ModerationAction

	// Loads still outstanding from the post-auth bootstrap. While any
	// remain, a load failure ends the session instead of just showing
	// a banner.
	bootstrapRemaining int

	errorMsg    string
	info        string
	showingHelp bool
}

// New creates the root model. A stored session token is adopted before
// the program starts so Init can verify it.
func New(client *api.Client, store *session.Store) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	m := Model{
		client:        client,
		session:       store,
		keys:          DefaultKeyMap(),
		spinner:       s,
		mode:          model.ModeNav,
		section:       model.SectionDashboard,
		tab:           model.TabQueue,
		activityPage:  1,
		listingsPage:  1,
		reviewNotes:   make(map[string]string),
		actionLoading: make(map[string]bool),
	}

	token, err := store.Load()
	if err == nil && token != "" {
		client.SetToken(token)
		m.authLoading = true
	} else {
		m.login = NewLoginModel()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.authLoading {
		return tea.Batch(m.spinner.Tick, verifySessionCmd(m.client))
	}
	return textinput.Blink
}

func (m Model) busy() bool {
	return m.authLoading ||
		m.queueLoading ||
		m.activityLoading ||
		m.listingsLoading ||
		len(m.actionLoading) > 0 ||
		(m.preview != nil && m.preview.loading) ||
		(m.login != nil && m.login.submitting)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case model.SessionVerifiedMsg:
		m.authLoading = false
		m.user = &msg.User
		m.login = nil
		m.errorMsg = ""
		return m, m.initialLoads()

	case model.AuthFailedMsg:
		m.authLoading = false
		if msg.Discard {
			_ = m.session.Clear()
			m.client.SetToken("")
		}
		m.user = nil
		m.login = NewLoginModel()
		m.errorMsg = msg.Message
		return m, textinput.Blink

	case model.LoginResultMsg:
		if m.login != nil {
			m.login.submitting = false
		}
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		if !msg.User.IsAdmin() {
			m.client.SetToken("")
			m.errorMsg = "This account is not an admin."
			return m, nil
		}
		m.client.SetToken(msg.Token)
		m.info = ""
		if err := m.session.Save(msg.Token); err != nil {
			m.info = "Session will not persist: " + err.Error()
		}
		m.user = &msg.User
		m.login = nil
		m.errorMsg = ""
		return m, m.initialLoads()

	case model.LoggedOutMsg:
		m = New(m.client, m.session)
		m.client.SetToken("")
		m.login = NewLoginModel()
		m.authLoading = false
		m.info = "Signed out."
		return m, textinput.Blink

	case model.QueueLoadedMsg:
		if msg.Seq != m.queueSeq {
			return m, nil
		}
		m.queueLoading = false
		if msg.Err != nil {
			if m.bootstrapRemaining > 0 {
				return m.forceLogout(msg.Err.Error())
			}
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		if m.bootstrapRemaining > 0 {
			m.bootstrapRemaining--
		}
		m.queue = msg.Queue
		m.queueLoaded = true
		m.moderationCursor = clampCursor(m.moderationCursor, m.queue.TotalPending())
		return m, nil

	case model.ActivityLoadedMsg:
		if msg.Seq != m.activitySeq {
			return m, nil
		}
		m.activityLoading = false
		if msg.Err != nil {
			if m.bootstrapRemaining > 0 {
				return m.forceLogout(msg.Err.Error())
			}
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		if m.bootstrapRemaining > 0 {
			m.bootstrapRemaining--
		}
		m.activities = msg.Actions
		m.activityMeta = msg.Meta
		m.activityPage = msg.Page
		m.activityFilters = msg.Filters
		m.activityLoaded = true
		m.activityCursor = clampCursor(m.activityCursor, len(m.activities))
		return m, nil

	case model.LiveListingsLoadedMsg:
		if msg.Seq != m.listingsSeq {
			return m, nil
		}
		m.listingsLoading = false
		if msg.Err != nil {
			if m.bootstrapRemaining > 0 {
				return m.forceLogout(msg.Err.Error())
			}
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		if m.bootstrapRemaining > 0 {
			m.bootstrapRemaining--
		}
		m.listings = msg.Listings
		m.listingsMeta = msg.Meta
		m.listingsPage = msg.Page
		m.listingsLoaded = true
		m.listingCursor = clampCursor(m.listingCursor, len(m.listings))
		return m, nil

	case model.MutationDoneMsg:
		delete(m.actionLoading, msg.Key)
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		delete(m.reviewNotes, msg.NoteKey)
		m.info = successMessage(msg.Key)
		return m, m.refreshAfterMutation()

	case model.PreviewLoadedMsg:
		// A closed drawer discards whatever arrives afterwards.
		if m.preview == nil || m.preview.origin != msg.Origin {
			return m, nil
		}
		if msg.Err != nil {
			m.preview = nil
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.preview.loading = false
		m.preview.data = msg.Data
		return m, nil

	case model.ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil
	}

	return m, nil
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func successMessage(key string) string {
	switch {
	case strings.HasPrefix(key, "approve-revision-"):
		return "Listing revision approved"
	case strings.HasPrefix(key, "reject-revision-"):
		return "Changes requested"
	case strings.HasPrefix(key, "verify-insurance-"):
		return "Insurance verified"
	case strings.HasPrefix(key, "reject-insurance-"):
		return "Insurance rejected"
	default:
		return "Done"
	}
}

// loadAll fetches the review queue, the first activity page, and the
// first listings page concurrently.
func (m *Model) loadAll() tea.Cmd {
	m.queueSeq++
	m.queueLoading = true
	m.activitySeq++
	m.activityLoading = true
	m.activityPage = 1
	m.listingsSeq++
	m.listingsLoading = true
	return tea.Batch(
		loadQueueCmd(m.client, m.queueSeq),
		loadActivityCmd(m.client, m.activitySeq, 1, m.activityFilters),
		loadListingsCmd(m.client, m.listingsSeq, 1),
		m.spinner.Tick,
	)
}

// initialLoads is the post-auth bootstrap: all three collections at
// once, with failures ending the session.
func (m *Model) initialLoads() tea.Cmd {
	m.bootstrapRemaining = 3
	return m.loadAll()
}

// forceLogout drops back to the login screen with a message. The stored
// token is kept; the next sign-in overwrites it.
func (m Model) forceLogout(message string) (tea.Model, tea.Cmd) {
	m.bootstrapRemaining = 0
	m.queueLoading = false
	m.activityLoading = false
	m.listingsLoading = false
	m.user = nil
	m.login = NewLoginModel()
	m.errorMsg = message
	return m, textinput.Blink
}

// refreshAfterMutation reloads the queue and the first activity page so
// both the pending counts and the new audit record show up.
func (m *Model) refreshAfterMutation() tea.Cmd {
	m.queueSeq++
	m.queueLoading = true
	m.activitySeq++
	m.activityLoading = true
	m.activityPage = 1
	return tea.Batch(
		loadQueueCmd(m.client, m.queueSeq),
		loadActivityCmd(m.client, m.activitySeq, 1, m.activityFilters),
		m.spinner.Tick,
	)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.user == nil {
		return m.handleLoginKey(msg)
	}

	if m.showingHelp {
		if msg.String() == "esc" || msg.String() == "?" {
			m.showingHelp = false
		}
		return m, nil
	}
	if msg.String() == "?" && m.mode == model.ModeNav {
		m.showingHelp = true
		return m, nil
	}

	if m.mode == model.ModeInsert {
		return m.handleInsertKey(msg)
	}

	// Overlays swallow everything but their close keys.
	if m.preview != nil {
		if msg.String() == "esc" || msg.String() == "p" || msg.String() == "q" {
			m.preview = nil
		}
		return m, nil
	}
	if m.detail != nil {
		switch msg.String() {
		case "esc", "enter", "q":
			m.detail = nil
			return m, nil
		case "a":
			m.detail = nil
			return m.approveSelected()
		case "x":
			// Stays open when the note validation fails so the error
			// is visible alongside the item.
			next, cmd := m.rejectSelected()
			if cmd != nil {
				updated := next.(Model)
				updated.detail = nil
				return updated, cmd
			}
			return next, nil
		}
		return m, nil
	}
	if m.activityDetail != nil {
		if msg.String() == "esc" || msg.String() == "enter" || msg.String() == "q" {
			m.activityDetail = nil
		}
		return m, nil
	}

	return m.handleNavKey(msg)
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.authLoading || m.login == nil {
		return m, nil
	}
	if m.login.submitting {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		m.login.NextField()
		return m, nil
	case "shift+tab", "up":
		m.login.PrevField()
		return m, nil
	case "enter":
		email, password := m.login.Email(), m.login.Password()
		if email == "" || password == "" {
			m.errorMsg = "Email and password are required."
			return m, nil
		}
		m.errorMsg = ""
		m.login.submitting = true
		return m, tea.Batch(loginCmd(m.client, email, password), m.spinner.Tick)
	default:
		return m, m.login.Update(msg)
	}
}

func (m Model) handleInsertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.noteEditor != nil {
		switch msg.String() {
		case "esc":
			m.noteEditor = nil
			m.mode = model.ModeNav
			return m, nil
		case "enter":
			m.reviewNotes[m.noteEditor.key] = m.noteEditor.Value()
			m.noteEditor = nil
			m.mode = model.ModeNav
			m.info = "Note saved"
			return m, nil
		default:
			return m, m.noteEditor.Update(msg)
		}
	}

	if m.filterForm != nil {
		switch msg.String() {
		case "esc":
			m.filterForm = nil
			m.mode = model.ModeNav
			return m, nil
		case "ctrl+r":
			m.filterForm = nil
			m.mode = model.ModeNav
			var next Model
			var cmd tea.Cmd
			next, cmd = m.applyFilters(model.ActivityFilters{})
			return next, cmd
		case "enter":
			filters := m.filterForm.Filters()
			m.filterForm = nil
			m.mode = model.ModeNav
			var next Model
			var cmd tea.Cmd
			next, cmd = m.applyFilters(filters)
			return next, cmd
		case "tab", "down":
			m.filterForm.NextField()
			return m, nil
		case "shift+tab", "up":
			m.filterForm.PrevField()
			return m, nil
		default:
			return m, m.filterForm.Update(msg)
		}
	}

	m.mode = model.ModeNav
	return m, nil
}

// applyFilters replaces the applied filter set and reloads the activity
// log from its first page.
func (m Model) applyFilters(filters model.ActivityFilters) (Model, tea.Cmd) {
	m.errorMsg = ""
	m.activityFilters = filters
	m.activityPage = 1
	m.activityCursor = 0
	m.activitySeq++
	m.activityLoading = true
	return m, tea.Batch(loadActivityCmd(m.client, m.activitySeq, 1, filters), m.spinner.Tick)
}

func (m Model) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// "gg" jump-to-top state machine
	if msg.String() == "g" {
		if m.gState == GStateFirstG {
			m.gState = GStateIdle
			m.setCursor(0)
			return m, nil
		}
		m.gState = GStateFirstG
		return m, nil
	}
	if m.gState == GStateFirstG {
		m.gState = GStateIdle
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "ctrl+l":
		return m, logoutCmd(m.client, m.session)

	case "1":
		return m.switchSection(model.SectionDashboard)
	case "2":
		return m.switchSection(model.SectionModeration)
	case "3":
		return m.switchSection(model.SectionLiveListings)

	case "left":
		return m.switchSection(prevSection(m.section))
	case "right":
		return m.switchSection(nextSection(m.section))

	case "tab":
		if m.section != model.SectionModeration {
			return m, nil
		}
		m.errorMsg = ""
		if m.tab == model.TabQueue {
			m.tab = model.TabActivity
			if !m.activityLoaded && !m.activityLoading {
				m.activitySeq++
				m.activityLoading = true
				return m, tea.Batch(loadActivityCmd(m.client, m.activitySeq, 1, m.activityFilters), m.spinner.Tick)
			}
		} else {
			m.tab = model.TabQueue
		}
		return m, nil

	case "j", "down":
		m.setCursor(m.cursor() + 1)
		return m, nil
	case "k", "up":
		m.setCursor(m.cursor() - 1)
		return m, nil
	case "G":
		m.setCursor(m.cursorLimit() - 1)
		return m, nil

	case "R":
		return m.refreshCurrentSection()

	case "[":
		return m.changePage(-1)
	case "]":
		return m.changePage(1)

	case "f":
		if m.section == model.SectionModeration && m.tab == model.TabActivity {
			m.filterForm = NewFilterFormModel(m.activityFilters)
			m.mode = model.ModeInsert
			return m, textinput.Blink
		}
		return m, nil

	case "n":
		return m.openNoteEditor()

	case "a":
		return m.approveSelected()

	case "x":
		return m.rejectSelected()

	case "p":
		return m.openPreview()

	case "enter":
		return m.openDetail()
	}

	return m, nil
}

func prevSection(s model.Section) model.Section {
	if s == model.SectionDashboard {
		return model.SectionLiveListings
	}
	return s - 1
}

func nextSection(s model.Section) model.Section {
	if s == model.SectionLiveListings {
		return model.SectionDashboard
	}
	return s + 1
}

func (m Model) switchSection(section model.Section) (tea.Model, tea.Cmd) {
	m.section = section
	m.errorMsg = ""
	if section == model.SectionLiveListings && !m.listingsLoaded && !m.listingsLoading {
		m.listingsSeq++
		m.listingsLoading = true
		return m, tea.Batch(loadListingsCmd(m.client, m.listingsSeq, m.listingsPage), m.spinner.Tick)
	}
	if section == model.SectionModeration && !m.queueLoaded && !m.queueLoading {
		m.queueSeq++
		m.queueLoading = true
		return m, tea.Batch(loadQueueCmd(m.client, m.queueSeq), m.spinner.Tick)
	}
	return m, nil
}

func (m Model) refreshCurrentSection() (tea.Model, tea.Cmd) {
	m.errorMsg = ""
	switch m.section {
	case model.SectionDashboard:
		return m, m.loadAll()
	case model.SectionModeration:
		if m.tab == model.TabActivity {
			m.activitySeq++
			m.activityLoading = true
			return m, tea.Batch(loadActivityCmd(m.client, m.activitySeq, m.activityPage, m.activityFilters), m.spinner.Tick)
		}
		m.queueSeq++
		m.queueLoading = true
		return m, tea.Batch(loadQueueCmd(m.client, m.queueSeq), m.spinner.Tick)
	case model.SectionLiveListings:
		m.listingsSeq++
		m.listingsLoading = true
		return m, tea.Batch(loadListingsCmd(m.client, m.listingsSeq, m.listingsPage), m.spinner.Tick)
	}
	return m, nil
}

// changePage pages the activity log or live listings. At either bound
// nothing is issued.
func (m Model) changePage(delta int) (tea.Model, tea.Cmd) {
	switch {
	case m.section == model.SectionModeration && m.tab == model.TabActivity:
		if delta < 0 && !m.activityMeta.HasPrev() {
			return m, nil
		}
		if delta > 0 && !m.activityMeta.HasNext() {
			return m, nil
		}
		m.errorMsg = ""
		m.activitySeq++
		m.activityLoading = true
		m.activityCursor = 0
		page := m.activityPage + delta
		return m, tea.Batch(loadActivityCmd(m.client, m.activitySeq, page, m.activityFilters), m.spinner.Tick)

	case m.section == model.SectionLiveListings:
		if delta < 0 && !m.listingsMeta.HasPrev() {
			return m, nil
		}
		if delta > 0 && !m.listingsMeta.HasNext() {
			return m, nil
		}
		m.errorMsg = ""
		m.listingsSeq++
		m.listingsLoading = true
		m.listingCursor = 0
		page := m.listingsPage + delta
		return m, tea.Batch(loadListingsCmd(m.client, m.listingsSeq, page), m.spinner.Tick)
	}
	return m, nil
}

// Cursor plumbing for whichever list is on screen.

func (m Model) cursor() int {
	switch {
	case m.section == model.SectionModeration && m.tab == model.TabQueue:
		return m.moderationCursor
	case m.section == model.SectionModeration && m.tab == model.TabActivity:
		return m.activityCursor
	case m.section == model.SectionLiveListings:
		return m.listingCursor
	}
	return 0
}

func (m Model) cursorLimit() int {
	switch {
	case m.section == model.SectionModeration && m.tab == model.TabQueue:
		return m.queue.TotalPending()
	case m.section == model.SectionModeration && m.tab == model.TabActivity:
		return len(m.activities)
	case m.section == model.SectionLiveListings:
		return len(m.listings)
	}
	return 0
}

func (m *Model) setCursor(value int) {
	value = clampCursor(value, m.cursorLimit())
	switch {
	case m.section == model.SectionModeration && m.tab == model.TabQueue:
		m.moderationCursor = value
	case m.section == model.SectionModeration && m.tab == model.TabActivity:
		m.activityCursor = value
	case m.section == model.SectionLiveListings:
		m.listingCursor = value
	}
}

// selectedReview maps the combined queue cursor to the underlying item:
// revisions first, then insurance submissions.
func (m Model) selectedReview() *model.ReviewDetail {
	if m.section != model.SectionModeration || m.tab != model.TabQueue {
		return nil
	}
	revisions := m.queue.ListingRevisions
	if m.moderationCursor < len(revisions) {
		return &model.ReviewDetail{Kind: model.KindListingRevision, Revision: &revisions[m.moderationCursor]}
	}
	idx := m.moderationCursor - len(revisions)
	if idx < len(m.queue.Insurances) {
		return &model.ReviewDetail{Kind: model.KindInsurance, Insurance: &m.queue.Insurances[idx]}
	}
	return nil
}

func noteKeyFor(review *model.ReviewDetail) string {
	if review.Kind == model.KindListingRevision {
		return fmt.Sprintf("rev-%d", review.Revision.ID)
	}
	return fmt.Sprintf("ins-%d", review.Insurance.ID)
}

func (m Model) draftNote(noteKey string) string {
	return strings.TrimSpace(m.reviewNotes[noteKey])
}

func (m Model) openNoteEditor() (tea.Model, tea.Cmd) {
	review := m.selectedReview()
	if review == nil {
		return m, nil
	}
	key := noteKeyFor(review)
	m.noteEditor = NewNoteEditorModel(key, m.reviewNotes[key])
	m.mode = model.ModeInsert
	return m, textinput.Blink
}

func (m Model) approveSelected() (tea.Model, tea.Cmd) {
	review := m.selectedReview()
	if review == nil {
		return m, nil
	}
	noteKey := noteKeyFor(review)
	notes := m.draftNote(noteKey)

	var key string
	var fn func(ctx context.Context) error
	if review.Kind == model.KindListingRevision {
		id := review.Revision.ID
		key = fmt.Sprintf("approve-revision-%d", id)
		fn = func(ctx context.Context) error { return m.client.ApproveRevision(ctx, id, notes) }
	} else {
		listingID := review.Insurance.ListingID
		key = fmt.Sprintf("verify-insurance-%d", review.Insurance.ID)
		fn = func(ctx context.Context) error { return m.client.VerifyInsurance(ctx, listingID, notes) }
	}

	if m.actionLoading[key] {
		return m, nil
	}
	m.errorMsg = ""
	m.actionLoading[key] = true
	return m, tea.Batch(mutationCmd(key, noteKey, fn), m.spinner.Tick)
}

func (m Model) rejectSelected() (tea.Model, tea.Cmd) {
	review := m.selectedReview()
	if review == nil {
		return m, nil
	}
	noteKey := noteKeyFor(review)
	notes := m.draftNote(noteKey)

	var key string
	var fn func(ctx context.Context) error
	if review.Kind == model.KindListingRevision {
		if notes == "" {
			m.errorMsg = "Review notes are required to request changes."
			return m, nil
		}
		id := review.Revision.ID
		key = fmt.Sprintf("reject-revision-%d", id)
		fn = func(ctx context.Context) error { return m.client.RequestChanges(ctx, id, notes) }
	} else {
		if notes == "" {
			m.errorMsg = "Review notes are required to reject insurance."
			return m, nil
		}
		listingID := review.Insurance.ListingID
		key = fmt.Sprintf("reject-insurance-%d", review.Insurance.ID)
		fn = func(ctx context.Context) error { return m.client.RejectInsurance(ctx, listingID, notes) }
	}

	if m.actionLoading[key] {
		return m, nil
	}
	m.errorMsg = ""
	m.actionLoading[key] = true
	return m, tea.Batch(mutationCmd(key, noteKey, fn), m.spinner.Tick)
}

func (m Model) openPreview() (tea.Model, tea.Cmd) {
	switch {
	case m.section == model.SectionModeration && m.tab == model.TabQueue:
		review := m.selectedReview()
		if review == nil {
			return m, nil
		}
		m.errorMsg = ""
		m.preview = &PreviewState{origin: model.OriginModeration, loading: true}
		if review.Kind == model.KindListingRevision {
			return m, tea.Batch(loadRevisionPreviewCmd(m.client, review.Revision.ID, model.OriginModeration), m.spinner.Tick)
		}
		return m, tea.Batch(loadListingPreviewCmd(m.client, review.Insurance.ListingID, model.OriginModeration), m.spinner.Tick)

	case m.section == model.SectionLiveListings:
		if m.listingCursor >= len(m.listings) {
			return m, nil
		}
		m.errorMsg = ""
		m.preview = &PreviewState{origin: model.OriginLiveListings, loading: true}
		return m, tea.Batch(loadListingPreviewCmd(m.client, m.listings[m.listingCursor].ID, model.OriginLiveListings), m.spinner.Tick)
	}
	return m, nil
}

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	switch {
	case m.section == model.SectionModeration && m.tab == model.TabQueue:
		m.detail = m.selectedReview()
		return m, nil
	case m.section == model.SectionModeration && m.tab == model.TabActivity:
		if m.activityCursor < len(m.activities) {
			action := m.activities[m.activityCursor]
			m.activityDetail = &action
		}
		return m, nil
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.user == nil {
		return m.renderLoginScreen()
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	contentHeight := m.height - 6 // header + tabs + footer
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch {
	case m.noteEditor != nil:
		content = m.noteEditor.View(m.width, contentHeight)
	case m.filterForm != nil:
		content = m.filterForm.View(m.width, contentHeight)
	case m.preview != nil:
		content = m.renderPreview(m.width, contentHeight)
	case m.detail != nil:
		content = m.renderReviewDetail(m.width, contentHeight)
	case m.activityDetail != nil:
		content = m.renderActivityDetail(m.width, contentHeight)
	case m.section == model.SectionDashboard:
		content = m.renderDashboard(m.width, contentHeight)
	case m.section == model.SectionModeration:
		content = m.renderModeration(m.width, contentHeight)
	case m.section == model.SectionLiveListings:
		content = m.renderListings(m.width, contentHeight)
	}

	header := m.renderHeader()
	tabs := m.renderSectionTabs()
	footer := RenderHelp(m.section, m.tab, m.mode, m.width)

	content = lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(content)

	parts := []string{header, tabs}
	if m.errorMsg != "" {
		parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.errorMsg))
	}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
	}
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := HeaderStyle.Render("skiffadmin")
	breadcrumb := BreadcrumbStyle.Render(" › ") + BreadcrumbActiveStyle.Render(m.section.Title())
	left := "  " + title + breadcrumb

	right := ""
	if m.user != nil {
		right = BreadcrumbStyle.Render(m.user.Email)
	}
	if m.busy() {
		right = m.spinner.View() + " " + right
	}
	right += "  " + BreadcrumbStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m Model) renderSectionTabs() string {
	sections := []model.Section{model.SectionDashboard, model.SectionModeration, model.SectionLiveListings}

	var tabStrings []string
	for i, section := range sections {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(ColorMuted)
		if section == m.section {
			style = style.Foreground(ColorText).Bold(true).Underline(true)
		}
		label := fmt.Sprintf("%d %s", i+1, section.Title())
		if section == model.SectionModeration && m.queue.TotalPending() > 0 {
			label += BadgePendingStyle.Render(fmt.Sprintf(" (%d)", m.queue.TotalPending()))
		}
		tabStrings = append(tabStrings, style.Render(label))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(bar)
}

func (m Model) renderLoginScreen() string {
	if m.authLoading {
		body := EmptyStateStyle.Render(m.spinner.View() + " Checking stored session…")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	if m.login == nil {
		return ""
	}
	return m.login.View(m.width, m.height, m.errorMsg, m.info)
}
