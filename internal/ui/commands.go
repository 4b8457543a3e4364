package ui

import (
	"context"
	"errors"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"skiffadmin/internal/api"
	"skiffadmin/internal/model"
	"skiffadmin/internal/session"
)

const commandTimeout = 20 * time.Second

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

func verifySessionCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		user, err := client.Me(ctx)
		if err != nil {
			var reqErr *api.RequestError
			if errors.As(err, &reqErr) && (reqErr.StatusCode == http.StatusUnauthorized || reqErr.StatusCode == http.StatusForbidden) {
				return model.AuthFailedMsg{Message: "Session expired. Please sign in again.", Discard: true}
			}
			return model.AuthFailedMsg{Message: err.Error()}
		}
		if !user.IsAdmin() {
			return model.AuthFailedMsg{Message: "This account is not an admin.", Discard: true}
		}
		return model.SessionVerifiedMsg{User: user}
	}
}

func loginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		token, user, err := client.Login(ctx, email, password)
		return model.LoginResultMsg{Token: token, User: user, Err: err}
	}
}

// logoutCmd invalidates the token server-side on a best-effort basis; the
// local session is cleared regardless.
func logoutCmd(client *api.Client, store *session.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		_ = client.Logout(ctx)
		_ = store.Clear()
		return model.LoggedOutMsg{}
	}
}

func loadQueueCmd(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		queue, err := client.Reviews(ctx)
		return model.QueueLoadedMsg{Seq: seq, Queue: queue, Err: err}
	}
}

func loadActivityCmd(client *api.Client, seq, page int, filters model.ActivityFilters) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		actions, meta, err := client.ModerationActions(ctx, page, filters)
		return model.ActivityLoadedMsg{Seq: seq, Page: page, Filters: filters, Actions: actions, Meta: meta, Err: err}
	}
}

func loadListingsCmd(client *api.Client, seq, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		listings, meta, err := client.LiveListings(ctx, page)
		return model.LiveListingsLoadedMsg{Seq: seq, Page: page, Listings: listings, Meta: meta, Err: err}
	}
}

// mutationCmd runs one moderation mutation and reports back under its
// in-flight key.
func mutationCmd(key, noteKey string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		return model.MutationDoneMsg{Key: key, NoteKey: noteKey, Err: fn(ctx)}
	}
}

func loadRevisionPreviewCmd(client *api.Client, revisionID int64, origin model.PreviewOrigin) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		data, err := client.RevisionPreview(ctx, revisionID)
		if err != nil {
			return model.PreviewLoadedMsg{Origin: origin, Err: err}
		}
		return model.PreviewLoadedMsg{Origin: origin, Data: &data}
	}
}

func loadListingPreviewCmd(client *api.Client, listingID int64, origin model.PreviewOrigin) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		data, err := client.ListingPreview(ctx, listingID)
		if err != nil {
			return model.PreviewLoadedMsg{Origin: origin, Err: err}
		}
		return model.PreviewLoadedMsg{Origin: origin, Data: &data}
	}
}
