package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"skiffadmin/internal/model"
)

// deviceName identifies this console to the auth endpoint.
const deviceName = "admin-tui"

// activityPerPage is the page size requested for the activity log.
const activityPerPage = 10

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceName string `json:"device_name"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login exchanges credentials for a token and the account behind it.
func (c *Client) Login(ctx context.Context, email, password string) (string, model.User, error) {
	raw, err := c.Call(ctx, http.MethodPost, "/v1/auth/login", loginRequest{
		Email:      email,
		Password:   password,
		DeviceName: deviceName,
	})
	if err != nil {
		return "", model.User{}, err
	}
	var out loginResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", model.User{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	return out.Token, out.User, nil
}

// Logout invalidates the current token server-side.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Call(ctx, http.MethodPost, "/v1/auth/logout", nil)
	return err
}

// Me returns the user behind the current token.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/v1/auth/me", nil)
	if err != nil {
		return model.User{}, err
	}
	var out struct {
		User model.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.User{}, fmt.Errorf("failed to decode profile response: %w", err)
	}
	return out.User, nil
}

// Reviews returns the full pending review queue.
func (c *Client) Reviews(ctx context.Context) (model.ReviewQueue, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/v1/admin/reviews", nil)
	if err != nil {
		return model.ReviewQueue{}, err
	}
	var out struct {
		Data model.ReviewQueue `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.ReviewQueue{}, fmt.Errorf("failed to decode review queue: %w", err)
	}
	return out.Data, nil
}

// ModerationActions returns one page of the audit log, optionally filtered.
func (c *Client) ModerationActions(ctx context.Context, page int, filters model.ActivityFilters) ([]model.ModerationAction, model.PaginationMeta, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("per_page", fmt.Sprintf("%d", activityPerPage))
	if filters.Action != "" {
		params.Set("action", filters.Action)
	}
	if filters.TargetType != "" {
		params.Set("target_type", filters.TargetType)
	}
	if filters.ListingID != "" {
		params.Set("listing_id", filters.ListingID)
	}

	raw, err := c.Call(ctx, http.MethodGet, "/v1/admin/moderation-actions?"+params.Encode(), nil)
	if err != nil {
		return nil, model.PaginationMeta{}, err
	}
	var out struct {
		Data []model.ModerationAction `json:"data"`
		Meta model.PaginationMeta     `json:"meta"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, model.PaginationMeta{}, fmt.Errorf("failed to decode moderation actions: %w", err)
	}
	return out.Data, out.Meta, nil
}

// reviewNotesRequest omits review_notes entirely when no note was written,
// rather than sending an empty string.
type reviewNotesRequest struct {
	ReviewNotes *string `json:"review_notes,omitempty"`
}

func notesBody(notes string) reviewNotesRequest {
	if notes == "" {
		return reviewNotesRequest{}
	}
	return reviewNotesRequest{ReviewNotes: &notes}
}

// ApproveRevision approves a pending listing revision. Notes are optional.
func (c *Client) ApproveRevision(ctx context.Context, revisionID int64, notes string) error {
	path := fmt.Sprintf("/v1/admin/listing-revisions/%d/approve", revisionID)
	_, err := c.Call(ctx, http.MethodPost, path, notesBody(notes))
	return err
}

// RequestChanges sends a revision back to its submitter. Callers must
// supply a non-empty note.
func (c *Client) RequestChanges(ctx context.Context, revisionID int64, notes string) error {
	path := fmt.Sprintf("/v1/admin/listing-revisions/%d/request-changes", revisionID)
	_, err := c.Call(ctx, http.MethodPost, path, reviewNotesRequest{ReviewNotes: &notes})
	return err
}

// VerifyInsurance marks a listing's insurance submission verified.
func (c *Client) VerifyInsurance(ctx context.Context, listingID int64, notes string) error {
	path := fmt.Sprintf("/v1/admin/listings/%d/insurance/verify", listingID)
	_, err := c.Call(ctx, http.MethodPost, path, notesBody(notes))
	return err
}

// RejectInsurance rejects a listing's insurance submission. Callers must
// supply a non-empty note.
func (c *Client) RejectInsurance(ctx context.Context, listingID int64, notes string) error {
	path := fmt.Sprintf("/v1/admin/listings/%d/insurance/reject", listingID)
	_, err := c.Call(ctx, http.MethodPost, path, reviewNotesRequest{ReviewNotes: &notes})
	return err
}

func (c *Client) preview(ctx context.Context, path string) (model.PreviewData, error) {
	raw, err := c.Call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return model.PreviewData{}, err
	}
	var out struct {
		Data model.PreviewData `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.PreviewData{}, fmt.Errorf("failed to decode preview: %w", err)
	}
	return out.Data, nil
}

// RevisionPreview returns the proposed state of a pending revision.
func (c *Client) RevisionPreview(ctx context.Context, revisionID int64) (model.PreviewData, error) {
	return c.preview(ctx, fmt.Sprintf("/v1/admin/listing-revisions/%d/preview", revisionID))
}

// ListingPreview returns the current state of a listing.
func (c *Client) ListingPreview(ctx context.Context, listingID int64) (model.PreviewData, error) {
	return c.preview(ctx, fmt.Sprintf("/v1/admin/listings/%d/preview", listingID))
}

// LiveListings returns one page of the published inventory, newest first.
func (c *Client) LiveListings(ctx context.Context, page int) ([]model.LiveListing, model.PaginationMeta, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("sort", "-updated_at")

	raw, err := c.Call(ctx, http.MethodGet, "/v1/listings?"+params.Encode(), nil)
	if err != nil {
		return nil, model.PaginationMeta{}, err
	}
	var out struct {
		Data []model.LiveListing  `json:"data"`
		Meta model.PaginationMeta `json:"meta"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, model.PaginationMeta{}, fmt.Errorf("failed to decode listings: %w", err)
	}
	return out.Data, out.Meta, nil
}
