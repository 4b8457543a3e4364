package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skiffadmin/internal/model"
)

func TestLoginSendsDeviceName(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/auth/login", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(`{"token":"tok-1","user":{"id":1,"name":"Ada","email":"ada@skiff.test","roles":["admin"]}}`))
	}))
	defer server.Close()

	token, user, err := New(server.URL).Login(context.Background(), "ada@skiff.test", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "Ada", user.Name)
	assert.True(t, user.IsAdmin())
	assert.Equal(t, "admin-tui", gotBody["device_name"])
	assert.Equal(t, "ada@skiff.test", gotBody["email"])
}

func TestModerationActionsQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[],"meta":{"current_page":2,"last_page":5,"per_page":10,"total":42}}`))
	}))
	defer server.Close()

	filters := model.ActivityFilters{Action: "approve_revision", ListingID: "7"}
	_, meta, err := New(server.URL).ModerationActions(context.Background(), 2, filters)
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["per_page"])
	assert.Equal(t, []string{"approve_revision"}, gotQuery["action"])
	assert.Equal(t, []string{"7"}, gotQuery["listing_id"])
	assert.NotContains(t, gotQuery, "target_type")
	assert.Equal(t, 42, meta.Total)
	assert.True(t, meta.HasNext())
	assert.True(t, meta.HasPrev())
}

func TestApproveRevisionOmitsEmptyNotes(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/admin/listing-revisions/12/approve", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, New(server.URL).ApproveRevision(context.Background(), 12, ""))
	assert.NotContains(t, gotBody, "review_notes")
}

func TestApproveRevisionSendsNotesWhenPresent(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, New(server.URL).ApproveRevision(context.Background(), 12, "looks good"))
	assert.Equal(t, "looks good", gotBody["review_notes"])
}

func TestRequestChangesAlwaysSendsNotes(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/admin/listing-revisions/3/request-changes", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, New(server.URL).RequestChanges(context.Background(), 3, "fix the photos"))
	assert.Equal(t, "fix the photos", gotBody["review_notes"])
}

func TestInsuranceEndpointsUseListingID(t *testing.T) {
	var gotPaths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL)
	require.NoError(t, client.VerifyInsurance(context.Background(), 44, ""))
	require.NoError(t, client.RejectInsurance(context.Background(), 44, "policy expired"))

	assert.Equal(t, []string{
		"/v1/admin/listings/44/insurance/verify",
		"/v1/admin/listings/44/insurance/reject",
	}, gotPaths)
}

func TestReviewsUnwrapsDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/admin/reviews", r.URL.Path)
		w.Write([]byte(`{"data":{"listing_revisions":[{"id":9,"listing_id":4,"listing_title":"Sea Breeze"}],"insurances":[]}}`))
	}))
	defer server.Close()

	queue, err := New(server.URL).Reviews(context.Background())
	require.NoError(t, err)
	require.Len(t, queue.ListingRevisions, 1)
	assert.Equal(t, int64(9), queue.ListingRevisions[0].ID)
	assert.Equal(t, 1, queue.TotalPending())
}

func TestLiveListingsSortsByUpdatedAt(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/listings", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[],"meta":{"current_page":1,"last_page":1,"per_page":15,"total":0}}`))
	}))
	defer server.Close()

	_, meta, err := New(server.URL).LiveListings(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"-updated_at"}, gotQuery["sort"])
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.False(t, meta.HasNext())
	assert.False(t, meta.HasPrev())
}

func TestPreviewEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/admin/listing-revisions/5/preview":
			w.Write([]byte(`{"data":{"source":"listing_revision","listing":{"id":2,"title":"Tide Runner"},"revision":{"id":5,"status":"pending_review"}}}`))
		case "/v1/admin/listings/2/preview":
			w.Write([]byte(`{"data":{"source":"listing","listing":{"id":2,"title":"Tide Runner"}}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := New(server.URL)

	revision, err := client.RevisionPreview(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "listing_revision", revision.Source)
	require.NotNil(t, revision.Revision)
	assert.Equal(t, int64(5), revision.Revision.ID)

	listing, err := client.ListingPreview(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "listing", listing.Source)
	assert.Nil(t, listing.Revision)
}
