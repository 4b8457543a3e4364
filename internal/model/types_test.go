package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, User{Roles: []string{"owner", "admin"}}.IsAdmin())
	assert.False(t, User{Roles: []string{"owner"}}.IsAdmin())
	assert.False(t, User{}.IsAdmin())
}

func TestReviewQueueTotalPending(t *testing.T) {
	queue := ReviewQueue{
		ListingRevisions: []ListingRevisionReview{{ID: 1}, {ID: 2}},
		Insurances:       []InsuranceReview{{ID: 3}},
	}
	assert.Equal(t, 3, queue.TotalPending())
	assert.Equal(t, 0, ReviewQueue{}.TotalPending())
}

func TestPaginationMetaBounds(t *testing.T) {
	tests := []struct {
		name    string
		meta    PaginationMeta
		hasPrev bool
		hasNext bool
	}{
		{"single page", PaginationMeta{CurrentPage: 1, LastPage: 1}, false, false},
		{"first of many", PaginationMeta{CurrentPage: 1, LastPage: 5}, false, true},
		{"middle", PaginationMeta{CurrentPage: 3, LastPage: 5}, true, true},
		{"last", PaginationMeta{CurrentPage: 5, LastPage: 5}, true, false},
		{"zero value", PaginationMeta{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hasPrev, tt.meta.HasPrev())
			assert.Equal(t, tt.hasNext, tt.meta.HasNext())
		})
	}
}

func TestActivityFiltersIsZero(t *testing.T) {
	assert.True(t, ActivityFilters{}.IsZero())
	assert.False(t, ActivityFilters{Action: "approve_revision"}.IsZero())
	assert.False(t, ActivityFilters{ListingID: "7"}.IsZero())
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "Dashboard", SectionDashboard.Title())
	assert.Equal(t, "Moderation", SectionModeration.Title())
	assert.Equal(t, "Live Listings", SectionLiveListings.Title())
}
