package model

// Section identifies the top-level console sections.
type Section int

const (
	SectionDashboard Section = iota
	SectionModeration
	SectionLiveListings
)

// Title returns the display name of a section.
func (s Section) Title() string {
	switch s {
	case SectionDashboard:
		return "Dashboard"
	case SectionModeration:
		return "Moderation"
	case SectionLiveListings:
		return "Live Listings"
	default:
		return "Admin"
	}
}

// ModerationTab selects between the review queue and the activity log.
type ModerationTab int

const (
	TabQueue ModerationTab = iota
	TabActivity
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)

// AdminRole is the role a session's user must hold to use the console.
const AdminRole = "admin"

// User is the authenticated account behind the current session.
type User struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	for _, role := range u.Roles {
		if role == AdminRole {
			return true
		}
	}
	return false
}

// PersonRef is a compact reference to a user embedded in review payloads.
type PersonRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListingRevisionReview is a pending listing revision awaiting a decision.
type ListingRevisionReview struct {
	ID           int64      `json:"id"`
	ListingID    int64      `json:"listing_id"`
	ListingTitle *string    `json:"listing_title"`
	SubmittedAt  *string    `json:"submitted_at"`
	SubmittedBy  *PersonRef `json:"submitted_by"`
}

// InsuranceReview is a pending insurance submission awaiting a decision.
type InsuranceReview struct {
	ID                 int64   `json:"id"`
	ListingID          int64   `json:"listing_id"`
	ListingTitle       *string `json:"listing_title"`
	SubmittedAt        *string `json:"submitted_at"`
	VerificationStatus string  `json:"verification_status"`
}

// ReviewQueue holds both pending sequences, replaced wholesale on every load.
type ReviewQueue struct {
	ListingRevisions []ListingRevisionReview `json:"listing_revisions"`
	Insurances       []InsuranceReview       `json:"insurances"`
}

// TotalPending counts items across both queues.
func (q ReviewQueue) TotalPending() int {
	return len(q.ListingRevisions) + len(q.Insurances)
}

// ListingRef is a compact listing reference embedded in audit records.
type ListingRef struct {
	ID     int64   `json:"id"`
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

// ModerationAction is an immutable audit record of one admin decision.
type ModerationAction struct {
	ID           int64          `json:"id"`
	Action       string         `json:"action"`
	TargetType   string         `json:"target_type"`
	TargetID     int64          `json:"target_id"`
	ListingID    int64          `json:"listing_id"`
	StatusBefore *string        `json:"status_before"`
	StatusAfter  *string        `json:"status_after"`
	Notes        *string        `json:"notes"`
	Metadata     map[string]any `json:"metadata"`
	CreatedAt    *string        `json:"created_at"`
	Admin        *PersonRef     `json:"admin"`
	Listing      *ListingRef    `json:"listing"`
}

// PaginationMeta accompanies every paginated collection.
type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// HasPrev reports whether an earlier page exists.
func (m PaginationMeta) HasPrev() bool {
	return m.CurrentPage > 1
}

// HasNext reports whether a later page exists, independent of Total.
func (m PaginationMeta) HasNext() bool {
	return m.CurrentPage < m.LastPage
}

// LiveListing is the read-only projection of a published listing.
type LiveListing struct {
	ID               int64    `json:"id"`
	Title            *string  `json:"title"`
	Status           *string  `json:"status"`
	Location         *string  `json:"location"`
	City             *string  `json:"city"`
	State            *string  `json:"state"`
	PricePerDayCents *int64   `json:"price_per_day_cents"`
	MaxGuests        *int     `json:"max_guests"`
	BoatType         *string  `json:"boat_type"`
	BoatLengthFt     *float64 `json:"boat_length_ft"`
	UpdatedAt        *string  `json:"updated_at"`
}

// Amenity is a named feature attached to a listing preview.
type Amenity struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// InsuranceDetail is the insurance sub-record of a listing preview.
type InsuranceDetail struct {
	ProviderName       *string `json:"provider_name"`
	PolicyNumber       *string `json:"policy_number"`
	CoverageEndDate    *string `json:"coverage_end_date"`
	VerificationStatus *string `json:"verification_status"`
}

// ListingPreview is the rich read-only projection shown in the preview drawer.
type ListingPreview struct {
	ID               int64            `json:"id"`
	Title            *string          `json:"title"`
	Summary          *string          `json:"summary"`
	Description      *string          `json:"description"`
	Status           *string          `json:"status"`
	Location         *string          `json:"location"`
	City             *string          `json:"city"`
	State            *string          `json:"state"`
	Country          *string          `json:"country"`
	HeroImageURL     *string          `json:"hero_image_url"`
	GalleryImageURLs []string         `json:"gallery_image_urls"`
	PricePerDayCents *int64           `json:"price_per_day_cents"`
	Rating           *float64         `json:"rating"`
	ReviewCount      *int             `json:"review_count"`
	MaxGuests        *int             `json:"max_guests"`
	BoatType         *string          `json:"boat_type"`
	BoatLengthFt     *float64         `json:"boat_length_ft"`
	Amenities        []Amenity        `json:"amenities"`
	InsuranceStatus  *string          `json:"insurance_status"`
	Insurance        *InsuranceDetail `json:"insurance"`
}

// RevisionRef identifies the pending revision behind a revision preview.
type RevisionRef struct {
	ID          int64   `json:"id"`
	Status      string  `json:"status"`
	SubmittedAt *string `json:"submitted_at"`
}

// PreviewData is the payload of a preview response. Source is either
// "listing" or "listing_revision".
type PreviewData struct {
	Source   string         `json:"source"`
	Listing  ListingPreview `json:"listing"`
	Revision *RevisionRef   `json:"revision"`
}

// PreviewOrigin records which section opened the preview drawer.
type PreviewOrigin int

const (
	OriginModeration PreviewOrigin = iota
	OriginLiveListings
)

// ActivityFilters is the all-optional filter set for the activity log.
// Edits live in a draft; a load only sees filters on explicit apply.
type ActivityFilters struct {
	Action     string
	TargetType string
	ListingID  string
}

// IsZero reports whether no filter field is set.
func (f ActivityFilters) IsZero() bool {
	return f.Action == "" && f.TargetType == "" && f.ListingID == ""
}

// ReviewKind discriminates the two review queue item types.
type ReviewKind int

const (
	KindListingRevision ReviewKind = iota
	KindInsurance
)

// ReviewDetail is the payload of the review detail modal. Exactly one of
// Revision/Insurance is set, matching Kind.
type ReviewDetail struct {
	Kind      ReviewKind
	Revision  *ListingRevisionReview
	Insurance *InsuranceReview
}
