package domain

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Dashboard groups remote cards and carries its own sharing and discussion
// state. Shares and comments are owned collections without an independent
// lifecycle.
type Dashboard struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
	OwnerName   string
	IsPublic    bool
	Shares      []ShareEntry
	Comments    []Comment
	Cards       []int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ShareEntry grants a single user a permission tier on a dashboard.
type ShareEntry struct {
	UserID    uuid.UUID
	Username  string
	Tier      Tier
	GrantedAt time.Time
}

// Comment is a note left on a dashboard.
type Comment struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Username  string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanAccess decides whether userID may act on d at the required tier.
//
// The owner is always allowed. A public dashboard grants view to anyone.
// Otherwise the user's share entry must hold at least the required tier.
func CanAccess(d *Dashboard, userID uuid.UUID, required Tier) bool {
	if d.OwnerID == userID {
		return true
	}
	if required == TierView && d.IsPublic {
		return true
	}
	entry, ok := d.ShareFor(userID)
	if !ok {
		return false
	}
	return entry.Tier >= required
}

// IsOwner reports whether userID owns the dashboard.
func (d *Dashboard) IsOwner(userID uuid.UUID) bool {
	return d.OwnerID == userID
}

// ShareFor returns the share entry held by userID, if any.
func (d *Dashboard) ShareFor(userID uuid.UUID) (ShareEntry, bool) {
	i := d.shareIndex(userID)
	if i < 0 {
		return ShareEntry{}, false
	}
	return d.Shares[i], true
}

// UpsertShare replaces the tier of an existing entry for the same user or
// appends a new entry. The original grant time of an existing entry is kept.
func (d *Dashboard) UpsertShare(entry ShareEntry) {
	if i := d.shareIndex(entry.UserID); i >= 0 {
		d.Shares[i].Tier = entry.Tier
		if entry.Username != "" {
			d.Shares[i].Username = entry.Username
		}
		return
	}
	d.Shares = append(d.Shares, entry)
}

// RemoveShare drops the entry for userID. It reports whether one existed.
func (d *Dashboard) RemoveShare(userID uuid.UUID) bool {
	i := d.shareIndex(userID)
	if i < 0 {
		return false
	}
	d.Shares = slices.Delete(d.Shares, i, i+1)
	return true
}

func (d *Dashboard) shareIndex(userID uuid.UUID) int {
	return slices.IndexFunc(d.Shares, func(e ShareEntry) bool { return e.UserID == userID })
}

// MaxCardID is the largest card id the cards column can hold.
const MaxCardID = math.MaxInt32

// ValidCardID reports whether id can reference a remote card.
func ValidCardID(id int) bool {
	return id > 0 && id <= MaxCardID
}

// AddCard appends a card reference. Adding a card that is already present
// is a no-op.
func (d *Dashboard) AddCard(cardID int) {
	if slices.Contains(d.Cards, cardID) {
		return
	}
	d.Cards = append(d.Cards, cardID)
}

// RemoveCard drops every reference to cardID.
func (d *Dashboard) RemoveCard(cardID int) {
	d.Cards = slices.DeleteFunc(d.Cards, func(id int) bool { return id == cardID })
}

// AddComment appends c to the comment list.
func (d *Dashboard) AddComment(c Comment) {
	d.Comments = append(d.Comments, c)
}

// Comment returns the comment with the given id.
func (d *Dashboard) Comment(id uuid.UUID) (Comment, bool) {
	i := d.commentIndex(id)
	if i < 0 {
		return Comment{}, false
	}
	return d.Comments[i], true
}

// RemoveComment deletes the comment with the given id and reports whether
// it was present.
func (d *Dashboard) RemoveComment(id uuid.UUID) bool {
	i := d.commentIndex(id)
	if i < 0 {
		return false
	}
	d.Comments = slices.Delete(d.Comments, i, i+1)
	return true
}

func (d *Dashboard) commentIndex(id uuid.UUID) int {
	return slices.IndexFunc(d.Comments, func(c Comment) bool { return c.ID == id })
}

// CanDeleteComment reports whether userID may delete c on this dashboard:
// the comment's author or the dashboard owner.
func (d *Dashboard) CanDeleteComment(c Comment, userID uuid.UUID) bool {
	return c.AuthorID == userID || d.OwnerID == userID
}
