package models

import (
	"time"
)

// Role defines the kind of account.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleUser    Role = "User"
	RolePartner Role = "Partner"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RolePartner:
		return true
	}
	return false
}

// Category is the fixed set of offer and task categories.
type Category string

const (
	CategoryBooks   Category = "Books"
	CategoryMuseums Category = "Museums"
	CategoryLibrary Category = "Library"
	CategoryCinema  Category = "Cinema"
)

// Categories lists every known category.
var Categories = []Category{CategoryBooks, CategoryMuseums, CategoryLibrary, CategoryCinema}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBooks, CategoryMuseums, CategoryLibrary, CategoryCinema:
		return true
	}
	return false
}

// Account holds the spendable point balance of a user.
// Version is bumped on every balance mutation and is used for optimistic locking.
type Account struct {
	Id           string    `json:"id" dynamodbav:"id"`
	Role         Role      `json:"role" dynamodbav:"role"`
	PointBalance int64     `json:"point_balance" dynamodbav:"point_balance"`
	Version      int64     `json:"version" dynamodbav:"version"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Offer is a redeemable, capacity-limited item published by a partner.
// RemainingCapacity and ReservedCount only move inside the reservation transaction.
type Offer struct {
	Id                string     `json:"id" dynamodbav:"id"`
	PartnerId         string     `json:"partner_id" dynamodbav:"partner_id"`
	Title             string     `json:"title" dynamodbav:"title"`
	Description       string     `json:"description" dynamodbav:"description"`
	Location          string     `json:"location" dynamodbav:"location"`
	Price             int64      `json:"price" dynamodbav:"price"`
	Category          Category   `json:"category" dynamodbav:"category"`
	RemainingCapacity int64      `json:"remaining_capacity" dynamodbav:"remaining_capacity"`
	ReservedCount     int64      `json:"reserved_count" dynamodbav:"reserved_count"`
	StartsAt          time.Time  `json:"starts_at" dynamodbav:"starts_at"`
	EndsAt            *time.Time `json:"ends_at,omitempty" dynamodbav:"ends_at,omitempty"`
	Version           int64      `json:"version" dynamodbav:"version"`
	CreatedAt         time.Time  `json:"created_at" dynamodbav:"created_at"`
}

// ActiveAt reports whether the offer's window contains t.
// An offer without an end date stays active once started.
func (o *Offer) ActiveAt(t time.Time) bool {
	if t.Before(o.StartsAt) {
		return false
	}
	if o.EndsAt != nil && t.After(*o.EndsAt) {
		return false
	}
	return true
}

// Reservation is the immutable record of a successful redemption.
// Category is copied from the offer when the reservation is created.
// CreatedAt has millisecond precision; each store encodes it as unix milliseconds.
type Reservation struct {
	Id        string    `json:"id"`
	UserId    string    `json:"user_id"`
	OfferId   string    `json:"offer_id"`
	Category  Category  `json:"category"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// ReserveRequest carries everything the store needs to run the reservation transaction.
type ReserveRequest struct {
	UserId        string
	OfferId       string
	Now           time.Time
	EnforceWindow bool
}

// ReservationReceipt is returned by a committed reservation.
type ReservationReceipt struct {
	Reservation     Reservation
	RemainingPoints int64
}

// Task is an admin-defined campaign rewarding a number of reservations in a category.
type Task struct {
	Id            string    `json:"id" dynamodbav:"id"`
	Title         string    `json:"title" dynamodbav:"title"`
	Description   string    `json:"description" dynamodbav:"description"`
	Category      Category  `json:"category" dynamodbav:"category"`
	RequiredCount int       `json:"required_count" dynamodbav:"required_count"`
	StartsAt      time.Time `json:"starts_at" dynamodbav:"starts_at"`
	EndsAt        time.Time `json:"ends_at" dynamodbav:"ends_at"`
	RewardPoints  int64     `json:"reward_points" dynamodbav:"reward_points"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Covers reports whether t falls inside the task window, both ends inclusive.
func (t *Task) Covers(at time.Time) bool {
	return !at.Before(t.StartsAt) && !at.After(t.EndsAt)
}

// TaskProgress is the per user and task completion state.
// IsCompleted never reverts once set and IsClaimed implies IsCompleted.
// The completed count is not stored: every refresh recounts the reservations
// inside the task window and reports it as TaskStatus.Done.
type TaskProgress struct {
	UserId      string     `json:"user_id" dynamodbav:"user_id"`
	TaskId      string     `json:"task_id" dynamodbav:"task_id"`
	IsCompleted bool       `json:"is_completed" dynamodbav:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty" dynamodbav:"completed_at,omitempty"`
	IsClaimed   bool       `json:"is_claimed" dynamodbav:"is_claimed"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty" dynamodbav:"claimed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" dynamodbav:"created_at"`
}

// TaskStatus is the projection returned by a progress refresh.
type TaskStatus struct {
	TaskId      string
	Required    int
	Done        int
	IsCompleted bool
	IsClaimed   bool
}

// ClaimRequest carries the inputs of the claim transaction.
type ClaimRequest struct {
	UserId       string
	TaskId       string
	RewardPoints int64
	Now          time.Time
}

// ClaimReceipt is returned by a committed claim.
type ClaimReceipt struct {
	UserId        string
	TaskId        string
	PointsAwarded int64
	ClaimedAt     time.Time
}

// ClaimedTask pairs a claimed progress record with its task, when the task still exists.
type ClaimedTask struct {
	Progress TaskProgress
	Task     *Task
}

// Eligibility is the non-committing pre-flight result of a reservation.
type Eligibility struct {
	HasReservation bool
	UserPoints     int64
	OfferPoints    int64
	CanReserve     bool
}

// LedgerEntryKind tells which operation produced a ledger entry.
type LedgerEntryKind string

const (
	LedgerKindReservation LedgerEntryKind = "reservation"
	LedgerKindTaskReward  LedgerEntryKind = "task_reward"
)

// LedgerEntry is an immutable record of a single balance change.
type LedgerEntry struct {
	EntryID     string
	AccountID   string
	ReferenceID string
	Kind        LedgerEntryKind
	Debit       int64
	Credit      int64
	Description string
	Timestamp   time.Time
}
