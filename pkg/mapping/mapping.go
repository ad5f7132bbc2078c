package mapping

import (
	"time"

	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/google/uuid"
)

// DefaultOfferCapacity is used when a new offer does not set its capacity.
const DefaultOfferCapacity = 100

// ToDomainNewAccount converts an API NewAccount model to a domain Account model.
// A missing id is generated.
func ToDomainNewAccount(newAccount *api.NewAccount, now time.Time) *models.Account {
	id := uuid.NewString()
	if newAccount.Id != nil {
		id = newAccount.Id.String()
	}
	return &models.Account{
		Id:           id,
		Role:         models.Role(newAccount.Role),
		PointBalance: newAccount.PointBalance,
		CreatedAt:    now,
	}
}

// ToApiAccount converts a domain Account model to an API Account model.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		Id:           account.Id,
		Role:         api.Role(account.Role),
		PointBalance: account.PointBalance,
		Version:      account.Version,
		CreatedAt:    account.CreatedAt,
	}
}

// ToDomainNewOffer converts an API NewOffer model to a domain Offer model.
func ToDomainNewOffer(newOffer *api.NewOffer, now time.Time) *models.Offer {
	capacity := int64(DefaultOfferCapacity)
	if newOffer.Capacity != nil {
		capacity = *newOffer.Capacity
	}
	return &models.Offer{
		Id:                uuid.NewString(),
		PartnerId:         newOffer.PartnerId.String(),
		Title:             newOffer.Title,
		Description:       newOffer.Description,
		Location:          newOffer.Location,
		Price:             newOffer.Price,
		Category:          models.Category(newOffer.Category),
		RemainingCapacity: capacity,
		StartsAt:          newOffer.StartsAt.UTC(),
		EndsAt:            utcPtr(newOffer.EndsAt),
		CreatedAt:         now,
	}
}

// ToApiOffer converts a domain Offer model to an API Offer model.
func ToApiOffer(offer *models.Offer) *api.Offer {
	return &api.Offer{
		Id:                offer.Id,
		PartnerId:         offer.PartnerId,
		Title:             offer.Title,
		Description:       offer.Description,
		Location:          offer.Location,
		Price:             offer.Price,
		Category:          api.Category(offer.Category),
		RemainingCapacity: offer.RemainingCapacity,
		ReservedCount:     offer.ReservedCount,
		StartsAt:          offer.StartsAt,
		EndsAt:            offer.EndsAt,
		CreatedAt:         offer.CreatedAt,
	}
}

// ToDomainOfferUpdate converts an API OfferUpdate to the editable fields of offer id.
func ToDomainOfferUpdate(id string, update *api.OfferUpdate) *models.Offer {
	return &models.Offer{
		Id:          id,
		Title:       update.Title,
		Description: update.Description,
		Location:    update.Location,
		Price:       update.Price,
		Category:    models.Category(update.Category),
		StartsAt:    update.StartsAt.UTC(),
		EndsAt:      utcPtr(update.EndsAt),
	}
}

// ToDomainTask converts an API NewTask model to a domain Task model with the given id.
func ToDomainTask(id string, newTask *api.NewTask, now time.Time) *models.Task {
	return &models.Task{
		Id:            id,
		Title:         newTask.Title,
		Description:   newTask.Description,
		Category:      models.Category(newTask.Category),
		RequiredCount: newTask.RequiredCount,
		StartsAt:      newTask.StartsAt.UTC(),
		EndsAt:        newTask.EndsAt.UTC(),
		RewardPoints:  newTask.RewardPoints,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ToApiTask converts a domain Task model to an API Task model.
func ToApiTask(task *models.Task) *api.Task {
	return &api.Task{
		Id:            task.Id,
		Title:         task.Title,
		Description:   task.Description,
		Category:      api.Category(task.Category),
		RequiredCount: task.RequiredCount,
		StartsAt:      task.StartsAt,
		EndsAt:        task.EndsAt,
		RewardPoints:  task.RewardPoints,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}

func ToApiReservation(r *models.Reservation) *api.Reservation {
	return &api.Reservation{
		Id:        r.Id,
		UserId:    r.UserId,
		OfferId:   r.OfferId,
		Category:  api.Category(r.Category),
		Price:     r.Price,
		CreatedAt: r.CreatedAt,
	}
}

func ToApiReservationResult(receipt *models.ReservationReceipt) *api.ReservationResult {
	return &api.ReservationResult{
		Reservation:     *ToApiReservation(&receipt.Reservation),
		RemainingPoints: receipt.RemainingPoints,
	}
}

func ToApiEligibility(e *models.Eligibility) *api.Eligibility {
	return &api.Eligibility{
		HasReservation: e.HasReservation,
		UserPoints:     e.UserPoints,
		OfferPoints:    e.OfferPoints,
		CanReserve:     e.CanReserve,
	}
}

func ToApiTaskStatus(s *models.TaskStatus) *api.TaskStatus {
	return &api.TaskStatus{
		TaskId:      s.TaskId,
		Required:    s.Required,
		Done:        s.Done,
		IsCompleted: s.IsCompleted,
		IsClaimed:   s.IsClaimed,
	}
}

func ToApiClaimResult(receipt *models.ClaimReceipt) *api.ClaimResult {
	return &api.ClaimResult{
		TaskId:        receipt.TaskId,
		PointsAwarded: receipt.PointsAwarded,
		ClaimedAt:     receipt.ClaimedAt,
	}
}

func ToApiClaimedTask(c *models.ClaimedTask) *api.ClaimedTask {
	claimed := &api.ClaimedTask{
		TaskId:      c.Progress.TaskId,
		CompletedAt: c.Progress.CompletedAt,
		ClaimedAt:   c.Progress.ClaimedAt,
	}
	if c.Task != nil {
		claimed.Task = ToApiTask(c.Task)
	}
	return claimed
}

// ToApiLedgerEntry converts a domain LedgerEntry to its API model. Only the
// side of the entry that moved points is set.
func ToApiLedgerEntry(entry *models.LedgerEntry) *api.LedgerEntry {
	apiEntry := &api.LedgerEntry{
		EntryId:     &entry.EntryID,
		AccountId:   entry.AccountID,
		ReferenceId: entry.ReferenceID,
		Kind:        string(entry.Kind),
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
	}
	if entry.Debit != 0 {
		apiEntry.Debit = &entry.Debit
	}
	if entry.Credit != 0 {
		apiEntry.Credit = &entry.Credit
	}
	return apiEntry
}

// ToApiProgressRefresh builds the queue message for a committed reservation.
func ToApiProgressRefresh(r *models.Reservation) *api.ProgressRefresh {
	return &api.ProgressRefresh{
		UserId:     r.UserId,
		Category:   api.Category(r.Category),
		ReservedAt: r.CreatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
