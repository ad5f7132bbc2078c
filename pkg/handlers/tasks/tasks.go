package tasks

import (
	"context"
	"net/http"
	"time"

	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/handlers/respond"
	"github.com/chris/points-ledger/pkg/mapping"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Claimer pays out task rewards.
type Claimer interface {
	Claim(ctx context.Context, userID, taskID string) (*models.ClaimReceipt, error)
}

// Query is the read side used by the user task routes.
type Query interface {
	TaskStatus(ctx context.Context, userID, taskID string) (*models.TaskStatus, error)
	ListClaimedTasks(ctx context.Context, userID string) ([]models.ClaimedTask, error)
}

// TasksHandler serves task administration and per-user task progress.
type TasksHandler struct {
	Store  storage.TaskStore
	Claims Claimer
	Query  Query
	Now    func() time.Time
}

func NewTasksHandler(store storage.TaskStore, claims Claimer, query Query) *TasksHandler {
	return &TasksHandler{Store: store, Claims: claims, Query: query, Now: time.Now}
}

func (h *TasksHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var newTask api.NewTask
	if err := respond.Decode(r, &newTask); err != nil {
		respond.Error(w, r, err)
		return
	}

	task := mapping.ToDomainTask(uuid.NewString(), &newTask, h.Now().UTC())
	if !task.Category.Valid() {
		respond.Error(w, r, storage.ErrInvalidInput)
		return
	}

	created, err := h.Store.CreateTask(r.Context(), task)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiTask(created))
}

func (h *TasksHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Store.ListTasks(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	apiTasks := make([]*api.Task, len(tasks))
	for i, task := range tasks {
		apiTasks[i] = mapping.ToApiTask(&task)
	}

	respond.JSON(w, http.StatusOK, apiTasks)
}

func (h *TasksHandler) GetTask(w http.ResponseWriter, r *http.Request, taskId openapi_types.UUID) {
	task, err := h.Store.GetTask(r.Context(), taskId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiTask(task))
}

// UpdateTask replaces the task definition. Progress already recorded against
// the task is left as it is.
func (h *TasksHandler) UpdateTask(w http.ResponseWriter, r *http.Request, taskId openapi_types.UUID) {
	var newTask api.NewTask
	if err := respond.Decode(r, &newTask); err != nil {
		respond.Error(w, r, err)
		return
	}

	task := mapping.ToDomainTask(taskId.String(), &newTask, h.Now().UTC())
	if !task.Category.Valid() {
		respond.Error(w, r, storage.ErrInvalidInput)
		return
	}

	updated, err := h.Store.UpdateTask(r.Context(), task)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiTask(updated))
}

func (h *TasksHandler) DeleteTask(w http.ResponseWriter, r *http.Request, taskId openapi_types.UUID) {
	if err := h.Store.DeleteTask(r.Context(), taskId.String()); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTaskStatus recomputes the user's progress on the task.
func (h *TasksHandler) GetTaskStatus(w http.ResponseWriter, r *http.Request, userId openapi_types.UUID, taskId openapi_types.UUID) {
	status, err := h.Query.TaskStatus(r.Context(), userId.String(), taskId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiTaskStatus(status))
}

func (h *TasksHandler) ClaimTask(w http.ResponseWriter, r *http.Request, userId openapi_types.UUID, taskId openapi_types.UUID) {
	receipt, err := h.Claims.Claim(r.Context(), userId.String(), taskId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiClaimResult(receipt))
}

// ListClaimedTasks returns the user's claimed tasks, most recently claimed first.
func (h *TasksHandler) ListClaimedTasks(w http.ResponseWriter, r *http.Request, userId openapi_types.UUID) {
	claimed, err := h.Query.ListClaimedTasks(r.Context(), userId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	apiClaimed := make([]*api.ClaimedTask, len(claimed))
	for i, c := range claimed {
		apiClaimed[i] = mapping.ToApiClaimedTask(&c)
	}

	respond.JSON(w, http.StatusOK, apiClaimed)
}
