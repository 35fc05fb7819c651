package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/geocoder89/userhub/internal/cache"
	"github.com/geocoder89/userhub/internal/domain/user"
	"github.com/geocoder89/userhub/internal/utils"
	"github.com/gin-gonic/gin"
)

type UsersStore interface {
	List(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id string) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetManyByIDs(ctx context.Context, ids []string) ([]user.User, error)
	Create(ctx context.Context, req user.CreateUserRequest) (user.User, error)
	Update(ctx context.Context, id string, plan user.UpdatePlan) (user.User, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
	Delete(ctx context.Context, key string)
}

const (
	msgInvalidUserID    = "Invalid user ID"
	msgUserNotFound     = "User not found"
	msgEmailExists      = "Email already exists. Please use a different email."
	msgNoChanges        = "No changes detected. Please provide different values."
	msgInvalidBatch     = "Invalid request. Provide an array of user IDs."
	msgInvalidBatchIDs  = "Invalid user IDs"
	msgNoMatchingUsers  = "No matching users found."
	msgUsersRetrieved   = "Users retrieved successfully"
	msgUserRetrieved    = "User retrieved successfully"
	msgUserCreated      = "User created successfully"
	msgUserUpdated      = "User updated successfully"
	msgUserDeleted      = "User deleted successfully"
	msgUsersDeleted     = "Users deleted successfully"
)

type UsersHandler struct {
	store UsersStore
	cache Cache
}

func NewUsersHandler(store UsersStore) *UsersHandler {
	return &UsersHandler{store: store}
}

func NewUsersHandlerWithCache(store UsersStore, c Cache) *UsersHandler {
	return &UsersHandler{store: store, cache: c}
}

func (h *UsersHandler) invalidateListCache(rctx context.Context) {
	if h.cache != nil {
		h.cache.Delete(rctx, cache.UsersListKey)
	}
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	if h.cache != nil {
		if raw, ok := h.cache.Get(rctx, cache.UsersListKey); ok {
			RespondJSONWithETag(ctx, http.StatusOK, Envelope{
				Status:  http.StatusOK,
				Message: msgUsersRetrieved,
				Data:    json.RawMessage(raw),
			})
			return
		}
	}

	users, err := h.store.List(rctx)

	if err != nil {
		RespondInternal(ctx)
		return
	}

	if h.cache != nil {
		if b, marshalErr := json.Marshal(users); marshalErr == nil {
			h.cache.Set(rctx, cache.UsersListKey, b)
		}
	}

	RespondJSONWithETag(ctx, http.StatusOK, Envelope{
		Status:  http.StatusOK,
		Message: msgUsersRetrieved,
		Data:    users,
	})
}

func (h *UsersHandler) GetUserByID(ctx *gin.Context) {
	id := ctx.Param("id")

	if !utils.IsValidUserID(id) {
		RespondBadRequest(ctx, msgInvalidUserID)
		return
	}

	u, err := h.store.GetByID(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, msgUserNotFound)
			return
		}

		RespondInternal(ctx)
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, Envelope{
		Status:  http.StatusOK,
		Message: msgUserRetrieved,
		Data:    u,
	})
}

func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if msgs := user.Validate(req.Fields(), user.ModeCreate); msgs != nil {
		RespondBadRequest(ctx, strings.Join(msgs, ", "))
		return
	}

	rctx := ctx.Request.Context()

	// lookup-before-write; the unique index backs this up under races
	_, err := h.store.GetByEmail(rctx, strings.TrimSpace(req.Email))

	if err == nil {
		RespondBadRequest(ctx, msgEmailExists)
		return
	}

	if !errors.Is(err, user.ErrNotFound) {
		RespondInternal(ctx)
		return
	}

	u, err := h.store.Create(rctx, req)

	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			RespondBadRequest(ctx, msgEmailExists)
			return
		}

		RespondInternal(ctx)
		return
	}

	h.invalidateListCache(rctx)

	RespondSuccess(ctx, http.StatusCreated, msgUserCreated, u)
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	id := ctx.Param("id")

	if !utils.IsValidUserID(id) {
		RespondBadRequest(ctx, msgInvalidUserID)
		return
	}

	var req user.UpdateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	// payload validation comes before the existence lookup
	if msgs := user.Validate(req.Fields(), user.ModeUpdate); msgs != nil {
		RespondBadRequest(ctx, strings.Join(msgs, ", "))
		return
	}

	rctx := ctx.Request.Context()

	existing, err := h.store.GetByID(rctx, id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, msgUserNotFound)
			return
		}

		RespondInternal(ctx)
		return
	}

	plan, err := user.PlanUpdate(existing, req)

	if err != nil {
		var vErr *user.ValidationError

		switch {
		case errors.As(err, &vErr):
			RespondBadRequest(ctx, vErr.Error())
		case errors.Is(err, user.ErrNoChanges):
			RespondBadRequest(ctx, msgNoChanges)
		default:
			RespondInternal(ctx)
		}

		return
	}

	if plan.EmailRecheck {
		_, err = h.store.GetByEmail(rctx, *plan.Email)

		if err == nil {
			RespondBadRequest(ctx, msgEmailExists)
			return
		}

		if !errors.Is(err, user.ErrNotFound) {
			RespondInternal(ctx)
			return
		}
	}

	updated, err := h.store.Update(rctx, id, plan)

	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			RespondNotFound(ctx, msgUserNotFound)
		case errors.Is(err, user.ErrEmailTaken):
			RespondBadRequest(ctx, msgEmailExists)
		default:
			RespondInternal(ctx)
		}

		return
	}

	h.invalidateListCache(rctx)

	RespondSuccess(ctx, http.StatusOK, msgUserUpdated, updated)
}

func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	id := ctx.Param("id")

	if !utils.IsValidUserID(id) {
		RespondBadRequest(ctx, msgInvalidUserID)
		return
	}

	rctx := ctx.Request.Context()

	err := h.store.Delete(rctx, id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, msgUserNotFound)
			return
		}

		RespondInternal(ctx)
		return
	}

	h.invalidateListCache(rctx)

	RespondSuccess(ctx, http.StatusOK, msgUserDeleted, nil)
}

func (h *UsersHandler) DeleteUsers(ctx *gin.Context) {
	var req user.DeleteUsersRequest

	if !BindJSON(ctx, &req) {
		return
	}

	rctx := ctx.Request.Context()

	ids, err := h.resolveDeleteBatch(rctx, req.IDs)

	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidBatch):
			RespondBadRequest(ctx, msgInvalidBatch)
		case errors.Is(err, user.ErrInvalidBatchIDs):
			RespondBadRequest(ctx, msgInvalidBatchIDs)
		case errors.Is(err, user.ErrNoneFound):
			RespondNotFound(ctx, msgNoMatchingUsers)
		default:
			RespondInternal(ctx)
		}

		return
	}

	deleted, err := h.store.DeleteMany(rctx, ids)

	if err != nil {
		RespondInternal(ctx)
		return
	}

	h.invalidateListCache(rctx)

	RespondSuccess(ctx, http.StatusOK, msgUsersDeleted, gin.H{"deleted": deleted})
}

// resolveDeleteBatch validates the identifier list (all-or-nothing on
// format), then narrows it to the identifiers that actually exist. Requested
// IDs with no stored record are dropped silently; the batch is best-effort
// over the valid, discovered subset.
func (h *UsersHandler) resolveDeleteBatch(rctx context.Context, ids []string) ([]string, error) {
	if err := user.CheckBatchIDs(ids); err != nil {
		return nil, err
	}

	found, err := h.store.GetManyByIDs(rctx, ids)

	if err != nil {
		return nil, err
	}

	if len(found) == 0 {
		return nil, user.ErrNoneFound
	}

	resolved := make([]string, 0, len(found))

	for _, u := range found {
		resolved = append(resolved, u.ID)
	}

	return resolved, nil
}
