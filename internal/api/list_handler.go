package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cmaina/shoplist-api/internal/api/shared"
	"github.com/cmaina/shoplist-api/internal/domain"
	"github.com/cmaina/shoplist-api/internal/platform/logger"
	"github.com/cmaina/shoplist-api/internal/store"
)

// ListHandler handles the shopping list endpoints. Every operation is
// scoped to the authenticated user; another user's lists behave as if
// they did not exist.
type ListHandler struct {
	lists store.ListStore
}

// NewListHandler creates a ListHandler with the given store.
func NewListHandler(lists store.ListStore) *ListHandler {
	return &ListHandler{lists: lists}
}

// listBasePath is the path used in pagination links.
const listBasePath = "/shoppinglists/"

// Create handles POST /shoppinglists/.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token. Please register or login")
		return
	}

	var req ListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please enter a shopping list name")
		return
	}

	list, err := domain.NewShoppingList(req.Name, userID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.lists.Create(r.Context(), list); err != nil {
		if errors.Is(err, store.ErrListNameExists) {
			shared.RespondWithError(w, r, http.StatusFound, "List name already exists")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("shopping list created",
		"user_id", userID, "list_id", list.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, list)
}

// Index handles GET /shoppinglists/. A q parameter switches the
// endpoint into search mode and bypasses pagination; otherwise the
// response is one page of the user's lists with previous/next links.
func (h *ListHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token. Please register or login")
		return
	}

	if term := r.URL.Query().Get("q"); term != "" {
		lists, err := h.lists.Search(r.Context(), userID, term)
		if err != nil {
			handleUnexpectedError(w, r, err)
			return
		}
		if len(lists) == 0 {
			shared.RespondWithError(w, r, http.StatusNotFound, "Shopping list name does not exist")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, lists)
		return
	}

	params, msg := parsePageParams(r)
	if msg != "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msg)
		return
	}

	lists, total, err := h.lists.List(r.Context(), userID, params.Limit, params.offset())
	if err != nil {
		handleUnexpectedError(w, r, err)
		return
	}
	if lists == nil {
		lists = []domain.ShoppingList{}
	}

	previous, next := pageLinks(listBasePath, params, total)
	shared.RespondWithJSON(w, r, http.StatusOK, ListPageResponse{
		Lists:        lists,
		PreviousPage: previous,
		NextPage:     next,
	})
}

// Get handles GET /shoppinglists/{listID}.
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token. Please register or login")
		return
	}

	listID, ok := parseListID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Shopping list not found")
		return
	}

	list, err := h.lists.GetByID(r.Context(), userID, listID)
	if err != nil {
		if errors.Is(err, store.ErrListNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Shopping list not found")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// Update handles PUT /shoppinglists/{listID}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token. Please register or login")
		return
	}

	listID, ok := parseListID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Shopping list not found")
		return
	}

	var req ListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please enter a shopping list name")
		return
	}
	if err := domain.ValidateName(req.Name); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.lists.GetByID(r.Context(), userID, listID)
	if err != nil {
		if errors.Is(err, store.ErrListNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Shopping list not found")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	list.Name = req.Name
	if err := h.lists.Update(r.Context(), list); err != nil {
		if errors.Is(err, store.ErrListNameExists) {
			shared.RespondWithError(w, r, http.StatusFound, "List name already exists")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// Delete handles DELETE /shoppinglists/{listID}. The list's items go
// with it.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token. Please register or login")
		return
	}

	listID, ok := parseListID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Shopping list not found")
		return
	}

	if err := h.lists.Delete(r.Context(), userID, listID); err != nil {
		if errors.Is(err, store.ErrListNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Shopping list not found")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("shopping list deleted",
		"user_id", userID, "list_id", listID)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Shopping list %d deleted successfully", listID),
	})
}

// parseListID reads the listID path parameter. A non-numeric id is
// treated the same as a missing list.
func parseListID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "listID"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
