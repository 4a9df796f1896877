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

// ItemHandler handles the shopping item endpoints nested under a list.
// Every operation first resolves the parent list under the
// authenticated user; a list owned by someone else is a 404 before any
// item is touched.
type ItemHandler struct {
	lists store.ListStore
	items store.ItemStore
}

// NewItemHandler creates an ItemHandler with the given stores.
func NewItemHandler(lists store.ListStore, items store.ItemStore) *ItemHandler {
	return &ItemHandler{lists: lists, items: items}
}

// Item field messages. These are part of the API contract.
const (
	msgItemNameMissing     = "Please provide an item name"
	msgPriceMissing        = "Please provide a price value"
	msgPriceInvalid        = "Invalid price value provided"
	msgPriceNotPositive    = "Price must be a positive integer"
	msgQuantityMissing     = "Please provide a quantity value"
	msgQuantityInvalid     = "Invalid quantity value provided"
	msgQuantityNotPositive = "Quantity must be a positive integer"
)

// requireList resolves the parent list for the authenticated user. On
// failure it writes the response and returns ok=false.
func (h *ItemHandler) requireList(w http.ResponseWriter, r *http.Request) (*domain.ShoppingList, bool) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token. Please register or login")
		return nil, false
	}

	listID, ok := parseListID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Shopping list not found")
		return nil, false
	}

	list, err := h.lists.GetByID(r.Context(), userID, listID)
	if err != nil {
		if errors.Is(err, store.ErrListNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Shopping list not found")
			return nil, false
		}
		handleUnexpectedError(w, r, err)
		return nil, false
	}
	return list, true
}

// Create handles POST /shoppinglists/{listID}/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgItemNameMissing)
		return
	}
	if err := domain.ValidateName(req.Name); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	price, msg := parsePositiveInt(req.Price.String(), msgPriceMissing, msgPriceInvalid, msgPriceNotPositive)
	if msg != "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msg)
		return
	}
	quantity, msg := parsePositiveInt(req.Quantity.String(), msgQuantityMissing, msgQuantityInvalid, msgQuantityNotPositive)
	if msg != "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msg)
		return
	}

	item, err := domain.NewShoppingItem(req.Name, price, quantity, list.ID, list.OwnerID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.items.Create(r.Context(), item); err != nil {
		if errors.Is(err, store.ErrItemNameExists) {
			shared.RespondWithError(w, r, http.StatusFound, "Item name already exists")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("shopping item created",
		"user_id", list.OwnerID, "list_id", list.ID, "item_id", item.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}

// Index handles GET /shoppinglists/{listID}/items. A q parameter
// switches the endpoint into search mode and bypasses pagination.
func (h *ItemHandler) Index(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}

	if term := r.URL.Query().Get("q"); term != "" {
		items, err := h.items.Search(r.Context(), list.OwnerID, list.ID, term)
		if err != nil {
			handleUnexpectedError(w, r, err)
			return
		}
		if len(items) == 0 {
			shared.RespondWithError(w, r, http.StatusNotFound, "Shopping item name does not exist")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, items)
		return
	}

	params, msg := parsePageParams(r)
	if msg != "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msg)
		return
	}

	items, total, err := h.items.List(r.Context(), list.OwnerID, list.ID, params.Limit, params.offset())
	if err != nil {
		handleUnexpectedError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.ShoppingItem{}
	}

	basePath := fmt.Sprintf("/shoppinglists/%d/items", list.ID)
	previous, next := pageLinks(basePath, params, total)
	shared.RespondWithJSON(w, r, http.StatusOK, ItemPageResponse{
		Items:        items,
		PreviousPage: previous,
		NextPage:     next,
	})
}

// Get handles GET /shoppinglists/{listID}/items/{itemID}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}

	itemID, ok := parseItemID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "No such item")
		return
	}

	item, err := h.items.GetByID(r.Context(), list.OwnerID, list.ID, itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "No such item")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Update handles PUT /shoppinglists/{listID}/items/{itemID}. Omitted
// fields keep the item's current values.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}

	itemID, ok := parseItemID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "No such item")
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := h.items.GetByID(r.Context(), list.OwnerID, list.ID, itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "No such item")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	if req.Name != "" {
		if err := domain.ValidateName(req.Name); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		item.Name = req.Name
	}
	if raw := req.Price.String(); raw != "" {
		price, msg := parsePositiveInt(raw, msgPriceMissing, msgPriceInvalid, msgPriceNotPositive)
		if msg != "" {
			shared.RespondWithError(w, r, http.StatusBadRequest, msg)
			return
		}
		item.Price = price
	}
	if raw := req.Quantity.String(); raw != "" {
		quantity, msg := parsePositiveInt(raw, msgQuantityMissing, msgQuantityInvalid, msgQuantityNotPositive)
		if msg != "" {
			shared.RespondWithError(w, r, http.StatusBadRequest, msg)
			return
		}
		item.Quantity = quantity
	}

	if err := h.items.Update(r.Context(), item); err != nil {
		if errors.Is(err, store.ErrItemNameExists) {
			shared.RespondWithError(w, r, http.StatusFound, "Item name already exists")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Delete handles DELETE /shoppinglists/{listID}/items/{itemID}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}

	itemID, ok := parseItemID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "No such item")
		return
	}

	item, err := h.items.GetByID(r.Context(), list.OwnerID, list.ID, itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "No such item")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	if err := h.items.Delete(r.Context(), list.OwnerID, list.ID, itemID); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "No such item")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("shopping item deleted",
		"user_id", list.OwnerID, "list_id", list.ID, "item_id", itemID)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("%s deleted successfully", item.Name),
	})
}

// parseItemID reads the itemID path parameter. A non-numeric id is
// treated the same as a missing item.
func parseItemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
