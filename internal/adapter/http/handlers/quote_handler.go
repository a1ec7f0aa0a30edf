package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	request "github.com/digilabhq/DCQuoting/internal/adapter/http/dto/request"
	response "github.com/digilabhq/DCQuoting/internal/adapter/http/dto/response"
	"github.com/digilabhq/DCQuoting/internal/usecase"
	"github.com/digilabhq/DCQuoting/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler exposes the estimate store over HTTP. It is a thin
// translation layer: every endpoint drives one typed store operation
// and returns the recomputed state, the way the browser UI recalculated
// after each edit.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GetQuote returns the full working quote with cursor and totals.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	c.JSON(http.StatusOK, h.quoteView())
}

// ResetQuote replaces the working quote with a fresh single-room one.
func (h *QuoteHandler) ResetQuote(c *gin.Context) {
	h.usecase.Reset(c.Request.Context())
	c.JSON(http.StatusOK, h.quoteView())
}

// UpdateClient writes the client block. A changed name regenerates the
// quote number; the store leaves that decision to this caller.
func (h *QuoteHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if nameChanged := h.usecase.UpdateClient(c.Request.Context(), payload.ToClient()); nameChanged {
		h.usecase.RegenerateQuoteNumber(c.Request.Context())
	}
	c.JSON(http.StatusOK, h.quoteView())
}

// UpdateSettings writes tax, discount and revision settings.
func (h *QuoteHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	settings, err := payload.Resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest).ToHTTPError())
		return
	}

	h.usecase.UpdateSettings(c.Request.Context(), settings)
	c.JSON(http.StatusOK, h.usecase.Totals())
}

// AddRoom appends a default room and selects it.
func (h *QuoteHandler) AddRoom(c *gin.Context) {
	index := h.usecase.AddRoom(c.Request.Context())
	c.JSON(http.StatusCreated, response.ItemAddedResponse{Index: index})
}

// AddCustomItem appends an empty custom item and selects it.
func (h *QuoteHandler) AddCustomItem(c *gin.Context) {
	index := h.usecase.AddCustomItem(c.Request.Context())
	c.JSON(http.StatusCreated, response.ItemAddedResponse{Index: index})
}

// RemoveItem deletes the item at the path index.
func (h *QuoteHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid item index", http.StatusBadRequest).ToHTTPError())
		return
	}

	if err := h.usecase.RemoveItem(c.Request.Context(), index); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.quoteView())
}

// SwitchItem moves the editing cursor.
func (h *QuoteHandler) SwitchItem(c *gin.Context) {
	var payload request.SwitchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := h.usecase.SwitchTo(*payload.Index); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.quoteView())
}

// UpdateRoom writes room fields on the current item.
func (h *QuoteHandler) UpdateRoom(c *gin.Context) {
	var payload request.RoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	fields, err := payload.Resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest).ToHTTPError())
		return
	}

	if err := h.usecase.UpdateRoom(c.Request.Context(), fields); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.usecase.Totals())
}

// UpdateAddon records one addon selection on the current room.
func (h *QuoteHandler) UpdateAddon(c *gin.Context) {
	var payload request.AddonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := h.usecase.UpdateAddon(c.Request.Context(), c.Param("key"), payload.Enabled, payload.Quantity); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.usecase.Totals())
}

// UpdateCustomItem writes custom-item fields on the current item.
func (h *QuoteHandler) UpdateCustomItem(c *gin.Context) {
	var payload request.CustomItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := h.usecase.UpdateCustomItem(c.Request.Context(), payload.Resolve()); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.usecase.Totals())
}

// GetTotals recomputes and returns the quote aggregate.
func (h *QuoteHandler) GetTotals(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Totals())
}

// DownloadSnapshot serves the quote as a downloadable JSON file.
func (h *QuoteHandler) DownloadSnapshot(c *gin.Context) {
	data, err := h.usecase.ExportSnapshot()
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, _ := h.usecase.View()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=DCQuoting_%s.json", quote.QuoteNumber))
	c.Data(http.StatusOK, "application/json", data)
}

// UploadSnapshot replaces the working quote with an uploaded snapshot.
// A malformed file is rejected and the working quote stays untouched.
func (h *QuoteHandler) UploadSnapshot(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := h.usecase.ImportSnapshot(c.Request.Context(), data); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.quoteView())
}

// GetDocument renders the printable quote. ?alternate=1 renders the
// variant with one addon removed (?without=<key>, LED lighting by
// default) under an -ALT quote number.
func (h *QuoteHandler) GetDocument(c *gin.Context) {
	alternate := c.Query("alternate") == "1" || c.Query("alternate") == "true"

	doc, err := h.usecase.Document(alternate, c.Query("without"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, _ := h.usecase.View()
	c.JSON(http.StatusOK, response.DocumentResponse{
		QuoteNumber:  quote.QuoteNumber,
		Document:     doc,
		Descriptions: h.usecase.Descriptions(),
	})
}

func (h *QuoteHandler) quoteView() response.QuoteResponse {
	quote, current := h.usecase.View()
	return response.FromQuote(quote, current, h.usecase.Totals())
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Item index out of range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLastItem):
		return pkg.NewDomainErrorSimple("LAST_ITEM", "A quote must keep at least one item", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotARoom):
		return pkg.NewDomainErrorSimple("NOT_A_ROOM", "Current item is not a room", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotACustomItem):
		return pkg.NewDomainErrorSimple("NOT_A_CUSTOM_ITEM", "Current item is not a custom item", http.StatusConflict)
	case errors.Is(err, usecase.ErrMalformedSnapshot):
		return pkg.NewDomainErrorSimple("MALFORMED_SNAPSHOT", "Quote snapshot could not be parsed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToQuote):
		return pkg.NewDomainErrorSimple("NOTHING_TO_QUOTE", "Enter linear feet or a custom item price before generating the quote", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
