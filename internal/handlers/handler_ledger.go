package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pfin-labs/finance_tracker_app/internal/apperrors"
	"github.com/pfin-labs/finance_tracker_app/internal/core/domain"
	portssvc "github.com/pfin-labs/finance_tracker_app/internal/core/ports/services"
	"github.com/pfin-labs/finance_tracker_app/internal/dto"
	"github.com/pfin-labs/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const amountRequiredMessage = "Amount must be a positive number"

// ledgerHandler handles HTTP requests for one record collection. The expense
// and income routes share this implementation; the kind selects the wire
// label field and the user-facing wording.
type ledgerHandler struct {
	kind domain.LedgerKind
	svc  portssvc.LedgerSvc
}

// newLedgerHandler creates a new ledgerHandler of the given kind.
func newLedgerHandler(kind domain.LedgerKind, svc portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{
		kind: kind,
		svc:  svc,
	}
}

// requiredMessage names the missing fields the way clients expect them.
func (h *ledgerHandler) requiredMessage() string {
	if h.kind == domain.KindIncome {
		return "Source and amount are required"
	}
	return "Category and amount are required"
}

func (h *ledgerHandler) notFoundMessage() string {
	return h.kind.Title() + " not found"
}

// bindErrorMessage translates a JSON binding failure into the API's error
// wording. A non-numeric amount is reported the same way as a non-positive
// one; anything else is a malformed request.
func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "amount" {
		return amountRequiredMessage
	}
	return "Invalid request format: " + err.Error()
}

// createRecord validates the already-bound fields and delegates to the ledger
// service. A nil amount means the field was absent from the request body.
func (h *ledgerHandler) createRecord(c *gin.Context, label string, amount *float64, description string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if label == "" || amount == nil {
		logger.Warn("Missing required fields on create", slog.String("ledger", string(h.kind)))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(h.requiredMessage()))
		return
	}
	if *amount <= 0 {
		logger.Warn("Non-positive amount on create", slog.String("ledger", string(h.kind)), slog.Float64("amount", *amount))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(amountRequiredMessage))
		return
	}

	req := dto.CreateRecordRequest{
		Label:       label,
		Amount:      decimal.NewFromFloat(*amount),
		Description: description,
	}

	record, err := h.svc.AddRecord(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAmountNotPositive) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(amountRequiredMessage))
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(h.requiredMessage()))
		} else {
			logger.Error("Failed to create record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to create "+string(h.kind)))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Success: true,
		Data:    dto.ToRecordResponse(h.kind, record),
		Message: h.kind.Title() + " created successfully",
	})
}

// listRecords returns the full collection, or only the records matching the
// kind's label query parameter (?category= / ?source=) when one is given.
func (h *ledgerHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		records []domain.Record
		err     error
	)
	if label := c.Query(h.kind.LabelField()); label != "" {
		records, err = h.svc.ListRecordsByLabel(c.Request.Context(), label)
	} else {
		records, err = h.svc.ListRecords(c.Request.Context())
	}
	if err != nil {
		logger.Error("Failed to list records from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to list "+string(h.kind)+" records"))
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Success: true,
		Data:    dto.ToRecordListResponse(h.kind, records),
		Count:   len(records),
	})
}

func (h *ledgerHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// A non-integer id cannot reference a record; it is surfaced exactly
	// like a well-formed id that matches nothing.
	id, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(h.notFoundMessage()))
		return
	}

	record, err := h.svc.GetRecordByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(h.notFoundMessage()))
		} else {
			logger.Error("Failed to get record from service", slog.String("error", err.Error()), slog.Int64("record_id", id))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve "+string(h.kind)))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Data:    dto.ToRecordResponse(h.kind, record),
	})
}

func (h *ledgerHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(h.notFoundMessage()))
		return
	}

	record, err := h.svc.DeleteRecord(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(h.notFoundMessage()))
		} else {
			logger.Error("Failed to delete record in service", slog.String("error", err.Error()), slog.Int64("record_id", id))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to delete "+string(h.kind)))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Data:    dto.ToRecordResponse(h.kind, record),
		Message: h.kind.Title() + " deleted successfully",
	})
}
