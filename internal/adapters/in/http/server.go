package http

import (
	"errors"
	"net/http"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/manifest"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/model/payment"
	"parcelflow/internal/generated/servers"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/keylock"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"gorm.io/gorm"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler         commands.CreateParcelCommandHandler
	applyTransitionHandler      commands.ApplyTransitionCommandHandler
	abandonParcelHandler        commands.AbandonParcelCommandHandler
	createManifestHandler       commands.CreateManifestCommandHandler
	removeManifestParcelHandler commands.RemoveManifestParcelCommandHandler
	deleteManifestHandler       commands.DeleteManifestCommandHandler
	confirmPaymentHandler       commands.ConfirmPaymentCommandHandler
	refusePaymentHandler        commands.RefusePaymentCommandHandler
	reconcilePaymentsHandler    commands.ReconcilePaymentsCommandHandler

	// Query handlers
	getParcelHistoryHandler       queries.GetParcelHistoryQueryHandler
	getOutstandingPaymentsHandler queries.GetOutstandingPaymentsQueryHandler
	getWorkflowStatsHandler       queries.GetWorkflowStatsQueryHandler
	getManifestTotalHandler       queries.GetManifestTotalQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	applyTransitionHandler commands.ApplyTransitionCommandHandler,
	abandonParcelHandler commands.AbandonParcelCommandHandler,
	createManifestHandler commands.CreateManifestCommandHandler,
	removeManifestParcelHandler commands.RemoveManifestParcelCommandHandler,
	deleteManifestHandler commands.DeleteManifestCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	refusePaymentHandler commands.RefusePaymentCommandHandler,
	reconcilePaymentsHandler commands.ReconcilePaymentsCommandHandler,
	getParcelHistoryHandler queries.GetParcelHistoryQueryHandler,
	getOutstandingPaymentsHandler queries.GetOutstandingPaymentsQueryHandler,
	getWorkflowStatsHandler queries.GetWorkflowStatsQueryHandler,
	getManifestTotalHandler queries.GetManifestTotalQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:           createParcelHandler,
		applyTransitionHandler:        applyTransitionHandler,
		abandonParcelHandler:          abandonParcelHandler,
		createManifestHandler:         createManifestHandler,
		removeManifestParcelHandler:   removeManifestParcelHandler,
		deleteManifestHandler:         deleteManifestHandler,
		confirmPaymentHandler:         confirmPaymentHandler,
		refusePaymentHandler:          refusePaymentHandler,
		reconcilePaymentsHandler:      reconcilePaymentsHandler,
		getParcelHistoryHandler:       getParcelHistoryHandler,
		getOutstandingPaymentsHandler: getOutstandingPaymentsHandler,
		getWorkflowStatsHandler:       getWorkflowStatsHandler,
		getManifestTotalHandler:       getManifestTotalHandler,
	}
}

// errorStatus maps application errors to HTTP status codes. Unknown errors
// stay 500 so storage failures never masquerade as client mistakes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, keylock.ErrLockTimeout):
		return http.StatusLocked
	case errors.Is(err, commands.ErrPartialRevertFailure):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, manifest.ErrNotAMember):
		return http.StatusNotFound
	case errors.Is(err, parcel.ErrIllegalTransition),
		errors.Is(err, parcel.ErrIneligibleParcel),
		errors.Is(err, payment.ErrAlreadyResolved),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, manifest.ErrEmptySelection),
		errors.Is(err, manifest.ErrDuplicateMember),
		errors.Is(err, commands.ErrArticleCountIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, err error) error {
	code := errorStatus(err)
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

// CreateParcel handles POST /api/v1/parcels - registers a new parcel.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var newParcel servers.NewParcel
	if err := ctx.Bind(&newParcel); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	barcode, err := kernel.NewBarcode(newParcel.Barcode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	clientID, err := kernel.UUIDFromString(newParcel.ClientId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	price, err := kernel.NewMoneyFromString(newParcel.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var exchange *parcel.Exchange
	if newParcel.Exchange != nil {
		exchangeBarcode, exchangeErr := kernel.NewBarcode(newParcel.Exchange.Barcode)
		if exchangeErr != nil {
			return errorResponse(ctx, exchangeErr)
		}
		exchange = &parcel.Exchange{
			Barcode:      exchangeBarcode,
			ArticleCount: newParcel.Exchange.ArticleCount,
		}
	}

	note := ""
	if newParcel.Note != nil {
		note = *newParcel.Note
	}

	cmd, err := commands.NewCreateParcelCommand(
		barcode,
		clientID,
		price,
		newParcel.ArticleCount,
		parcel.Recipient{
			Name:        newParcel.Recipient.Name,
			Phone:       newParcel.Recipient.Phone,
			Address:     newParcel.Recipient.Address,
			Governorate: newParcel.Recipient.Governorate,
			City:        newParcel.Recipient.City,
		},
		exchange,
		note,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ApplyTransition handles POST /api/v1/parcels/{barcode}/transitions - moves
// a parcel to a new workflow status.
func (s *Server) ApplyTransition(ctx echo.Context, rawBarcode string, params servers.ApplyTransitionParams) error {
	var newTransition servers.NewTransition
	if err := ctx.Bind(&newTransition); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	barcode, err := kernel.NewBarcode(rawBarcode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	target, err := parcel.StatusFromString(newTransition.Target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	comment := ""
	if newTransition.Comment != nil {
		comment = *newTransition.Comment
	}

	cmd, err := commands.NewApplyTransitionCommand(barcode, target, params.XActor, comment)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.applyTransitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AbandonParcel handles POST /api/v1/parcels/{barcode}/abandon - abandons a
// parcel with a mandatory reason.
func (s *Server) AbandonParcel(ctx echo.Context, rawBarcode string, params servers.AbandonParcelParams) error {
	var request servers.AbandonRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	barcode, err := kernel.NewBarcode(rawBarcode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAbandonParcelCommand(barcode, params.XActor, request.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.abandonParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetParcelHistory handles GET /api/v1/parcels/{barcode}/history - returns
// the parcel's audit trail, oldest entry first.
func (s *Server) GetParcelHistory(ctx echo.Context, rawBarcode string) error {
	barcode, err := kernel.NewBarcode(rawBarcode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetParcelHistoryQuery(barcode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	history, err := s.getParcelHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.TransitionRecord, len(history))
	for i, record := range history {
		response[i] = servers.TransitionRecord{
			FromStatus: record.FromStatus.String(),
			ToStatus:   record.ToStatus.String(),
			Actor:      record.Actor,
			Comment:    record.Comment,
			At:         record.At,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateManifest handles POST /api/v1/manifests - groups parcels of one
// client into a pickup manifest.
func (s *Server) CreateManifest(ctx echo.Context) error {
	var newManifest servers.NewManifest
	if err := ctx.Bind(&newManifest); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	clientID, err := kernel.UUIDFromString(newManifest.ClientId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	barcodes := make([]kernel.Barcode, len(newManifest.Barcodes))
	for i, raw := range newManifest.Barcodes {
		barcode, barcodeErr := kernel.NewBarcode(raw)
		if barcodeErr != nil {
			return errorResponse(ctx, barcodeErr)
		}
		barcodes[i] = barcode
	}

	manifestID := kernel.NewUUID()

	cmd, err := commands.NewCreateManifestCommand(manifestID, clientID, barcodes)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createManifestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Manifest{
		Id:       manifestID.Bytes(),
		ClientId: newManifest.ClientId,
		Barcodes: newManifest.Barcodes,
	})
}

// RemoveManifestParcel handles DELETE /api/v1/manifests/{manifestId}/parcels/{barcode}.
func (s *Server) RemoveManifestParcel(
	ctx echo.Context,
	rawManifestID openapi_types.UUID,
	rawBarcode string,
	params servers.RemoveManifestParcelParams,
) error {
	manifestID, err := kernel.UUIDFromString(rawManifestID.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	barcode, err := kernel.NewBarcode(rawBarcode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRemoveManifestParcelCommand(manifestID, barcode, params.XActor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.removeManifestParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteManifest handles DELETE /api/v1/manifests/{manifestId} - deletes a
// manifest and reverts its members to pending.
func (s *Server) DeleteManifest(
	ctx echo.Context,
	rawManifestID openapi_types.UUID,
	params servers.DeleteManifestParams,
) error {
	manifestID, err := kernel.UUIDFromString(rawManifestID.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteManifestCommand(manifestID, params.XActor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.deleteManifestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetManifestTotal handles GET /api/v1/manifests/{manifestId}/total.
func (s *Server) GetManifestTotal(ctx echo.Context, rawManifestID openapi_types.UUID) error {
	manifestID, err := kernel.UUIDFromString(rawManifestID.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetManifestTotalQuery(manifestID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	total, err := s.getManifestTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ManifestTotal{
		ManifestId:  total.ManifestID.Bytes(),
		ParcelCount: total.ParcelCount,
		TotalPrice:  total.TotalPrice.String(),
	})
}

// ConfirmPayment handles POST /api/v1/payments/{paymentId}/confirm.
func (s *Server) ConfirmPayment(
	ctx echo.Context,
	rawPaymentID openapi_types.UUID,
	params servers.ConfirmPaymentParams,
) error {
	paymentID, err := kernel.UUIDFromString(rawPaymentID.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(paymentID, params.XActor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefusePayment handles POST /api/v1/payments/{paymentId}/refuse.
func (s *Server) RefusePayment(
	ctx echo.Context,
	rawPaymentID openapi_types.UUID,
	params servers.RefusePaymentParams,
) error {
	paymentID, err := kernel.UUIDFromString(rawPaymentID.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRefusePaymentCommand(paymentID, params.XActor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.refusePaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOutstandingPayments handles GET /api/v1/payments/outstanding.
func (s *Server) GetOutstandingPayments(ctx echo.Context, params servers.GetOutstandingPaymentsParams) error {
	clientID, err := kernel.UUIDFromString(params.ClientId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOutstandingPaymentsQuery(clientID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	outstanding, err := s.getOutstandingPaymentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.OutstandingPayment, len(outstanding))
	for i, item := range outstanding {
		response[i] = servers.OutstandingPayment{
			PaymentId:     item.PaymentID.Bytes(),
			Barcode:       item.Barcode.String(),
			Amount:        item.Amount.String(),
			RecipientName: item.RecipientName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReconcilePayments handles POST /api/v1/payments/reconcile - creates missing
// payments for delivered parcels. Nothing missing is a success.
func (s *Server) ReconcilePayments(ctx echo.Context) error {
	cmd := commands.NewReconcilePaymentsCommand()

	if handleErr := s.reconcilePaymentsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNoPaymentsToReconcile) {
			return ctx.NoContent(http.StatusNoContent)
		}
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkflowStats handles GET /api/v1/stats/workflow.
func (s *Server) GetWorkflowStats(ctx echo.Context, params servers.GetWorkflowStatsParams) error {
	var excluded []parcel.Status
	if params.Exclude != nil {
		excluded = make([]parcel.Status, len(*params.Exclude))
		for i, raw := range *params.Exclude {
			status, statusErr := parcel.StatusFromString(raw)
			if statusErr != nil {
				return errorResponse(ctx, statusErr)
			}
			excluded[i] = status
		}
	}

	query, err := queries.NewGetWorkflowStatsQuery(excluded)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stats, err := s.getWorkflowStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.WorkflowStat, len(stats))
	for i, stat := range stats {
		response[i] = servers.WorkflowStat{
			Status:     stat.Status.String(),
			Count:      stat.Count,
			TotalPrice: stat.TotalPrice.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
