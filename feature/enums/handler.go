package enums

import (
	"errors"
	"strings"

	"enum-registry/core/logger"
	"enum-registry/core/reconcile"
	"enum-registry/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// invalidEnumTypeMessage is the only detail clients get for unknown types.
const invalidEnumTypeMessage = "Invalid enum type."

// Handler handles HTTP requests for enums.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the enum routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/enums")
	group.Get("/", h.HandleGetValues)
	group.Get("/types", h.HandleGetTypes)
	group.Get("/values", h.HandleGetValues)
	group.Get("/sync/plan", h.HandlePlanSync)
	group.Post("/sync", h.HandleSync)
}

// HandleGetTypes lists the registered enum types.
// @Summary List Enum Types
// @Description Names of every registered enum type, in discovery order.
// @Tags enums
// @Produce json
// @Success 200 {array} string "Enum type names"
// @Router /enums/types [get]
func (h *Handler) HandleGetTypes(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAvailableTypes())
}

// HandleGetValues returns the localized members of one enum type.
// @Summary Get Enum Values
// @Description Members of an enum with labels in the requested language, falling back to the caller's Accept-Language and then the server default.
// @Tags enums
// @Produce json
// @Param enumName query string true "Enum type name (case-insensitive)"
// @Param language query string false "Label language (e.g. 'tr')"
// @Success 200 {array} enums.ValueView "Enum values"
// @Failure 400 {object} enums.ErrorResponse "Invalid enum type"
// @Router /enums [get]
func (h *Handler) HandleGetValues(c *fiber.Ctx) error {
	caller := utils.PreferredLanguage(c.Get(fiber.HeaderAcceptLanguage))

	values, err := h.service.GetValues(c.Query("enumName"), c.Query("language"), caller)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: invalidEnumTypeMessage})
	}
	return c.JSON(values)
}

// HandlePlanSync reports the drift between the registry and the lookup table.
// @Summary Plan Lookup Sync
// @Description Dry-run of a synchronization pass. Nothing is written.
// @Tags enums
// @Produce json
// @Param languages query string false "Comma separated languages (default from config)"
// @Param type query string false "Restrict to one enum type"
// @Param keep_orphans query bool false "Do not plan orphan deletion"
// @Success 200 {object} reconcile.Report "Planned actions"
// @Failure 400 {object} enums.ErrorResponse "Invalid request"
// @Failure 503 {object} enums.ErrorResponse "No database configured"
// @Router /enums/sync/plan [get]
func (h *Handler) HandlePlanSync(c *fiber.Ctx) error {
	req, err := parseSyncRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	report, err := h.service.PlanSync(c.Context(), req)
	return h.respond(c, report, err)
}

// HandleSync runs a synchronization pass.
// @Summary Run Lookup Sync
// @Description Reconciles the lookup table with the registry, one transaction per enum type.
// @Tags enums
// @Accept json
// @Produce json
// @Param request body enums.SyncRequest false "Sync options"
// @Success 200 {object} reconcile.Report "All units applied"
// @Success 207 {object} reconcile.Report "Some units failed and were rolled back"
// @Failure 400 {object} enums.ErrorResponse "Invalid request"
// @Failure 503 {object} enums.ErrorResponse "No database configured"
// @Router /enums/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	req, err := parseSyncRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering lookup sync",
		zap.Strings("languages", req.Languages),
		zap.String("type", req.Type),
		zap.Bool("dry_run", req.DryRun),
	)

	report, err := h.service.Sync(c.Context(), req)
	return h.respond(c, report, err)
}

func (h *Handler) respond(c *fiber.Ctx, report *reconcile.Report, err error) error {
	var partial *reconcile.PartialFailure
	switch {
	case err == nil:
		return c.JSON(report)
	case errors.As(err, &partial) && report != nil:
		return c.Status(fiber.StatusMultiStatus).JSON(report)
	case errors.Is(err, ErrInvalidEnumType):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: invalidEnumTypeMessage})
	case errors.Is(err, reconcile.ErrInvalidLanguage):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrSyncUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: err.Error()})
	default:
		logger.WithRayID(h.service.logger, c).Error("Lookup sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}
}

func parseSyncRequest(c *fiber.Ctx) (SyncRequest, error) {
	var req SyncRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return req, err
		}
	}
	if langs := c.Query("languages"); langs != "" {
		req.Languages = strings.Split(langs, ",")
	}
	if t := c.Query("type"); t != "" {
		req.Type = t
	}
	if c.QueryBool("keep_orphans") {
		req.KeepOrphans = true
	}
	if c.QueryBool("dry_run") {
		req.DryRun = true
	}
	return req, nil
}
