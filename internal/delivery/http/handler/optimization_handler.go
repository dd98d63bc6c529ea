package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/pkg/errors"
	"github.com/collection-routing/internal/pkg/utils"
	"github.com/collection-routing/internal/pkg/validator"
	"github.com/collection-routing/internal/usecase/dto"
)

// OptimizationService is the part of the optimization use case the handler needs
type OptimizationService interface {
	Validate(ctx context.Context, req *dto.OptimizationRequest) *dto.ValidationResponse
	Submit(ctx context.Context, req *dto.OptimizationRequest) (*dto.SubmitResponse, error)
	Status(ctx context.Context, requestID string) (*domain.OptimizationStatusInfo, error)
}

// OptimizationHandler - validation, submission and status of optimization runs
type OptimizationHandler struct {
	optimizationUC OptimizationService
	logger         *zap.Logger
}

func NewOptimizationHandler(optimizationUC OptimizationService, logger *zap.Logger) *OptimizationHandler {
	return &OptimizationHandler{
		optimizationUC: optimizationUC,
		logger:         logger,
	}
}

// Validate godoc
// @Summary Validate an optimization request
// @Description Runs every pre-flight check (coordinates, numeric fields, time windows, vehicles, start point, radius, overlaps, capacity) and returns all findings. Nothing is sent to the optimizer.
// @Tags Optimization
// @Accept json
// @Produce json
// @Param request body dto.OptimizationRequest true "Points, vehicles and start point"
// @Success 200 {object} utils.SuccessResponse{data=dto.ValidationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/optimization/validate [post]
func (h *OptimizationHandler) Validate(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result := h.optimizationUC.Validate(c.UserContext(), req)

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Errors) + len(result.Warnings),
	})
}

// Submit godoc
// @Summary Submit an optimization request
// @Description Validates the request and, when it has no errors, sends it to the route optimizer. Warnings do not block submission and are echoed back.
// @Tags Optimization
// @Accept json
// @Produce json
// @Param request body dto.OptimizationRequest true "Points, vehicles and start point"
// @Success 202 {object} utils.SuccessResponse{data=dto.SubmitResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse "Validation errors, details.validation holds the full report"
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/optimization [post]
func (h *OptimizationHandler) Submit(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.optimizationUC.Submit(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set("X-Request-ID", result.RequestID)
	return utils.SendAccepted(c, result)
}

// Status godoc
// @Summary Optimization status
// @Description Returns the latest known status of a submitted run, including the optimizer result once completed.
// @Tags Optimization
// @Produce json
// @Param id path string true "Request id (opt_<unix>_<hash>)"
// @Success 200 {object} utils.SuccessResponse{data=domain.OptimizationStatusInfo}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/optimization/{id}/status [get]
func (h *OptimizationHandler) Status(c *fiber.Ctx) error {
	req := dto.StatusRequest{RequestID: c.Params("id")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid optimization request id"))
	}

	status, err := h.optimizationUC.Status(c.UserContext(), req.RequestID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, status, nil)
}

func (h *OptimizationHandler) parseRequest(c *fiber.Ctx) (*dto.OptimizationRequest, error) {
	var req dto.OptimizationRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Invalid optimization body", zap.Error(err))
		return nil, errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"fields": err.Error(),
		})
	}
	return &req, nil
}
