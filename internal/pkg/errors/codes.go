package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Optimization request did not pass validation",
		http.StatusUnprocessableEntity,
	)

	ErrOptimizationNotFound = New(
		"OPTIMIZATION_NOT_FOUND",
		"Optimization not found",
		http.StatusNotFound,
	)

	ErrOptimizerUnavailable = New(
		"OPTIMIZER_UNAVAILABLE",
		"Route optimizer is unavailable",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
