package http

import (
	"context"
	"crypto-advisor/internal/dto"
	"crypto-advisor/internal/repository"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAdvice(base *echo.Group) {
	v1 := base.Group("/v1/advice")
	{
		v1.GET("", h.GetAdvice)
		v1.POST("/run", h.RunAdvice)
	}
}

// GetAdvice runs one advisory pass and returns the full result.
func (h *HttpAPIHandler) GetAdvice(c echo.Context) error {
	advice, err := h.service.AdvisorService.Advise(c.Request().Context())
	if err != nil {
		return c.JSON(adviceErrorResponse(err))
	}

	response := dto.NewSuccessResponse("Advisory run completed", advice)
	return c.JSON(response.Code, response)
}

// RunAdvice runs one advisory pass with an optional timeout override and an
// optional telegram push.
func (h *HttpAPIHandler) RunAdvice(c echo.Context) error {
	var req dto.RunAdviceRequest
	if err := c.Bind(&req); err != nil {
		response := dto.NewBadRequestResponse(err.Error())
		return c.JSON(response.Code, response)
	}

	if err := h.validator.Struct(&req); err != nil {
		response := dto.NewBadRequestResponse(err.Error())
		return c.JSON(response.Code, response)
	}

	ctx := c.Request().Context()
	if req.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	advice, err := h.service.AdvisorService.Advise(ctx)
	if err != nil {
		return c.JSON(adviceErrorResponse(err))
	}

	if req.Notify {
		if err := h.service.AdvisorService.Notify(ctx, advice); err != nil {
			response := dto.NewBaseResponse(http.StatusBadGateway, "Advice produced but notification failed: "+err.Error(), advice)
			return c.JSON(response.Code, response)
		}
	}

	response := dto.NewSuccessResponse("Advisory run completed", advice)
	return c.JSON(response.Code, response)
}

func adviceErrorResponse(err error) (int, *dto.BaseResponse) {
	code := http.StatusInternalServerError
	if errors.Is(err, repository.ErrPriceUnavailable) || errors.Is(err, repository.ErrClassifierUnavailable) {
		code = http.StatusServiceUnavailable
	}
	return code, dto.NewBaseResponse(code, err.Error(), nil)
}
