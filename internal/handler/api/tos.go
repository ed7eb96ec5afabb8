package api

import (
	"log/slog"
	"net/http"

	"tos-api/internal/domain/tos"
	"tos-api/internal/handler/dto/response"
	"tos-api/internal/handler/httperr"
	"tos-api/internal/handler/middleware"
	"tos-api/internal/handler/validation"
	"tos-api/internal/pkg/errs"
	"tos-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	readErrorPrefix  = "Error reading user response"
	writeErrorPrefix = "Error writing user response"
)

type TOSHandler struct {
	authorizer usecase.Authorizer
	store      usecase.ResponseStore
	logger     *slog.Logger
}

func NewTOSHandler(authorizer usecase.Authorizer, store usecase.ResponseStore, logger *slog.Logger) *TOSHandler {
	return &TOSHandler{
		authorizer: authorizer,
		store:      store,
		logger:     logger,
	}
}

// @Summary Read or record a user's TOS response
// @Description GET returns the caller's current response for appid/tosversion; POST appends a new one.
// @Tags tos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param appid query string false "Application ID (GET)"
// @Param tosversion query number false "TOS version (GET)"
// @Success 200 {object} response.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 405 {object} httperr.Response
// @Failure 415 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /v1/user/response [get]
// @Router /v1/user/response [post]
func (h *TOSHandler) UserResponse(c *gin.Context) {
	record, err := h.HandleRequest(c)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}

	body, err := response.NewUserResponse(record)
	if err != nil {
		httperr.AbortWithError(c, errs.Internal(err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, body)
}

// HandleRequest validates the request, authorizes the caller and reads or
// writes the response. The first failing stage ends the request.
func (h *TOSHandler) HandleRequest(c *gin.Context) (*tos.Response, error) {
	req := c.Request

	if err := validation.ValidateRequestURL(req); err != nil {
		return nil, err
	}
	if err := validation.ValidateRequestMethod(req); err != nil {
		return nil, err
	}
	if err := validation.ValidateContentType(req); err != nil {
		return nil, err
	}
	authHeader, err := validation.RequireAuthorizationHeader(req)
	if err != nil {
		return nil, err
	}
	info, err := validation.ValidateInputs(req)
	if err != nil {
		return nil, err
	}

	ctx := req.Context()
	user, err := h.authorizer.Authorize(ctx, authHeader)
	if err != nil {
		return nil, err
	}
	c.Set(middleware.CtxUserIDKey, user.UserID)

	switch req.Method {
	case http.MethodGet:
		record, err := h.store.GetCurrentResponse(ctx, user.UserID, info.DocumentKey())
		if err != nil {
			return nil, errs.Prefixed(err, readErrorPrefix)
		}
		return record, nil
	case http.MethodPost:
		record, err := h.store.CreateResponse(ctx, user, info)
		if err != nil {
			return nil, errs.Prefixed(err, writeErrorPrefix)
		}
		return record, nil
	default:
		return nil, errs.MethodNotAllowed("")
	}
}
