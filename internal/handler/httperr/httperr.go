package httperr

import (
	"net/http"

	"tos-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the body of every failed request.
type Response struct {
	Status  int    `json:"statusCode"`
	Message string `json:"message"`
}

func FromError(err error) Response {
	re := errs.AsResponseError(err)
	status := re.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Response{Status: status, Message: re.Error()}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := FromError(err)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
