package response

import (
	"time"

	"tos-api/internal/domain/tos"
	"tos-api/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// UserResponse is a stored TOS response as returned to clients.
type UserResponse struct {
	AppID      string    `json:"appid"`
	TOSVersion float64   `json:"tosversion"`
	UserID     string    `json:"userid"`
	Email      string    `json:"email"`
	Timestamp  time.Time `json:"timestamp"`
	Accepted   bool      `json:"accepted"`
}

func NewUserResponse(r *tos.Response) (*UserResponse, error) {
	var out UserResponse
	if err := copier.Copy(&out, r); err != nil {
		return nil, errs.Wrap(err, "failed to convert TOS response")
	}
	out.AppID = r.Document.AppID
	out.TOSVersion = r.Document.Version
	return &out, nil
}
