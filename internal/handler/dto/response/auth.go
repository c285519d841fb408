package response

import (
	"dealdesk/internal/usecase/queries"
)

type LoginResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
