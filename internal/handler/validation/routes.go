package validation

const (
	UserResponsePath   = "/user/response"
	UserResponsePathV1 = "/v1/user/response"
	StatusPath         = "/status"
	StatusPathV1       = "/v1/status"
)

var (
	userResponsePaths = []string{UserResponsePath, UserResponsePathV1}
	statusPaths       = []string{StatusPath, StatusPathV1}
)

func UserResponsePaths() []string {
	return append([]string(nil), userResponsePaths...)
}

func StatusPaths() []string {
	return append([]string(nil), statusPaths...)
}

func IsUserResponsePath(path string) bool {
	return contains(userResponsePaths, path)
}

func IsStatusPath(path string) bool {
	return contains(statusPaths, path)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
