package response

import "tos-api/internal/usecase"

type SubsystemStatus struct {
	OK       bool     `json:"ok"`
	Messages []string `json:"messages,omitempty"`
}

type StatusResponse struct {
	OK      bool                       `json:"ok"`
	Systems map[string]SubsystemStatus `json:"systems"`
}

func NewStatusResponse(s *usecase.StatusCheckResponse) StatusResponse {
	out := StatusResponse{
		OK:      s.OK,
		Systems: make(map[string]SubsystemStatus, len(s.Systems)),
	}
	for name, sys := range s.Systems {
		out.Systems[name] = SubsystemStatus{
			OK:       sys.OK,
			Messages: append([]string(nil), sys.Messages...),
		}
	}
	return out
}
