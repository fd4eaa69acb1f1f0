package request

import "strings"

type PinRequest struct {
	Name string `json:"name"`
}

func (r PinRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}
