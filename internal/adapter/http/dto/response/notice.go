package response

import "fmt"

// NoticeResponse is a short message the client may show as a toast.
type NoticeResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action,omitempty"`
}

func NoticeEstimateAdded() NoticeResponse {
	return NoticeResponse{
		Title:       "Estimate Added",
		Description: "(hint: click 'Add to Estimate' to add more to your order)",
	}
}

// NoticePinned offers a "view" action that shows the pinned estimate.
func NoticePinned(name string) NoticeResponse {
	return NoticeResponse{
		Title:       fmt.Sprintf("%q has been pinned", name),
		Description: "(hint: feel free to start over, your pinned estimates are safe!)",
		Action:      "view",
	}
}

func NoticeCleared() NoticeResponse {
	return NoticeResponse{
		Title:       "Current Estimate Cleared",
		Description: "(hint: pinned estimates are safe!)",
	}
}

func NoticeNothingToClear() NoticeResponse {
	return NoticeResponse{
		Title:       "Nothing to Clear",
		Description: "You can now start a new estimate.",
	}
}
