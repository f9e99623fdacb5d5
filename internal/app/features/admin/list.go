package admin

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/hknair/leadgate/internal/app/store/registrations"
	"github.com/hknair/leadgate/internal/app/system/apiutil"
	"github.com/hknair/leadgate/internal/app/system/paging"
	"github.com/hknair/leadgate/internal/app/system/timeouts"
)

// List handles GET /api/registrations.
//
// Query parameters: page, limit, status, inquiryType. Results are ordered
// by creation time descending.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	filter := registrations.Filter{
		Status:      query.Get(r, "status"),
		InquiryType: query.Get(r, "inquiryType"),
	}

	regs, meta, err := h.Svc.List(ctx, filter, paging.Parse(r))
	if err != nil {
		h.fail(w, err)
		return
	}

	apiutil.OKList(w, regs, meta)
}
