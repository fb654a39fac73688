package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	perr "gitinsight/internal/platform/errors"
)

// Param returns the named path parameter for the request
// empty string when the route did not capture it
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// ParamInt64 parses the named path parameter as a base-10 int64
func ParamInt64(r *http.Request, name string) (int64, error) {
	s := chi.URLParam(r, name)
	if s == "" {
		return 0, perr.InvalidArgf("missing path param %q", name)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "path param %q must be an integer", name)
	}
	return v, nil
}
