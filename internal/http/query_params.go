package http

import (
	"net/http"
	"strconv"
	"strings"

	"net-profiler/internal/aggregators"
	"net-profiler/internal/filters"
)

const (
	queryActor     = "actor"
	queryProperty  = "property"
	queryRPC       = "rpc"
	queryFromFrame = "fromFrame"
	queryToFrame   = "toFrame"
	queryLimit     = "limit"
	queryFormat    = "format"
)

// profileQuery reads the identity filter and frame range shared by the segment, report and
// performance endpoints. Range checks are left to the profile service.
func profileQuery(r *http.Request) (aggregators.ProfileQuery, error) {
	values := r.URL.Query()
	query := aggregators.ProfileQuery{
		Filter: filters.IdentityFilter{
			ActorPattern:    strings.TrimSpace(values.Get(queryActor)),
			PropertyPattern: strings.TrimSpace(values.Get(queryProperty)),
			RPCPattern:      strings.TrimSpace(values.Get(queryRPC)),
		},
	}

	var err error
	if query.FromFrame, err = optionalInt(r, queryFromFrame); err != nil {
		return aggregators.ProfileQuery{}, err
	}
	if query.ToFrame, err = optionalInt(r, queryToFrame); err != nil {
		return aggregators.ProfileQuery{}, err
	}
	return query, nil
}

func optionalInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errInvalidQueryParam(name, err)
	}
	return &v, nil
}

func listLimit(r *http.Request) (int, error) {
	limit, err := optionalInt(r, queryLimit)
	if err != nil || limit == nil {
		return 0, err
	}
	return *limit, nil
}
