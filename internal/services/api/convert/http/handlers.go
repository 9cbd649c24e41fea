// Package http provides http transport for conversions
package http

import (
	stdhttp "net/http"
	"time"

	"tzconv/internal/modkit/httpkit"
	perr "tzconv/internal/platform/errors"
	"tzconv/internal/services/convert/domain"
	"tzconv/internal/services/convert/present"
)

// Register mounts the conversion endpoints on the given router
func Register(r httpkit.Router, s domain.ConverterPort) {
	h := &handlers{svc: s}

	// one conversion, same tokens as the command line
	httpkit.GetQuery[domain.ConvertQuery](r, "/convert", h.convert)

	// zone table with current offsets
	httpkit.GetQuery[domain.ZonesQuery](r, "/zones", h.zones)
}

type handlers struct{ svc domain.ConverterPort }

// convert runs one conversion; tokens are the command-line ones, blank
// optional parameters count as absent
//
// @Summary Convert a wall-clock time between zones
// @Tags Convert
// @Produce json
// @Param time query string true "time of day" example(1pm)
// @Param origin query string true "origin zone" example(est)
// @Param destination query string false "destination zone, local when blank"
// @Param day query string false "day of month or today, yesterday, tomorrow"
// @Param month query string false "month name, abbreviation or number"
// @Param year query string false "year"
// @Success 200 {object} domain.ConvertResponse "ok"
// @Failure 422 {object} phttp.Envelope "token could not be parsed"
// @Router /convert [get]
func (h *handlers) convert(r *stdhttp.Request, q domain.ConvertQuery) (any, error) {
	res, err := h.svc.Convert(r.Context(), q.Request())
	if err != nil {
		return nil, err
	}
	return domain.ConvertResponse{
		Sentence:        present.Sentence(res),
		Origin:          res.Origin.Format(time.RFC3339),
		Destination:     res.Destination.Format(time.RFC3339),
		OriginZone:      res.Zones.Origin.String(),
		DestinationZone: res.Zones.Destination.String(),
		Format:          res.Format.String(),
		AssumedLocal:    res.Zones.AssumedLocal,
	}, nil
}

// zones lists the zone table; a filter that matches nothing is a 404
//
// @Summary Zone table with current offsets
// @Tags Convert
// @Produce json
// @Param filter query string false "substring of key or name"
// @Success 200 {array} domain.ZoneRow "ok"
// @Failure 404 {object} phttp.Envelope "no zone matched"
// @Router /zones [get]
func (h *handlers) zones(r *stdhttp.Request, q domain.ZonesQuery) (any, error) {
	rows := h.svc.Zones(r.Context(), q.Filter)
	if len(rows) == 0 && q.Filter != "" {
		return nil, perr.NotFoundf("no zones match %q", q.Filter)
	}
	return rows, nil
}
