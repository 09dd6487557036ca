package missions

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Meta is the optional units/description side-channel for exported columns.
// It travels next to the numeric state, never inside it.
type Meta map[string]ColumnMeta

// ColumnMeta describes one exported column.
type ColumnMeta struct {
	Units string
	Desc  string
}

// Describe returns the column metadata for the series' own columns.
func (s *StateSeries) Describe() Meta {
	m := Meta{
		"epoch":          {"UTC", "sample timestamp"},
		"position_eci":   {"km", "Earth centered inertial position of the satellite"},
		"velocity_eci":   {"km/s", "satellite velocity in ECI"},
		"position_ecef":  {"km", "Earth centered Earth fixed position of the satellite"},
		"velocity_ecef":  {"km/s", "satellite velocity with respect to the ECEF frame"},
		"geo_lat":        {"degrees", "geocentric latitude"},
		"geo_lon":        {"degrees", "geocentric longitude"},
		"geo_radius":     {"km", "radius from the center of the body"},
		"geod_lat":       {"degrees", "WGS-84 geodetic latitude"},
		"geod_lon":       {"degrees", "WGS-84 geodetic longitude"},
		"geod_alt":       {"km", "WGS-84 height above the ellipsoid"},
	}
	return m
}

// ExtraColumn is an additional per-sample scalar column to export alongside
// the state, e.g. a field component projected onto the body frame.
type ExtraColumn struct {
	Name   string
	Values []float64
	Meta   ColumnMeta
}

// WriteCSV streams the series, and any extra columns, as CSV. Extra columns
// must carry exactly one value per sample. The first row names the columns,
// the second carries their units from the metadata side-channel (Describe for
// the series' own columns, each extra column's Meta for the rest).
func WriteCSV(w io.Writer, s *StateSeries, extras ...ExtraColumn) error {
	for _, c := range extras {
		if len(c.Values) != s.Len() {
			return fmt.Errorf("column %s has %d values for %d samples", c.Name, len(c.Values), s.Len())
		}
	}
	out := csv.NewWriter(w)
	meta := s.Describe()
	hdr := []string{"epoch"}
	units := []string{meta["epoch"].Units}
	for _, vec := range []string{"position_eci", "velocity_eci", "position_ecef", "velocity_ecef"} {
		for _, axis := range []string{"_x", "_y", "_z"} {
			hdr = append(hdr, vec+axis)
			units = append(units, meta[vec].Units)
		}
	}
	for _, scalar := range []string{"geo_lat", "geo_lon", "geo_radius", "geod_lat", "geod_lon", "geod_alt"} {
		hdr = append(hdr, scalar)
		units = append(units, meta[scalar].Units)
	}
	for _, c := range extras {
		hdr = append(hdr, c.Name)
		units = append(units, c.Meta.Units)
	}
	if err := out.Write(hdr); err != nil {
		return err
	}
	if err := out.Write(units); err != nil {
		return err
	}
	row := make([]string, 0, len(hdr))
	for i := 0; i < s.Len(); i++ {
		row = row[:0]
		row = append(row, s.Times[i].UTC().Format(time.RFC3339))
		row = appendVec(row, s.PosECI[i])
		row = appendVec(row, s.VelECI[i])
		row = appendVec(row, s.PosECEF[i])
		row = appendVec(row, s.VelECEF[i])
		row = append(row,
			fmtF(s.GeoLat[i]), fmtF(s.GeoLon[i]), fmtF(s.GeoRadius[i]),
			fmtF(s.GeodLat[i]), fmtF(s.GeodLon[i]), fmtF(s.GeodAlt[i]))
		for _, c := range extras {
			row = append(row, fmtF(c.Values[i]))
		}
		if err := out.Write(row); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

func appendVec(row []string, v []float64) []string {
	return append(row, fmtF(v[0]), fmtF(v[1]), fmtF(v[2]))
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
