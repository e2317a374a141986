package location

// GeoErrorKind classifies a failed position request from the client.
// The numeric values follow the browser GeolocationPositionError codes.
type GeoErrorKind int

const (
	GeoErrorUnknown             GeoErrorKind = 0
	GeoErrorPermissionDenied    GeoErrorKind = 1
	GeoErrorPositionUnavailable GeoErrorKind = 2
	GeoErrorTimeout             GeoErrorKind = 3
	GeoErrorUnsupported         GeoErrorKind = 4
)

func (k GeoErrorKind) String() string {
	switch k {
	case GeoErrorPermissionDenied:
		return "permission_denied"
	case GeoErrorPositionUnavailable:
		return "position_unavailable"
	case GeoErrorTimeout:
		return "timeout"
	case GeoErrorUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Message is the text shown to the user. Every variant points back at manual selection.
func (k GeoErrorKind) Message() string {
	switch k {
	case GeoErrorPermissionDenied:
		return "Location permission denied. Please use manual selection."
	case GeoErrorPositionUnavailable:
		return "Location information unavailable. Please try the manual selection."
	case GeoErrorTimeout:
		return "Location request timed out. Please try the manual selection."
	case GeoErrorUnsupported:
		return "Geolocation is not supported by your browser. Please use the manual selection."
	default:
		return "An unknown error occurred. Please try the manual selection."
	}
}

// ParseGeoErrorKind maps a client error code; unrecognized codes are GeoErrorUnknown.
func ParseGeoErrorKind(code int) GeoErrorKind {
	switch k := GeoErrorKind(code); k {
	case GeoErrorPermissionDenied, GeoErrorPositionUnavailable, GeoErrorTimeout, GeoErrorUnsupported:
		return k
	default:
		return GeoErrorUnknown
	}
}
